package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all output paths for a run.
// This is the single source of truth for every file the analyzer writes.
type Paths struct {
	ReportsDir string
	LogsDir    string

	// Well-known report files inside ReportsDir
	CleanedCSV        string
	SalesSummaryCSV   string
	SalesSummaryJSON  string
	CountryCSV        string
	CustomerRFMCSV    string
	StockCSV          string
	StockTopCSV       string
	RevenueYearlyCSV  string
	RevenueMonthlyCSV string
	RevenueWeeklyCSV  string
}

// NewPaths builds the path set for the given configuration. Relative
// directories are kept relative to the working directory; callers that need
// absolute paths pass them in.
func NewPaths(cfg PathsConfig) *Paths {
	reports := cfg.ReportsDir
	if reports == "" {
		reports = "data/reports"
	}
	logs := cfg.LogsDir
	if logs == "" {
		logs = "logs"
	}

	return &Paths{
		ReportsDir: reports,
		LogsDir:    logs,

		CleanedCSV:        filepath.Join(reports, "transactions_cleaned.csv"),
		SalesSummaryCSV:   filepath.Join(reports, "sales_summary.csv"),
		SalesSummaryJSON:  filepath.Join(reports, "sales_summary.json"),
		CountryCSV:        filepath.Join(reports, "country_summary.csv"),
		CustomerRFMCSV:    filepath.Join(reports, "customer_rfm.csv"),
		StockCSV:          filepath.Join(reports, "stock_summary.csv"),
		StockTopCSV:       filepath.Join(reports, "stock_top.csv"),
		RevenueYearlyCSV:  filepath.Join(reports, "revenue_yearly.csv"),
		RevenueMonthlyCSV: filepath.Join(reports, "revenue_monthly.csv"),
		RevenueWeeklyCSV:  filepath.Join(reports, "revenue_weekly.csv"),
	}
}

// ReportFiles lists every output file of a run, in a stable order.
func (p *Paths) ReportFiles() []string {
	return []string{
		p.CleanedCSV,
		p.SalesSummaryCSV,
		p.SalesSummaryJSON,
		p.CountryCSV,
		p.CustomerRFMCSV,
		p.StockCSV,
		p.StockTopCSV,
		p.RevenueYearlyCSV,
		p.RevenueMonthlyCSV,
		p.RevenueWeeklyCSV,
	}
}

// EnsureDirectories creates the reports and logs directories if missing.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// RemoveReports deletes every output file of the current run. Used when a
// stage fails so no partial outputs survive.
func (p *Paths) RemoveReports() error {
	var firstErr error
	for _, f := range p.ReportFiles() {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = fmt.Errorf("failed to remove %s: %w", f, err)
		}
	}
	return firstErr
}

// GetLogPath returns the path for a named log file inside LogsDir.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
