package exporter

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"

	"retailcli/internal/analytics"
	"retailcli/internal/config"
	apperrors "retailcli/internal/errors"
	"retailcli/pkg/contracts/domain"
)

// Report bundles everything one run produces, ready for serialization.
type Report struct {
	Cleaned   []domain.Transaction
	Yearly    []domain.PeriodRevenue
	Monthly   []domain.PeriodRevenue
	Weekly    []domain.PeriodRevenue
	Countries []domain.CountrySummary
	Segments  []domain.CustomerSegment
	Stocks    []domain.StockSummary
	Summary   domain.SalesSummary
}

// ReportWriter writes the full report set of a run.
type ReportWriter struct {
	logger *slog.Logger
	paths  *config.Paths
	cfg    config.ReportsConfig
	csv    *CSVWriter
}

// NewReportWriter creates a report writer for the given paths and options.
func NewReportWriter(logger *slog.Logger, paths *config.Paths, cfg config.ReportsConfig) *ReportWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWriter{
		logger: logger,
		paths:  paths,
		cfg:    cfg,
		csv:    NewCSVWriter(logger, cfg.ExcelBOM),
	}
}

// WriteAll serializes every output table. On the first failure it stops and
// returns; the caller removes the run's outputs so nothing partial survives.
func (w *ReportWriter) WriteAll(report *Report) error {
	steps := []struct {
		table string
		write func(*Report) error
	}{
		{"cleaned transactions", w.writeCleaned},
		{"sales summary", w.writeSummary},
		{"country summary", w.writeCountries},
		{"customer RFM", w.writeSegments},
		{"stock summary", w.writeStocks},
		{"stock top-N", w.writeStockTop},
		{"revenue series", w.writeSeriesTables},
	}

	for _, step := range steps {
		if err := step.write(report); err != nil {
			return apperrors.ExportFailed(step.table, err)
		}
	}

	w.logger.Info("Report files written",
		slog.String("reports_dir", w.paths.ReportsDir),
		slog.Int("files", len(w.paths.ReportFiles())))
	return nil
}

// writeCleaned writes the retained transactions with their derived columns.
func (w *ReportWriter) writeCleaned(report *Report) error {
	headers := []string{
		"InvoiceNo", "StockCode", "Description", "Quantity", "InvoiceDate",
		"UnitPrice", "CustomerID", "Country",
		"InvoiceTimestamp", "DateOnly", "TimeOnly", "NumericInvoiceID", "Revenue",
	}

	records := make([][]string, 0, len(report.Cleaned))
	for _, tx := range report.Cleaned {
		records = append(records, []string{
			tx.InvoiceID,
			tx.StockCode,
			tx.Description,
			formatInt(tx.Quantity),
			tx.RawTimestamp,
			formatFloat(tx.UnitPrice),
			tx.CustomerID.String(),
			tx.Country,
			formatNullTime(tx.InvoiceTimestamp),
			tx.DateOnly,
			tx.TimeOnly,
			tx.NumericInvoiceID.String(),
			formatFloat(tx.Revenue),
		})
	}
	return w.csv.WriteTable(w.paths.CleanedCSV, headers, records)
}

// writeSummary writes the single-row rollup, as CSV and (optionally) JSON
// for dashboard collaborators.
func (w *ReportWriter) writeSummary(report *Report) error {
	headers := []string{
		"TotalRevenue", "DistinctCustomers", "DistinctInvoices",
		"TotalQuantity", "MeanMonthlyGrowth", "MeanWeeklyGrowth",
	}
	record := []string{
		formatFloat(report.Summary.TotalRevenue),
		formatInt(int64(report.Summary.DistinctCustomers)),
		formatInt(int64(report.Summary.DistinctInvoices)),
		formatInt(report.Summary.TotalQuantity),
		formatNullFloat(report.Summary.MeanMonthlyGrowth),
		formatNullFloat(report.Summary.MeanWeeklyGrowth),
	}
	if err := w.csv.WriteTable(w.paths.SalesSummaryCSV, headers, [][]string{record}); err != nil {
		return err
	}

	if !w.cfg.SummaryJSON {
		return nil
	}
	data, err := json.MarshalIndent(summaryJSON(report), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(w.paths.SalesSummaryJSON, append(data, '\n'), 0644)
}

// summaryJSON shapes the JSON document: the rollup plus the ordered revenue
// series a plotting collaborator consumes.
func summaryJSON(report *Report) map[string]interface{} {
	return map[string]interface{}{
		"summary": report.Summary,
		"series": []domain.Series{
			analytics.Series("revenue_yearly", report.Yearly),
			analytics.Series("revenue_monthly", report.Monthly),
			analytics.Series("revenue_weekly", report.Weekly),
		},
	}
}

// writeCountries writes the country table, sorted descending by revenue for
// presentation (ties broken by name for stable output).
func (w *ReportWriter) writeCountries(report *Report) error {
	countries := make([]domain.CountrySummary, len(report.Countries))
	copy(countries, report.Countries)
	sort.SliceStable(countries, func(i, j int) bool {
		if countries[i].TotalRevenue != countries[j].TotalRevenue {
			return countries[i].TotalRevenue > countries[j].TotalRevenue
		}
		return countries[i].Country < countries[j].Country
	})

	headers := []string{"Country", "TotalRevenue", "DistinctCustomers", "DistinctInvoices"}
	records := make([][]string, 0, len(countries))
	for _, c := range countries {
		records = append(records, []string{
			c.Country,
			formatFloat(c.TotalRevenue),
			formatInt(int64(c.DistinctCustomers)),
			formatInt(int64(c.DistinctInvoices)),
		})
	}
	return w.csv.WriteTable(w.paths.CountryCSV, headers, records)
}

// writeSegments writes the customer RFM table.
func (w *ReportWriter) writeSegments(report *Report) error {
	headers := []string{"CustomerID", "Country", "LastPurchase", "DistinctInvoices", "TotalRevenue"}
	records := make([][]string, 0, len(report.Segments))
	for _, s := range report.Segments {
		records = append(records, []string{
			formatInt(s.CustomerID),
			s.Country,
			formatTime(s.LastPurchase),
			formatInt(int64(s.DistinctInvoices)),
			formatFloat(s.TotalRevenue),
		})
	}
	return w.csv.WriteTable(w.paths.CustomerRFMCSV, headers, records)
}

// writeStocks writes the full stock table.
func (w *ReportWriter) writeStocks(report *Report) error {
	headers := []string{
		"StockCode", "Description", "DistinctCustomers",
		"DistinctInvoices", "TotalQuantity", "TotalRevenue",
	}
	records := make([][]string, 0, len(report.Stocks))
	for _, s := range report.Stocks {
		records = append(records, stockRecord(s))
	}
	return w.csv.WriteTable(w.paths.StockCSV, headers, records)
}

// writeStockTop writes the top-N stocks by revenue, by distinct customers
// and by distinct invoices into one table with a Metric column.
func (w *ReportWriter) writeStockTop(report *Report) error {
	type ranking struct {
		metric string
		less   func(a, b domain.StockSummary) bool
	}
	rankings := []ranking{
		{"revenue", func(a, b domain.StockSummary) bool { return a.TotalRevenue > b.TotalRevenue }},
		{"customers", func(a, b domain.StockSummary) bool { return a.DistinctCustomers > b.DistinctCustomers }},
		{"invoices", func(a, b domain.StockSummary) bool { return a.DistinctInvoices > b.DistinctInvoices }},
	}

	headers := []string{
		"Metric", "Rank", "StockCode", "Description", "DistinctCustomers",
		"DistinctInvoices", "TotalQuantity", "TotalRevenue",
	}
	var records [][]string
	for _, r := range rankings {
		top := make([]domain.StockSummary, len(report.Stocks))
		copy(top, report.Stocks)
		sort.SliceStable(top, func(i, j int) bool { return r.less(top[i], top[j]) })
		if len(top) > w.cfg.TopN {
			top = top[:w.cfg.TopN]
		}
		for rank, s := range top {
			records = append(records, append([]string{r.metric, formatInt(int64(rank + 1))}, stockRecord(s)...))
		}
	}
	return w.csv.WriteTable(w.paths.StockTopCSV, headers, records)
}

func stockRecord(s domain.StockSummary) []string {
	return []string{
		s.StockCode,
		s.Description,
		formatInt(int64(s.DistinctCustomers)),
		formatInt(int64(s.DistinctInvoices)),
		formatInt(s.TotalQuantity),
		formatFloat(s.TotalRevenue),
	}
}

// writeSeriesTables writes the three revenue time series.
func (w *ReportWriter) writeSeriesTables(report *Report) error {
	if !w.cfg.WriteSeries {
		return nil
	}

	tables := []struct {
		path    string
		periods []domain.PeriodRevenue
	}{
		{w.paths.RevenueYearlyCSV, report.Yearly},
		{w.paths.RevenueMonthlyCSV, report.Monthly},
		{w.paths.RevenueWeeklyCSV, report.Weekly},
	}

	headers := []string{"Period", "Revenue", "GrowthPercent"}
	for _, table := range tables {
		records := make([][]string, 0, len(table.periods))
		for _, p := range table.periods {
			records = append(records, []string{
				p.Period,
				formatFloat(p.Revenue),
				formatNullFloat(p.GrowthPercent),
			})
		}
		if err := w.csv.WriteTable(table.path, headers, records); err != nil {
			return err
		}
	}
	return nil
}
