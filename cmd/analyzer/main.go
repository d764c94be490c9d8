package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"retailcli/internal/analytics"
	"retailcli/internal/config"
	"retailcli/internal/dataprocessing"
	"retailcli/internal/exporter"
	"retailcli/internal/infrastructure"
)

func main() {
	inFile := flag.String("in", "", "input transaction file (.csv, .txt or .xlsx)")
	outDir := flag.String("out", "", "output directory for report files (defaults to data/reports)")
	encoding := flag.String("encoding", "", "input text encoding (defaults to windows-1252)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *inFile != "" {
		cfg.Input.File = *inFile
	}
	if *outDir != "" {
		cfg.Paths.ReportsDir = *outDir
	}
	if *encoding != "" {
		cfg.Input.Encoding = *encoding
	}
	if cfg.Input.File == "" {
		fmt.Fprintln(os.Stderr, "no input file: pass -in or set RETAIL_INPUT_FILE")
		flag.Usage()
		os.Exit(2)
	}

	paths := config.NewPaths(cfg.Paths)
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg.Logging.FilePath = paths.GetLogPath("analyzer.log")
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if err := run(logger, cfg, paths); err != nil {
		logger.Error("Run failed", "error", err)
		// A failed run leaves no partial outputs behind.
		if rmErr := paths.RemoveReports(); rmErr != nil {
			logger.Error("Failed to remove partial outputs", "error", rmErr)
		}
		infrastructure.CloseLogFile()
		os.Exit(1)
	}
}

// run executes the full pipeline: load, clean, derive, aggregate, export.
func run(logger *slog.Logger, cfg *config.Config, paths *config.Paths) error {
	started := time.Now()
	logger.Info("Starting analysis run",
		slog.String("input", cfg.Input.File),
		slog.String("encoding", cfg.Input.Encoding),
		slog.String("reports_dir", paths.ReportsDir))

	rows, err := dataprocessing.NewLoader(logger, cfg.Input).Load(cfg.Input.File)
	if err != nil {
		return err
	}

	rows = dataprocessing.NewCleaner(logger).Clean(rows)
	rows = dataprocessing.NewDeriver(logger).Derive(rows)

	analyzer := analytics.NewAnalyzer(logger)

	report := &exporter.Report{
		Cleaned: rows,
		Yearly:  analyzer.Yearly(rows),
		Monthly: analyzer.Monthly(rows),
		Weekly:  analyzer.Weekly(rows),
	}
	if report.Countries, err = analyzer.Countries(rows); err != nil {
		return err
	}
	if report.Segments, err = analyzer.CustomerSegments(rows); err != nil {
		return err
	}
	if report.Stocks, err = analyzer.Stocks(rows); err != nil {
		return err
	}
	if report.Summary, err = analyzer.SalesSummary(rows, report.Monthly, report.Weekly); err != nil {
		return err
	}

	if err := exporter.NewReportWriter(logger, paths, cfg.Reports).WriteAll(report); err != nil {
		return err
	}

	logger.Info("Analysis run complete",
		slog.Int("cleaned_rows", len(rows)),
		slog.Int("countries", len(report.Countries)),
		slog.Int("customer_segments", len(report.Segments)),
		slog.Int("stock_groups", len(report.Stocks)),
		slog.Duration("elapsed", time.Since(started)))
	return nil
}
