// Package dataprocessing turns the raw retail transaction file into the
// cleaned, enriched in-memory table every aggregator runs over.
//
// The package is organized into three components, applied in order:
//
// 1. Loader: reads the delimited source file (or an Excel workbook) through
// the declared text encoding into typed transaction records. Any malformed
// row fails the entire load.
//
// 2. Cleaner: drops returns and erroneous rows, back-fills missing
// descriptions and removes rows without a customer identifier. Each step
// returns a new slice; no stage mutates its input.
//
// 3. Deriver: parses timestamps and invoice numbers (soft, null on failure)
// and computes per-row revenue.
//
// Basic usage:
//
//	loader := dataprocessing.NewLoader(logger, cfg.Input)
//	rows, err := loader.Load("online_retail.csv")
//	if err != nil {
//	    return err
//	}
//	rows = dataprocessing.NewCleaner(logger).Clean(rows)
//	rows = dataprocessing.NewDeriver(logger).Derive(rows)
package dataprocessing
