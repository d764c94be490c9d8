// Package exporter serializes the analysis results to the delimited output
// tables and the JSON summary consumed by plotting collaborators.
//
// CSVWriter is the core writer: truncate-always semantics (every run
// rewrites every table, no append), optional UTF-8 BOM for Excel
// compatibility.
//
// ReportWriter owns the full report set of a run. Numeric formatting to two
// decimals happens here and only here; aggregation upstream keeps full
// float64 precision. Output files never contain run metadata, so two runs
// over the same input produce byte-identical tables.
package exporter
