// Package analytics computes the aggregated business views over the cleaned
// transaction table: revenue time series (yearly, monthly, ISO-weekly),
// country breakdown, customer RFM segments, stock performance and the
// single-row sales summary.
//
// The four aggregators are independent of each other and order-insensitive;
// each is a pure function of the cleaned rows. Aggregators fail loudly when
// they encounter a null field that cleaning guarantees to be present.
package analytics
