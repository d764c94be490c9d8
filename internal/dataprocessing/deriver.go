package dataprocessing

import (
	"log/slog"
	"strconv"
	"time"

	"retailcli/pkg/contracts/domain"
)

// timestampLayouts are the accepted invoice timestamp formats, tried in
// order. The source exports use the unpadded US form ("12/1/2010 8:26").
var timestampLayouts = []string{
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"1/2/06 15:04",
}

// Deriver computes the per-row derived fields. It is a pure transform:
// parse failures never drop a row, the affected field becomes null.
type Deriver struct {
	logger *slog.Logger
}

// NewDeriver creates a new feature deriver.
func NewDeriver(logger *slog.Logger) *Deriver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deriver{logger: logger}
}

// Derive returns a new slice with timestamps parsed, date/time components
// split, the numeric invoice identifier extracted and revenue computed.
// Revenue keeps full float64 precision; rounding happens at presentation.
func (d *Deriver) Derive(rows []domain.Transaction) []domain.Transaction {
	badTimestamps := 0
	badInvoices := 0

	out := make([]domain.Transaction, len(rows))
	for i, tx := range rows {
		tx.InvoiceTimestamp = parseTimestamp(tx.RawTimestamp)
		if tx.InvoiceTimestamp.Valid {
			tx.DateOnly = tx.InvoiceTimestamp.Time.Format("2006-01-02")
			tx.TimeOnly = tx.InvoiceTimestamp.Time.Format("15:04:05")
		} else {
			badTimestamps++
		}

		if n, err := strconv.ParseInt(tx.InvoiceID, 10, 64); err == nil {
			tx.NumericInvoiceID = domain.Int64Of(n)
		} else {
			badInvoices++
		}

		tx.Revenue = float64(tx.Quantity) * tx.UnitPrice
		out[i] = tx
	}

	d.logger.Info("Derived row features",
		slog.Int("rows", len(out)),
		slog.Int("unparseable_timestamps", badTimestamps),
		slog.Int("non_numeric_invoices", badInvoices))
	return out
}

// parseTimestamp tries each accepted layout and returns null when none fit.
func parseTimestamp(raw string) domain.NullTime {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return domain.TimeOf(t)
		}
	}
	return domain.NullTime{}
}
