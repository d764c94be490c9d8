package dataprocessing

import (
	"log/slog"

	"retailcli/pkg/contracts/domain"
)

// UnknownDescription is the sentinel applied to stock codes that never carry
// a description anywhere in the dataset.
const UnknownDescription = "Unknown"

// Cleaner narrows the raw transaction table down to analyzable rows.
// Every step returns a new slice; the input is never mutated, so earlier
// stages of the pipeline stay valid after cleaning.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a new cleaner.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// Clean applies the four cleaning steps in order: drop non-positive
// quantities (returns and cancellations), drop non-positive unit prices,
// back-fill missing descriptions, drop rows without a customer identifier.
// Row order after cleaning is unspecified; downstream aggregation is
// order-independent.
func (c *Cleaner) Clean(rows []domain.Transaction) []domain.Transaction {
	initial := len(rows)

	rows = c.dropNonPositiveQuantity(rows)
	rows = c.dropNonPositiveUnitPrice(rows)
	rows = c.backfillDescriptions(rows)
	rows = c.dropMissingCustomer(rows)

	c.logger.Info("Cleaning complete",
		slog.Int("initial_rows", initial),
		slog.Int("retained_rows", len(rows)))
	return rows
}

// dropNonPositiveQuantity removes returns and cancellations.
func (c *Cleaner) dropNonPositiveQuantity(rows []domain.Transaction) []domain.Transaction {
	kept := make([]domain.Transaction, 0, len(rows))
	for _, tx := range rows {
		if tx.Quantity > 0 {
			kept = append(kept, tx)
		}
	}
	c.logger.Debug("Dropped non-positive quantities",
		slog.Int("dropped", len(rows)-len(kept)))
	return kept
}

// dropNonPositiveUnitPrice removes free and erroneous entries.
func (c *Cleaner) dropNonPositiveUnitPrice(rows []domain.Transaction) []domain.Transaction {
	kept := make([]domain.Transaction, 0, len(rows))
	for _, tx := range rows {
		if tx.UnitPrice > 0 {
			kept = append(kept, tx)
		}
	}
	c.logger.Debug("Dropped non-positive unit prices",
		slog.Int("dropped", len(rows)-len(kept)))
	return kept
}

// backfillDescriptions fills missing descriptions from the first non-missing
// description seen for the same stock code. Codes with no known description
// anywhere get the Unknown sentinel. Rows that already carry a description
// keep it, even when it differs from the back-fill choice.
func (c *Cleaner) backfillDescriptions(rows []domain.Transaction) []domain.Transaction {
	known := make(map[string]string)
	for _, tx := range rows {
		if tx.Description == "" {
			continue
		}
		if _, ok := known[tx.StockCode]; !ok {
			known[tx.StockCode] = tx.Description
		}
	}

	filled := 0
	out := make([]domain.Transaction, len(rows))
	for i, tx := range rows {
		if tx.Description == "" {
			if desc, ok := known[tx.StockCode]; ok {
				tx.Description = desc
			} else {
				tx.Description = UnknownDescription
			}
			filled++
		}
		out[i] = tx
	}

	c.logger.Debug("Back-filled descriptions",
		slog.Int("filled", filled),
		slog.Int("known_codes", len(known)))
	return out
}

// dropMissingCustomer removes rows without a customer identifier. This is
// data narrowing, not an error: roughly a quarter of the raw rows have no
// customer attached.
func (c *Cleaner) dropMissingCustomer(rows []domain.Transaction) []domain.Transaction {
	kept := make([]domain.Transaction, 0, len(rows))
	for _, tx := range rows {
		if tx.CustomerID.Valid {
			kept = append(kept, tx)
		}
	}
	c.logger.Debug("Dropped rows without customer",
		slog.Int("dropped", len(rows)-len(kept)))
	return kept
}
