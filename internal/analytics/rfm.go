package analytics

import (
	"log/slog"
	"sort"

	"retailcli/pkg/contracts/domain"
)

// rfmKey identifies one customer segment. Segmentation is keyed by customer
// and country together: the dataset treats a customer's country as stable,
// and the handful of customers appearing under several countries are kept as
// separate segments rather than merged.
type rfmKey struct {
	customerID int64
	country    string
}

// rfmAccumulator collects recency, frequency and monetary inputs.
type rfmAccumulator struct {
	last     domain.NullTime
	invoices stringSet
	revenue  float64
}

// CustomerSegments computes the RFM view: latest purchase timestamp,
// distinct invoice count and revenue sum per (customer, country) pair.
// Rows with an unparseable timestamp still count toward frequency and
// monetary; they cannot advance recency.
func (a *Analyzer) CustomerSegments(rows []domain.Transaction) ([]domain.CustomerSegment, error) {
	acc := make(map[rfmKey]*rfmAccumulator)
	countries := make(map[int64]stringSet)

	for _, tx := range rows {
		customerID, err := tx.CustomerID.Value()
		if err != nil {
			return nil, err
		}

		key := rfmKey{customerID: customerID, country: tx.Country}
		r, ok := acc[key]
		if !ok {
			r = &rfmAccumulator{invoices: make(stringSet)}
			acc[key] = r
		}
		r.invoices.add(tx.InvoiceID)
		r.revenue += tx.Revenue
		if tx.InvoiceTimestamp.Valid {
			if !r.last.Valid || tx.InvoiceTimestamp.Time.After(r.last.Time) {
				r.last = tx.InvoiceTimestamp
			}
		}

		if _, ok := countries[customerID]; !ok {
			countries[customerID] = make(stringSet)
		}
		countries[customerID].add(tx.Country)
	}

	multiCountry := 0
	for _, set := range countries {
		if len(set) > 1 {
			multiCountry++
		}
	}
	if multiCountry > 0 {
		a.logger.Warn("Customers appearing under multiple countries kept as separate segments",
			slog.Int("customers", multiCountry))
	}

	segments := make([]domain.CustomerSegment, 0, len(acc))
	for key, r := range acc {
		segments = append(segments, domain.CustomerSegment{
			CustomerID:       key.customerID,
			Country:          key.country,
			LastPurchase:     r.last.Time,
			DistinctInvoices: len(r.invoices),
			TotalRevenue:     r.revenue,
		})
	}
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].CustomerID != segments[j].CustomerID {
			return segments[i].CustomerID < segments[j].CustomerID
		}
		return segments[i].Country < segments[j].Country
	})
	return segments, nil
}
