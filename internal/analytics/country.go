package analytics

import (
	"sort"

	"retailcli/pkg/contracts/domain"
)

// countryAccumulator collects per-country metrics during the single pass.
type countryAccumulator struct {
	revenue   float64
	customers int64Set
	invoices  stringSet
}

// Countries aggregates cleaned rows per country: total revenue, distinct
// customers and distinct invoices. Results are sorted by country name; the
// exporter re-sorts by revenue for presentation.
func (a *Analyzer) Countries(rows []domain.Transaction) ([]domain.CountrySummary, error) {
	acc := make(map[string]*countryAccumulator)

	for _, tx := range rows {
		customerID, err := tx.CustomerID.Value()
		if err != nil {
			return nil, err
		}

		c, ok := acc[tx.Country]
		if !ok {
			c = &countryAccumulator{
				customers: make(int64Set),
				invoices:  make(stringSet),
			}
			acc[tx.Country] = c
		}
		c.revenue += tx.Revenue
		c.customers.add(customerID)
		c.invoices.add(tx.InvoiceID)
	}

	summaries := make([]domain.CountrySummary, 0, len(acc))
	for country, c := range acc {
		summaries = append(summaries, domain.CountrySummary{
			Country:           country,
			TotalRevenue:      c.revenue,
			DistinctCustomers: len(c.customers),
			DistinctInvoices:  len(c.invoices),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Country < summaries[j].Country
	})
	return summaries, nil
}
