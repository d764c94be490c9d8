package analytics

import (
	"sort"

	"retailcli/pkg/contracts/domain"
)

// stockKey identifies one stock summary group. Grouping is by code and
// description together: a code whose rows still carry inconsistent
// descriptions after back-fill produces one group per description.
type stockKey struct {
	code        string
	description string
}

// stockAccumulator collects per-stock metrics during the single pass.
type stockAccumulator struct {
	customers int64Set
	invoices  stringSet
	quantity  int64
	revenue   float64
}

// Stocks aggregates cleaned rows per (stock code, description): distinct
// customers, distinct invoices, total quantity and total revenue. Top-N
// selection is a presentation concern handled by the exporter.
func (a *Analyzer) Stocks(rows []domain.Transaction) ([]domain.StockSummary, error) {
	acc := make(map[stockKey]*stockAccumulator)

	for _, tx := range rows {
		customerID, err := tx.CustomerID.Value()
		if err != nil {
			return nil, err
		}

		key := stockKey{code: tx.StockCode, description: tx.Description}
		s, ok := acc[key]
		if !ok {
			s = &stockAccumulator{
				customers: make(int64Set),
				invoices:  make(stringSet),
			}
			acc[key] = s
		}
		s.customers.add(customerID)
		s.invoices.add(tx.InvoiceID)
		s.quantity += tx.Quantity
		s.revenue += tx.Revenue
	}

	summaries := make([]domain.StockSummary, 0, len(acc))
	for key, s := range acc {
		summaries = append(summaries, domain.StockSummary{
			StockCode:         key.code,
			Description:       key.description,
			DistinctCustomers: len(s.customers),
			DistinctInvoices:  len(s.invoices),
			TotalQuantity:     s.quantity,
			TotalRevenue:      s.revenue,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].StockCode != summaries[j].StockCode {
			return summaries[i].StockCode < summaries[j].StockCode
		}
		return summaries[i].Description < summaries[j].Description
	})
	return summaries, nil
}
