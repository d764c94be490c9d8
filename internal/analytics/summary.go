package analytics

import (
	"log/slog"

	"retailcli/pkg/contracts/domain"
)

// SalesSummary combines the dataset-wide totals with the mean of the
// month-over-month and week-over-week growth series. The means exclude the
// undefined first value of each series and are null when no defined growth
// values exist at all.
func (a *Analyzer) SalesSummary(rows []domain.Transaction, monthly, weekly []domain.PeriodRevenue) (domain.SalesSummary, error) {
	customers := make(int64Set)
	invoices := make(stringSet)
	var totalRevenue float64
	var totalQuantity int64

	for _, tx := range rows {
		customerID, err := tx.CustomerID.Value()
		if err != nil {
			return domain.SalesSummary{}, err
		}
		customers.add(customerID)
		invoices.add(tx.InvoiceID)
		totalRevenue += tx.Revenue
		totalQuantity += tx.Quantity
	}

	summary := domain.SalesSummary{
		TotalRevenue:      totalRevenue,
		DistinctCustomers: len(customers),
		DistinctInvoices:  len(invoices),
		TotalQuantity:     totalQuantity,
		MeanMonthlyGrowth: MeanGrowth(monthly),
		MeanWeeklyGrowth:  MeanGrowth(weekly),
	}

	a.logger.Info("Computed sales summary",
		slog.Float64("total_revenue", summary.TotalRevenue),
		slog.Int("distinct_customers", summary.DistinctCustomers),
		slog.Int("distinct_invoices", summary.DistinctInvoices))
	return summary, nil
}

// MeanGrowth averages the defined growth values of a series. A series with
// no defined growth (zero or one period) yields null.
func MeanGrowth(periods []domain.PeriodRevenue) domain.NullFloat64 {
	var sum float64
	var n int
	for _, p := range periods {
		if p.GrowthPercent.Valid {
			sum += p.GrowthPercent.Float64
			n++
		}
	}
	if n == 0 {
		return domain.NullFloat64{}
	}
	return domain.Float64Of(sum / float64(n))
}
