package domain

import "time"

// PeriodRevenue is one bucket of a revenue time series (year, month or ISO
// week). GrowthPercent is null for the first bucket of a series, and whenever
// the previous bucket's revenue is zero.
type PeriodRevenue struct {
	Period        string      `json:"period" csv:"Period"`
	Start         time.Time   `json:"start" csv:"Start"`
	Revenue       float64     `json:"revenue" csv:"Revenue"`
	GrowthPercent NullFloat64 `json:"growth_percent" csv:"GrowthPercent"`
}

// CountrySummary aggregates cleaned transactions per country.
type CountrySummary struct {
	Country           string  `json:"country" csv:"Country"`
	TotalRevenue      float64 `json:"total_revenue" csv:"TotalRevenue"`
	DistinctCustomers int     `json:"distinct_customers" csv:"DistinctCustomers"`
	DistinctInvoices  int     `json:"distinct_invoices" csv:"DistinctInvoices"`
}

// CustomerSegment is one RFM row. Segments are keyed by (customer, country):
// a customer appearing under two countries yields two segments.
type CustomerSegment struct {
	CustomerID       int64     `json:"customer_id" csv:"CustomerID"`
	Country          string    `json:"country" csv:"Country"`
	LastPurchase     time.Time `json:"last_purchase" csv:"LastPurchase"`
	DistinctInvoices int       `json:"distinct_invoices" csv:"DistinctInvoices"`
	TotalRevenue     float64   `json:"total_revenue" csv:"TotalRevenue"`
}

// StockSummary aggregates cleaned transactions per (stock code, description)
// pair. A code whose rows carry inconsistent descriptions produces one row
// per description.
type StockSummary struct {
	StockCode         string  `json:"stock_code" csv:"StockCode"`
	Description       string  `json:"description" csv:"Description"`
	DistinctCustomers int     `json:"distinct_customers" csv:"DistinctCustomers"`
	DistinctInvoices  int     `json:"distinct_invoices" csv:"DistinctInvoices"`
	TotalQuantity     int64   `json:"total_quantity" csv:"TotalQuantity"`
	TotalRevenue      float64 `json:"total_revenue" csv:"TotalRevenue"`
}

// SalesSummary is the single-row rollup over the whole cleaned dataset.
type SalesSummary struct {
	TotalRevenue      float64     `json:"total_revenue" csv:"TotalRevenue"`
	DistinctCustomers int         `json:"distinct_customers" csv:"DistinctCustomers"`
	DistinctInvoices  int         `json:"distinct_invoices" csv:"DistinctInvoices"`
	TotalQuantity     int64       `json:"total_quantity" csv:"TotalQuantity"`
	MeanMonthlyGrowth NullFloat64 `json:"mean_monthly_growth" csv:"MeanMonthlyGrowth"`
	MeanWeeklyGrowth  NullFloat64 `json:"mean_weekly_growth" csv:"MeanWeeklyGrowth"`
}
