package domain

// Transaction represents a single line item of a retail invoice.
// One invoice may span multiple transactions (one per stock code).
type Transaction struct {
	InvoiceID    string    `json:"invoice_id" csv:"InvoiceNo" validate:"required"`
	StockCode    string    `json:"stock_code" csv:"StockCode" validate:"required"`
	Description  string    `json:"description" csv:"Description"`
	Quantity     int64     `json:"quantity" csv:"Quantity"`
	RawTimestamp string    `json:"raw_timestamp" csv:"InvoiceDate" validate:"required"`
	UnitPrice    float64   `json:"unit_price" csv:"UnitPrice"`
	CustomerID   NullInt64 `json:"customer_id" csv:"CustomerID"`
	Country      string    `json:"country" csv:"Country" validate:"required"`

	// Derived fields, populated by the feature deriver.
	InvoiceTimestamp NullTime  `json:"invoice_timestamp"`
	DateOnly         string    `json:"date_only"`
	TimeOnly         string    `json:"time_only"`
	NumericInvoiceID NullInt64 `json:"numeric_invoice_id"`
	Revenue          float64   `json:"revenue"`
}

// IsCancellation reports whether the invoice identifier carries the
// cancellation prefix used by the source system.
func (t Transaction) IsCancellation() bool {
	return len(t.InvoiceID) > 0 && (t.InvoiceID[0] == 'C' || t.InvoiceID[0] == 'c')
}

// TransactionColumns is the fixed input schema, in source column order.
var TransactionColumns = []string{
	"InvoiceNo",
	"StockCode",
	"Description",
	"Quantity",
	"InvoiceDate",
	"UnitPrice",
	"CustomerID",
	"Country",
}
