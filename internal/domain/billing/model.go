package billing

import "time"

type Record struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"order_id"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
}

// HistoryRow is a Record joined with its order and customer for the
// history listing.
type HistoryRow struct {
	Record
	Weight          float64   `json:"weight"`
	ServiceType     string    `json:"service_type"`
	OrderDate       time.Time `json:"order_date"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact string    `json:"customer_contact"`
}

// Summary aggregates payments inside a reporting window. PeriodStart
// and PeriodEnd are NULL when the window holds no payments.
type Summary struct {
	TotalOrders       int64      `json:"total_orders"`
	TotalRevenue      *float64   `json:"total_revenue"`
	AverageOrderValue *float64   `json:"average_order_value"`
	PeriodStart       *time.Time `json:"period_start"`
	PeriodEnd         *time.Time `json:"period_end"`
}
