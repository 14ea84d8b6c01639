package reports

import (
	"time"

	"github.com/laarne/laundromat/internal/domain/period"
)

// SalesFilter selects either an explicit date range (inclusive,
// YYYY-MM-DD, validated by the caller) or a named period.
type SalesFilter struct {
	Period    period.Period
	StartDate string
	EndDate   string
}

// Sales aggregates are NULL when no orders fall in the window, hence
// the pointer sums.
type Sales struct {
	TotalOrders       int64    `json:"total_orders"`
	TotalRevenue      *float64 `json:"total_revenue"`
	AverageOrderValue *float64 `json:"average_order_value"`
	CompletedOrders   int64    `json:"completed_orders"`
	ReadyOrders       int64    `json:"ready_orders"`
	ProcessingOrders  int64    `json:"processing_orders"`
	PendingOrders     int64    `json:"pending_orders"`
}

type DailyRow struct {
	Date          time.Time `json:"date"`
	OrderCount    int64     `json:"order_count"`
	DailyRevenue  float64   `json:"daily_revenue"`
	AvgOrderValue float64   `json:"avg_order_value"`
}

type ServiceTypeRow struct {
	ServiceType   string  `json:"service_type"`
	OrderCount    int64   `json:"order_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	TotalWeight   float64 `json:"total_weight"`
}

type CustomerRow struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Contact       string    `json:"contact"`
	TotalOrders   int64     `json:"total_orders"`
	TotalSpent    float64   `json:"total_spent"`
	AvgOrderValue float64   `json:"avg_order_value"`
	LastOrderDate time.Time `json:"last_order_date"`
}

type InventoryRow struct {
	ItemName     string  `json:"item_name"`
	CurrentStock float64 `json:"current_stock"`
	Threshold    float64 `json:"threshold"`
	StockStatus  string  `json:"stock_status"`
}

type StatusRow struct {
	Status     string   `json:"status"`
	Count      int64    `json:"count"`
	TotalValue *float64 `json:"total_value"`
}
