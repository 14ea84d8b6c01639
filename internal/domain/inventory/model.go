package inventory

import "time"

// Item is one consumable on the shelf. Quantity is allowed to go
// negative: order intake deducts without a floor and the deficit shows
// up in the low-stock report instead of blocking the counter.
type Item struct {
	ID          int64     `json:"id"`
	ItemName    string    `json:"item_name"`
	Quantity    float64   `json:"quantity"`
	Threshold   float64   `json:"threshold"`
	Unit        string    `json:"unit"`
	CostPerUnit float64   `json:"cost_per_unit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Input struct {
	ItemName    string   `json:"item_name"`
	Quantity    *float64 `json:"quantity"`
	Threshold   *float64 `json:"threshold"`
	Unit        string   `json:"unit"`
	CostPerUnit *float64 `json:"cost_per_unit"`
}
