package pricing

import "time"

// Rule is one pricing row: an order for service_type costs
// base_price + weight * price_per_kg at the moment of creation.
type Rule struct {
	ID          int64     `json:"id"`
	ServiceType string    `json:"service_type"`
	BasePrice   float64   `json:"base_price"`
	PricePerKg  float64   `json:"price_per_kg"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}
