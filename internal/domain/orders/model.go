package orders

import "time"

type Status string

const (
	StatusReceived Status = "received"
	StatusWashing  Status = "washing"
	StatusReady    Status = "ready"
	StatusClaimed  Status = "claimed"
)

// ValidStatus reports whether s is one of the four workflow labels.
// Any valid label may be requested from any current state; only the
// label itself is checked.
func ValidStatus(s Status) bool {
	switch s {
	case StatusReceived, StatusWashing, StatusReady, StatusClaimed:
		return true
	}
	return false
}

// Order carries the stored row plus customer fields filled in by the
// joined list/get queries. Price is fixed at creation (or edit) time;
// later pricing changes never touch existing orders.
type Order struct {
	ID          int64      `json:"id"`
	CustomerID  int64      `json:"customer_id"`
	Weight      float64    `json:"weight"`
	ServiceType string     `json:"service_type"`
	Price       float64    `json:"price"`
	Status      Status     `json:"status"`
	Notes       *string    `json:"notes"`
	OrderDate   time.Time  `json:"order_date"`
	ReadyDate   *time.Time `json:"ready_date"`
	ClaimedDate *time.Time `json:"claimed_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	CustomerName    string  `json:"customer_name,omitempty"`
	CustomerContact string  `json:"customer_contact,omitempty"`
	CustomerEmail   *string `json:"customer_email,omitempty"`
	CustomerAddress *string `json:"customer_address,omitempty"`
}

type CreateInput struct {
	CustomerID  int64   `json:"customer_id"`
	Weight      float64 `json:"weight"`
	ServiceType string  `json:"service_type"`
	Notes       *string `json:"notes"`
}

type UpdateInput struct {
	Weight      float64 `json:"weight"`
	ServiceType string  `json:"service_type"`
	Notes       *string `json:"notes"`
}
