package customers

import "time"

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input carries the writable customer fields. Email and Address are
// optional and stored as NULL when absent.
type Input struct {
	Name    string  `json:"name"`
	Contact string  `json:"contact"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}
