package entities

import "time"

// Customer is the requesting party of a rental order. Account management
// lives elsewhere; the order engine only needs identity and the active flag.

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
