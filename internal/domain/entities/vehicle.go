package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle is the rental fleet entry the order engine reads.
//
// Available is the administrative "accepting new orders" flag; it is distinct
// from being booked for a specific period, which is decided by the
// period-conflict scan over orders.

type Vehicle struct {
	ID        string          `json:"id"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Plate     string          `json:"plate"`
	Category  string          `json:"category"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Available bool            `json:"available"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Bookable reports whether the vehicle may receive new orders at all.
func (v *Vehicle) Bookable() bool {
	return v.Active && v.Available
}
