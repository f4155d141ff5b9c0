package response

import (
	"time"

	"aluguel_carros/internal/domain/entities"
)

type RentalOrderResponse struct {
	ID              string     `json:"id"`
	CustomerID      string     `json:"customer_id"`
	VehicleID       string     `json:"vehicle_id"`
	AgentID         string     `json:"agent_id,omitempty"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	DayCount        int        `json:"day_count"`
	TotalPrice      string     `json:"total_price"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

func FromRentalOrder(o entities.RentalOrder) RentalOrderResponse {
	return RentalOrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		VehicleID:       o.VehicleID,
		AgentID:         o.AgentID,
		StartDate:       o.StartDate.Format("2006-01-02"),
		EndDate:         o.EndDate.Format("2006-01-02"),
		DayCount:        o.DayCount,
		TotalPrice:      o.TotalPrice.StringFixed(2),
		Status:          string(o.Status),
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		ApprovedAt:      o.ApprovedAt,
		RejectedAt:      o.RejectedAt,
		RejectionReason: o.RejectionReason,
	}
}

func FromRentalOrders(orders []entities.RentalOrder) []RentalOrderResponse {
	out := make([]RentalOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromRentalOrder(o))
	}
	return out
}
