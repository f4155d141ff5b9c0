package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of a rental order.
//
// The member set covers both deployment profiles: the direct profile never
// enters em_analise, the review profile passes through it before a decision.

type OrderStatus string

const (
	OrderStatusPendente   OrderStatus = "pendente"
	OrderStatusEmAnalise  OrderStatus = "em_analise"
	OrderStatusAprovado   OrderStatus = "aprovado"
	OrderStatusRejeitado  OrderStatus = "rejeitado"
	OrderStatusCancelado  OrderStatus = "cancelado"
	OrderStatusFinalizado OrderStatus = "finalizado"
)

// RentalOrder is the rental request entity persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//   - GSI2 (customer_id-index): customer_id
//
// Monetary representation:
//   - DailyRate and TotalPrice are exact decimals; TotalPrice is fixed at
//     creation/modification time and never silently recomputed afterwards.
//
// Version is the optimistic-concurrency counter: every write must carry the
// version it read, and the repository rejects stale writes.

type RentalOrder struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	VehicleID  string `json:"vehicle_id"`
	AgentID    string `json:"agent_id,omitempty"`

	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	DayCount   int             `json:"day_count"`
	TotalPrice decimal.Decimal `json:"total_price"`

	Status OrderStatus `json:"status"`
	Notes  string      `json:"notes,omitempty"`

	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`

	Version int64 `json:"version"`
}

// StartReview moves the order into evaluation. Legality of the transition is
// the caller's responsibility; see the lifecycle package.
func (o *RentalOrder) StartReview(agentID string, now time.Time) {
	o.Status = OrderStatusEmAnalise
	o.AgentID = agentID
	o.UpdatedAt = now
}

func (o *RentalOrder) Approve(agentID string, now time.Time) {
	o.Status = OrderStatusAprovado
	o.AgentID = agentID
	o.ApprovedAt = &now
	o.UpdatedAt = now
}

func (o *RentalOrder) Reject(agentID, reason string, now time.Time) {
	o.Status = OrderStatusRejeitado
	o.AgentID = agentID
	o.RejectedAt = &now
	o.RejectionReason = reason
	o.UpdatedAt = now
}

func (o *RentalOrder) Cancel(now time.Time) {
	o.Status = OrderStatusCancelado
	o.UpdatedAt = now
}

func (o *RentalOrder) Finalize(now time.Time) {
	o.Status = OrderStatusFinalizado
	o.UpdatedAt = now
}
