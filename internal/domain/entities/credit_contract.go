package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus represents the financing contract state, independent of the
// status of the rental order it finances.

type ContractStatus string

const (
	ContractStatusAtivo     ContractStatus = "ativo"
	ContractStatusQuitado   ContractStatus = "quitado"
	ContractStatusSuspenso  ContractStatus = "suspenso"
	ContractStatusCancelado ContractStatus = "cancelado"
)

// CreditContract is the financing contract attached to an approved rental
// order (1:1), signed off by an agent.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// InstallmentAmount is the fixed periodic installment computed by the
// financing calculator at creation time; DueDate is deterministic:
// StartDate plus Installments months.

type CreditContract struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	AgentID string `json:"agent_id"`

	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	Installments      int             `json:"installments"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`

	StartDate time.Time `json:"start_date"`
	DueDate   time.Time `json:"due_date"`

	Status ContractStatus `json:"status"`
	Notes  string         `json:"notes,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

func (c *CreditContract) Settle(now time.Time) {
	c.Status = ContractStatusQuitado
	c.SettledAt = &now
	c.UpdatedAt = now
}

func (c *CreditContract) Suspend(now time.Time) {
	c.Status = ContractStatusSuspenso
	c.UpdatedAt = now
}

func (c *CreditContract) Cancel(now time.Time) {
	c.Status = ContractStatusCancelado
	c.UpdatedAt = now
}

// TotalPayable is the sum of all installments.
func (c *CreditContract) TotalPayable() decimal.Decimal {
	return c.InstallmentAmount.Mul(decimal.NewFromInt(int64(c.Installments)))
}

// TotalInterest is the amount paid on top of the financed principal.
func (c *CreditContract) TotalInterest() decimal.Decimal {
	return c.TotalPayable().Sub(c.Principal)
}

// Overdue reports whether an active contract ran past its due date.
func (c *CreditContract) Overdue(now time.Time) bool {
	return c.Status == ContractStatusAtivo && now.After(c.DueDate)
}
