package response

import (
	"time"

	"aluguel_carros/internal/domain/entities"
)

type CreditContractResponse struct {
	ID                string     `json:"id"`
	OrderID           string     `json:"order_id"`
	AgentID           string     `json:"agent_id"`
	Principal         string     `json:"principal"`
	AnnualRatePercent string     `json:"annual_rate_percent"`
	Installments      int        `json:"installments"`
	InstallmentAmount string     `json:"installment_amount"`
	TotalPayable      string     `json:"total_payable"`
	TotalInterest     string     `json:"total_interest"`
	StartDate         string     `json:"start_date"`
	DueDate           string     `json:"due_date"`
	Status            string     `json:"status"`
	Overdue           bool       `json:"overdue"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	SettledAt         *time.Time `json:"settled_at,omitempty"`
}

func FromCreditContract(c entities.CreditContract) CreditContractResponse {
	return CreditContractResponse{
		ID:                c.ID,
		OrderID:           c.OrderID,
		AgentID:           c.AgentID,
		Principal:         c.Principal.StringFixed(2),
		AnnualRatePercent: c.AnnualRatePercent.String(),
		Installments:      c.Installments,
		InstallmentAmount: c.InstallmentAmount.StringFixed(2),
		TotalPayable:      c.TotalPayable().StringFixed(2),
		TotalInterest:     c.TotalInterest().StringFixed(2),
		StartDate:         c.StartDate.Format("2006-01-02"),
		DueDate:           c.DueDate.Format("2006-01-02"),
		Status:            string(c.Status),
		Overdue:           c.Overdue(time.Now()),
		Notes:             c.Notes,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		SettledAt:         c.SettledAt,
	}
}

func FromCreditContracts(contracts []entities.CreditContract) []CreditContractResponse {
	out := make([]CreditContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromCreditContract(c))
	}
	return out
}
