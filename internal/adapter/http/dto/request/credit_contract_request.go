package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrincipal = errors.New("invalid principal")
	ErrInvalidRate      = errors.New("invalid annual rate percent")
)

// CreditContractRequest is the payload for attaching financing to an approved
// order. Monetary fields travel as strings to keep them exact.
type CreditContractRequest struct {
	OrderID           string `json:"order_id" binding:"required"`
	AgentID           string `json:"agent_id" binding:"required"`
	Principal         string `json:"principal" binding:"required"`
	AnnualRatePercent string `json:"annual_rate_percent" binding:"required"`
	Installments      int    `json:"installments" binding:"required"`
	StartDate         string `json:"start_date" binding:"required"`
	Notes             string `json:"notes"`
}

func (r CreditContractRequest) ResolvePrincipal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.Principal))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidPrincipal
	}
	return d, nil
}

func (r CreditContractRequest) ResolveRate() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.AnnualRatePercent))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidRate
	}
	return d, nil
}

func (r CreditContractRequest) ResolveStartDate() (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(r.StartDate))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
