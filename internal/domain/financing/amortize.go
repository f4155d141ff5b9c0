package financing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrincipal = errors.New("invalid financed principal")
	ErrInvalidRate      = errors.New("invalid annual interest rate")
	ErrInvalidTerm      = errors.New("invalid installment term")
)

// Plan is the outcome of a fixed-installment amortization.

type Plan struct {
	Installment   decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalInterest decimal.Decimal
}

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// rateScale keeps enough precision in the monthly rate and the compounding
// factor before the final rounding to cents.
const rateScale = 12

// Amortize computes the fixed monthly installment for a financed principal
// using the standard French amortization formula:
//
//	installment = P * i * (1+i)^n / ((1+i)^n - 1)
//
// where i is the monthly rate (annualRatePercent / 100 / 12) and n the number
// of installments. A zero rate degenerates the formula into a division by
// zero, so that case is an explicit branch: installment = P / n.
//
// The installment is rounded UP to the cent so that installment * n never
// undershoots the principal; TotalPaid is installment * n and TotalInterest
// is TotalPaid - principal (always >= 0).
func Amortize(principal, annualRatePercent decimal.Decimal, termMonths int) (Plan, error) {
	if !principal.IsPositive() {
		return Plan{}, ErrInvalidPrincipal
	}
	if annualRatePercent.IsNegative() {
		return Plan{}, ErrInvalidRate
	}
	if termMonths <= 0 {
		return Plan{}, ErrInvalidTerm
	}

	term := decimal.NewFromInt(int64(termMonths))

	var installment decimal.Decimal
	if annualRatePercent.IsZero() {
		installment = principal.DivRound(term, rateScale).RoundUp(2)
	} else {
		monthlyRate := annualRatePercent.DivRound(hundred.Mul(twelve), rateScale)
		compound := one.Add(monthlyRate).Pow(term)
		installment = principal.
			Mul(monthlyRate).
			Mul(compound).
			DivRound(compound.Sub(one), rateScale).
			RoundUp(2)
	}

	totalPaid := installment.Mul(term)
	return Plan{
		Installment:   installment,
		TotalPaid:     totalPaid,
		TotalInterest: totalPaid.Sub(principal),
	}, nil
}
