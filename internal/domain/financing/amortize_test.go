package financing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmortizeValidation(t *testing.T) {
	t.Run("non-positive principal", func(t *testing.T) {
		_, err := Amortize(dec("0"), dec("12"), 12)
		if !errors.Is(err, ErrInvalidPrincipal) {
			t.Fatalf("expected ErrInvalidPrincipal, got %v", err)
		}
		_, err = Amortize(dec("-100"), dec("12"), 12)
		if !errors.Is(err, ErrInvalidPrincipal) {
			t.Fatalf("expected ErrInvalidPrincipal, got %v", err)
		}
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := Amortize(dec("1000"), dec("-0.01"), 12)
		if !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("expected ErrInvalidRate, got %v", err)
		}
	})

	t.Run("non-positive term", func(t *testing.T) {
		_, err := Amortize(dec("1000"), dec("12"), 0)
		if !errors.Is(err, ErrInvalidTerm) {
			t.Fatalf("expected ErrInvalidTerm, got %v", err)
		}
	})
}

func TestAmortizeZeroRate(t *testing.T) {
	plan, err := Amortize(dec("1200"), dec("0"), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Installment.Equal(dec("100")) {
		t.Fatalf("expected installment 100, got %s", plan.Installment)
	}
	if !plan.TotalPaid.Equal(dec("1200")) {
		t.Fatalf("expected total paid 1200, got %s", plan.TotalPaid)
	}
	if !plan.TotalInterest.IsZero() {
		t.Fatalf("expected zero interest, got %s", plan.TotalInterest)
	}
}

func TestAmortizeIndivisiblePrincipal(t *testing.T) {
	// 100 / 3 does not land on a cent; the installment must round up so the
	// three installments still cover the whole principal.
	t.Run("zero rate", func(t *testing.T) {
		plan, err := Amortize(dec("100"), dec("0"), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !plan.Installment.Equal(dec("33.34")) {
			t.Fatalf("expected installment 33.34, got %s", plan.Installment)
		}
		if !plan.TotalPaid.Equal(dec("100.02")) {
			t.Fatalf("expected total paid 100.02, got %s", plan.TotalPaid)
		}
		if !plan.TotalInterest.Equal(dec("0.02")) {
			t.Fatalf("expected total interest 0.02, got %s", plan.TotalInterest)
		}
	})

	t.Run("near-zero rate", func(t *testing.T) {
		plan, err := Amortize(dec("100"), dec("0.001"), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.TotalPaid.LessThan(dec("100")) {
			t.Fatalf("total paid %s fell below the principal", plan.TotalPaid)
		}
		if plan.TotalInterest.IsNegative() {
			t.Fatalf("expected non-negative interest, got %s", plan.TotalInterest)
		}
	})
}

func TestAmortizeStandardCase(t *testing.T) {
	// 10000 financed at 12% a.a. over 12 monthly installments.
	plan, err := Amortize(dec("10000"), dec("12"), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Installment.Equal(dec("888.49")) {
		t.Fatalf("expected installment 888.49, got %s", plan.Installment)
	}
	if !plan.TotalPaid.Equal(dec("10661.88")) {
		t.Fatalf("expected total paid 10661.88, got %s", plan.TotalPaid)
	}
	if !plan.TotalInterest.Equal(dec("661.88")) {
		t.Fatalf("expected total interest 661.88, got %s", plan.TotalInterest)
	}
}

func TestAmortizeProperties(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		rate      string
		term      int
	}{
		{name: "short term", principal: "5000", rate: "8.5", term: 6},
		{name: "long term", principal: "45000.50", rate: "14.25", term: 48},
		{name: "low rate", principal: "999.99", rate: "0.5", term: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			principal := dec(tc.principal)
			plan, err := Amortize(principal, dec(tc.rate), tc.term)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !plan.Installment.IsPositive() {
				t.Fatalf("expected positive installment, got %s", plan.Installment)
			}
			// Positive rate: interest must be charged.
			if plan.TotalPaid.LessThanOrEqual(principal) {
				t.Fatalf("expected total paid > principal, got %s", plan.TotalPaid)
			}
			n := decimal.NewFromInt(int64(tc.term))
			if !plan.Installment.Mul(n).Equal(plan.TotalPaid) {
				t.Fatalf("total paid %s != installment %s * %d", plan.TotalPaid, plan.Installment, tc.term)
			}
			if !plan.TotalPaid.Sub(principal).Equal(plan.TotalInterest) {
				t.Fatalf("interest %s != total paid - principal", plan.TotalInterest)
			}
		})
	}
}
