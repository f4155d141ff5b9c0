package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidPeriod = errors.New("invalid rental period")

// Day-count convention: inclusive. A rental from 2025-03-01 to 2025-03-05
// spans 5 billable days (both endpoints count). The same convention must be
// used anywhere a duration is derived from an order's dates.

// Days returns the inclusive number of billable days in [start, end].
func Days(start, end time.Time) (int, error) {
	s := truncateToDate(start)
	e := truncateToDate(end)
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 0, ErrInvalidPeriod
	}
	return days, nil
}

// Quote derives the billable day count and total price for a rental period
// at the given daily rate. Exact decimal arithmetic throughout.
func Quote(dailyRate decimal.Decimal, start, end time.Time) (int, decimal.Decimal, error) {
	days, err := Days(start, end)
	if err != nil {
		return 0, decimal.Decimal{}, err
	}
	total := dailyRate.Mul(decimal.NewFromInt(int64(days)))
	return days, total, nil
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
