package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

// RentalOrderRequest is the payload for creating a rental order. Price and
// day count never appear here; the server derives them.
type RentalOrderRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	VehicleID  string `json:"vehicle_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Notes      string `json:"notes"`
}

func (r RentalOrderRequest) ResolvePeriod() (time.Time, time.Time, error) {
	return resolvePeriod(r.StartDate, r.EndDate)
}

// ModifyRentalOrderRequest is the payload for changing an undecided order.
type ModifyRentalOrderRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Notes     string `json:"notes"`
}

func (r ModifyRentalOrderRequest) ResolvePeriod() (time.Time, time.Time, error) {
	return resolvePeriod(r.StartDate, r.EndDate)
}

// ReviewOrderRequest identifies the agent pulling an order into evaluation;
// the same payload serves approval.
type ReviewOrderRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
}

func (r ReviewOrderRequest) ResolveAgentID() string {
	return strings.TrimSpace(r.AgentID)
}

// RejectOrderRequest carries the agent decision plus the mandatory reason.
type RejectOrderRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

func (r RejectOrderRequest) ResolveAgentID() string {
	return strings.TrimSpace(r.AgentID)
}

func (r RejectOrderRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

func resolvePeriod(start, end string) (time.Time, time.Time, error) {
	s, err := time.Parse(dateLayout, strings.TrimSpace(start))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	e, err := time.Parse(dateLayout, strings.TrimSpace(end))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return s, e, nil
}
