package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/domain/lifecycle"
	"aluguel_carros/internal/domain/pricing"
	"aluguel_carros/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound        = errors.New("rental order not found")
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrAgentNotFound        = errors.New("agent not found")
	ErrCustomerInactive     = errors.New("customer is inactive")
	ErrVehicleUnavailable   = errors.New("vehicle is not available for rental")
	ErrAgentNotAllowed      = errors.New("agent cannot evaluate orders")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidCustomerID    = errors.New("invalid customer id")
	ErrInvalidVehicleID     = errors.New("invalid vehicle id")
	ErrInvalidAgentID       = errors.New("invalid agent id")
	ErrInvalidRentalPeriod  = errors.New("end date must be after start date")
	ErrStartDateInPast      = errors.New("start date is in the past")
	ErrPeriodConflict       = errors.New("vehicle already booked for the requested period")
	ErrOrderNotModifiable   = errors.New("order can no longer be modified")
	ErrEmptyRejectionReason = errors.New("rejection reason is required")
	ErrReviewNotEnabled     = errors.New("review stage is not enabled")
)

// CreateOrderInput carries the customer-facing fields of a new rental order.
// Price and day count are never accepted from the caller; the use case derives
// them from the vehicle's daily rate.
type CreateOrderInput struct {
	CustomerID string
	VehicleID  string
	StartDate  time.Time
	EndDate    time.Time
	Notes      string
}

// ModifyOrderInput carries the fields a customer may change while the order is
// still undecided.
type ModifyOrderInput struct {
	StartDate time.Time
	EndDate   time.Time
	Notes     string
}

// IRentalOrderUseCase exposes the rental order lifecycle.
//
// Operation map:
//   - Create / Modify: customer side, period is re-priced and re-checked
//   - StartReview / Approve / Reject: agent decisions
//   - Cancel / Finalize: closing moves
//   - GetByID / List / CountByStatus: query surface
type IRentalOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput) (entities.RentalOrder, error)
	Modify(ctx context.Context, orderID string, in ModifyOrderInput) (entities.RentalOrder, error)
	StartReview(ctx context.Context, orderID, agentID string) (entities.RentalOrder, error)
	Approve(ctx context.Context, orderID, agentID string) (entities.RentalOrder, error)
	Reject(ctx context.Context, orderID, agentID, reason string) (entities.RentalOrder, error)
	Cancel(ctx context.Context, orderID string) (entities.RentalOrder, error)
	Finalize(ctx context.Context, orderID string) (entities.RentalOrder, error)
	GetByID(ctx context.Context, id string) (entities.RentalOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.RentalOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.RentalOrder, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.RentalOrder, error)
	CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error)
}

type RentalOrderUseCase struct {
	orders    interfaces.IRentalOrderRepository
	vehicles  interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
	agents    interfaces.IAgentRepository
	policy    *lifecycle.OrderPolicy
	lock      interfaces.IVehicleLock
	ids       interfaces.IIDGenerator
	now       func() time.Time
}

var _ IRentalOrderUseCase = (*RentalOrderUseCase)(nil)

func NewRentalOrderUseCase(
	orders interfaces.IRentalOrderRepository,
	vehicles interfaces.IVehicleRepository,
	customers interfaces.ICustomerRepository,
	agents interfaces.IAgentRepository,
	policy *lifecycle.OrderPolicy,
	lock interfaces.IVehicleLock,
	ids interfaces.IIDGenerator,
) *RentalOrderUseCase {
	return &RentalOrderUseCase{
		orders:    orders,
		vehicles:  vehicles,
		customers: customers,
		agents:    agents,
		policy:    policy,
		lock:      lock,
		ids:       ids,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *RentalOrderUseCase) Create(ctx context.Context, in CreateOrderInput) (entities.RentalOrder, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.VehicleID = strings.TrimSpace(in.VehicleID)
	if in.CustomerID == "" {
		return entities.RentalOrder{}, ErrInvalidCustomerID
	}
	if in.VehicleID == "" {
		return entities.RentalOrder{}, ErrInvalidVehicleID
	}
	if err := u.validatePeriod(in.StartDate, in.EndDate); err != nil {
		return entities.RentalOrder{}, err
	}

	customer, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.RentalOrder{}, err
	}
	if customer.ID == "" {
		return entities.RentalOrder{}, ErrCustomerNotFound
	}
	if !customer.Active {
		return entities.RentalOrder{}, ErrCustomerInactive
	}

	vehicle, err := u.vehicles.GetByID(ctx, in.VehicleID)
	if err != nil {
		return entities.RentalOrder{}, err
	}
	if vehicle.ID == "" {
		return entities.RentalOrder{}, ErrVehicleNotFound
	}
	if !vehicle.Bookable() {
		return entities.RentalOrder{}, ErrVehicleUnavailable
	}

	days, total, err := pricing.Quote(vehicle.DailyRate, in.StartDate, in.EndDate)
	if err != nil {
		return entities.RentalOrder{}, ErrInvalidRentalPeriod
	}

	var created entities.RentalOrder
	// The conflict scan and the write run under the vehicle lock so two
	// concurrent requests for the same vehicle cannot both pass the scan.
	err = u.lock.Do(in.VehicleID, func() error {
		conflicts, err := u.orders.FindConflicts(ctx, in.VehicleID, in.StartDate, in.EndDate, "")
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrPeriodConflict
		}

		now := u.now()
		o := entities.RentalOrder{
			ID:         u.ids.NewID(),
			CustomerID: in.CustomerID,
			VehicleID:  in.VehicleID,
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			DayCount:   days,
			TotalPrice: total,
			Status:     entities.OrderStatusPendente,
			Notes:      in.Notes,
			CreatedAt:  now,
			UpdatedAt:  now,
			Version:    1,
		}
		created, err = u.orders.Create(ctx, o)
		return err
	})
	if err != nil {
		return entities.RentalOrder{}, err
	}

	log.Printf("[order][usecase] created order %s vehicle=%s period=%s..%s days=%d total=%s",
		created.ID, created.VehicleID,
		created.StartDate.Format("2006-01-02"), created.EndDate.Format("2006-01-02"),
		created.DayCount, created.TotalPrice.StringFixed(2))
	return created, nil
}

func (u *RentalOrderUseCase) Modify(ctx context.Context, orderID string, in ModifyOrderInput) (entities.RentalOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.RentalOrder{}, ErrInvalidOrderID
	}
	if err := u.validatePeriod(in.StartDate, in.EndDate); err != nil {
		return entities.RentalOrder{}, err
	}

	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.RentalOrder{}, err
	}
	if !u.policy.Modifiable(o.Status) {
		return entities.RentalOrder{}, ErrOrderNotModifiable
	}

	vehicle, err := u.vehicles.GetByID(ctx, o.VehicleID)
	if err != nil {
		return entities.RentalOrder{}, err
	}
	if vehicle.ID == "" {
		return entities.RentalOrder{}, ErrVehicleNotFound
	}

	days, total, err := pricing.Quote(vehicle.DailyRate, in.StartDate, in.EndDate)
	if err != nil {
		return entities.RentalOrder{}, ErrInvalidRentalPeriod
	}

	var updated entities.RentalOrder
	err = u.lock.Do(o.VehicleID, func() error {
		// The order under modification is excluded from its own scan.
		conflicts, err := u.orders.FindConflicts(ctx, o.VehicleID, in.StartDate, in.EndDate, o.ID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return ErrPeriodConflict
		}

		o.StartDate = in.StartDate
		o.EndDate = in.EndDate
		o.DayCount = days
		o.TotalPrice = total
		o.Notes = in.Notes
		o.UpdatedAt = u.now()
		updated, err = u.orders.Update(ctx, o)
		return err
	})
	if err != nil {
		return entities.RentalOrder{}, err
	}

	log.Printf("[order][usecase] modified order %s period=%s..%s total=%s",
		updated.ID, updated.StartDate.Format("2006-01-02"),
		updated.EndDate.Format("2006-01-02"), updated.TotalPrice.StringFixed(2))
	return updated, nil
}

func (u *RentalOrderUseCase) StartReview(ctx context.Context, orderID, agentID string) (entities.RentalOrder, error) {
	if !u.policy.HasReview() {
		return entities.RentalOrder{}, ErrReviewNotEnabled
	}

	o, _, err := u.loadOrderAndAgent(ctx, orderID, agentID)
	if err != nil {
		return entities.RentalOrder{}, err
	}

	if err := u.policy.Machine.Transition(o.Status, entities.OrderStatusEmAnalise); err != nil {
		return entities.RentalOrder{}, err
	}

	o.StartReview(agentID, u.now())
	return u.orders.Update(ctx, o)
}

func (u *RentalOrderUseCase) Approve(ctx context.Context, orderID, agentID string) (entities.RentalOrder, error) {
	o, _, err := u.loadOrderAndAgent(ctx, orderID, agentID)
	if err != nil {
		return entities.RentalOrder{}, err
	}

	if err := u.policy.Machine.Transition(o.Status, entities.OrderStatusAprovado); err != nil {
		return entities.RentalOrder{}, err
	}

	var approved entities.RentalOrder
	// Approval re-checks the calendar: another order may have been approved
	// for an overlapping period while this one sat undecided.
	err = u.lock.Do(o.VehicleID, func() error {
		conflicts, err := u.orders.FindConflicts(ctx, o.VehicleID, o.StartDate, o.EndDate, o.ID)
		if err != nil {
			return err
		}
		for _, c := range conflicts {
			if c.Status == entities.OrderStatusAprovado {
				return ErrPeriodConflict
			}
		}

		o.Approve(agentID, u.now())
		approved, err = u.orders.Update(ctx, o)
		return err
	})
	if err != nil {
		return entities.RentalOrder{}, err
	}

	log.Printf("[order][usecase] approved order %s by agent %s", approved.ID, agentID)
	return approved, nil
}

func (u *RentalOrderUseCase) Reject(ctx context.Context, orderID, agentID, reason string) (entities.RentalOrder, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.RentalOrder{}, ErrEmptyRejectionReason
	}

	o, _, err := u.loadOrderAndAgent(ctx, orderID, agentID)
	if err != nil {
		return entities.RentalOrder{}, err
	}

	if err := u.policy.Machine.Transition(o.Status, entities.OrderStatusRejeitado); err != nil {
		return entities.RentalOrder{}, err
	}

	o.Reject(agentID, reason, u.now())
	rejected, err := u.orders.Update(ctx, o)
	if err != nil {
		return entities.RentalOrder{}, err
	}

	log.Printf("[order][usecase] rejected order %s by agent %s", rejected.ID, agentID)
	return rejected, nil
}

func (u *RentalOrderUseCase) Cancel(ctx context.Context, orderID string) (entities.RentalOrder, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.RentalOrder{}, err
	}

	if err := u.policy.Machine.Transition(o.Status, entities.OrderStatusCancelado); err != nil {
		return entities.RentalOrder{}, err
	}

	o.Cancel(u.now())
	return u.orders.Update(ctx, o)
}

func (u *RentalOrderUseCase) Finalize(ctx context.Context, orderID string) (entities.RentalOrder, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.RentalOrder{}, err
	}

	if err := u.policy.Machine.Transition(o.Status, entities.OrderStatusFinalizado); err != nil {
		return entities.RentalOrder{}, err
	}

	o.Finalize(u.now())
	return u.orders.Update(ctx, o)
}

func (u *RentalOrderUseCase) GetByID(ctx context.Context, id string) (entities.RentalOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RentalOrder{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.RentalOrder{}, err
	}
	if o.ID == "" {
		return entities.RentalOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *RentalOrderUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.RentalOrder, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.orders.ListByCustomerID(ctx, customerID)
}

func (u *RentalOrderUseCase) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.RentalOrder, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	return u.orders.ListByVehicleID(ctx, vehicleID)
}

func (u *RentalOrderUseCase) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.RentalOrder, error) {
	return u.orders.ListByStatus(ctx, status)
}

func (u *RentalOrderUseCase) CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error) {
	return u.orders.CountByStatus(ctx, status)
}

// validatePeriod rejects inverted/empty periods and periods starting before
// today. Dates are compared at day granularity in UTC.
func (u *RentalOrderUseCase) validatePeriod(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidRentalPeriod
	}
	today := u.now().Truncate(24 * time.Hour)
	if start.Before(today) {
		return ErrStartDateInPast
	}
	return nil
}

func (u *RentalOrderUseCase) loadOrderAndAgent(ctx context.Context, orderID, agentID string) (entities.RentalOrder, entities.Agent, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return entities.RentalOrder{}, entities.Agent{}, ErrInvalidAgentID
	}

	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.RentalOrder{}, entities.Agent{}, err
	}

	agent, err := u.agents.GetByID(ctx, agentID)
	if err != nil {
		return entities.RentalOrder{}, entities.Agent{}, err
	}
	if agent.ID == "" {
		return entities.RentalOrder{}, entities.Agent{}, ErrAgentNotFound
	}
	if !agent.CanEvaluate() {
		return entities.RentalOrder{}, entities.Agent{}, ErrAgentNotAllowed
	}
	return o, agent, nil
}
