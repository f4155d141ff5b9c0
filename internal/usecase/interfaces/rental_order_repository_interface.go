package interfaces

import (
	"context"
	"errors"
	"time"

	"aluguel_carros/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored order's version no
// longer matches the one carried by the write (a concurrent writer won).
var ErrVersionConflict = errors.New("rental order version conflict")

// IRentalOrderRepository abstracts DynamoDB persistence for RentalOrder.
//
// The order engine must be able to:
//   - create an order and fetch it back by id
//   - update an order under an optimistic version check
//   - scan a vehicle's calendar for period conflicts
//   - serve the customer/vehicle/status listings of the query surface

type IRentalOrderRepository interface {
	Create(ctx context.Context, o entities.RentalOrder) (entities.RentalOrder, error)
	GetByID(ctx context.Context, id string) (entities.RentalOrder, error)
	// Update persists the order if the stored version equals o.Version and
	// bumps the version by one. A stale write returns ErrVersionConflict.
	Update(ctx context.Context, o entities.RentalOrder) (entities.RentalOrder, error)
	// FindConflicts returns the orders for vehicleID that still block the
	// calendar (pendente/aprovado) and overlap [start, end] inclusively.
	// excludeOrderID, when non-empty, removes that order from the scan so an
	// order being modified does not conflict with itself.
	FindConflicts(ctx context.Context, vehicleID string, start, end time.Time, excludeOrderID string) ([]entities.RentalOrder, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.RentalOrder, error)
	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.RentalOrder, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.RentalOrder, error)
	CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error)
}
