package interfaces

import (
	"context"

	"aluguel_carros/internal/domain/entities"
)

// IVehicleRepository is the fleet lookup the order engine consumes. Fleet
// management itself lives outside this service; the engine only reads.

type IVehicleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
}
