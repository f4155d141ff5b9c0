package interfaces

import (
	"context"

	"aluguel_carros/internal/domain/entities"
)

// ICustomerRepository is the customer lookup the order engine consumes.
// Registration and account management live outside this service.

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
