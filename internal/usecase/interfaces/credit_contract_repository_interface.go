package interfaces

import (
	"context"

	"aluguel_carros/internal/domain/entities"
)

// ICreditContractRepository abstracts DynamoDB persistence for CreditContract.

type ICreditContractRepository interface {
	Create(ctx context.Context, c entities.CreditContract) (entities.CreditContract, error)
	GetByID(ctx context.Context, id string) (entities.CreditContract, error)
	// GetByOrderID resolves the 1:1 contract of an order; the zero value
	// means no contract is attached yet.
	GetByOrderID(ctx context.Context, orderID string) (entities.CreditContract, error)
	Update(ctx context.Context, c entities.CreditContract) (entities.CreditContract, error)
	ListByAgentID(ctx context.Context, agentID string) ([]entities.CreditContract, error)
}
