package interfaces

import (
	"context"

	"aluguel_carros/internal/domain/entities"
)

// IAgentRepository is the agent lookup used for the role check on order
// decisions and contract signing.

type IAgentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Agent, error)
}
