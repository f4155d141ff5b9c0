package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/domain/financing"
	"aluguel_carros/internal/domain/lifecycle"
	"aluguel_carros/internal/usecase/interfaces"
)

var (
	ErrContractNotFound      = errors.New("credit contract not found")
	ErrContractAlreadyExists = errors.New("order already has a credit contract")
	ErrInvalidContractID     = errors.New("invalid contract id")
	ErrOrderNotApproved      = errors.New("order is not approved")
)

// CreateContractInput carries the financing terms of a new credit contract.
// The installment amount is never accepted from the caller; the use case
// derives it from the amortization formula.
type CreateContractInput struct {
	OrderID           string
	AgentID           string
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	Installments      int
	StartDate         time.Time
	Notes             string
}

// ICreditContractUseCase exposes financing contract operations.

type ICreditContractUseCase interface {
	Create(ctx context.Context, in CreateContractInput) (entities.CreditContract, error)
	Settle(ctx context.Context, id string) (entities.CreditContract, error)
	Suspend(ctx context.Context, id string) (entities.CreditContract, error)
	Cancel(ctx context.Context, id string) (entities.CreditContract, error)
	GetByID(ctx context.Context, id string) (entities.CreditContract, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.CreditContract, error)
	ListByAgentID(ctx context.Context, agentID string) ([]entities.CreditContract, error)
}

type CreditContractUseCase struct {
	contracts interfaces.ICreditContractRepository
	orders    interfaces.IRentalOrderRepository
	agents    interfaces.IAgentRepository
	machine   *lifecycle.Machine[entities.ContractStatus]
	ids       interfaces.IIDGenerator
	now       func() time.Time
}

var _ ICreditContractUseCase = (*CreditContractUseCase)(nil)

func NewCreditContractUseCase(
	contracts interfaces.ICreditContractRepository,
	orders interfaces.IRentalOrderRepository,
	agents interfaces.IAgentRepository,
	ids interfaces.IIDGenerator,
) *CreditContractUseCase {
	return &CreditContractUseCase{
		contracts: contracts,
		orders:    orders,
		agents:    agents,
		machine:   lifecycle.ContractMachine(),
		ids:       ids,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *CreditContractUseCase) Create(ctx context.Context, in CreateContractInput) (entities.CreditContract, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.AgentID = strings.TrimSpace(in.AgentID)
	if in.OrderID == "" {
		return entities.CreditContract{}, ErrInvalidOrderID
	}
	if in.AgentID == "" {
		return entities.CreditContract{}, ErrInvalidAgentID
	}

	order, err := u.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return entities.CreditContract{}, err
	}
	if order.ID == "" {
		return entities.CreditContract{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusAprovado {
		return entities.CreditContract{}, ErrOrderNotApproved
	}

	agent, err := u.agents.GetByID(ctx, in.AgentID)
	if err != nil {
		return entities.CreditContract{}, err
	}
	if agent.ID == "" {
		return entities.CreditContract{}, ErrAgentNotFound
	}
	if !agent.CanEvaluate() {
		return entities.CreditContract{}, ErrAgentNotAllowed
	}

	// Enforce: 1 contract per order.
	if existing, err := u.contracts.GetByOrderID(ctx, in.OrderID); err != nil {
		return entities.CreditContract{}, err
	} else if existing.ID != "" {
		return entities.CreditContract{}, ErrContractAlreadyExists
	}

	plan, err := financing.Amortize(in.Principal, in.AnnualRatePercent, in.Installments)
	if err != nil {
		return entities.CreditContract{}, err
	}

	now := u.now()
	c := entities.CreditContract{
		ID:                u.ids.NewID(),
		OrderID:           in.OrderID,
		AgentID:           in.AgentID,
		Principal:         in.Principal,
		AnnualRatePercent: in.AnnualRatePercent,
		Installments:      in.Installments,
		InstallmentAmount: plan.Installment,
		StartDate:         in.StartDate,
		DueDate:           in.StartDate.AddDate(0, in.Installments, 0),
		Status:            entities.ContractStatusAtivo,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.contracts.Create(ctx, c)
	if err != nil {
		return entities.CreditContract{}, err
	}

	log.Printf("[contract][usecase] created contract %s order=%s installments=%d installment=%s",
		created.ID, created.OrderID, created.Installments, created.InstallmentAmount.StringFixed(2))
	return created, nil
}

func (u *CreditContractUseCase) Settle(ctx context.Context, id string) (entities.CreditContract, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CreditContract{}, err
	}

	if err := u.machine.Transition(c.Status, entities.ContractStatusQuitado); err != nil {
		return entities.CreditContract{}, err
	}

	c.Settle(u.now())
	return u.contracts.Update(ctx, c)
}

func (u *CreditContractUseCase) Suspend(ctx context.Context, id string) (entities.CreditContract, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CreditContract{}, err
	}

	if err := u.machine.Transition(c.Status, entities.ContractStatusSuspenso); err != nil {
		return entities.CreditContract{}, err
	}

	c.Suspend(u.now())
	return u.contracts.Update(ctx, c)
}

func (u *CreditContractUseCase) Cancel(ctx context.Context, id string) (entities.CreditContract, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CreditContract{}, err
	}

	if err := u.machine.Transition(c.Status, entities.ContractStatusCancelado); err != nil {
		return entities.CreditContract{}, err
	}

	c.Cancel(u.now())
	return u.contracts.Update(ctx, c)
}

func (u *CreditContractUseCase) GetByID(ctx context.Context, id string) (entities.CreditContract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CreditContract{}, ErrInvalidContractID
	}

	c, err := u.contracts.GetByID(ctx, id)
	if err != nil {
		return entities.CreditContract{}, err
	}
	if c.ID == "" {
		return entities.CreditContract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *CreditContractUseCase) GetByOrderID(ctx context.Context, orderID string) (entities.CreditContract, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CreditContract{}, ErrInvalidOrderID
	}

	c, err := u.contracts.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.CreditContract{}, err
	}
	if c.ID == "" {
		return entities.CreditContract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *CreditContractUseCase) ListByAgentID(ctx context.Context, agentID string) ([]entities.CreditContract, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return nil, ErrInvalidAgentID
	}
	return u.contracts.ListByAgentID(ctx, agentID)
}
