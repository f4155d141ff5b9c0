package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/domain/financing"
	"aluguel_carros/internal/domain/lifecycle"
	mock_interfaces "aluguel_carros/internal/usecase/interfaces/mocks"
)

type contractDeps struct {
	contracts *mock_interfaces.MockICreditContractRepository
	orders    *mock_interfaces.MockIRentalOrderRepository
	agents    *mock_interfaces.MockIAgentRepository
	ids       *mock_interfaces.MockIIDGenerator
}

func newContractUseCase(ctrl *gomock.Controller) (*CreditContractUseCase, contractDeps) {
	d := contractDeps{
		contracts: mock_interfaces.NewMockICreditContractRepository(ctrl),
		orders:    mock_interfaces.NewMockIRentalOrderRepository(ctrl),
		agents:    mock_interfaces.NewMockIAgentRepository(ctrl),
		ids:       mock_interfaces.NewMockIIDGenerator(ctrl),
	}
	uc := NewCreditContractUseCase(d.contracts, d.orders, d.agents, d.ids)
	uc.now = func() time.Time { return testNow }
	return uc, d
}

func validContractInput() CreateContractInput {
	return CreateContractInput{
		OrderID:           "o-1",
		AgentID:           "a-1",
		Principal:         decimal.NewFromInt(10000),
		AnnualRatePercent: decimal.NewFromInt(12),
		Installments:      12,
		StartDate:         time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreditContractUseCase_Create(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newContractUseCase(ctrl)

		in := validContractInput()
		in.OrderID = "  "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.RentalOrder{ID: "o-1", Status: entities.OrderStatusPendente}, nil)

		_, err := uc.Create(context.Background(), validContractInput())
		if !errors.Is(err, ErrOrderNotApproved) {
			t.Fatalf("expected ErrOrderNotApproved, got %v", err)
		}
	})

	t.Run("agent cannot sign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.RentalOrder{ID: "o-1", Status: entities.OrderStatusAprovado}, nil)
		d.agents.EXPECT().GetByID(gomock.Any(), "a-1").
			Return(entities.Agent{ID: "a-1", Role: entities.RoleAgente, Active: false}, nil)

		_, err := uc.Create(context.Background(), validContractInput())
		if !errors.Is(err, ErrAgentNotAllowed) {
			t.Fatalf("expected ErrAgentNotAllowed, got %v", err)
		}
	})

	t.Run("one contract per order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.RentalOrder{ID: "o-1", Status: entities.OrderStatusAprovado}, nil)
		d.agents.EXPECT().GetByID(gomock.Any(), "a-1").Return(testAgent(), nil)
		d.contracts.EXPECT().GetByOrderID(gomock.Any(), "o-1").
			Return(entities.CreditContract{ID: "existing"}, nil)

		_, err := uc.Create(context.Background(), validContractInput())
		if !errors.Is(err, ErrContractAlreadyExists) {
			t.Fatalf("expected ErrContractAlreadyExists, got %v", err)
		}
	})

	t.Run("invalid financing terms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.RentalOrder{ID: "o-1", Status: entities.OrderStatusAprovado}, nil)
		d.agents.EXPECT().GetByID(gomock.Any(), "a-1").Return(testAgent(), nil)
		d.contracts.EXPECT().GetByOrderID(gomock.Any(), "o-1").Return(entities.CreditContract{}, nil)

		in := validContractInput()
		in.Installments = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, financing.ErrInvalidTerm) {
			t.Fatalf("expected ErrInvalidTerm, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.orders.EXPECT().GetByID(gomock.Any(), "o-1").
			Return(entities.RentalOrder{ID: "o-1", Status: entities.OrderStatusAprovado}, nil)
		d.agents.EXPECT().GetByID(gomock.Any(), "a-1").Return(testAgent(), nil)
		d.contracts.EXPECT().GetByOrderID(gomock.Any(), "o-1").Return(entities.CreditContract{}, nil)
		d.ids.EXPECT().NewID().Return("ct-1")
		d.contracts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CreditContract{})).DoAndReturn(
			func(_ context.Context, c entities.CreditContract) (entities.CreditContract, error) {
				if c.ID != "ct-1" || c.OrderID != "o-1" || c.AgentID != "a-1" {
					t.Fatalf("unexpected contract: %+v", c)
				}
				if c.Status != entities.ContractStatusAtivo {
					t.Fatalf("expected ativo, got %s", c.Status)
				}
				if c.InstallmentAmount.StringFixed(2) != "888.49" {
					t.Fatalf("expected installment 888.49, got %s", c.InstallmentAmount.StringFixed(2))
				}
				wantDue := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
				if !c.DueDate.Equal(wantDue) {
					t.Fatalf("expected due date %s, got %s", wantDue, c.DueDate)
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), validContractInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalPayable().StringFixed(2) != "10661.88" {
			t.Fatalf("expected total payable 10661.88, got %s", res.TotalPayable().StringFixed(2))
		}
	})
}

func TestCreditContractUseCase_StatusFlows(t *testing.T) {
	t.Run("settle active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").
			Return(entities.CreditContract{ID: "ct-1", Status: entities.ContractStatusAtivo}, nil)
		d.contracts.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.CreditContract{})).DoAndReturn(
			func(_ context.Context, c entities.CreditContract) (entities.CreditContract, error) {
				if c.Status != entities.ContractStatusQuitado || c.SettledAt == nil {
					t.Fatalf("unexpected contract: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Settle(context.Background(), "ct-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settle suspended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").
			Return(entities.CreditContract{ID: "ct-1", Status: entities.ContractStatusSuspenso}, nil)
		d.contracts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CreditContract) (entities.CreditContract, error) {
				return c, nil
			},
		)

		if _, err := uc.Settle(context.Background(), "ct-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("settle canceled is illegal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").
			Return(entities.CreditContract{ID: "ct-1", Status: entities.ContractStatusCancelado}, nil)

		_, err := uc.Settle(context.Background(), "ct-1")
		if !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("suspend suspended is illegal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").
			Return(entities.CreditContract{ID: "ct-1", Status: entities.ContractStatusSuspenso}, nil)

		_, err := uc.Suspend(context.Background(), "ct-1")
		if !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancel active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").
			Return(entities.CreditContract{ID: "ct-1", Status: entities.ContractStatusAtivo}, nil)
		d.contracts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CreditContract) (entities.CreditContract, error) {
				if c.Status != entities.ContractStatusCancelado {
					t.Fatalf("expected cancelado, got %s", c.Status)
				}
				return c, nil
			},
		)

		if _, err := uc.Cancel(context.Background(), "ct-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCreditContractUseCase_Getters(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.CreditContract{}, nil)

		_, err := uc.GetByID(context.Background(), "ct-1")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("get by order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.contracts.EXPECT().GetByOrderID(gomock.Any(), "o-1").
			Return(entities.CreditContract{ID: "ct-1", OrderID: "o-1"}, nil)

		res, err := uc.GetByOrderID(context.Background(), " o-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "ct-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("list by agent invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newContractUseCase(ctrl)

		_, err := uc.ListByAgentID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidAgentID) {
			t.Fatalf("expected ErrInvalidAgentID, got %v", err)
		}
	})

	t.Run("list by agent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newContractUseCase(ctrl)

		d.contracts.EXPECT().ListByAgentID(gomock.Any(), "a-1").
			Return([]entities.CreditContract{{ID: "ct-1"}}, nil)

		res, err := uc.ListByAgentID(context.Background(), "a-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 contract, got %d", len(res))
		}
	})
}
