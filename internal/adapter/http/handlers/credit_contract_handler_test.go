package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"aluguel_carros/internal/adapter/http/handlers/mocks"
	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/domain/lifecycle"
	"aluguel_carros/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newContractRouter(h *CreditContractHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/contracts", h.CreateContract)
	r.GET("/v1/contracts/:id", h.GetContract)
	r.GET("/v1/contracts/order/:order_id", h.GetContractByOrder)
	r.PATCH("/v1/contracts/:id/settle", h.SettleContract)
	r.PATCH("/v1/contracts/:id/suspend", h.SuspendContract)
	r.PATCH("/v1/contracts/:id/cancel", h.CancelContract)
	return r
}

func TestCreditContractHandler_CreateContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		w := doJSON(t, r, http.MethodPost, "/v1/contracts", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		w := doJSON(t, r, http.MethodPost, "/v1/contracts",
			`{"order_id":"o-1","agent_id":"a-1","principal":"ten","annual_rate_percent":"12","installments":12,"start_date":"2025-04-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not approved maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CreditContract{}, usecase.ErrOrderNotApproved)

		w := doJSON(t, r, http.MethodPost, "/v1/contracts",
			`{"order_id":"o-1","agent_id":"a-1","principal":"10000","annual_rate_percent":"12","installments":12,"start_date":"2025-04-01"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CreditContract{}, usecase.ErrContractAlreadyExists)

		w := doJSON(t, r, http.MethodPost, "/v1/contracts",
			`{"order_id":"o-1","agent_id":"a-1","principal":"10000","annual_rate_percent":"12","installments":12,"start_date":"2025-04-01"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.CreateContractInput) (entities.CreditContract, error) {
				if in.OrderID != "o-1" || in.Installments != 12 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Principal.StringFixed(2) != "10000.00" {
					t.Fatalf("unexpected principal: %s", in.Principal)
				}
				return entities.CreditContract{
					ID:                "ct-1",
					OrderID:           in.OrderID,
					AgentID:           in.AgentID,
					Principal:         in.Principal,
					AnnualRatePercent: in.AnnualRatePercent,
					Installments:      in.Installments,
					InstallmentAmount: decimal.RequireFromString("888.49"),
					Status:            entities.ContractStatusAtivo,
				}, nil
			},
		)

		w := doJSON(t, r, http.MethodPost, "/v1/contracts",
			`{"order_id":"o-1","agent_id":"a-1","principal":"10000","annual_rate_percent":"12","installments":12,"start_date":"2025-04-01"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["installment_amount"] != "888.49" || body["total_payable"] != "10661.88" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCreditContractHandler_GetAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "ct-404").Return(entities.CreditContract{}, usecase.ErrContractNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/contracts/ct-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get by order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		uc.EXPECT().GetByOrderID(gomock.Any(), "o-1").
			Return(entities.CreditContract{ID: "ct-1", OrderID: "o-1"}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/contracts/order/o-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("settle invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		uc.EXPECT().Settle(gomock.Any(), "ct-1").Return(entities.CreditContract{}, lifecycle.ErrInvalidTransition)

		w := doJSON(t, r, http.MethodPatch, "/v1/contracts/ct-1/settle", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("suspend success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		uc.EXPECT().Suspend(gomock.Any(), "ct-1").
			Return(entities.CreditContract{ID: "ct-1", Status: entities.ContractStatusSuspenso}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/contracts/ct-1/suspend", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICreditContractUseCase(ctrl)
		r := newContractRouter(NewCreditContractHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "ct-1").
			Return(entities.CreditContract{ID: "ct-1", Status: entities.ContractStatusCancelado}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/contracts/ct-1/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
