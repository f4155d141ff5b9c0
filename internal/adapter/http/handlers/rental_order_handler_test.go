package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aluguel_carros/internal/adapter/http/handlers/mocks"
	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/domain/lifecycle"
	"aluguel_carros/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *RentalOrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PUT("/v1/orders/:id", h.ModifyOrder)
	r.PATCH("/v1/orders/:id/review", h.ReviewOrder)
	r.PATCH("/v1/orders/:id/approve", h.ApproveOrder)
	r.PATCH("/v1/orders/:id/reject", h.RejectOrder)
	r.PATCH("/v1/orders/:id/cancel", h.CancelOrder)
	r.PATCH("/v1/orders/:id/finalize", h.FinalizeOrder)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRentalOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		w := doJSON(t, r, http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		w := doJSON(t, r, http.MethodPost, "/v1/orders",
			`{"customer_id":"c-1","vehicle_id":"v-1","start_date":"10/03/2025","end_date":"2025-03-14"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("period conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.RentalOrder{}, usecase.ErrPeriodConflict)

		w := doJSON(t, r, http.MethodPost, "/v1/orders",
			`{"customer_id":"c-1","vehicle_id":"v-1","start_date":"2025-03-10","end_date":"2025-03-14"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "PERIOD_CONFLICT" {
			t.Fatalf("expected PERIOD_CONFLICT, got %q", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.CreateOrderInput) (entities.RentalOrder, error) {
				if in.CustomerID != "c-1" || in.VehicleID != "v-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.StartDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected start: %v", in.StartDate)
				}
				return entities.RentalOrder{
					ID:         "o-1",
					CustomerID: in.CustomerID,
					VehicleID:  in.VehicleID,
					StartDate:  in.StartDate,
					EndDate:    in.EndDate,
					DayCount:   5,
					TotalPrice: decimal.RequireFromString("500"),
					Status:     entities.OrderStatusPendente,
				}, nil
			},
		)

		w := doJSON(t, r, http.MethodPost, "/v1/orders",
			`{"customer_id":"c-1","vehicle_id":"v-1","start_date":"2025-03-10","end_date":"2025-03-14"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "o-1" || body["total_price"] != "500.00" || body["status"] != "pendente" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestRentalOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "o-404").Return(entities.RentalOrder{}, usecase.ErrOrderNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/orders/o-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.RentalOrder{ID: "o-1"}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/orders/o-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRentalOrderHandler_ModifyOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not modifiable maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().Modify(gomock.Any(), "o-1", gomock.Any()).Return(entities.RentalOrder{}, usecase.ErrOrderNotModifiable)

		w := doJSON(t, r, http.MethodPut, "/v1/orders/o-1",
			`{"start_date":"2025-03-10","end_date":"2025-03-14"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestRentalOrderHandler_Decisions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve invalid transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), "o-1", "a-1").Return(entities.RentalOrder{}, lifecycle.ErrInvalidTransition)

		w := doJSON(t, r, http.MethodPatch, "/v1/orders/o-1/approve", `{"agent_id":"a-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "INVALID_STATUS_TRANSITION" {
			t.Fatalf("expected INVALID_STATUS_TRANSITION, got %q", body["code"])
		}
	})

	t.Run("reject missing reason fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		w := doJSON(t, r, http.MethodPatch, "/v1/orders/o-1/reject", `{"agent_id":"a-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().Reject(gomock.Any(), "o-1", "a-1", "sem limite").
			Return(entities.RentalOrder{ID: "o-1", Status: entities.OrderStatusRejeitado}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/orders/o-1/reject", `{"agent_id":"a-1","reason":"sem limite"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("review on direct profile maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().StartReview(gomock.Any(), "o-1", "a-1").Return(entities.RentalOrder{}, usecase.ErrReviewNotEnabled)

		w := doJSON(t, r, http.MethodPatch, "/v1/orders/o-1/review", `{"agent_id":"a-1"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("cancel success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "o-1").
			Return(entities.RentalOrder{ID: "o-1", Status: entities.OrderStatusCancelado}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/orders/o-1/cancel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("finalize success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().Finalize(gomock.Any(), "o-1").
			Return(entities.RentalOrder{ID: "o-1", Status: entities.OrderStatusFinalizado}, nil)

		w := doJSON(t, r, http.MethodPatch, "/v1/orders/o-1/finalize", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRentalOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		w := doJSON(t, r, http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().ListByCustomerID(gomock.Any(), "c-1").
			Return([]entities.RentalOrder{{ID: "o-1"}, {ID: "o-2"}}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/orders?customer_id=c-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(body))
		}
	})

	t.Run("by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRentalOrderUseCase(ctrl)
		r := newOrderRouter(NewRentalOrderHandler(uc))

		uc.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusAprovado).
			Return([]entities.RentalOrder{{ID: "o-1"}}, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/orders?status=aprovado", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
