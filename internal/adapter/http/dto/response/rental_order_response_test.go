package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"aluguel_carros/internal/domain/entities"
)

func TestFromRentalOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.RentalOrder{
		ID:         "o-1",
		CustomerID: "c-1",
		VehicleID:  "v-1",
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		DayCount:   5,
		TotalPrice: decimal.RequireFromString("500"),
		Status:     entities.OrderStatusPendente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromRentalOrder(o)
	if res.ID != "o-1" || res.CustomerID != "c-1" || res.VehicleID != "v-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.StartDate != "2025-03-10" || res.EndDate != "2025-03-14" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.TotalPrice != "500.00" || res.DayCount != 5 {
		t.Fatalf("unexpected pricing fields: %+v", res)
	}
	if res.Status != "pendente" {
		t.Fatalf("unexpected status: %+v", res)
	}
	if res.ApprovedAt != nil || res.RejectedAt != nil {
		t.Fatalf("expected nil decision timestamps: %+v", res)
	}
}

func TestFromRentalOrders(t *testing.T) {
	out := FromRentalOrders([]entities.RentalOrder{{ID: "o-1"}, {ID: "o-2"}})
	if len(out) != 2 || out[0].ID != "o-1" || out[1].ID != "o-2" {
		t.Fatalf("unexpected slice mapping: %+v", out)
	}

	if got := FromRentalOrders(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}
