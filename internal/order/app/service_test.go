package app

import (
	"context"
	"testing"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/shopspring/decimal"
)

type fakeOrderRepo struct {
	created []domain.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = "order-1"
	f.created = append(f.created, order)
	return order, nil
}

func (f *fakeOrderRepo) List(_ context.Context, sessionID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.created {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	return out, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validRequest() domain.PlaceOrderRequest {
	return domain.PlaceOrderRequest{
		SessionID: "s1",
		Items: []domain.OrderItemRequest{
			{ProductID: "p1", Name: "Headphones", UnitPrice: dec("299.99"), Quantity: 1},
			{ProductID: "p4", Name: "Coffee Beans", UnitPrice: dec("24.99"), Quantity: 2},
		},
		Shipping:   dec("0"),
		Tax:        dec("28.00"),
		ShipToName: "Ada Lovelace",
		ShipToCity: "London",
	}
}

func TestService_PlaceOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewService(repo)

	order, err := svc.PlaceOrder(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.Status != OrderStatusPlaced {
		t.Fatalf("expected status %s, got %s", OrderStatusPlaced, order.Status)
	}
	if want := dec("349.97"); !order.Subtotal.Equal(want) {
		t.Fatalf("subtotal: got %s, want %s", order.Subtotal, want)
	}
	if want := dec("377.97"); !order.Total.Equal(want) {
		t.Fatalf("total: got %s, want %s", order.Total, want)
	}
	if want := dec("49.98"); !order.Items[1].LineTotal.Equal(want) {
		t.Fatalf("line total: got %s, want %s", order.Items[1].LineTotal, want)
	}
}

func TestService_PlaceOrder_Rejections(t *testing.T) {
	svc := NewService(&fakeOrderRepo{})
	ctx := context.Background()

	t.Run("no items", func(t *testing.T) {
		req := validRequest()
		req.Items = nil
		if _, err := svc.PlaceOrder(ctx, req); err == nil {
			t.Fatal("expected error for empty item list")
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		req := validRequest()
		req.Items[0].Quantity = 0
		if _, err := svc.PlaceOrder(ctx, req); err == nil {
			t.Fatal("expected error for zero quantity")
		}
	})

	t.Run("negative unit price", func(t *testing.T) {
		req := validRequest()
		req.Items[0].UnitPrice = dec("-1")
		if _, err := svc.PlaceOrder(ctx, req); err == nil {
			t.Fatal("expected error for negative unit price")
		}
	})

	t.Run("negative shipping", func(t *testing.T) {
		req := validRequest()
		req.Shipping = dec("-9.99")
		if _, err := svc.PlaceOrder(ctx, req); err == nil {
			t.Fatal("expected error for negative shipping")
		}
	})

	t.Run("negative tax", func(t *testing.T) {
		req := validRequest()
		req.Tax = dec("-0.01")
		if _, err := svc.PlaceOrder(ctx, req); err == nil {
			t.Fatal("expected error for negative tax")
		}
	})
}

func TestService_ListOrders_ScopedToSession(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.PlaceOrder(ctx, validRequest()); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	other := validRequest()
	other.SessionID = "s2"
	if _, err := svc.PlaceOrder(ctx, other); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	got, err := svc.ListOrders(ctx, "s1")
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(got) != 1 || got[0].SessionID != "s1" {
		t.Fatalf("expected 1 order for s1, got %+v", got)
	}
}
