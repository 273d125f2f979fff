package app

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/shopspring/decimal"
)

const (
	OrderStatusPlaced = "PLACED"
)

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// PlaceOrder records a completed checkout. Line totals and the
// subtotal are derived from the items here rather than trusted from
// the caller; shipping and tax arrive precomputed by the pricing
// policy.
func (s *Service) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.Order, error) {
	if req.Shipping.IsNegative() {
		return domain.Order{}, fmt.Errorf("shipping amount cannot be negative, got %s", req.Shipping)
	}
	if req.Tax.IsNegative() {
		return domain.Order{}, fmt.Errorf("tax amount cannot be negative, got %s", req.Tax)
	}
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order needs at least one item")
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	subtotal := decimal.Zero

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("item %d: quantity must be positive, got %d", i, item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return domain.Order{}, fmt.Errorf("item %d: unit price cannot be negative, got %s", i, item.UnitPrice)
		}

		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	order := domain.Order{
		SessionID:  req.SessionID,
		Status:     OrderStatusPlaced,
		Subtotal:   subtotal,
		Shipping:   req.Shipping,
		Tax:        req.Tax,
		Total:      subtotal.Add(req.Shipping).Add(req.Tax),
		Items:      items,
		ShipToName: req.ShipToName,
		ShipToCity: req.ShipToCity,
	}

	return s.repo.Create(ctx, order)
}

func (s *Service) ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	return s.repo.List(ctx, sessionID)
}
