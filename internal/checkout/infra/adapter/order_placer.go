package adapter

import (
	"context"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

type OrderServicePlacer struct {
	svc *orderapp.Service
}

func NewOrderServicePlacer(svc *orderapp.Service) *OrderServicePlacer {
	return &OrderServicePlacer{svc: svc}
}

func (p *OrderServicePlacer) Place(ctx context.Context, o checkoutapp.PlacedOrder) (string, error) {
	items := make([]orderdomain.OrderItemRequest, 0, len(o.Lines))
	for _, ln := range o.Lines {
		items = append(items, orderdomain.OrderItemRequest{
			ProductID: ln.ProductID,
			Name:      ln.Name,
			UnitPrice: ln.UnitPrice,
			Quantity:  ln.Quantity,
		})
	}

	placed, err := p.svc.PlaceOrder(ctx, orderdomain.PlaceOrderRequest{
		SessionID: o.SessionID,
		Items:     items,
		Shipping:  o.Totals.Shipping,
		Tax:       o.Totals.Tax,
		ShipToName: o.ShipTo.FirstName + " " + o.ShipTo.LastName,
		ShipToCity: o.ShipTo.City,
	})
	if err != nil {
		return "", err
	}
	return placed.ID, nil
}
