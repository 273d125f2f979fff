package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/shopspring/decimal"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Lines(ctx context.Context, sessionID string) ([]checkoutapp.CartLine, decimal.Decimal, error) {
	snap, err := r.svc.GetCart(ctx, sessionID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines := make([]checkoutapp.CartLine, 0, len(snap.Lines))
	for _, it := range snap.Lines {
		lines = append(lines, checkoutapp.CartLine{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			UnitPrice: it.Product.Price,
			Quantity:  it.Quantity,
		})
	}
	return lines, snap.Subtotal, nil
}

func (r *CartServiceReader) Clear(ctx context.Context, sessionID string) error {
	_, err := r.svc.Clear(ctx, sessionID)
	return err
}
