package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// CartRepo owns the mutable cart collection. Every method returns a
// snapshot taken after the mutation so callers never hold live state.
type CartRepo interface {
	GetOrCreate(ctx context.Context, sessionID string) (domain.Snapshot, error)
	AddItem(ctx context.Context, sessionID string, p *catalog.Product, qty int) (domain.Snapshot, error)
	SetQuantity(ctx context.Context, sessionID, productID string, qty int) (domain.Snapshot, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (domain.Snapshot, error)
	Clear(ctx context.Context, sessionID string) (domain.Snapshot, error)
}
