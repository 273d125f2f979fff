package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
)

// CartRepo keeps session carts in process memory. Carts live for a
// single browsing session and are not persisted. A single mutex guards
// all mutations; reads hand out snapshots, never the live cart.
type CartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		carts: make(map[string]*domain.Cart),
	}
}

func (r *CartRepo) GetOrCreate(_ context.Context, sessionID string) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cart(sessionID).Snapshot(), nil
}

func (r *CartRepo) AddItem(_ context.Context, sessionID string, p *catalog.Product, qty int) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.cart(sessionID)
	c.AddItem(p, qty)
	return c.Snapshot(), nil
}

func (r *CartRepo) SetQuantity(_ context.Context, sessionID, productID string, qty int) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.cart(sessionID)
	c.SetQuantity(productID, qty)
	return c.Snapshot(), nil
}

func (r *CartRepo) RemoveItem(_ context.Context, sessionID, productID string) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.cart(sessionID)
	c.RemoveItem(productID)
	return c.Snapshot(), nil
}

func (r *CartRepo) Clear(_ context.Context, sessionID string) (domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.cart(sessionID)
	c.Clear()
	return c.Snapshot(), nil
}

// cart must be called with the mutex held.
func (r *CartRepo) cart(sessionID string) *domain.Cart {
	if c, ok := r.carts[sessionID]; ok {
		return c
	}
	c := domain.NewCart(uuid.NewString(), sessionID)
	r.carts[sessionID] = c
	return c
}
