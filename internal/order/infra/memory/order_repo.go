package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/google/uuid"
)

// OrderRepo holds placed orders for the lifetime of the process.
type OrderRepo struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{}
}

func (r *OrderRepo) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return order, nil
}

func (r *OrderRepo) List(_ context.Context, sessionID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Order
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			out = append(out, o)
		}
	}
	return out, nil
}
