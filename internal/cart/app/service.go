package app

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo CartRepo
}

func NewService(repo CartRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (domain.Snapshot, error) {
	if sessionID == "" {
		return domain.Snapshot{}, ErrInvalidInput
	}
	return s.repo.GetOrCreate(ctx, sessionID)
}

// AddItem merges qty into the session's line for the product. A
// non-positive qty leaves the cart untouched and returns the current
// snapshot.
func (s *Service) AddItem(ctx context.Context, sessionID string, p *catalog.Product, qty int) (domain.Snapshot, error) {
	if sessionID == "" || p == nil {
		return domain.Snapshot{}, ErrInvalidInput
	}
	if qty <= 0 {
		return s.repo.GetOrCreate(ctx, sessionID)
	}
	return s.repo.AddItem(ctx, sessionID, p, qty)
}

func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, qty int) (domain.Snapshot, error) {
	if sessionID == "" || productID == "" {
		return domain.Snapshot{}, ErrInvalidInput
	}
	return s.repo.SetQuantity(ctx, sessionID, productID, qty)
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (domain.Snapshot, error) {
	if sessionID == "" || productID == "" {
		return domain.Snapshot{}, ErrInvalidInput
	}
	return s.repo.RemoveItem(ctx, sessionID, productID)
}

func (s *Service) Clear(ctx context.Context, sessionID string) (domain.Snapshot, error) {
	if sessionID == "" {
		return domain.Snapshot{}, ErrInvalidInput
	}
	return s.repo.Clear(ctx, sessionID)
}
