package memory

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// Store is the read-only catalog snapshot. It is built once at startup
// and never written afterwards, so reads need no locking.
type Store struct {
	products   []*domain.Product
	byID       map[string]*domain.Product
	categories []domain.Category
}

func NewStore(products []domain.Product, categories []domain.Category) (*Store, error) {
	s := &Store{
		products:   make([]*domain.Product, 0, len(products)),
		byID:       make(map[string]*domain.Product, len(products)),
		categories: append([]domain.Category(nil), categories...),
	}

	for i := range products {
		p := products[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %s", p.ID)
		}
		s.products = append(s.products, &p)
		s.byID[p.ID] = &p
	}

	return s, nil
}

func (s *Store) Get(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, app.ErrNotFound
	}
	return p, nil
}

func (s *Store) List(_ context.Context) ([]*domain.Product, error) {
	return append([]*domain.Product(nil), s.products...), nil
}

func (s *Store) Categories(_ context.Context) ([]domain.Category, error) {
	return append([]domain.Category(nil), s.categories...), nil
}
