package app

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// Query selects and orders a slice of the catalog. Category matching is
// case-insensitive; "all" (or empty) passes every category. A zero
// MaxPrice means no upper bound.
type Query struct {
	Category string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Sort     SortKey
}

func DefaultQuery() Query {
	return Query{
		Category: "all",
		MaxPrice: decimal.NewFromInt(1000),
		Sort:     SortFeatured,
	}
}

type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.Categories(ctx)
}

// Search filters the full catalog snapshot and sorts the result. The
// sort is stable so ties keep catalog order, which makes repeated calls
// with identical inputs return identical sequences.
func (s *Service) Search(ctx context.Context, q Query) ([]*domain.Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Product, 0, len(all))
	for _, p := range all {
		if !matchesCategory(p, q.Category) {
			continue
		}
		if p.Price.LessThan(q.MinPrice) {
			continue
		}
		if q.MaxPrice.IsPositive() && p.Price.GreaterThan(q.MaxPrice) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out, nil
}

func matchesCategory(p *domain.Product, filter string) bool {
	if filter == "" || strings.EqualFold(filter, "all") {
		return true
	}
	return strings.EqualFold(p.Category, filter)
}

func sortProducts(ps []*domain.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.LessThan(ps[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.GreaterThan(ps[j].Price) })
	case SortRating:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	case SortNewest:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].IsNew && !ps[j].IsNew })
	default:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].IsFeatured && !ps[j].IsFeatured })
	}
}
