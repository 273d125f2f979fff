package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

type fakeProductRepo struct {
	products []*domain.Product
}

func (f *fakeProductRepo) Get(ctx context.Context, id string) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeProductRepo) List(ctx context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCatalog() *fakeProductRepo {
	return &fakeProductRepo{products: []*domain.Product{
		{ID: "p1", Name: "Headphones", Price: dec("299.99"), Category: "Electronics", Rating: 4.8, IsFeatured: true},
		{ID: "p2", Name: "Smart Watch", Price: dec("249.99"), Category: "Electronics", Rating: 4.6, IsNew: true},
		{ID: "p3", Name: "Backpack", Price: dec("89.99"), Category: "Accessories", Rating: 4.7},
		{ID: "p4", Name: "Coffee Beans", Price: dec("24.99"), Category: "Food", Rating: 4.9, IsFeatured: true},
		{ID: "p5", Name: "Water Bottle", Price: dec("39.99"), Category: "Accessories", Rating: 4.5, IsNew: true},
		{ID: "p6", Name: "Camera Lens", Price: dec("399.99"), Category: "Electronics", Rating: 4.4},
	}}
}

func ids(ps []*domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestService_Search_Filters(t *testing.T) {
	svc := NewService(testCatalog())
	ctx := context.Background()

	t.Run("category and price range", func(t *testing.T) {
		q := DefaultQuery()
		q.Category = "electronics"
		q.MaxPrice = dec("300")
		got, err := svc.Search(ctx, q)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		want := []string{"p1", "p2"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Fatalf("expected %v, got %v", want, ids(got))
			}
		}
	})

	t.Run("category matching ignores case", func(t *testing.T) {
		q := DefaultQuery()
		q.Category = "FOOD"
		got, err := svc.Search(ctx, q)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p4" {
			t.Fatalf("expected [p4], got %v", ids(got))
		}
	})

	t.Run("all passes every category", func(t *testing.T) {
		q := DefaultQuery()
		q.MaxPrice = decimal.Zero
		got, err := svc.Search(ctx, q)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 6 {
			t.Fatalf("expected 6 products, got %d", len(got))
		}
	})

	t.Run("zero max price is unbounded", func(t *testing.T) {
		q := Query{Category: "all", MinPrice: dec("300"), Sort: SortFeatured}
		got, err := svc.Search(ctx, q)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p6" {
			t.Fatalf("expected [p6], got %v", ids(got))
		}
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		q := DefaultQuery()
		q.Category = "toys"
		got, err := svc.Search(ctx, q)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no products, got %v", ids(got))
		}
	})
}

func TestService_Search_Sorting(t *testing.T) {
	svc := NewService(testCatalog())
	ctx := context.Background()

	cases := []struct {
		name string
		sort SortKey
		want []string
	}{
		{"price low to high", SortPriceLow, []string{"p4", "p5", "p3", "p2", "p1", "p6"}},
		{"price high to low", SortPriceHigh, []string{"p6", "p1", "p2", "p3", "p5", "p4"}},
		{"rating", SortRating, []string{"p4", "p1", "p3", "p2", "p5", "p6"}},
		{"newest keeps catalog order within groups", SortNewest, []string{"p2", "p5", "p1", "p3", "p4", "p6"}},
		{"featured keeps catalog order within groups", SortFeatured, []string{"p1", "p4", "p2", "p3", "p5", "p6"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Query{Category: "all", Sort: tc.sort}
			got, err := svc.Search(ctx, q)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, gotIDs)
			}
			for i := range tc.want {
				if gotIDs[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, gotIDs)
				}
			}
		})
	}
}

func TestService_Search_Deterministic(t *testing.T) {
	svc := NewService(testCatalog())
	ctx := context.Background()
	q := Query{Category: "all", Sort: SortRating}

	first, err := svc.Search(ctx, q)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := svc.Search(ctx, q)
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		for j := range first {
			if again[j].ID != first[j].ID {
				t.Fatalf("run %d diverged at %d: %v vs %v", i, j, ids(first), ids(again))
			}
		}
	}
}

func TestService_GetProduct(t *testing.T) {
	svc := NewService(testCatalog())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		p, err := svc.GetProduct(ctx, "p3")
		if err != nil {
			t.Fatalf("GetProduct: %v", err)
		}
		if p.Name != "Backpack" {
			t.Fatalf("expected Backpack, got %s", p.Name)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := svc.GetProduct(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		if _, err := svc.GetProduct(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
