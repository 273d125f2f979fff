package memory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Headphones", Price: decimal.RequireFromString("299.99"), Category: "Electronics"},
		{ID: "p2", Name: "Coffee Beans", Price: decimal.RequireFromString("24.99"), Category: "Food"},
	}
}

func TestStore_GetAndList(t *testing.T) {
	store, err := NewStore(sampleProducts(), []domain.Category{{ID: "all", Name: "All Products", Count: 2}})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	ctx := context.Background()

	p, err := store.Get(ctx, "p2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name != "Coffee Beans" {
		t.Fatalf("expected Coffee Beans, got %s", p.Name)
	}

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != "p1" {
		t.Fatalf("List order lost: %+v", all)
	}

	cats, err := store.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != "all" {
		t.Fatalf("categories: %+v", cats)
	}
}

func TestStore_RejectsBadCatalog(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		ps := sampleProducts()
		ps[1].ID = "p1"
		_, err := NewStore(ps, nil)
		if err == nil || !strings.Contains(err.Error(), "duplicate") {
			t.Fatalf("expected duplicate id error, got %v", err)
		}
	})

	t.Run("invalid product", func(t *testing.T) {
		ps := sampleProducts()
		ps[0].Name = ""
		if _, err := NewStore(ps, nil); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
