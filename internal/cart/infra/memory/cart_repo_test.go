package memory

import (
	"context"
	"testing"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func TestCartRepo_SessionIsolation(t *testing.T) {
	repo := NewCartRepo()
	ctx := context.Background()
	p := &catalog.Product{ID: "p1", Name: "Headphones", Price: decimal.RequireFromString("299.99")}

	if _, err := repo.AddItem(ctx, "alice", p, 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	snap, err := repo.GetOrCreate(ctx, "bob")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if !snap.Empty() {
		t.Fatalf("bob's cart should be empty, got %+v", snap)
	}

	first, _ := repo.GetOrCreate(ctx, "alice")
	second, _ := repo.GetOrCreate(ctx, "alice")
	if first.CartID != second.CartID {
		t.Fatalf("same session got two carts: %s vs %s", first.CartID, second.CartID)
	}
	if first.ItemCount != 2 {
		t.Fatalf("expected count=2, got %d", first.ItemCount)
	}
}

func TestCartRepo_ConcurrentAdds(t *testing.T) {
	repo := NewCartRepo()
	ctx := context.Background()
	p := &catalog.Product{ID: "p1", Name: "Headphones", Price: decimal.RequireFromString("299.99")}

	const workers = 50
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			_, err := repo.AddItem(ctx, "s1", p, 1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem: %v", err)
	}

	snap, err := repo.GetOrCreate(ctx, "s1")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if snap.ItemCount != workers {
		t.Fatalf("expected count=%d, got %d", workers, snap.ItemCount)
	}
	if want := decimal.RequireFromString("299.99").Mul(decimal.NewFromInt(workers)); !snap.Subtotal.Equal(want) {
		t.Fatalf("subtotal: got %s, want %s", snap.Subtotal, want)
	}
}

func TestCartRepo_ConcurrentGetOrCreateSingleCart(t *testing.T) {
	repo := NewCartRepo()
	ctx := context.Background()

	ids := make([]string, 20)
	var g errgroup.Group
	for i := range ids {
		i := i
		g.Go(func() error {
			snap, err := repo.GetOrCreate(ctx, "s1")
			if err != nil {
				return err
			}
			ids[i] = snap.CartID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent GetOrCreate: %v", err)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[0] {
			t.Fatalf("session split across carts: %v", ids)
		}
	}
}
