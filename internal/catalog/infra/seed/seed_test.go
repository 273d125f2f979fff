package seed

import "testing"

func TestCatalog(t *testing.T) {
	products, categories, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(products) != 6 {
		t.Fatalf("expected 6 seed products, got %d", len(products))
	}
	if len(categories) != 5 {
		t.Fatalf("expected 5 seed categories, got %d", len(categories))
	}
	for _, p := range products {
		if p.Price.IsNegative() || p.Price.IsZero() {
			t.Fatalf("product %s has price %s", p.ID, p.Price)
		}
	}
}
