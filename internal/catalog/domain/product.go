package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is immutable after catalog load. Nothing in the rest of the
// system writes to it; carts hold pointers into the store's snapshot.
type Product struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Category      string
	Description   string
	Image         string
	Images        []string
	Features      []string
	InStock       bool
	Rating        float64
	ReviewCount   int
	IsNew         bool
	IsFeatured    bool
}

// Category is display metadata; ID is the lower-case filter key.
type Category struct {
	ID    string
	Name  string
	Count int
}

func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product: empty id")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: empty name", p.ID)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %s: negative price %s", p.ID, p.Price)
	}
	if p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price) {
		return fmt.Errorf("product %s: original price %s below price %s", p.ID, p.OriginalPrice, p.Price)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("product %s: rating %.2f out of range", p.ID, p.Rating)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("product %s: negative review count %d", p.ID, p.ReviewCount)
	}
	return nil
}
