package domain

import (
	"time"

	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
)

// LineItem pairs a shared product reference with a quantity. The cart
// never copies or mutates product fields; quantity is always >= 1 for
// a line that exists.
type LineItem struct {
	Product  *catalog.Product
	Quantity int
}

// Cart keeps line items in insertion order for display and indexes
// them by product id so each product has at most one line. Aggregates
// are recomputed from the lines on every read; nothing is cached.
type Cart struct {
	ID        string
	SessionID string
	CreatedAt time.Time
	UpdatedAt time.Time

	items []LineItem
	index map[string]int
}

func NewCart(id, sessionID string) *Cart {
	now := time.Now()
	return &Cart{
		ID:        id,
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
		index:     make(map[string]int),
	}
}

// AddItem merges into an existing line for the same product id, or
// appends a new line. A nil product or non-positive quantity is a
// no-op: callers only pass positive deltas, and removal goes through
// RemoveItem or SetQuantity explicitly.
func (c *Cart) AddItem(p *catalog.Product, qty int) {
	if p == nil || qty <= 0 {
		return
	}
	if i, ok := c.index[p.ID]; ok {
		c.items[i].Quantity += qty
	} else {
		c.index[p.ID] = len(c.items)
		c.items = append(c.items, LineItem{Product: p, Quantity: qty})
	}
	c.touch()
}

// SetQuantity replaces a line's quantity. Zero or negative removes the
// line entirely; an absent product id is a silent no-op.
func (c *Cart) SetQuantity(productID string, qty int) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	if qty <= 0 {
		c.removeAt(i)
	} else {
		c.items[i].Quantity = qty
	}
	c.touch()
}

// RemoveItem deletes the line for the product if present, no-op
// otherwise, so a double remove is harmless.
func (c *Cart) RemoveItem(productID string) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.removeAt(i)
	c.touch()
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[string]int)
	c.touch()
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []LineItem {
	return append([]LineItem(nil), c.items...)
}

// Snapshot captures a consistent read of the cart, aggregates computed
// fresh at the point of the call.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		CartID:    c.ID,
		SessionID: c.SessionID,
		Lines:     c.Lines(),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(),
		UpdatedAt: c.UpdatedAt,
	}
}

type Snapshot struct {
	CartID    string
	SessionID string
	Lines     []LineItem
	ItemCount int
	Subtotal  decimal.Decimal
	UpdatedAt time.Time
}

func (s Snapshot) Empty() bool { return len(s.Lines) == 0 }

func (c *Cart) removeAt(i int) {
	delete(c.index, c.items[i].Product.ID)
	c.items = append(c.items[:i], c.items[i+1:]...)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Product.ID] = j
	}
}

func (c *Cart) touch() { c.UpdatedAt = time.Now() }
