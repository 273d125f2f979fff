package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         string
	SessionID  string
	Status     string
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
	Items      []OrderItem
	ShipToName string
	ShipToCity string
	CreatedAt  time.Time
}

type OrderItem struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type PlaceOrderRequest struct {
	SessionID  string
	Items      []OrderItemRequest
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	ShipToName string
	ShipToCity string
}

type OrderItemRequest struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}
