package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrMissingField = errors.New("missing required field")

// Step is the position of a checkout attempt in the two-step flow.
type Step int

const (
	StepShipping Step = iota
	StepPayment
	StepCompleted
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepCompleted:
		return "completed"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ShippingDetails is the shipping-step draft. All fields are required.
type ShippingDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

func (d ShippingDetails) Validate() error {
	return requireAll(map[string]string{
		"first_name": d.FirstName,
		"last_name":  d.LastName,
		"email":      d.Email,
		"phone":      d.Phone,
		"address":    d.Address,
		"city":       d.City,
		"state":      d.State,
		"zip_code":   d.ZipCode,
		"country":    d.Country,
	})
}

// PaymentDetails is the payment-step draft. All fields are required.
// The card data is never charged; settlement is simulated.
type PaymentDetails struct {
	CardNumber string
	ExpiryDate string
	CVV        string
	NameOnCard string
}

func (d PaymentDetails) Validate() error {
	return requireAll(map[string]string{
		"card_number":  d.CardNumber,
		"expiry_date":  d.ExpiryDate,
		"cvv":          d.CVV,
		"name_on_card": d.NameOnCard,
	})
}

func requireAll(fields map[string]string) error {
	for name, v := range fields {
		if v == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
	}
	return nil
}

// Pricing constants. Fixed in this core; a deployment that needs
// different numbers fronts this with its own configuration layer.
var (
	freeShippingThreshold = decimal.NewFromInt(50)
	flatShippingFee       = decimal.RequireFromString("9.99")
	taxRate               = decimal.RequireFromString("0.08")
)

type OrderTotals struct {
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals derives the order totals from the subtotal alone.
// Shipping is free strictly above the threshold; tax rounds half-up to
// cents.
func ComputeTotals(subtotal decimal.Decimal) OrderTotals {
	shipping := flatShippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return OrderTotals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal.Add(shipping).Add(tax),
	}
}
