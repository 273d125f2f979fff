package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name     string
		subtotal string
		shipping string
		tax      string
		grand    string
	}{
		{"free shipping above threshold", "479.97", "0", "38.40", "518.37"},
		{"flat fee below threshold", "24.99", "9.99", "2.00", "36.98"},
		{"threshold itself still pays shipping", "50.00", "9.99", "4.00", "63.99"},
		{"just over threshold ships free", "50.01", "0", "4.00", "54.01"},
		{"tax rounds up to cents", "0.99", "9.99", "0.08", "11.06"},
		{"empty cart", "0", "9.99", "0", "9.99"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(decimal.RequireFromString(tc.subtotal))
			check := func(field string, got, want decimal.Decimal) {
				if !got.Equal(want) {
					t.Fatalf("%s: got %s, want %s", field, got, want)
				}
			}
			check("shipping", got.Shipping, decimal.RequireFromString(tc.shipping))
			check("tax", got.Tax, decimal.RequireFromString(tc.tax))
			check("grand total", got.GrandTotal, decimal.RequireFromString(tc.grand))
		})
	}
}

func TestShippingDetails_Validate(t *testing.T) {
	full := ShippingDetails{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Address:   "1 Analytical Way",
		City:      "London",
		State:     "LDN",
		ZipCode:   "E1 6AN",
		Country:   "UK",
	}
	if err := full.Validate(); err != nil {
		t.Fatalf("complete details rejected: %v", err)
	}

	missing := full
	missing.ZipCode = ""
	err := missing.Validate()
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if !strings.Contains(err.Error(), "zip_code") {
		t.Fatalf("error should name the field: %v", err)
	}
}

func TestPaymentDetails_Validate(t *testing.T) {
	full := PaymentDetails{
		CardNumber: "4242424242424242",
		ExpiryDate: "12/27",
		CVV:        "123",
		NameOnCard: "Ada Lovelace",
	}
	if err := full.Validate(); err != nil {
		t.Fatalf("complete details rejected: %v", err)
	}

	missing := full
	missing.CVV = ""
	if err := missing.Validate(); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}
