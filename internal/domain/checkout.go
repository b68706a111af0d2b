package domain

import (
	"math"
	"time"
)

// CheckoutForm carries the shipping and payment fields collected at checkout.
// Payment fields are never charged or stored; the order is simulated.
type CheckoutForm struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
	NameOnCard string `json:"name_on_card" validate:"required"`
	CardNumber string `json:"card_number" validate:"required"`
	ExpiryDate string `json:"expiry_date" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}

// Pricing holds the totals policy applied at checkout. All amounts are in
// minor currency units.
type Pricing struct {
	// ShippingFlat is the flat shipping charge.
	ShippingFlat int64
	// FreeShippingOver waives shipping when the subtotal meets or exceeds
	// it. Zero disables the waiver.
	FreeShippingOver int64
	// TaxRate is the tax fraction applied to the subtotal, e.g. 0.08 for 8%.
	TaxRate float64
}

// OrderTotals is the cost breakdown for an order.
type OrderTotals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// ComputeTotals applies the pricing policy to a cart subtotal. Tax applies to
// the subtotal only, not to shipping, and is rounded half away from zero.
func (p Pricing) ComputeTotals(subtotal int64) OrderTotals {
	shipping := p.ShippingFlat
	if p.FreeShippingOver > 0 && subtotal >= p.FreeShippingOver {
		shipping = 0
	}
	if subtotal == 0 {
		shipping = 0
	}

	tax := int64(math.Round(float64(subtotal) * p.TaxRate))

	return OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// OrderConfirmation is returned after a successful simulated checkout.
type OrderConfirmation struct {
	OrderNumber string      `json:"order_number"`
	Email       string      `json:"email"`
	Lines       []CartLine  `json:"lines"`
	Totals      OrderTotals `json:"totals"`
	Currency    string      `json:"currency"`
	PlacedAt    time.Time   `json:"placed_at"`
}
