package domain

import "time"

// Cart represents a shopping cart. Carts are keyed by session ID; there is no
// account model, so the session header is the only identity.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartLine is a product-at-a-size entry in the cart. The same product in two
// different sizes produces two distinct lines.
type CartLine struct {
	// ID is "<productID>-<size>", e.g. "rose-noir-50ml".
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	// Title carries the size suffix, e.g. "Rose Noir (50ml)".
	Title string `json:"title"`
	Size  Size   `json:"size"`
	// UnitPrice is the size-adjusted price in minor units, captured at the
	// time the line was added.
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"image_url,omitempty"`
}

// LineID builds the composite line identifier for a product and size.
func LineID(productID string, size Size) string {
	return productID + "-" + string(size)
}

// NewCartLine builds a cart line from a product and size, deriving the line
// ID, the sized title, and the size-adjusted unit price.
func NewCartLine(p Product, size Size, quantity int) CartLine {
	return CartLine{
		ID:        LineID(p.ID, size),
		ProductID: p.ID,
		Title:     p.Title + " (" + string(size) + ")",
		Size:      size,
		UnitPrice: size.PriceFor(p.Price),
		Quantity:  quantity,
		ImageURL:  p.ImageURL,
	}
}

// TotalAmount calculates the total price of all lines in the cart (in minor units).
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// FindLineIndex returns the index of the cart line with the given ID, or -1.
func (c *Cart) FindLineIndex(lineID string) int {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return i
		}
	}
	return -1
}
