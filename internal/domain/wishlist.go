package domain

import "time"

// Wishlist holds the products a session has saved. Entries behave as a set
// keyed by product ID and keep their insertion order.
type Wishlist struct {
	SessionID string          `json:"session_id"`
	Entries   []WishlistEntry `json:"entries"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WishlistEntry is a saved product reference.
type WishlistEntry struct {
	ProductID string    `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// Contains reports whether the wishlist already holds the product.
func (w *Wishlist) Contains(productID string) bool {
	for _, e := range w.Entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// Add appends the product if it is not already present. It reports whether
// the wishlist changed.
func (w *Wishlist) Add(productID string, now time.Time) bool {
	if w.Contains(productID) {
		return false
	}
	w.Entries = append(w.Entries, WishlistEntry{ProductID: productID, AddedAt: now})
	return true
}

// Remove deletes the product entry if present, preserving the order of the
// remaining entries. It reports whether the wishlist changed.
func (w *Wishlist) Remove(productID string) bool {
	for i, e := range w.Entries {
		if e.ProductID == productID {
			w.Entries = append(w.Entries[:i], w.Entries[i+1:]...)
			return true
		}
	}
	return false
}
