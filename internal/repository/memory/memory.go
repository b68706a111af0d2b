// Package memory provides in-memory repository implementations. This is the
// default backend; state does not survive a restart, which matches the
// session-scoped lifetime of carts and wishlists.
package memory

import (
	"context"
	"sync"

	"github.com/aromaluxe/storefront/internal/domain"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
)

// CartRepository implements repository.CartRepository with a mutex-guarded map.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

// NewCartRepository creates an empty in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string]domain.Cart),
	}
}

// Get retrieves a cart by session ID.
func (r *CartRepository) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}

	// Copy the line slice so callers cannot mutate the stored cart.
	cpy := cart
	cpy.Lines = append([]domain.CartLine(nil), cart.Lines...)
	return &cpy, nil
}

// Save persists a cart, overwriting any existing cart for the session.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cart
	stored.Lines = append([]domain.CartLine(nil), cart.Lines...)
	r.carts[cart.SessionID] = stored
	return nil
}

// Delete removes a cart by session ID. Deleting a missing cart is a no-op.
func (r *CartRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}

// WishlistRepository implements repository.WishlistRepository with a
// mutex-guarded map.
type WishlistRepository struct {
	mu        sync.RWMutex
	wishlists map[string]domain.Wishlist
}

// NewWishlistRepository creates an empty in-memory wishlist repository.
func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{
		wishlists: make(map[string]domain.Wishlist),
	}
}

// Get retrieves a wishlist by session ID.
func (r *WishlistRepository) Get(_ context.Context, sessionID string) (*domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wishlists[sessionID]
	if !ok {
		return nil, apperrors.NotFound("wishlist", sessionID)
	}

	cpy := w
	cpy.Entries = append([]domain.WishlistEntry(nil), w.Entries...)
	return &cpy, nil
}

// Save persists a wishlist, overwriting any existing one for the session.
func (r *WishlistRepository) Save(_ context.Context, wishlist *domain.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *wishlist
	stored.Entries = append([]domain.WishlistEntry(nil), wishlist.Entries...)
	r.wishlists[wishlist.SessionID] = stored
	return nil
}

// Delete removes a wishlist by session ID. Deleting a missing wishlist is a no-op.
func (r *WishlistRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.wishlists, sessionID)
	return nil
}
