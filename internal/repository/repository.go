package repository

import (
	"context"

	"github.com/aromaluxe/storefront/internal/domain"
)

// CartRepository defines the interface for cart persistence operations.
// Carts are keyed by session ID.
type CartRepository interface {
	// Get retrieves a cart by its session ID.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the session.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart from the store by session ID.
	Delete(ctx context.Context, sessionID string) error
}

// WishlistRepository defines the interface for wishlist persistence operations.
// Wishlists are keyed by session ID.
type WishlistRepository interface {
	// Get retrieves a wishlist by its session ID.
	Get(ctx context.Context, sessionID string) (*domain.Wishlist, error)

	// Save persists a wishlist, overwriting any existing one for the session.
	Save(ctx context.Context, wishlist *domain.Wishlist) error

	// Delete removes a wishlist from the store by session ID.
	Delete(ctx context.Context, sessionID string) error
}
