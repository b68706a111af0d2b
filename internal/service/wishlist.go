package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aromaluxe/storefront/internal/domain"
	"github.com/aromaluxe/storefront/internal/repository"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
)

// WishlistService implements the business logic for wishlist operations.
// The wishlist is a set of product IDs per session; adds are idempotent and
// removes of absent products are no-ops.
type WishlistService struct {
	repo    repository.WishlistRepository
	catalog ProductLookup
	logger  *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, catalog ProductLookup, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// GetWishlist retrieves the wishlist for a session. If none exists, returns
// an empty wishlist without persisting it.
func (s *WishlistService) GetWishlist(ctx context.Context, sessionID string) (*domain.Wishlist, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	wishlist, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyWishlist(sessionID), nil
		}
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	return wishlist, nil
}

// GetProducts resolves the wishlist entries to catalog products, preserving
// the order entries were added. Entries whose product has been unpublished
// are skipped.
func (s *WishlistService) GetProducts(ctx context.Context, sessionID string) ([]domain.Product, error) {
	wishlist, err := s.GetWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(wishlist.Entries))
	for _, entry := range wishlist.Entries {
		p, err := s.catalog.Product(ctx, entry.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// AddProduct adds a product to the session's wishlist. Adding a product that
// is already saved is a no-op. The product must exist in the catalog.
func (s *WishlistService) AddProduct(ctx context.Context, sessionID, productID string) (*domain.Wishlist, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	if _, err := s.catalog.Product(ctx, productID); err != nil {
		return nil, err
	}

	wishlist, err := s.GetWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !wishlist.Add(productID, now) {
		return wishlist, nil
	}
	wishlist.UpdatedAt = now

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.logger.InfoContext(ctx, "product added to wishlist",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
	)

	return wishlist, nil
}

// RemoveProduct removes a product from the session's wishlist. Removing a
// product that is not saved leaves the wishlist unchanged.
func (s *WishlistService) RemoveProduct(ctx context.Context, sessionID, productID string) (*domain.Wishlist, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	wishlist, err := s.GetWishlist(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !wishlist.Remove(productID) {
		return wishlist, nil
	}
	wishlist.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.logger.InfoContext(ctx, "product removed from wishlist",
		slog.String("session_id", sessionID),
		slog.String("product_id", productID),
	)

	return wishlist, nil
}

func (s *WishlistService) newEmptyWishlist(sessionID string) *domain.Wishlist {
	now := time.Now().UTC()
	return &domain.Wishlist{
		SessionID: sessionID,
		Entries:   []domain.WishlistEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
