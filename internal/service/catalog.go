package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aromaluxe/storefront/internal/catalog"
	"github.com/aromaluxe/storefront/internal/domain"
	apperrors "github.com/aromaluxe/storefront/pkg/errors"
)

// CatalogService holds the published catalog in memory and answers product
// list, lookup, and search requests from it. The catalog is loaded at startup
// and replaced wholesale on Refresh, so readers never see a partial catalog.
type CatalogService struct {
	provider catalog.Provider
	logger   *slog.Logger

	mu        sync.RWMutex
	products  []domain.Product
	byID      map[string]domain.Product
	settings  domain.Settings
	loadedAt  time.Time
	refreshes int
}

// NewCatalogService creates a catalog service on top of the given provider.
// Call Refresh before serving traffic.
func NewCatalogService(provider catalog.Provider, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		provider: provider,
		logger:   logger,
		byID:     make(map[string]domain.Product),
	}
}

// Refresh fetches the catalog and settings from the provider and atomically
// swaps the cached copy. On error the previous catalog stays in place.
func (s *CatalogService) Refresh(ctx context.Context) error {
	products, err := s.provider.Products(ctx)
	if err != nil {
		return fmt.Errorf("refresh products: %w", err)
	}

	settings, err := s.provider.Settings(ctx)
	if err != nil {
		return fmt.Errorf("refresh settings: %w", err)
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	s.mu.Lock()
	s.products = products
	s.byID = byID
	s.settings = settings
	s.loadedAt = time.Now().UTC()
	s.refreshes++
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "catalog refreshed",
		slog.Int("product_count", len(products)),
		slog.String("site_title", settings.SiteTitle),
	)

	return nil
}

// Products returns the full catalog in its published order.
func (s *CatalogService) Products(_ context.Context) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Product(nil), s.products...)
}

// Product looks up a single product by its ID.
func (s *CatalogService) Product(_ context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, apperrors.NotFound("product", id)
	}
	return p, nil
}

// Search filters the catalog by the given criteria, preserving catalog order.
func (s *CatalogService) Search(_ context.Context, criteria domain.FilterCriteria) []domain.Product {
	s.mu.RLock()
	products := s.products
	s.mu.RUnlock()

	return catalog.Filter(products, criteria)
}

// Settings returns the cached site settings.
func (s *CatalogService) Settings(_ context.Context) domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

// Ready reports whether the catalog has been loaded at least once. Used as a
// readiness check.
func (s *CatalogService) Ready(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadedAt.IsZero() {
		return fmt.Errorf("catalog not loaded yet")
	}
	return nil
}
