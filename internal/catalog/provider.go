package catalog

import (
	"context"

	"github.com/aromaluxe/storefront/internal/domain"
)

// Provider fetches catalog content from the upstream CMS. The storefront
// never writes back; the CMS is the single source of truth.
type Provider interface {
	// Products returns every published fragrance in catalog order.
	Products(ctx context.Context) ([]domain.Product, error)

	// Settings returns the site-wide settings singleton.
	Settings(ctx context.Context) (domain.Settings, error)
}
