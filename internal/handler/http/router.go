package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aromaluxe/storefront/pkg/health"
	"github.com/aromaluxe/storefront/pkg/middleware"
)

// RouterConfig carries the handlers and cross-cutting options for the
// storefront router.
type RouterConfig struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Checkout *CheckoutHandler
	Health   *health.Handler
	Logger   *slog.Logger
	CORS     middleware.CORSConfig

	// PprofCIDRs enables the /debug/pprof endpoints for the given CIDR
	// ranges. Empty disables profiling entirely.
	PprofCIDRs []string

	// RateLimitRPS and RateLimitBurst configure per-caller throttling.
	// Zero RPS disables it.
	RateLimitRPS   int
	RateLimitBurst int
}

// NewRouter builds the HTTP router with the full middleware stack.
// Catalog endpoints are anonymous; cart, wishlist, and checkout require
// an X-Session-ID header.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(cfg.CORS))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Logger))
	}
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	if len(cfg.PprofCIDRs) > 0 {
		middleware.RegisterPprof(r, cfg.PprofCIDRs, cfg.Logger)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Catalog is public and read-only.
		r.Get("/products", cfg.Catalog.ListProducts)
		r.Get("/products/search", cfg.Catalog.SearchProducts)
		r.Get("/products/{productID}", cfg.Catalog.GetProduct)
		r.Get("/settings", cfg.Catalog.GetSettings)
		r.Post("/catalog/refresh", cfg.Catalog.RefreshCatalog)

		// Session-scoped state.
		r.Group(func(r chi.Router) {
			r.Use(SessionIDFromHeader)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cfg.Cart.GetCart)
				r.Delete("/", cfg.Cart.ClearCart)
				r.Post("/items", cfg.Cart.AddItem)
				r.Put("/items/{lineID}", cfg.Cart.UpdateLine)
				r.Delete("/items/{lineID}", cfg.Cart.RemoveLine)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", cfg.Wishlist.GetWishlist)
				r.Get("/products", cfg.Wishlist.WishlistProducts)
				r.Put("/{productID}", cfg.Wishlist.AddProduct)
				r.Delete("/{productID}", cfg.Wishlist.RemoveProduct)
			})

			r.Post("/checkout", cfg.Checkout.PlaceOrder)
		})
	})

	return r
}
