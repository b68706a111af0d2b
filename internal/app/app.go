package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aromaluxe/storefront/internal/catalog/prismic"
	"github.com/aromaluxe/storefront/internal/config"
	"github.com/aromaluxe/storefront/internal/domain"
	"github.com/aromaluxe/storefront/internal/event"
	handler "github.com/aromaluxe/storefront/internal/handler/http"
	"github.com/aromaluxe/storefront/internal/repository"
	"github.com/aromaluxe/storefront/internal/repository/memory"
	redisrepo "github.com/aromaluxe/storefront/internal/repository/redis"
	"github.com/aromaluxe/storefront/internal/service"
	"github.com/aromaluxe/storefront/pkg/health"
	"github.com/aromaluxe/storefront/pkg/httpclient"
	pkgkafka "github.com/aromaluxe/storefront/pkg/kafka"
	"github.com/aromaluxe/storefront/pkg/middleware"
	"github.com/aromaluxe/storefront/pkg/money"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg        *config.Config
	logger     *slog.Logger
	rdb        *redis.Client
	producer   *pkgkafka.Producer
	catalog    *service.CatalogService
	httpServer *http.Server

	refreshDone chan struct{}
	refreshStop context.CancelFunc
}

// NewApp creates a new application instance, initializing all dependencies.
// The catalog is fetched once during startup; a failure here is fatal since
// the storefront has nothing to sell without it.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Cart and wishlist persistence.
	var (
		rdb          *redis.Client
		cartRepo     repository.CartRepository
		wishlistRepo repository.WishlistRepository
	)
	switch cfg.CartBackend {
	case config.BackendRedis:
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)

		ttl := time.Duration(cfg.SessionTTL) * time.Hour
		cartRepo = redisrepo.NewCartRepository(rdb, ttl)
		wishlistRepo = redisrepo.NewWishlistRepository(rdb, ttl)
	default:
		logger.Info("using in-memory session storage")
		cartRepo = memory.NewCartRepository()
		wishlistRepo = memory.NewWishlistRepository()
	}

	// Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Content API client behind a circuit breaker.
	httpClient := httpclient.New(httpclient.DefaultConfig())
	cbClient := httpclient.NewCircuitBreakerClient(httpClient,
		httpclient.DefaultCircuitBreakerConfig("content-api"), logger)
	cmsClient := prismic.New(prismic.Config{
		BaseURL:     cfg.CMSBaseURL,
		AccessToken: cfg.CMSAccessToken,
	}, cbClient, logger)

	// Build the dependency graph.
	catalogService := service.NewCatalogService(cmsClient, logger)
	if err := catalogService.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	formatter, err := money.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("money formatter: %w", err)
	}

	eventProducer := event.NewProducer(producer, logger)
	cartService := service.NewCartService(cartRepo, catalogService, eventProducer, logger, cfg.Currency)
	wishlistService := service.NewWishlistService(wishlistRepo, catalogService, logger)
	checkoutService := service.NewCheckoutService(cartService, eventProducer, logger, domain.Pricing{
		ShippingFlat:     cfg.ShippingFlat,
		FreeShippingOver: cfg.FreeShippingOver,
		TaxRate:          cfg.TaxRate,
	})

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", catalogService.Ready)
	healthHandler.Register("kafka", producer.Ping)
	if rdb != nil {
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	// HTTP router.
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	corsCfg.Environment = cfg.Environment

	router := handler.NewRouter(handler.RouterConfig{
		Catalog:    handler.NewCatalogHandler(catalogService, formatter, logger),
		Cart:       handler.NewCartHandler(cartService, formatter, logger),
		Wishlist:   handler.NewWishlistHandler(wishlistService, formatter, logger),
		Checkout:   handler.NewCheckoutHandler(checkoutService, formatter, logger),
		Health:     healthHandler,
		Logger:     logger,
		CORS:       corsCfg,
		PprofCIDRs:     cfg.PprofAllowedCIDRs,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		rdb:        rdb,
		producer:   producer,
		catalog:    catalogService,
		httpServer: httpServer,
	}, nil
}

// Run starts the HTTP server and the periodic catalog refresh, then blocks
// until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startCatalogRefresh()

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// startCatalogRefresh launches the background loop that re-fetches the
// catalog on an interval. Failed refreshes keep the previous catalog.
func (a *App) startCatalogRefresh() {
	if a.cfg.CatalogRefreshMinutes <= 0 {
		a.refreshDone = nil
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.refreshStop = cancel
	a.refreshDone = make(chan struct{})

	interval := time.Duration(a.cfg.CatalogRefreshMinutes) * time.Minute
	go func() {
		defer close(a.refreshDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := a.catalog.Refresh(ctx); err != nil {
					a.logger.Warn("periodic catalog refresh failed",
						slog.String("error", err.Error()),
					)
				}
			}
		}
	}()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	if a.refreshStop != nil {
		a.refreshStop()
		<-a.refreshDone
	}

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
