package config

import (
	"fmt"

	pkgconfig "github.com/aromaluxe/storefront/pkg/config"
)

// Cart persistence backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"STOREFRONT_HTTP_PORT" envDefault:"8080"`

	// Content API (headless CMS the catalog is read from)
	CMSBaseURL     string `env:"CMS_BASE_URL" envDefault:"https://aromaluxe.cdn.prismic.io"`
	CMSAccessToken string `env:"CMS_ACCESS_TOKEN" envDefault:""`
	// CatalogRefreshMinutes is how often the catalog is re-fetched in the
	// background. Zero disables periodic refresh; the manual refresh
	// endpoint still works.
	CatalogRefreshMinutes int `env:"CATALOG_REFRESH_MINUTES" envDefault:"15"`

	// Cart and wishlist persistence. "memory" keeps sessions in-process
	// and is only suitable for a single instance.
	CartBackend string `env:"CART_BACKEND" envDefault:"memory"`

	// Redis (used when CartBackend is "redis")
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Session TTL in hours (default: 7 days)
	SessionTTL int `env:"SESSION_TTL_HOURS" envDefault:"168"`

	// Kafka
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// Money display
	Currency string `env:"CURRENCY" envDefault:"USD"`
	Locale   string `env:"LOCALE" envDefault:"en-US"`

	// Checkout pricing, in minor units
	ShippingFlat     int64   `env:"SHIPPING_FLAT" envDefault:"1500"`
	FreeShippingOver int64   `env:"FREE_SHIPPING_OVER" envDefault:"0"`
	TaxRate          float64 `env:"TAX_RATE" envDefault:"0.08"`

	// Tracing
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Per-caller rate limiting. Zero RPS disables it.
	RateLimitRPS   int `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// Profiling endpoints, restricted by CIDR. Empty disables pprof.
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CMSBaseURL == "" {
		return fmt.Errorf("CMS_BASE_URL is required")
	}
	if c.CartBackend != BackendMemory && c.CartBackend != BackendRedis {
		return fmt.Errorf("CART_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.CartBackend)
	}
	if c.TaxRate < 0 || c.TaxRate > 1 {
		return fmt.Errorf("TAX_RATE must be between 0.0 and 1.0, got %v", c.TaxRate)
	}
	if c.ShippingFlat < 0 {
		return fmt.Errorf("SHIPPING_FLAT must not be negative")
	}
	if c.FreeShippingOver < 0 {
		return fmt.Errorf("FREE_SHIPPING_OVER must not be negative")
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %v", c.OTELSampleRate)
	}
	return nil
}
