// Package app contains the lookup application services, orchestrating
// the domain engine, rate limiting, and telemetry.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
)

var tracer = otel.Tracer("lookup/app")

var (
	parsesTotal     metric.Int64Counter
	detectionsTotal metric.Int64Counter
	invalidTotal    metric.Int64Counter
	rateLimitsTotal metric.Int64Counter
)

func init() {
	m := otel.Meter("lookup/app")

	parsesTotal, _ = m.Int64Counter("lookup_parses_total",
		metric.WithDescription("Total parse operations"))
	detectionsTotal, _ = m.Int64Counter("lookup_detections_total",
		metric.WithDescription("Total detect operations"))
	invalidTotal, _ = m.Int64Counter("lookup_invalid_numbers_total",
		metric.WithDescription("Total parses yielding an invalid national number"))
	rateLimitsTotal, _ = m.Int64Counter("security_rate_limits_total",
		metric.WithDescription("Total rate limit hits"))
}

// RateLimiter is a narrow, consumer-defined interface for the limiter
// operations the service requires. The *adapter.RateLimiter satisfies this.
type RateLimiter interface {
	CheckAndIncrement(ctx context.Context, key string, limit, windowSeconds int) (bool, error)
}

// LookupServiceConfig holds the dependencies for a LookupService.
type LookupServiceConfig struct {
	Registry *domain.Registry

	// RateLimiter may be nil, which disables per-IP limiting entirely
	// (local development, tests).
	RateLimiter RateLimiter

	RateLimitPerIP  int
	RateLimitWindow time.Duration

	// DefaultCountry is applied when a parse request declares no default
	// of its own.
	DefaultCountry string

	Logger *slog.Logger
}

// LookupService exposes the phone-number interpretation operations to
// transport handlers. It is stateless beyond its immutable dependencies
// and safe for concurrent use.
type LookupService struct {
	reg            *domain.Registry
	detector       *domain.Detector
	parser         *domain.Parser
	limiter        RateLimiter
	limitPerIP     int
	window         time.Duration
	defaultCountry string
	logger         *slog.Logger
}

// NewLookupService creates a LookupService from cfg.
func NewLookupService(cfg LookupServiceConfig) *LookupService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &LookupService{
		reg:            cfg.Registry,
		detector:       domain.NewDetector(cfg.Registry),
		parser:         domain.NewParser(cfg.Registry),
		limiter:        cfg.RateLimiter,
		limitPerIP:     cfg.RateLimitPerIP,
		window:         cfg.RateLimitWindow,
		defaultCountry: cfg.DefaultCountry,
		logger:         logger,
	}
}
