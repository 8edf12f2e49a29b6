package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/numera-labs/phone-lookup-platform/internal/auth"
	"github.com/numera-labs/phone-lookup-platform/internal/config"
	"github.com/numera-labs/phone-lookup-platform/internal/domain"
	"github.com/numera-labs/phone-lookup-platform/internal/lookup/adapter"
	"github.com/numera-labs/phone-lookup-platform/internal/lookup/app"
	"github.com/numera-labs/phone-lookup-platform/internal/lookup/port"
	"github.com/numera-labs/phone-lookup-platform/internal/redis"
	"github.com/numera-labs/phone-lookup-platform/internal/server"
)

// setup is the lookupd composition root. It creates infrastructure
// clients, adapters, the lookup service, and mounts the HTTP API.
func setup(ctx context.Context, deps server.SetupDeps) (func(context.Context) error, error) {
	cfg := deps.Config
	logger := deps.Logger

	// 1. Infrastructure clients. Redis is only dialed when the per-IP
	// limiter is on; the engine itself has no external dependencies.
	var redisClient *redis.Client
	var limiter app.RateLimiter
	if cfg.Lookup.RateLimitPerIP > 0 {
		redisClient = redis.NewClient(redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.Redis.Timeout,
		})
		limiter = adapter.NewRateLimiter(redisClient.RDB)
	}

	// 2. Lookup service over the compiled-in registry.
	svc := app.NewLookupService(app.LookupServiceConfig{
		Registry:        domain.DefaultRegistry(),
		RateLimiter:     limiter,
		RateLimitPerIP:  cfg.Lookup.RateLimitPerIP,
		RateLimitWindow: cfg.Lookup.RateLimitWindow,
		DefaultCountry:  cfg.Lookup.DefaultCountry,
		Logger:          logger,
	})

	// 3. Token validation (environment-dependent).
	validator := createValidator(cfg, logger)

	// 4. HTTP API behind the middleware chain.
	apiMux := http.NewServeMux()
	port.NewLookupHandler(svc, logger).Register(apiMux)
	mws := []port.Middleware{port.RequestID(), port.RequestLogger(logger)}
	if validator != nil {
		// Appended conditionally: a typed-nil *auth.Validator would not
		// compare equal to nil once boxed in the middleware's interface.
		mws = append(mws, port.BearerAuth(validator, logger))
	}
	deps.HTTPMux.Handle("/v1/", port.Chain(apiMux, mws...))

	logger.InfoContext(ctx, "lookup service initialized",
		slog.String("default_country", cfg.Lookup.DefaultCountry),
		slog.Int("countries", domain.DefaultRegistry().Len()),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
		slog.Bool("rate_limiting", limiter != nil),
	)

	cleanup := func(_ context.Context) error {
		if redisClient != nil {
			return redisClient.Close()
		}
		return nil
	}
	return cleanup, nil
}

// createValidator returns the bearer-token validator, or nil when the
// API runs open (local development).
func createValidator(cfg *config.Config, logger *slog.Logger) *auth.Validator {
	if !cfg.Auth.Enabled {
		logger.Info("bearer auth disabled, API runs open")
		return nil
	}
	return auth.NewValidator(auth.ValidatorConfig{
		Secret:   cfg.Auth.Secret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
		Clock:    domain.RealClock{},
	})
}
