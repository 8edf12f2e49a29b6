// Package config provides configuration loading using koanf.
// Precedence: environment variables over compiled defaults.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
)

// Config holds all service configuration.
type Config struct {
	// Environment identifier: "local", "dev", "prod"
	Environment string `koanf:"environment"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	// Service configuration
	Lookup LookupConfig `koanf:"lookup"`

	// Infrastructure configuration
	Redis RedisConfig `koanf:"redis"`
	Auth  AuthConfig  `koanf:"auth"`

	// OpenTelemetry configuration
	OTEL OTELConfig `koanf:"otel"`
}

// LookupConfig holds lookup service configuration.
type LookupConfig struct {
	HTTPPort int `koanf:"http_port"`
	GRPCPort int `koanf:"grpc_port"`

	// DefaultCountry is the ISO code assumed for bare national numbers
	// when a request carries no default of its own.
	DefaultCountry string `koanf:"default_country"`

	// RateLimitPerIP bounds lookups per client IP per RateLimitWindow.
	// 0 disables rate limiting (and the Redis dependency with it).
	RateLimitPerIP  int           `koanf:"rate_limit_per_ip"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	Timeout  time.Duration `koanf:"timeout"`
}

// AuthConfig holds API authentication configuration.
type AuthConfig struct {
	// Enabled toggles bearer-token checks on the HTTP API. Local
	// development runs open; shared environments require tokens.
	Enabled bool `koanf:"enabled"`

	// Secret is the HMAC signing secret for access tokens. Required
	// whenever Enabled is true.
	Secret   string `koanf:"secret"`
	Issuer   string `koanf:"issuer"`
	Audience string `koanf:"audience"`
}

// OTELConfig holds OpenTelemetry configuration.
type OTELConfig struct {
	Endpoint    string `koanf:"endpoint"` // Empty disables OTLP export
	ServiceName string `koanf:"service_name"`
}

// defaults returns a Config with compiled default values.
func defaults() *Config {
	return &Config{
		Environment: "local",
		LogLevel:    "info",
		LogFormat:   "json",

		Lookup: LookupConfig{
			HTTPPort:        8080,
			GRPCPort:        9090,
			DefaultCountry:  "EG",
			RateLimitPerIP:  domain.LookupRateLimitPerIP,
			RateLimitWindow: domain.LookupRateLimitWindow,
		},

		Redis: RedisConfig{
			Addr:    "localhost:6379",
			DB:      0,
			Timeout: domain.RedisTimeout,
		},

		Auth: AuthConfig{
			Issuer:   "phone-lookup-platform",
			Audience: "lookup-api",
		},
	}
}

// Load loads configuration following the precedence:
// 1. Environment variables (highest)
// 2. Compiled defaults (lowest)
//
// Required keys missing cause startup failure; optional keys fall back
// to defaults.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	// Start with compiled defaults
	cfg := defaults()

	// Load environment variables
	// Prefix: none (we use full names like LOOKUP_HTTP_PORT)
	err := k.Load(env.Provider("", ".", envToKoanfKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// Unmarshal into config struct
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Validate required fields
	if err := validateRequired(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// configSections are the nested config groups addressable from the
// environment. Only the section prefix maps to a path separator; the
// rest of the key is the leaf name verbatim, so multi-word leaves keep
// their underscores (LOOKUP_HTTP_PORT -> lookup.http_port, not
// lookup.http.port). Top-level keys like LOG_LEVEL pass through whole.
var configSections = []string{"lookup", "redis", "auth", "otel"}

func envToKoanfKey(s string) string {
	s = strings.ToLower(s)
	for _, section := range configSections {
		if strings.HasPrefix(s, section+"_") {
			return section + "." + s[len(section)+1:]
		}
	}
	return s
}

// validateRequired checks that required configuration is present.
func validateRequired(cfg *Config) error {
	if cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		return fmt.Errorf("%w: auth.secret", domain.ErrConfigRequired)
	}
	if cfg.Lookup.RateLimitPerIP > 0 && cfg.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr", domain.ErrConfigRequired)
	}
	if cfg.Lookup.DefaultCountry == "" {
		return fmt.Errorf("%w: lookup.default_country", domain.ErrConfigRequired)
	}
	return nil
}

// IsLocal returns true if running in local development environment.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

// IsProd returns true if running in production environment.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
