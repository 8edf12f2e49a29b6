package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numera-labs/phone-lookup-platform/internal/config"
	"github.com/numera-labs/phone-lookup-platform/internal/domain"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	// Service defaults
	assert.Equal(t, 8080, cfg.Lookup.HTTPPort)
	assert.Equal(t, 9090, cfg.Lookup.GRPCPort)
	assert.Equal(t, "EG", cfg.Lookup.DefaultCountry)
	assert.Equal(t, domain.LookupRateLimitPerIP, cfg.Lookup.RateLimitPerIP)
	assert.Equal(t, domain.LookupRateLimitWindow, cfg.Lookup.RateLimitWindow)

	// Infrastructure defaults
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, domain.RedisTimeout, cfg.Redis.Timeout)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "phone-lookup-platform", cfg.Auth.Issuer)
	assert.Equal(t, "lookup-api", cfg.Auth.Audience)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LOOKUP_HTTP_PORT", "18080")
	t.Setenv("LOOKUP_DEFAULT_COUNTRY", "SA")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 18080, cfg.Lookup.HTTPPort)
	assert.Equal(t, "SA", cfg.Lookup.DefaultCountry)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// Multi-word leaf keys must keep their underscores when the env name is
// translated to a koanf path; only the section prefix is a separator.
func TestEnvOverridesMultiWordLeaves(t *testing.T) {
	t.Setenv("LOOKUP_GRPC_PORT", "19090")
	t.Setenv("LOOKUP_RATE_LIMIT_PER_IP", "5")
	t.Setenv("LOOKUP_RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("OTEL_ENDPOINT", "collector:4317")

	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 19090, cfg.Lookup.GRPCPort)
	assert.Equal(t, 5, cfg.Lookup.RateLimitPerIP)
	assert.Equal(t, 30*time.Second, cfg.Lookup.RateLimitWindow)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "collector:4317", cfg.OTEL.Endpoint)
}

func TestValidateRequired(t *testing.T) {
	t.Run("auth enabled requires a secret", func(t *testing.T) {
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("AUTH_SECRET", "")

		_, err := config.Load(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfigRequired)
	})

	t.Run("auth enabled with secret passes", func(t *testing.T) {
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("AUTH_SECRET", "test-secret-32-bytes-long-enough")

		cfg, err := config.Load(context.Background())

		require.NoError(t, err)
		assert.True(t, cfg.Auth.Enabled)
	})

	t.Run("rate limiting requires a redis address", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "")

		_, err := config.Load(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfigRequired)
	})

	t.Run("disabling rate limiting drops the redis requirement", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("LOOKUP_RATE_LIMIT_PER_IP", "0")

		_, err := config.Load(context.Background())

		require.NoError(t, err)
	})
}

func TestIsLocal(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"local returns true", "local", true},
		{"prod returns false", "prod", false},
		{"dev returns false", "dev", false},
		{"empty returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Environment: tt.env}

			assert.Equal(t, tt.want, cfg.IsLocal())
		})
	}
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"prod returns true", "prod", true},
		{"local returns false", "local", false},
		{"dev returns false", "dev", false},
		{"empty returns false", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Environment: tt.env}

			assert.Equal(t, tt.want, cfg.IsProd())
		})
	}
}
