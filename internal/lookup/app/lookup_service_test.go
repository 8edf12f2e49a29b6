package app_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
	"github.com/numera-labs/phone-lookup-platform/internal/lookup/app"
)

// fakeLimiter records calls and returns a scripted verdict.
type fakeLimiter struct {
	allowed bool
	err     error

	calls     int
	lastKey   string
	lastLimit int
	lastWin   int
}

func (f *fakeLimiter) CheckAndIncrement(_ context.Context, key string, limit, windowSeconds int) (bool, error) {
	f.calls++
	f.lastKey = key
	f.lastLimit = limit
	f.lastWin = windowSeconds
	return f.allowed, f.err
}

type testHarness struct {
	svc     *app.LookupService
	limiter *fakeLimiter
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	limiter := &fakeLimiter{allowed: true}
	svc := app.NewLookupService(app.LookupServiceConfig{
		Registry:        domain.DefaultRegistry(),
		RateLimiter:     limiter,
		RateLimitPerIP:  10,
		RateLimitWindow: time.Minute,
		DefaultCountry:  "EG",
		Logger:          slog.New(slog.DiscardHandler),
	})
	return &testHarness{svc: svc, limiter: limiter}
}

func TestLookupService_Parse(t *testing.T) {
	const clientIP = "203.0.113.9"

	t.Run("valid number with explicit default country", func(t *testing.T) {
		h := newTestHarness(t)

		parsed, err := h.svc.Parse(context.Background(), "+201014348488", "US", clientIP)
		require.NoError(t, err)
		assert.Equal(t, "EG", parsed.CountryCode)
		assert.Equal(t, "1014348488", parsed.NationalNumber)
		assert.True(t, parsed.IsValid())
	})

	t.Run("empty default country falls back to the configured default", func(t *testing.T) {
		h := newTestHarness(t)

		parsed, err := h.svc.Parse(context.Background(), "01014348488", "", clientIP)
		require.NoError(t, err)
		assert.Equal(t, "EG", parsed.CountryCode)
	})

	t.Run("shape-invalid number is returned, not an error", func(t *testing.T) {
		h := newTestHarness(t)

		parsed, err := h.svc.Parse(context.Background(), "123", "EG", clientIP)
		require.NoError(t, err)
		assert.False(t, parsed.IsValid())
		assert.ErrorIs(t, parsed.Err, domain.ErrInvalidNationalNumber)
		assert.Equal(t, "EG", parsed.CountryCode)
	})

	t.Run("empty input maps to ErrEmptyInput", func(t *testing.T) {
		h := newTestHarness(t)

		_, err := h.svc.Parse(context.Background(), "   ", "EG", clientIP)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})

	t.Run("unknown default country maps to ErrUnknownCountry", func(t *testing.T) {
		h := newTestHarness(t)

		_, err := h.svc.Parse(context.Background(), "0101234567", "XX", clientIP)
		assert.ErrorIs(t, err, domain.ErrUnknownCountry)
	})

	t.Run("limiter is consulted with the per-IP key and window", func(t *testing.T) {
		h := newTestHarness(t)

		_, err := h.svc.Parse(context.Background(), "+201014348488", "", clientIP)
		require.NoError(t, err)
		assert.Equal(t, 1, h.limiter.calls)
		assert.Equal(t, "lookup:ip:"+clientIP, h.limiter.lastKey)
		assert.Equal(t, 10, h.limiter.lastLimit)
		assert.Equal(t, 60, h.limiter.lastWin)
	})

	t.Run("over the limit returns ErrIPRateLimited", func(t *testing.T) {
		h := newTestHarness(t)
		h.limiter.allowed = false

		_, err := h.svc.Parse(context.Background(), "+201014348488", "", clientIP)
		assert.ErrorIs(t, err, domain.ErrIPRateLimited)
	})

	t.Run("limiter failure is fail-open", func(t *testing.T) {
		h := newTestHarness(t)
		h.limiter.err = errors.New("redis: connection refused")

		parsed, err := h.svc.Parse(context.Background(), "+201014348488", "", clientIP)
		require.NoError(t, err)
		assert.True(t, parsed.IsValid())
	})

	t.Run("empty client IP skips the limiter", func(t *testing.T) {
		h := newTestHarness(t)
		h.limiter.allowed = false

		_, err := h.svc.Parse(context.Background(), "+201014348488", "", "")
		require.NoError(t, err)
		assert.Equal(t, 0, h.limiter.calls)
	})

	t.Run("nil limiter disables limiting", func(t *testing.T) {
		svc := app.NewLookupService(app.LookupServiceConfig{
			Registry:       domain.DefaultRegistry(),
			DefaultCountry: "EG",
			Logger:         slog.New(slog.DiscardHandler),
		})

		parsed, err := svc.Parse(context.Background(), "+201014348488", "", clientIP)
		require.NoError(t, err)
		assert.True(t, parsed.IsValid())
	})
}

func TestLookupService_Detect(t *testing.T) {
	const clientIP = "203.0.113.9"

	t.Run("dial code hit", func(t *testing.T) {
		h := newTestHarness(t)

		rec, err := h.svc.Detect(context.Background(), "+2010", clientIP)
		require.NoError(t, err)
		assert.Equal(t, "EG", rec.ISOCode)
	})

	t.Run("prefix hint hit without a plus", func(t *testing.T) {
		h := newTestHarness(t)

		rec, err := h.svc.Detect(context.Background(), "01014348488", clientIP)
		require.NoError(t, err)
		assert.Equal(t, "EG", rec.ISOCode)
	})

	t.Run("miss maps to ErrUnknownCountry", func(t *testing.T) {
		h := newTestHarness(t)

		_, err := h.svc.Detect(context.Background(), "abc", clientIP)
		assert.ErrorIs(t, err, domain.ErrUnknownCountry)
	})

	t.Run("over the limit returns ErrIPRateLimited", func(t *testing.T) {
		h := newTestHarness(t)
		h.limiter.allowed = false

		_, err := h.svc.Detect(context.Background(), "+2010", clientIP)
		assert.ErrorIs(t, err, domain.ErrIPRateLimited)
	})
}

func TestLookupService_Countries(t *testing.T) {
	t.Run("registry order is preserved", func(t *testing.T) {
		h := newTestHarness(t)

		views := h.svc.Countries(context.Background(), "")
		require.Equal(t, domain.DefaultRegistry().Len(), len(views))
		assert.Equal(t, "EG", views[0].ISOCode)
	})

	t.Run("lang en selects English names", func(t *testing.T) {
		h := newTestHarness(t)

		views := h.svc.Countries(context.Background(), "en")
		assert.Equal(t, "Egypt", views[0].Name)
		assert.Equal(t, views[0].EnglishName, views[0].Name)
	})

	t.Run("any other lang selects local names", func(t *testing.T) {
		h := newTestHarness(t)

		for _, lang := range []string{"", "ar", "fr"} {
			views := h.svc.Countries(context.Background(), lang)
			assert.Equal(t, views[0].LocalName, views[0].Name, "lang=%q", lang)
		}
	})

	t.Run("lang is matched case-insensitively", func(t *testing.T) {
		h := newTestHarness(t)

		views := h.svc.Countries(context.Background(), "EN")
		assert.Equal(t, views[0].EnglishName, views[0].Name)
	})

	t.Run("lengths are populated from each pattern", func(t *testing.T) {
		h := newTestHarness(t)

		for _, v := range h.svc.Countries(context.Background(), "en") {
			assert.GreaterOrEqual(t, v.MinLength, 1, "country %s", v.ISOCode)
			assert.LessOrEqual(t, v.MinLength, v.MaxLength, "country %s", v.ISOCode)
		}
	})
}

func TestLookupService_Country(t *testing.T) {
	t.Run("case-insensitive hit", func(t *testing.T) {
		h := newTestHarness(t)

		rec, err := h.svc.Country(context.Background(), "eg")
		require.NoError(t, err)
		assert.Equal(t, "EG", rec.ISOCode)
	})

	t.Run("miss maps to ErrNotFound", func(t *testing.T) {
		h := newTestHarness(t)

		_, err := h.svc.Country(context.Background(), "ZZ")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
