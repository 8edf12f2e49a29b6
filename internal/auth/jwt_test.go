package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numera-labs/phone-lookup-platform/internal/auth"
	"github.com/numera-labs/phone-lookup-platform/internal/domain/domaintest"
)

const testSecret = "test-secret-0123456789abcdef"

func newTestValidator(t *testing.T) (*auth.Validator, *domaintest.FakeClock) {
	t.Helper()
	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	clock := domaintest.NewFakeClock(start)

	validator := auth.NewValidator(auth.ValidatorConfig{
		Secret:   testSecret,
		Issuer:   "phone-lookup-platform",
		Audience: "lookup-api",
		Clock:    clock,
	})
	return validator, clock
}

type signOverrides struct {
	secret   string
	issuer   string
	audience string
	subject  string
	noExpiry bool
}

func signTestToken(t *testing.T, issuedAt time.Time, ttl time.Duration, o signOverrides) string {
	t.Helper()

	secret := testSecret
	if o.secret != "" {
		secret = o.secret
	}
	issuer := "phone-lookup-platform"
	if o.issuer != "" {
		issuer = o.issuer
	}
	audience := "lookup-api"
	if o.audience != "" {
		audience = o.audience
	}
	subject := "client_123"
	if o.subject != "" {
		subject = o.subject
	}
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Audience: jwt.ClaimStrings{audience},
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
		Scope: "lookup",
	}
	if !o.noExpiry {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateAccessToken(t *testing.T) {
	t.Run("valid token succeeds", func(t *testing.T) {
		validator, clock := newTestValidator(t)
		token := signTestToken(t, clock.Now(), time.Hour, signOverrides{})

		claims, err := validator.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, "client_123", claims.Subject)
		assert.Equal(t, "lookup", claims.Scope)
	})

	t.Run("expired token fails", func(t *testing.T) {
		validator, clock := newTestValidator(t)
		token := signTestToken(t, clock.Now(), time.Hour, signOverrides{})

		clock.Advance(2 * time.Hour)
		_, err := validator.ValidateAccessToken(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, auth.ErrTokenExpired))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		validator, clock := newTestValidator(t)
		token := signTestToken(t, clock.Now(), time.Hour, signOverrides{secret: "some-other-secret"})

		_, err := validator.ValidateAccessToken(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
	})

	t.Run("wrong issuer fails", func(t *testing.T) {
		validator, clock := newTestValidator(t)
		token := signTestToken(t, clock.Now(), time.Hour, signOverrides{issuer: "someone-else"})

		_, err := validator.ValidateAccessToken(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, jwt.ErrTokenInvalidIssuer))
	})

	t.Run("wrong audience fails", func(t *testing.T) {
		validator, clock := newTestValidator(t)
		token := signTestToken(t, clock.Now(), time.Hour, signOverrides{audience: "other-api"})

		_, err := validator.ValidateAccessToken(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, jwt.ErrTokenInvalidAudience))
	})

	t.Run("missing expiry fails", func(t *testing.T) {
		validator, clock := newTestValidator(t)
		token := signTestToken(t, clock.Now(), time.Hour, signOverrides{noExpiry: true})

		_, err := validator.ValidateAccessToken(token)
		require.Error(t, err)
	})

	t.Run("none algorithm is rejected", func(t *testing.T) {
		validator, clock := newTestValidator(t)

		claims := auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "phone-lookup-platform",
				Audience:  jwt.ClaimStrings{"lookup-api"},
				Subject:   "client_123",
				IssuedAt:  jwt.NewNumericDate(clock.Now()),
				ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = validator.ValidateAccessToken(token)
		require.Error(t, err)
	})

	t.Run("malformed token fails", func(t *testing.T) {
		validator, _ := newTestValidator(t)

		_, err := validator.ValidateAccessToken("not-a-jwt")
		require.Error(t, err)
		assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
	})
}
