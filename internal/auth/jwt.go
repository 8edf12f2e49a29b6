// Package auth validates the bearer tokens that protect the lookup API.
// Tokens are symmetric (HS256) with a single shared secret; there is no
// key rotation and no token issuance here, clients obtain tokens out of
// band.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/numera-labs/phone-lookup-platform/internal/domain"
)

// ErrTokenExpired is returned when a validly signed token has expired.
// Callers can use errors.Is to check for this condition without importing
// the JWT library directly.
var ErrTokenExpired = jwt.ErrTokenExpired

// Validator validates HS256-signed access tokens.
type Validator struct {
	secret   []byte
	issuer   string
	audience string
	clock    domain.Clock
}

// ValidatorConfig holds configuration for creating a Validator.
type ValidatorConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Clock    domain.Clock
}

// NewValidator creates a new token validator.
func NewValidator(cfg ValidatorConfig) *Validator {
	clock := cfg.Clock
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Validator{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		clock:    clock,
	}
}

// ValidateAccessToken parses and fully validates a bearer token,
// returning its claims.
func (v *Validator) ValidateAccessToken(tokenString string) (*Claims, error) {
	var claims Claims

	opts := []jwt.ParserOption{
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(v.clock.Now),
		jwt.WithExpirationRequired(),
	}

	_, err := jwt.ParseWithClaims(tokenString, &claims, v.keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("missing sub claim: %w", domain.ErrUnauthorized)
	}

	return &claims, nil
}

func (v *Validator) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return v.secret, nil
}
