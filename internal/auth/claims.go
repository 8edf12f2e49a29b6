package auth

import "github.com/golang-jwt/jwt/v5"

// Claims represents the JWT claims carried by API access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}
