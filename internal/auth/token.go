package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of JWT claims surfaced for diagnostics.
type TokenClaims struct {
	Issuer    string
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// PeekClaims decodes claims from an access token without verifying its
// signature. Most Google access tokens are opaque ("ya29...") and carry no
// claims; self-signed service account JWTs do. Display only, never trust.
func PeekClaims(accessToken string) (*TokenClaims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, false
	}

	tc := &TokenClaims{}
	if iss, err := claims.GetIssuer(); err == nil {
		tc.Issuer = iss
	}
	if sub, err := claims.GetSubject(); err == nil {
		tc.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		tc.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time
	}
	return tc, true
}
