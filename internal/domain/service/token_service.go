package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims this service relies on.
// Tokens are issued by the external auth collaborator; the subject is the opaque user ID.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService validates bearer tokens.
type TokenService interface {
	// ValidateToken checks the signature and expiry of an access token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
