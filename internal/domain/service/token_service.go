package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of API tokens. The subject names the
// operator or system the token was issued to.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the tokens guarding mutating catalog endpoints.
type TokenService interface {
	// GenerateToken creates a signed token for subject with the given roles.
	GenerateToken(subject string, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
