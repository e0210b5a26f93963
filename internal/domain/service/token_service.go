package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"` // Parsed from the registered "sub" claim.
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the identity provider.
// Token issuance lives outside this service.
type TokenService interface {
	// ValidateToken checks the signature, expiry and subject of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
