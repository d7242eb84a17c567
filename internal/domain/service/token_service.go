// Package service declares domain service contracts implemented by the
// infrastructure layer.
package service

import (
	"time"

	"webshop/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Token issuance flows (login, refresh) live in an external identity
// service; this contract only covers what the transport boundary needs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user.
	GenerateAccessToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string and returns
	// its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
