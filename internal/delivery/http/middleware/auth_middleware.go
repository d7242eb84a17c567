// Package middleware provides the HTTP middleware for authentication
// and centralized error handling.
package middleware

import (
	"strings"

	"webshop/internal/delivery/http/response"
	domainerrors "webshop/internal/domain/errors"
	"webshop/internal/domain/service"
	"webshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// requesterKey is the echo.Context key holding the authenticated caller.
const requesterKey = "requester"

// AuthMiddleware validates bearer tokens and exposes the caller's
// identity to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token. Every failure mode
// answers with the same status so a caller cannot distinguish a missing
// header from a forged token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return unauthenticated(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthenticated(c)
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthenticated(c)
		}

		c.Set(requesterKey, &usecase.Requester{
			ID:   claims.UserID,
			Role: claims.Role,
		})

		return next(c)
	}
}

// RequesterFrom returns the caller identity set by Authenticate, or nil
// when the route was reached without it.
func RequesterFrom(c echo.Context) *usecase.Requester {
	if requester, ok := c.Get(requesterKey).(*usecase.Requester); ok {
		return requester
	}

	return nil
}

func unauthenticated(c echo.Context) error {
	appErr := domainerrors.ErrUnauthenticated

	return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}
