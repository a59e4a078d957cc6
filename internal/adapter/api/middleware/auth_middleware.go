package middleware

import (
	"github.com/labstack/echo/v4"

	"filesmanager/internal/usecase"
	"filesmanager/pkg/response"
)

// TokenHeader carries the opaque session token on every protected request.
const TokenHeader = "X-Token"

type AuthMiddleware struct {
	auth *usecase.AuthUseCase
}

func NewAuthMiddleware(auth *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate resolves the x-token header to a user id and stores it on
// the request context. Missing and unknown tokens both fail the same way.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(TokenHeader)

		userID, err := m.auth.ResolveUser(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("userID", userID)
		return next(c)
	}
}

// OptionalAuthenticate resolves the token when one is present but lets the
// request through either way. Content serving decides visibility itself.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(TokenHeader)
		if token != "" {
			if userID, err := m.auth.ResolveUser(c.Request().Context(), token); err == nil {
				c.Set("userID", userID)
			}
		}
		return next(c)
	}
}

// UserID returns the authenticated user id from the context, or "" for an
// anonymous request.
func UserID(c echo.Context) string {
	if id, ok := c.Get("userID").(string); ok {
		return id
	}
	return ""
}
