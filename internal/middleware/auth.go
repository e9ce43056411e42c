package middleware

import (
	"errors"

	apperrors "finhub/internal/errors"
	"finhub/internal/handlers"
	"finhub/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// AuthInfoContextKey is the context key holding the connector authInfo
	// block for an authenticated request.
	AuthInfoContextKey = "auth_info"
)

// RequireSession creates a middleware that requires a valid session token.
// On success the projected authInfo block is stored in the request context
// for the secured connector handler to stamp onto its response.
func RequireSession(sessionService services.SessionServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			token, err := sessionService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			claims, err := sessionService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			c.Set(AuthInfoContextKey, sessionService.AuthInfo(claims))

			return next(c)
		}
	}
}
