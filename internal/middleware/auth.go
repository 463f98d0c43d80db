package middleware

import (
	stderrors "errors"
	"log/slog"
	"strings"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader carries integration keys.
const APIKeyHeader = "X-API-Key"

// RequireAuth creates a middleware that requires a valid bearer token and
// resolves its subject to a user, provisioning the user on first sight.
func RequireAuth(tokenService services.TokenServiceInterface, userService services.UserServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			user, err := userService.EnsureUser(c.Request().Context(), claims)
			if err != nil {
				if stderrors.Is(err, services.ErrInvalidSubject) {
					return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
				}
				slog.ErrorContext(c.Request().Context(), "failed to resolve token user",
					"trace_id", GetTraceID(c),
					"error", err.Error(),
				)
				return handlers.SendSystemError(c, err)
			}

			c.Set(handlers.UserIDContextKey, user.ID)
			c.Set(handlers.UserEmailContextKey, user.Email)
			c.Set(handlers.UserContextKey, user)

			return next(c)
		}
	}
}

// RequireAPIKey authenticates integration clients by the X-API-Key header
// and acts as the key's owner.
func RequireAPIKey(integrationService services.IntegrationServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secret := strings.TrimSpace(c.Request().Header.Get(APIKeyHeader))
			if secret == "" {
				return handlers.SendError(c, errors.AuthMissingAPIKey)
			}

			key, err := integrationService.Authenticate(c.Request().Context(), secret)
			if err != nil {
				switch {
				case stderrors.Is(err, services.ErrAPIKeyRevoked):
					return handlers.SendError(c, errors.IntegrationKeyRevoked)
				case stderrors.Is(err, services.ErrInvalidAPIKey):
					return handlers.SendError(c, errors.AuthInvalidAPIKey)
				default:
					return handlers.SendSystemError(c, err)
				}
			}

			c.Set(handlers.UserIDContextKey, key.UserID)
			c.Set(handlers.APIKeyIDContextKey, key.ID)

			return next(c)
		}
	}
}
