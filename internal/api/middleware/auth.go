package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// userKey is the echo context key holding the authenticated *domain.User.
const userKey = "user"

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth validates the bearer token, loads the user and injects it into context.
// Every failure is a 401 carrying the authenticator's message.
func Auth(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := authenticator.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				if msg, ok := authMessage(err); ok {
					return echo.NewHTTPError(http.StatusUnauthorized, msg).SetInternal(err)
				}
				return err
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user set by Auth, or nil on unauthenticated routes.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userKey).(*domain.User)
	return user
}

// SetUser injects user as if Auth had run. Used by handler tests.
func SetUser(c echo.Context, user *domain.User) {
	c.Set(userKey, user)
}

// authMessage reports the client-facing message for token and account
// failures. Other errors (store outages) are not authentication failures.
func authMessage(err error) (string, bool) {
	for _, target := range []error{domain.ErrExpiredToken, domain.ErrMalformedToken, domain.ErrUnauthenticated} {
		if errors.Is(err, target) {
			return target.Error(), true
		}
	}
	return "", false
}
