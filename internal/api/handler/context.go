package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/api/middleware"
	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// currentUser returns the user injected by the Auth middleware. A missing user
// means the route was registered without the middleware; reject with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
