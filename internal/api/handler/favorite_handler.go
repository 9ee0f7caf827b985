package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/core/ports"
)

type FavoriteHandler struct {
	favorites ports.FavoriteService
}

func NewFavoriteHandler(favorites ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// List handles GET /api/favorites.
//
// @Summary      List favorite movies
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Movie
// @Failure      401  {object}  errorResponse
// @Router       /api/favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	movies, err := h.favorites.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Add handles POST /api/favorites. Adding an existing favorite succeeds without change.
//
// @Summary      Add a favorite
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      favoriteRequest  true  "Movie to favorite"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/favorites [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req favoriteRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	added, err := h.favorites.Add(c.Request().Context(), user.ID, req.MovieID)
	if err != nil {
		return err
	}
	if !added {
		return c.JSON(http.StatusOK, messageResponse{Message: "Already in favorites"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Added to favorites"})
}

// Remove handles DELETE /api/favorites/:movie_id.
//
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        movie_id  path      string  true  "Movie id"
// @Success      200       {object}  messageResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/favorites/{movie_id} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.favorites.Remove(c.Request().Context(), user.ID, c.Param("movie_id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Removed from favorites"})
}
