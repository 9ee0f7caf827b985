package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/core/domain"
	"github.com/screenhub/movie-catalog/internal/core/ports"
)

// MovieHandler serves the public catalog.
type MovieHandler struct {
	movies ports.MovieService
}

func NewMovieHandler(movies ports.MovieService) *MovieHandler {
	return &MovieHandler{movies: movies}
}

// List handles GET /api/movies.
//
// @Summary      List movies
// @Tags         movies
// @Produce      json
// @Param        search  query     string  false  "Case-insensitive match on title or description"
// @Param        genre   query     string  false  "Genre tag"
// @Param        limit   query     int     false  "Maximum number of movies"
// @Success      200     {array}   domain.Movie
// @Failure      400     {object}  errorResponse
// @Router       /api/movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	filter := domain.MovieFilter{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Genre:  strings.TrimSpace(c.QueryParam("genre")),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		filter.Limit = limit
	}

	movies, err := h.movies.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Get handles GET /api/movies/:id.
//
// @Summary      Get a movie
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie id"
// @Success      200  {object}  domain.Movie
// @Failure      404  {object}  errorResponse
// @Router       /api/movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.movies.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Genres handles GET /api/genres.
//
// @Summary      List genres
// @Tags         movies
// @Produce      json
// @Success      200  {object}  genresResponse
// @Router       /api/genres [get]
func (h *MovieHandler) Genres(c echo.Context) error {
	genres, err := h.movies.Genres(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genresResponse{Genres: genres})
}
