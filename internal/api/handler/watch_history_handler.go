package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/core/ports"
)

type WatchHistoryHandler struct {
	history ports.WatchHistoryService
}

func NewWatchHistoryHandler(history ports.WatchHistoryService) *WatchHistoryHandler {
	return &WatchHistoryHandler{history: history}
}

// List handles GET /api/watch-history.
//
// @Summary      List recently watched movies
// @Tags         watch-history
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Movie
// @Failure      401  {object}  errorResponse
// @Router       /api/watch-history [get]
func (h *WatchHistoryHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	movies, err := h.history.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Record handles POST /api/watch-history.
//
// @Summary      Record viewing progress
// @Tags         watch-history
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      watchHistoryRequest  true  "Movie and progress (0-100)"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/watch-history [post]
func (h *WatchHistoryHandler) Record(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req watchHistoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	err = h.history.Record(c.Request().Context(), ports.WatchHistoryInput{
		UserID:   user.ID,
		MovieID:  req.MovieID,
		Progress: req.Progress,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Watch history updated"})
}
