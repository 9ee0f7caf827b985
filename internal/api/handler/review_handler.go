package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/screenhub/movie-catalog/internal/core/ports"
)

type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /api/reviews/:movie_id.
//
// @Summary      List reviews of a movie
// @Tags         reviews
// @Produce      json
// @Param        movie_id  path     string  true  "Movie id"
// @Success      200       {array}  domain.Review
// @Router       /api/reviews/{movie_id} [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context(), c.Param("movie_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /api/reviews/:movie_id.
//
// @Summary      Review a movie
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        movie_id  path      string         true  "Movie id"
// @Param        body      body      reviewRequest  true  "Rating (1-5) and comment"
// @Success      200       {object}  messageResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/reviews/{movie_id} [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req reviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	_, err = h.reviews.Create(c.Request().Context(), ports.CreateReviewInput{
		Author:  user,
		MovieID: c.Param("movie_id"),
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Review created successfully"})
}
