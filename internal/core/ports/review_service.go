package ports

import (
	"context"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// CreateReviewInput carries a new review. The author comes from the authenticated user.
type CreateReviewInput struct {
	Author  *domain.User
	MovieID string
	Rating  int
	Comment string
}

// ReviewService manages reviews and keeps movie ratings in sync.
type ReviewService interface {
	List(ctx context.Context, movieID string) ([]*domain.Review, error)
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
}
