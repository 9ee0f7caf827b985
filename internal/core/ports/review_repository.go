package ports

import (
	"context"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// ReviewRepository persists movie reviews.
type ReviewRepository interface {
	// Create returns domain.ErrAlreadyReviewed if the author already reviewed the movie.
	Create(ctx context.Context, review *domain.Review) error
	// Exists reports whether userID has reviewed movieID.
	Exists(ctx context.Context, userID, movieID string) (bool, error)
	// ListByMovie returns up to limit reviews, newest first.
	ListByMovie(ctx context.Context, movieID string, limit int) ([]*domain.Review, error)
	// Ratings returns the rating of every review of movieID.
	Ratings(ctx context.Context, movieID string) ([]int, error)
}
