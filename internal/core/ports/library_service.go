package ports

import (
	"context"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// FavoriteService manages a user's favorite movies.
type FavoriteService interface {
	// Add favorites a movie. added is false when it was already a favorite.
	Add(ctx context.Context, userID, movieID string) (added bool, err error)
	List(ctx context.Context, userID string) ([]*domain.Movie, error)
	Remove(ctx context.Context, userID, movieID string) error
}

// WatchHistoryInput records a viewing of a movie.
type WatchHistoryInput struct {
	UserID   string
	MovieID  string
	Progress int
}

// WatchHistoryService manages a user's viewing history.
type WatchHistoryService interface {
	Record(ctx context.Context, input WatchHistoryInput) error
	List(ctx context.Context, userID string) ([]*domain.Movie, error)
}
