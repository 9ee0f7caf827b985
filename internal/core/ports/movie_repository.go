package ports

import (
	"context"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// MovieRepository defines persistence operations for the catalog.
type MovieRepository interface {
	// List returns movies matching filter, at most filter.Limit of them.
	List(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	// FindByIDs returns the movies that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Movie, error)
	// Genres returns every distinct genre tag, unsorted.
	Genres(ctx context.Context) ([]string, error)
	// UpdateRating overwrites the denormalized rating fields of a movie.
	UpdateRating(ctx context.Context, id string, avg float64, count int) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, movies []*domain.Movie) error
}
