package ports

import (
	"context"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// MovieService defines the read side of the catalog.
type MovieService interface {
	List(ctx context.Context, filter domain.MovieFilter) ([]*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Genres(ctx context.Context) ([]string, error)
}

// SeedResult reports what a catalog seed did.
type SeedResult struct {
	Inserted int
	// AlreadySeeded is true when the catalog had movies and nothing was inserted.
	AlreadySeeded bool
}

// CatalogSeeder fills an empty catalog with the built-in movie set.
type CatalogSeeder interface {
	Seed(ctx context.Context) (*SeedResult, error)
}
