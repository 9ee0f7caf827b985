package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/screenhub/movie-catalog/internal/core/domain"
	"github.com/screenhub/movie-catalog/internal/core/ports"
)

//go:embed catalog_seed.json
var catalogSeed []byte

// CatalogSeeder loads the built-in movie set into an empty catalog.
type CatalogSeeder struct {
	repo ports.MovieRepository
	log  zerolog.Logger
}

func NewCatalogSeeder(repo ports.MovieRepository, log zerolog.Logger) *CatalogSeeder {
	return &CatalogSeeder{repo: repo, log: log}
}

// Seed inserts the built-in movies unless the catalog already has any.
func (s *CatalogSeeder) Seed(ctx context.Context) (*ports.SeedResult, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed: count movies: %w", err)
	}
	if n > 0 {
		return &ports.SeedResult{AlreadySeeded: true}, nil
	}

	movies, err := seedMovies(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if err := s.repo.InsertMany(ctx, movies); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	s.log.Info().Int("movies", len(movies)).Msg("catalog seeded")
	return &ports.SeedResult{Inserted: len(movies)}, nil
}

// seedMovies decodes the embedded catalog and stamps fresh ids and creation times.
func seedMovies(now time.Time) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	if err := json.Unmarshal(catalogSeed, &movies); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	for _, m := range movies {
		m.ID = uuid.NewString()
		m.CreatedAt = now
	}
	return movies, nil
}
