package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/screenhub/movie-catalog/internal/core/domain"
	"github.com/screenhub/movie-catalog/internal/core/ports"
)

const (
	DefaultMovieLimit = 100
	MaxMovieLimit     = 1000
)

// MovieService serves catalog reads.
type MovieService struct {
	repo         ports.MovieRepository
	defaultLimit int
	maxLimit     int
}

// NewMovieService returns a MovieService. Non-positive limits fall back to
// DefaultMovieLimit and MaxMovieLimit.
func NewMovieService(repo ports.MovieRepository, defaultLimit, maxLimit int) *MovieService {
	if maxLimit <= 0 {
		maxLimit = MaxMovieLimit
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultMovieLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return &MovieService{repo: repo, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// List applies the search and genre filters with a bounded result size.
func (s *MovieService) List(ctx context.Context, f domain.MovieFilter) ([]*domain.Movie, error) {
	switch {
	case f.Limit <= 0:
		f.Limit = s.defaultLimit
	case f.Limit > s.maxLimit:
		f.Limit = s.maxLimit
	}

	movies, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.repo.FindByID(ctx, id)
}

// Genres returns the distinct genre tags across the catalog, sorted.
func (s *MovieService) Genres(ctx context.Context) ([]string, error) {
	genres, err := s.repo.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("genres: %w", err)
	}

	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	sort.Strings(out)
	return out, nil
}

// moviesInOrder fetches movies by id and returns them in the order of ids,
// skipping ids whose movie no longer exists.
func moviesInOrder(ctx context.Context, repo ports.MovieRepository, ids []string) ([]*domain.Movie, error) {
	if len(ids) == 0 {
		return []*domain.Movie{}, nil
	}

	found, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Movie, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	out := make([]*domain.Movie, 0, len(found))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}
