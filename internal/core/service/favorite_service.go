package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/screenhub/movie-catalog/internal/core/domain"
	"github.com/screenhub/movie-catalog/internal/core/ports"
	"github.com/screenhub/movie-catalog/internal/pkg/metrics"
)

// maxLibraryItems bounds the per-user fetch of favorites.
const maxLibraryItems = 1000

type FavoriteService struct {
	favorites ports.FavoriteRepository
	movies    ports.MovieRepository
	guard     SubmissionGuard
	log       zerolog.Logger
}

// NewFavoriteService returns a FavoriteService. guard may be nil.
func NewFavoriteService(favorites ports.FavoriteRepository, movies ports.MovieRepository, guard SubmissionGuard, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{favorites: favorites, movies: movies, guard: guard, log: log}
}

// Add favorites movieID for userID. Adding an existing favorite is a no-op
// that reports added=false.
//
// added=false is also returned when a concurrent Add for the same pair holds
// the submission guard. That answer is given before the other request's
// insert completes; if that insert fails, the movie is not a favorite and the
// client must add it again.
func (s *FavoriteService) Add(ctx context.Context, userID, movieID string) (bool, error) {
	if _, err := s.movies.FindByID(ctx, movieID); err != nil {
		return false, err
	}

	_, err := s.favorites.Find(ctx, userID, movieID)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, domain.ErrFavoriteNotFound):
		return false, fmt.Errorf("add favorite: %w", err)
	}

	release, ok := claim(ctx, s.guard, s.log, scopeFavorite, userID, movieID)
	if !ok {
		return false, nil
	}
	defer release()

	fav := &domain.Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		MovieID:   movieID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.favorites.Create(ctx, fav); err != nil {
		if errors.Is(err, domain.ErrAlreadyFavorited) {
			return false, nil
		}
		return false, fmt.Errorf("add favorite: %w", err)
	}

	metrics.FavoritesChangedTotal.WithLabelValues("add").Inc()
	return true, nil
}

// List returns the user's favorite movies, most recently favorited first.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]*domain.Movie, error) {
	favs, err := s.favorites.ListByUser(ctx, userID, maxLibraryItems)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	ids := make([]string, len(favs))
	for i, f := range favs {
		ids[i] = f.MovieID
	}

	movies, err := moviesInOrder(ctx, s.movies, ids)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return movies, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, movieID string) error {
	deleted, err := s.favorites.Delete(ctx, userID, movieID)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	if !deleted {
		return domain.ErrFavoriteNotFound
	}

	metrics.FavoritesChangedTotal.WithLabelValues("remove").Inc()
	return nil
}

// claim takes the submission guard for (scope, user, movie). ok is false only
// when another request holds the claim; guard failures are logged and ignored
// because unique indexes still reject duplicates.
func claim(ctx context.Context, guard SubmissionGuard, log zerolog.Logger, scope, userID, movieID string) (release func(), ok bool) {
	noop := func() {}
	if guard == nil {
		return noop, true
	}

	acquired, err := guard.Acquire(ctx, scope, userID, movieID)
	if err != nil {
		log.Warn().Err(err).Str("scope", scope).Str("movie_id", movieID).Msg("submission guard unavailable, proceeding")
		return noop, true
	}
	if !acquired {
		metrics.GuardRejectionsTotal.WithLabelValues(scope).Inc()
		return noop, false
	}

	return func() {
		if err := guard.Release(context.WithoutCancel(ctx), scope, userID, movieID); err != nil {
			log.Warn().Err(err).Str("scope", scope).Str("movie_id", movieID).Msg("failed to release submission guard")
		}
	}, true
}
