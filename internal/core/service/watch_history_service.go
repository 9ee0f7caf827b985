package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/screenhub/movie-catalog/internal/core/domain"
	"github.com/screenhub/movie-catalog/internal/core/ports"
	"github.com/screenhub/movie-catalog/internal/pkg/metrics"
)

// maxHistoryItems bounds the watch history listing.
const maxHistoryItems = 50

type WatchHistoryService struct {
	history ports.WatchHistoryRepository
	movies  ports.MovieRepository
	now     func() time.Time
}

func NewWatchHistoryService(history ports.WatchHistoryRepository, movies ports.MovieRepository) *WatchHistoryService {
	return &WatchHistoryService{history: history, movies: movies, now: time.Now}
}

// Record stores a viewing of the movie. Recording the same movie again
// refreshes the existing entry instead of adding one.
func (s *WatchHistoryService) Record(ctx context.Context, in ports.WatchHistoryInput) error {
	if _, err := s.movies.FindByID(ctx, in.MovieID); err != nil {
		return err
	}
	if in.Progress < domain.MinProgress || in.Progress > domain.MaxProgress {
		return domain.ErrInvalidProgress
	}

	entry := &domain.WatchHistoryEntry{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		MovieID:   in.MovieID,
		WatchedAt: s.now().UTC(),
		Progress:  in.Progress,
	}
	if err := s.history.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("record watch history: %w", err)
	}

	metrics.WatchHistoryRecordedTotal.Inc()
	return nil
}

// List returns up to 50 watched movies, most recent first.
func (s *WatchHistoryService) List(ctx context.Context, userID string) ([]*domain.Movie, error) {
	entries, err := s.history.ListByUser(ctx, userID, maxHistoryItems)
	if err != nil {
		return nil, fmt.Errorf("list watch history: %w", err)
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.MovieID
	}

	movies, err := moviesInOrder(ctx, s.movies, ids)
	if err != nil {
		return nil, fmt.Errorf("list watch history: %w", err)
	}
	return movies, nil
}
