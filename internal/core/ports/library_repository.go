package ports

import (
	"context"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

// FavoriteRepository persists (user, movie) favorites.
type FavoriteRepository interface {
	// Find returns domain.ErrFavoriteNotFound when the pair is not favorited.
	Find(ctx context.Context, userID, movieID string) (*domain.Favorite, error)
	// Create returns domain.ErrAlreadyFavorited if the pair already exists.
	Create(ctx context.Context, fav *domain.Favorite) error
	// ListByUser returns up to limit favorites, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Favorite, error)
	// Delete reports whether a favorite was removed.
	Delete(ctx context.Context, userID, movieID string) (bool, error)
}

// WatchHistoryRepository persists per-user viewing progress.
type WatchHistoryRepository interface {
	// Upsert creates the (user, movie) entry or refreshes its WatchedAt and Progress.
	Upsert(ctx context.Context, entry *domain.WatchHistoryEntry) error
	// ListByUser returns up to limit entries, most recently watched first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.WatchHistoryEntry, error)
}
