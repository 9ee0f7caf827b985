package domain

import "time"

// Favorite marks a movie as liked by a user. At most one per (user, movie).
type Favorite struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	MovieID   string    `json:"movie_id" bson:"movie_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// WatchHistoryEntry tracks the last viewing of a movie by a user.
// Re-recording the same (user, movie) updates the entry in place.
type WatchHistoryEntry struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	MovieID   string    `json:"movie_id" bson:"movie_id"`
	WatchedAt time.Time `json:"watched_at" bson:"watched_at"`
	Progress  int       `json:"progress" bson:"progress"`
}

const (
	MinProgress = 0
	MaxProgress = 100
)
