package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

type WatchHistoryRepository struct {
	col *mongo.Collection
}

func NewWatchHistoryRepository(db *mongo.Database) *WatchHistoryRepository {
	return &WatchHistoryRepository{col: db.Collection(collectionWatchHistory)}
}

// Upsert writes the entry keyed on (user_id, movie_id). An existing entry keeps
// its id and gets the new watched_at and progress.
func (r *WatchHistoryRepository) Upsert(ctx context.Context, e *domain.WatchHistoryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"watched_at": e.WatchedAt.UTC(),
			"progress":   e.Progress,
		},
		"$setOnInsert": bson.M{"_id": e.ID},
	}

	_, err := r.col.UpdateOne(ctx, pairFilter(e.UserID, e.MovieID), update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert watch history: %w", err)
	}
	return nil
}

func (r *WatchHistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.WatchHistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "watched_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list watch history: %w", err)
	}

	entries := make([]*domain.WatchHistoryEntry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode watch history: %w", err)
	}
	return entries, nil
}
