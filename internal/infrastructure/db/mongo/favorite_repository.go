package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{col: db.Collection(collectionFavorites)}
}

func (r *FavoriteRepository) Find(ctx context.Context, userID, movieID string) (*domain.Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Favorite
	if err := r.col.FindOne(ctx, pairFilter(userID, movieID)).Decode(&f); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	return &f, nil
}

func (r *FavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, fav); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyFavorited
		}
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	favs := make([]*domain.Favorite, 0)
	if err := cur.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return favs, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID, movieID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, pairFilter(userID, movieID))
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func pairFilter(userID, movieID string) bson.M {
	return bson.M{"user_id": userID, "movie_id": movieID}
}
