package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/screenhub/movie-catalog/internal/core/domain"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

// List returns movies matching the filter. Search is a case-insensitive
// substring match over title or description; Genre requires membership in the
// genre array. Both are optional and combine with AND.
func (r *MovieRepository) List(ctx context.Context, f domain.MovieFilter) ([]*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find()
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, movieFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movies := make([]*domain.Movie, 0)
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

func movieFilter(f domain.MovieFilter) bson.M {
	filter := bson.M{}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	if f.Genre != "" {
		filter["genre"] = f.Genre
	}
	return filter
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Movie
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return &m, nil
}

func (r *MovieRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Movie, error) {
	movies := make([]*domain.Movie, 0, len(ids))
	if len(ids) == 0 {
		return movies, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find movies by id: %w", err)
	}
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) Genres(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	values, err := r.col.Distinct(ctx, "genre", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct genres: %w", err)
	}

	genres := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			genres = append(genres, s)
		}
	}
	return genres, nil
}

func (r *MovieRepository) UpdateRating(ctx context.Context, id string, avg float64, count int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"rating_avg": avg, "rating_count": count}},
	)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.D{})
}

func (r *MovieRepository) InsertMany(ctx context.Context, movies []*domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, len(movies))
	for i, m := range movies {
		docs[i] = m
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert movies: %w", err)
	}
	return nil
}
