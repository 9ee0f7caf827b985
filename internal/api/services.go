package api

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/screenhub/movie-catalog/internal/api/handler"
	"github.com/screenhub/movie-catalog/internal/core/service"
	mongorepo "github.com/screenhub/movie-catalog/internal/infrastructure/db/mongo"
	redisstore "github.com/screenhub/movie-catalog/internal/infrastructure/db/redis"
	"github.com/screenhub/movie-catalog/internal/pkg/auth"
)

// ServiceConfig carries the settings the services need at construction time.
type ServiceConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	MovieDefaultLimit int
	MovieMaxLimit     int
	GuardTTL          time.Duration
}

// NewServices wires the Mongo repositories and the Redis submission guard into
// the application services. rdb may be nil; the services then run unguarded.
func NewServices(db *mongo.Database, rdb *redis.Client, cfg ServiceConfig, log zerolog.Logger) Services {
	users := mongorepo.NewUserRepository(db)
	movies := mongorepo.NewMovieRepository(db)
	favorites := mongorepo.NewFavoriteRepository(db)
	history := mongorepo.NewWatchHistoryRepository(db)
	reviews := mongorepo.NewReviewRepository(db)

	guard := newGuard(rdb, cfg.GuardTTL)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	return Services{
		Auth:         service.NewAuthService(users, tokens, log),
		Movies:       service.NewMovieService(movies, cfg.MovieDefaultLimit, cfg.MovieMaxLimit),
		Favorites:    service.NewFavoriteService(favorites, movies, guard, log),
		WatchHistory: service.NewWatchHistoryService(history, movies),
		Reviews:      service.NewReviewService(reviews, movies, guard, log),
		Seeder:       service.NewCatalogSeeder(movies, log),
		Readiness:    readinessChecks(db, rdb),
	}
}

// newGuard returns the Redis submission guard, or nil when rdb is nil so the
// services run without one.
func newGuard(rdb *redis.Client, ttl time.Duration) service.SubmissionGuard {
	if rdb == nil {
		return nil
	}
	return redisstore.NewSubmissionGuard(rdb, ttl)
}

// readinessChecks pings MongoDB, and Redis when connected.
func readinessChecks(db *mongo.Database, rdb *redis.Client) map[string]handler.Pinger {
	checks := map[string]handler.Pinger{
		"mongodb": handler.PingerFunc(func(ctx context.Context) error {
			return db.Client().Ping(ctx, nil)
		}),
	}
	if rdb != nil {
		checks["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}
	return checks
}
