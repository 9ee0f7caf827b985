package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/screenhub/movie-catalog/internal/api"
	"github.com/screenhub/movie-catalog/internal/core/service"
	mongorepo "github.com/screenhub/movie-catalog/internal/infrastructure/db/mongo"
	redisstore "github.com/screenhub/movie-catalog/internal/infrastructure/db/redis"
	"github.com/screenhub/movie-catalog/internal/pkg/config"
	"github.com/screenhub/movie-catalog/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// deps holds the process-wide dependencies shared by every command.
type deps struct {
	cfg   *config.Config
	log   zerolog.Logger
	mongo *mongo.Client
	db    *mongo.Database
	redis *redis.Client
}

func bootstrap(ctx context.Context, withRedis bool) (*deps, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.PrettyLogs(),
		File:   cfg.Log.File,
	})

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	rt := &deps{cfg: cfg, log: log, mongo: client, db: db}

	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		rt.close()
		return nil, err
	}

	if withRedis {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			// Unique indexes still reject duplicate reviews and favorites.
			log.Warn().Err(err).Msg("redis unavailable, starting without submission guard")
		} else {
			rt.redis = rdb
		}
	}

	return rt, nil
}

func (rt *deps) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if rt.redis != nil {
		if err := rt.redis.Close(); err != nil {
			rt.log.Warn().Err(err).Msg("redis close")
		}
	}
	if err := rt.mongo.Disconnect(ctx); err != nil {
		rt.log.Warn().Err(err).Msg("mongo disconnect")
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "start the HTTP API",
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rt, err := bootstrap(ctx, true)
			if err != nil {
				return err
			}
			defer rt.close()

			services := api.NewServices(rt.db, rt.redis, api.ServiceConfig{
				JWTSecret:         rt.cfg.JWTSecret,
				TokenTTL:          rt.cfg.TokenTTL,
				MovieDefaultLimit: rt.cfg.Movies.DefaultLimit,
				MovieMaxLimit:     rt.cfg.Movies.MaxLimit,
				GuardTTL:          rt.cfg.Redis.GuardTTL,
			}, rt.log)

			e := api.NewRouter(services, api.Options{
				Logger:      rt.log,
				CORSOrigins: rt.cfg.CORSOrigins,
			})

			errCh := make(chan error, 1)
			go func() {
				rt.log.Info().Str("port", rt.cfg.Port).Str("env", rt.cfg.Env).Msg("http server listening")
				if err := e.Start(":" + rt.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			rt.log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert the demo catalog when the movies collection is empty",
		Action: func(c *cli.Context) error {
			rt, err := bootstrap(c.Context, false)
			if err != nil {
				return err
			}
			defer rt.close()

			result, err := service.NewCatalogSeeder(mongorepo.NewMovieRepository(rt.db), rt.log).Seed(c.Context)
			if err != nil {
				return err
			}
			if result.AlreadySeeded {
				fmt.Fprintln(c.App.Writer, "Data already initialized")
				return nil
			}
			fmt.Fprintf(c.App.Writer, "Initialized %d movies\n", result.Inserted)
			return nil
		},
	}
}
