package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/screenhub/movie-catalog/docs"
	"github.com/screenhub/movie-catalog/internal/api/handler"
	"github.com/screenhub/movie-catalog/internal/api/middleware"
	"github.com/screenhub/movie-catalog/internal/core/ports"
)

const metricsSubsystem = "catalog_http"

// Services are the application services exposed over HTTP.
type Services struct {
	Auth         ports.AuthService
	Movies       ports.MovieService
	Favorites    ports.FavoriteService
	WatchHistory ports.WatchHistoryService
	Reviews      ports.ReviewService
	Seeder       ports.CatalogSeeder
	// Readiness lists the dependencies pinged by /health/ready.
	Readiness map[string]handler.Pinger
}

// Options tune the router. Zero values fall back to production defaults.
type Options struct {
	Logger      zerolog.Logger
	CORSOrigins []string
	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	movieHandler := handler.NewMovieHandler(svc.Movies)
	favoriteHandler := handler.NewFavoriteHandler(svc.Favorites)
	historyHandler := handler.NewWatchHistoryHandler(svc.WatchHistory)
	reviewHandler := handler.NewReviewHandler(svc.Reviews)
	seedHandler := handler.NewSeedHandler(svc.Seeder)
	healthHandler := handler.NewHealthHandler(svc.Readiness)
	requireAuth := middleware.Auth(svc.Auth)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Catalog (public) ---
	api.GET("/movies", movieHandler.List)
	api.GET("/movies/:id", movieHandler.Get)
	api.GET("/genres", movieHandler.Genres)
	api.GET("/reviews/:movie_id", reviewHandler.List)
	api.POST("/init-data", seedHandler.Seed)

	// --- User library (authenticated) ---
	api.GET("/favorites", favoriteHandler.List, requireAuth)
	api.POST("/favorites", favoriteHandler.Add, requireAuth)
	api.DELETE("/favorites/:movie_id", favoriteHandler.Remove, requireAuth)
	api.GET("/watch-history", historyHandler.List, requireAuth)
	api.POST("/watch-history", historyHandler.Record, requireAuth)
	api.POST("/reviews/:movie_id", reviewHandler.Create, requireAuth)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Msg("request")
			return nil
		},
	})
}
