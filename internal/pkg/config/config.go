package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=168h"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=*"`

	Log    LogConfig
	Movies MoviesConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL,  default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
	// File, when set, also writes JSON logs to a rotating file.
	File string `env:"LOG_FILE"`
}

type MoviesConfig struct {
	DefaultLimit int `env:"MOVIES_DEFAULT_LIMIT, default=100"`
	MaxLimit     int `env:"MOVIES_MAX_LIMIT,     default=1000"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=movie_catalog"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,       default=0"`
	GuardTTL time.Duration `env:"GUARD_TTL,      default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Movies.DefaultLimit <= 0 || c.Movies.MaxLimit <= 0 {
		return errors.New("MOVIES_DEFAULT_LIMIT and MOVIES_MAX_LIMIT must be positive")
	}
	if c.Movies.DefaultLimit > c.Movies.MaxLimit {
		return errors.New("MOVIES_DEFAULT_LIMIT cannot exceed MOVIES_MAX_LIMIT")
	}
	return nil
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PrettyLogs reports whether console-formatted logs are enabled. Production
// always logs JSON.
func (c *Config) PrettyLogs() bool {
	return c.Log.Pretty && !c.IsProduction()
}
