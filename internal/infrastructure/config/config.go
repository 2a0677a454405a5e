package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"                     validate:"required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Identity  IdentityConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017" validate:"required,uri"`
	Database string `env:"MONGO_DB,  default=feed_system"               validate:"required"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379" validate:"required,hostname_port"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IdentityConfig points at the external identity provider used to resolve
// author profiles.
type IdentityConfig struct {
	BaseURL string        `env:"IDENTITY_BASE_URL, default=http://localhost:8081" validate:"required,url"`
	Timeout time.Duration `env:"IDENTITY_TIMEOUT,  default=5s"                    validate:"gt=0"`
}

// RateLimitConfig tunes the per-author write quota: MaxRequests posts per
// trailing Window.
type RateLimitConfig struct {
	Window      time.Duration `env:"RATE_LIMIT_WINDOW, default=60s" validate:"gt=0"`
	MaxRequests int           `env:"RATE_LIMIT_MAX,    default=3"   validate:"gt=0"`
}

// Load reads configuration from environment variables using go-envconfig and
// rejects structurally invalid settings before the process starts.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
