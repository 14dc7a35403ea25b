// Package config loads the application configuration from the environment.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/semhq/campaigner/pkg/completion"
	"github.com/semhq/campaigner/pkg/logger"
	"github.com/semhq/campaigner/pkg/mailer"
	"github.com/semhq/campaigner/pkg/redis"
	"github.com/semhq/campaigner/pkg/validator"
)

var (
	ErrParse   = errors.New("config: failed to parse environment")
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the full application configuration.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080" validate:"required"`
	// RequestTimeout puts a deadline on every request. Zero sets none.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
	HealthTimeout  time.Duration `env:"HEALTH_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	ShutdownGrace  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s" validate:"gt=0"`

	Completion completion.Config
	Mailer     mailer.Config
	Logger     logger.Config
	Redis      redis.Config
	Session    Session
}

// Session configures the browser session that keeps the last draft.
type Session struct {
	CookieName  string        `env:"SESSION_COOKIE_NAME" envDefault:"campaigner_sid" validate:"required"`
	TTL         time.Duration `env:"SESSION_TTL" envDefault:"24h" validate:"gt=0"`
	Secret      string        `env:"SESSION_SECRET" validate:"omitempty,min=32"`
	MaxSessions int           `env:"SESSION_MAX" envDefault:"10000" validate:"min=0"`
	Secure      bool          `env:"SESSION_SECURE_COOKIE" envDefault:"false"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, errors.Join(ErrParse, err)
	}
	if err := validator.ValidateStruct(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalid, err)
	}
	return cfg, nil
}
