package logger

import (
	"log/slog"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	Level             string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format            string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// ParseLevel maps a level name to slog.Level. Unknown names resolve to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
