package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// SetupLogger configures the global zerolog logger. LOG_LEVEL and
// LOG_PRETTY come from the environment; production defaults to JSON
// at info level.
func SetupLogger() {
	level := zerolog.InfoLevel
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	var out = os.Stderr
	logger := zerolog.New(out)
	if os.Getenv("LOG_PRETTY") == "true" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
	}

	Log = logger.Level(level).With().Timestamp().Logger()
}
