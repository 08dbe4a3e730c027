// Package logger configures the process-wide zerolog logger.
//
// All log output goes to stderr; stdout is reserved for validation
// results.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets the global log level and output format. Level is one of
// debug, info, warn, error; unknown values fall back to warn.
func Init(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// WithDataset returns a logger scoped to one dataset file.
func WithDataset(name string) zerolog.Logger {
	return log.With().Str("dataset", name).Logger()
}
