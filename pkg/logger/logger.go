// Package logger builds the zerolog root logger for the advisor. Components
// derive their own sub-loggers from it with With().Str(...).
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls logger construction.
type Config struct {
	Level  string // zerolog level name, anything unknown falls back to info
	Pretty bool   // human-readable console output for development
}

// New builds the root logger writing JSON to stdout, or a console writer
// when Pretty is set.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger()
}

// SetGlobalLogger replaces zerolog's package-level logger so stray
// log.Info() style calls share the configured output.
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}
