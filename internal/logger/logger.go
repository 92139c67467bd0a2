// Package logger configures zerolog for the binaries.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/otiai10/sumsub/internal/config"
)

// Init configures the global zerolog logger from cfg and returns it.
// Output goes to stderr so that command output on stdout stays clean.
func Init(cfg config.LoggingConfig) zerolog.Logger {
	l := New(os.Stderr, cfg)
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	log.Logger = l
	return l
}

// New builds a logger writing to w without touching global state.
func New(w io.Writer, cfg config.LoggingConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Format == "text" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level. Empty or unknown names
// fall back to info; config.Validate rejects unknown names beforehand.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
