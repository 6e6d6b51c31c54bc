// Package logging builds the application logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	Out     io.Writer
	Debug   bool
	NoColor bool
}

// New returns a console logger writing to stderr unless Out is set.
func New(options Options) zerolog.Logger {
	out := options.Out
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.InfoLevel
	if options.Debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    options.NoColor,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
