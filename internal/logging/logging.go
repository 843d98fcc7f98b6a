// Package logging builds the zerolog loggers used across tripplan.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human-readable logger writing to w. Debug lines are only
// emitted when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// NewPlain returns an uncoloured debug-level logger, for capturing log lines
// that are shown back to the user.
func NewPlain(w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
