// Package shared holds helpers common to the fivecard subcommands.
package shared

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogger configures the process logger. Pretty console output on
// stderr by default; structured selects JSON lines instead.
func SetupLogger(debug, structured bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var out zerolog.Logger
	if structured {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		out = zerolog.New(os.Stderr)
	} else {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return out.Level(level).With().Timestamp().Logger()
}
