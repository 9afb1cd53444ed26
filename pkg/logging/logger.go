// Package logging provides structured logging for the bookstore using zerolog.
// Console output is used when attached to a terminal and JSON everywhere else,
// so inventory events (added, removed, purchased, shipped) can be read by
// humans during the demo and parsed by tools in scripts.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("book_id", "PB-1001").Msg("Book added")
//
//	ctx := logging.WithBook(context.Background(), "PB-1001")
//	logging.FromContext(ctx).Debug().Msg("Buying book")
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger = NewLoggerFromConfig(configFromEnv())

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // Also update zerolog's global logger
}

// isatty checks if stderr is a terminal.
func isatty() bool {
	fileInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
