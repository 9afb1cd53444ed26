// Package appcontext provides the shared application context interface
// used by all commands. Commands accept Interface instead of the concrete
// App so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookstore"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/bookstore/app implements it.
type Interface interface {
	// Client returns the bookstore client, creating it lazily if needed.
	Client() (*bookstore.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
