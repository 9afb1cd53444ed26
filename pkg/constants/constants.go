// Package constants provides shared constants used throughout the bookstore codebase.
// This includes identifier prefixes, counter defaults, file permissions and
// configuration defaults that should be consistent across the application.
package constants

import "time"

// Identifier constants
const (
	// BaseCounter is the counter value an unseen prefix starts from.
	// The first identifier issued for a fresh prefix therefore uses BaseCounter+1.
	BaseCounter = 1000

	// IdentifierSeparator joins a prefix and its counter ("PB-1001")
	IdentifierSeparator = "-"

	// CounterSeparator joins a prefix and its counter in the counter file ("PB:1001")
	CounterSeparator = ":"
)

// Identifier prefixes per book kind
const (
	// PhysicalPrefix tags identifiers of paper books
	PhysicalPrefix = "PB"

	// DigitalPrefix tags identifiers of ebooks
	DigitalPrefix = "EB"

	// DemoPrefix tags identifiers of showcase copies that are never sold
	DemoPrefix = "DB"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Path constants
const (
	// DefaultCounterFile is the default location of the durable counter table
	DefaultCounterFile = "isbn_counter.txt"

	// TempFileSuffix is appended to the counter file while it is being rewritten
	TempFileSuffix = ".tmp"

	// ConfigFileName is the config file searched in $HOME and the working directory
	ConfigFileName = ".bookstore"

	// EnvPrefix prefixes environment variables read by the CLI
	EnvPrefix = "BOOKSTORE"
)

// Demo scenario defaults
const (
	// DefaultOutdatedCutoff is the cutoff year used by the demo scenario
	DefaultOutdatedCutoff = 2010

	// ShutdownTimeout bounds cleanup work after a failed command
	ShutdownTimeout = 5 * time.Second
)
