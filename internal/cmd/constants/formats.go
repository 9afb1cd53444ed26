// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is a table with every column, including author and delivery details.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"
)

// Defaults for the demo command.
const (
	// DefaultDemoAddress is where shippable demo purchases are sent.
	DefaultDemoAddress = "Mania"

	// DefaultDemoContact receives pickup notices and files in the demo.
	DefaultDemoContact = "reader@example.com"
)
