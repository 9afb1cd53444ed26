// Package ids provides commands for inspecting and issuing identifiers.
package ids

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookstore/internal/appcontext"
)

// NewCommand creates the ids command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ids",
		GroupID: "management",
		Short:   "Inspect and issue book identifiers",
		Long: `Identifiers have the form PREFIX-COUNTER, e.g. PB-1001. Counters are
kept per prefix in the counter file and only ever increase.

Prefixes used by the bookstore:
  PB   physical books
  EB   digital books
  DB   demo books`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(NewIssueCommand(app))
	cmd.AddCommand(NewListCommand(app))

	return cmd
}
