package ids

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookstore/internal/appcontext"
	"github.com/agentstation/bookstore/internal/cmd/output"
	"github.com/agentstation/bookstore/internal/cmd/table"
)

// NewListCommand creates the ids list subcommand.
func NewListCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "Show the last identifier issued per prefix",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			counters := client.Registry().Snapshot()
			format := output.DetectFormat(app.OutputFormat())
			if format.IsStructured() {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), counters)
			}

			if len(counters) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No identifiers issued yet.")
				return err
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), table.CountersToTableData(counters))
		},
	}
}
