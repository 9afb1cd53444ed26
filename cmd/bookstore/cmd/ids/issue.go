package ids

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookstore/internal/appcontext"
	"github.com/agentstation/bookstore/internal/cmd/output"
	"github.com/agentstation/bookstore/internal/cmd/table"
	"github.com/agentstation/bookstore/pkg/errors"
)

// NewIssueCommand creates the ids issue subcommand.
func NewIssueCommand(app appcontext.Interface) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "issue <prefix>",
		Short: "Issue new identifiers for a prefix",
		Example: `  bookstore ids issue PB             # Issue one physical book identifier
  bookstore ids issue EB --count 3   # Issue three digital book identifiers`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.NewValidationError("count", count, "must be at least 1")
			}

			client, err := app.Client()
			if err != nil {
				return err
			}
			registry := client.Registry()

			issued := make([]string, 0, count)
			var issueErr error
			for range count {
				id, err := registry.Issue(args[0])
				if id != "" {
					issued = append(issued, id)
				}
				if err != nil {
					issueErr = err
					break
				}
			}

			if len(issued) > 0 {
				if err := printIssued(cmd, app, issued); err != nil {
					return err
				}
			}
			if issueErr != nil {
				if errors.IsStorage(issueErr) {
					return fmt.Errorf("identifiers were issued but the counter file was not updated: %w", issueErr)
				}
				return issueErr
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to issue")

	return cmd
}

func printIssued(cmd *cobra.Command, app appcontext.Interface, issued []string) error {
	format := output.DetectFormat(app.OutputFormat())
	if format.IsStructured() {
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), issued)
	}

	rows := make([][]string, 0, len(issued))
	for _, id := range issued {
		rows = append(rows, []string{id})
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), table.Data{
		Headers: []string{"Issued"},
		Rows:    rows,
	})
}
