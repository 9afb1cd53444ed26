// Package demo provides the demo command, which walks a fresh catalog
// through adding, buying and retiring books.
package demo

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookstore/internal/appcontext"
	"github.com/agentstation/bookstore/internal/cmd/constants"
	"github.com/agentstation/bookstore/internal/cmd/output"
	"github.com/agentstation/bookstore/internal/cmd/table"
	pkgconstants "github.com/agentstation/bookstore/pkg/constants"
)

// NewCommand creates the demo command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	opts := Options{}

	cmd := &cobra.Command{
		Use:     "demo",
		GroupID: "core",
		Short:   "Run the inventory walkthrough",
		Long: `Demo stocks a paper book, two ebooks and a demo book, buys two paper
copies, one ebook and tries to buy the demo book, then removes every
book published before the cutoff year.

Identifiers are issued from the counter file, so repeated runs keep
counting up unless --ephemeral is set.`,
		Example: `  bookstore demo                     # Run with defaults
  bookstore demo --cutoff 2019       # Also retire the 2018 paper book
  bookstore demo --ephemeral -o json # Leave the counter file alone, print JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			report, err := Run(cmd.Context(), client, opts)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), output.DetectFormat(app.OutputFormat()), report)
		},
	}

	cmd.Flags().IntVar(&opts.Cutoff, "cutoff", pkgconstants.DefaultOutdatedCutoff, "remove books published before this year")
	cmd.Flags().StringVar(&opts.Address, "address", constants.DefaultDemoAddress, "shipping address for paper books")
	cmd.Flags().StringVar(&opts.Contact, "contact", constants.DefaultDemoContact, "contact for files and pickup notices")

	return cmd
}

func render(w io.Writer, format output.Format, report *Report) error {
	if format.IsStructured() {
		return output.NewFormatter(format).Format(w, report)
	}

	formatter := output.NewFormatter(format)
	if err := formatter.Format(w, report.purchaseTable()); err != nil {
		return err
	}

	if len(report.Removed) == 0 {
		fmt.Fprintf(w, "\nNo books published before %d.\n\n", report.Cutoff)
	} else {
		fmt.Fprintf(w, "\nRemoved %d book(s) published before %d: %v\n\n", len(report.Removed), report.Cutoff, report.Removed)
	}

	return formatter.Format(w, table.BooksToTableData(report.Remaining, format == output.FormatWide))
}
