package app

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agentstation/bookstore/cmd/bookstore/cmd/demo"
	"github.com/agentstation/bookstore/cmd/bookstore/cmd/ids"
	"github.com/agentstation/bookstore/cmd/bookstore/cmd/version"
	"github.com/agentstation/bookstore/internal/cmd/output"
	"github.com/agentstation/bookstore/pkg/logging"
)

// Execute runs the bookstore CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookstore",
		Short:   "Bookstore inventory CLI",
		Version: a.version,
		Long: `Bookstore manages an in-memory inventory of paper books, ebooks and
demo copies. Book identifiers come from durable per-prefix counters kept
in a small text file, so they keep increasing across runs.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	// Flag defaults show the effective configuration; only flags the user
	// sets are copied back in setupCommand.
	flags := rootCmd.PersistentFlags()
	flags.String("config", a.config.ConfigFile, "config file (default is $HOME/.bookstore.yaml)")
	flags.String("counter-file", a.config.CounterFile, "path of the identifier counter file")
	flags.Bool("ephemeral", a.config.Ephemeral, "keep identifier counters in memory only")
	flags.BoolP("verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", a.config.NoColor, "disable colored output")
	flags.StringP("format", "o", a.config.Format, "output format: table, json, yaml, wide")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("bookstore {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if f := flags.Lookup("config"); f != nil && f.Changed {
		config, err := LoadConfig(f.Value.String())
		if err != nil {
			return err
		}
		a.config = config
	}
	a.config.UpdateFromFlags(flags)

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	logger := NewLogger(a.config)
	logging.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, &logger)
	ctx = logging.WithRequestID(ctx, uuid.NewString())
	ctx = logging.WithOperation(ctx, cmd.CommandPath())
	cmd.SetContext(ctx)

	a.logger = logging.FromContext(ctx)
	a.logger.Debug().
		Str("config_file", a.config.ConfigFile).
		Str("counter_file", a.config.CounterFile).
		Bool("ephemeral", a.config.Ephemeral).
		Msg("Starting command")

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(demo.NewCommand(a))
	rootCmd.AddCommand(ids.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
