// Package cli provides the command-line interface for rowcheck.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/rowcheck/internal/check"
	"github.com/leapstack-labs/rowcheck/internal/cli/commands"
	"github.com/leapstack-labs/rowcheck/internal/cli/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command. The status
// accumulator collects the exit floor every failed check raises.
func NewRootCmd(status *check.Status) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rowcheck",
		Short: "rowcheck - Row-Count Sanity Checker",
		Long: `rowcheck validates row-count comparison expressions against a database.

An expression compares sums, differences, and products of table names
and integer constants, e.g. "orders = staged_orders + rejected_orders".
Each table name resolves to its row count before the comparison is
evaluated, and a failed check is reported at a configurable severity.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(config.WithLogger(cmd.Context(), logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Row-count sanity checks for data pipelines
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rowcheck.yaml)")
	rootCmd.PersistentFlags().String("database", "", "Path to the database (empty for in-memory)")
	rootCmd.PersistentFlags().String("db-type", "", "Database type (duckdb|postgres|sqlite)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("db-type", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"duckdb", "postgres", "sqlite"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewCheckCommand(status))
	rootCmd.AddCommand(commands.NewReplCommand(status))
	rootCmd.AddCommand(commands.NewTablesCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command and returns the process exit code:
// the exit floor accumulated by failed checks, or at least 1 when the
// command itself failed.
func Execute() int {
	status := check.NewStatus()
	rootCmd := NewRootCmd(status)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		status.RaiseFloor(1)
	}
	return status.Code()
}
