package commands

import (
	"os"

	"github.com/leapstack-labs/rowcheck/internal/check"
	"github.com/spf13/cobra"
)

// exitFunc is swapped out in tests so an abend does not kill the test
// process.
var exitFunc = os.Exit

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Severity   string // Severity of a failed check
	SuccessMsg string // Banner emitted when the check passes
	Commas     bool   // Thousands separators in echoed counts
}

// NewCheckCommand creates the check command.
func NewCheckCommand(status *check.Status) *cobra.Command {
	opts := &CheckOptions{Commas: true}
	cmd := &cobra.Command{
		Use:   "check EXPR",
		Short: "Validate a row-count comparison against the target database",
		Long: `Validate a comparison expression whose operands are table names and
integer constants. Each table name resolves to its row count, the
arithmetic is evaluated, and the outcome is reported.

A failed check raises the process exit floor according to severity:
warning raises it to 4, error to 8, and abend reports an error and
terminates immediately. The exit floor only ever goes up.`,
		Example: `  # Counts must line up across a pipeline hop
  rowcheck check "orders = staged_orders + rejected_orders"

  # Quarantine table must be empty
  rowcheck check "quarantine.bad_has_time = 0" --severity abend

  # At least ten good records beyond the baseline
  rowcheck check "good_records - 10 > 0" --severity warning`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, status, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Severity, "severity", "s", "", "Severity of a failed check: note, warning, error, abend")
	cmd.Flags().StringVar(&opts.SuccessMsg, "success-msg", "", "Message emitted when the check passes")
	cmd.Flags().BoolVar(&opts.Commas, "commas", true, "Insert thousands separators in echoed counts")

	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"note", "warning", "error", "abend"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runCheck(cmd *cobra.Command, status *check.Status, expr string, opts *CheckOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	severity := opts.Severity
	if severity == "" {
		severity = cmdCtx.Cfg.Severity
	}
	commas := cmdCtx.Cfg.Commas
	if cmd.Flags().Changed("commas") {
		commas = opts.Commas
	}

	checker := check.New(cmdCtx.DB, renderEmitter{cmdCtx.Renderer}, status, cmdCtx.Logger)
	outcome, err := checker.Run(cmd.Context(), check.Request{
		Expr:       expr,
		Severity:   severity,
		SuccessMsg: opts.SuccessMsg,
		Commas:     commas,
	})
	if err != nil {
		return err
	}

	if outcome.Fatal {
		// Abend: all output is flushed, nothing after this runs.
		cleanup()
		exitFunc(status.Code())
	}
	return nil
}
