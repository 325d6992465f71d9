package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/rowcheck/internal/check"
	"github.com/spf13/cobra"
)

// NewReplCommand creates the repl command.
func NewReplCommand(status *check.Status) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively run check expressions against the target database",
		Long: `Open an interactive prompt that runs one check per line. Inside the
prompt a failed check is reported at note severity so it never raises
the exit floor or terminates the session; type \q or press Ctrl-D to
leave.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, status)
		},
	}
}

func runRepl(cmd *cobra.Command, status *check.Status) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rowcheck> ",
		InterruptPrompt: "^C",
		EOFPrompt:       `\q`,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	checker := check.New(cmdCtx.DB, renderEmitter{cmdCtx.Renderer}, status, cmdCtx.Logger)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case `\q`, "exit", "quit":
			return nil
		}

		if _, err := checker.Run(cmd.Context(), check.Request{
			Expr:     line,
			Severity: "note",
			Commas:   cmdCtx.Cfg.Commas,
		}); err != nil {
			// Storage failures end the session; everything else was
			// already reported as a note.
			return err
		}
	}
}
