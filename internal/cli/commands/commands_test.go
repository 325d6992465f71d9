package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/rowcheck/internal/adapter"
	"github.com/leapstack-labs/rowcheck/internal/check"
	"github.com/leapstack-labs/rowcheck/internal/cli/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDatabase creates a SQLite database with a few known tables and
// points the environment-based config fallback at it.
func seedDatabase(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "warehouse.db")

	a := adapter.NewSQLiteAdapter()
	ctx := context.Background()
	require.NoError(t, a.Connect(ctx, adapter.Config{Type: "sqlite", Path: path}))
	require.NoError(t, a.Exec(ctx, `CREATE TABLE one (id INTEGER PRIMARY KEY)`))
	require.NoError(t, a.Exec(ctx, `INSERT INTO one (id) VALUES (1), (2), (3), (4), (5)`))
	require.NoError(t, a.Exec(ctx, `CREATE TABLE two (id INTEGER PRIMARY KEY)`))
	require.NoError(t, a.Exec(ctx, `INSERT INTO two (id) VALUES (1), (2), (3), (4), (5)`))
	require.NoError(t, a.Exec(ctx, `CREATE TABLE quarantine (id INTEGER PRIMARY KEY)`))
	require.NoError(t, a.Exec(ctx, `INSERT INTO quarantine (id) VALUES (1), (2), (3)`))
	require.NoError(t, a.Close())

	config.ResetConfig()
	t.Setenv("ROWCHECK_TARGET_TYPE", "sqlite")
	t.Setenv("ROWCHECK_TARGET_PATH", path)
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckCommandSuccess(t *testing.T) {
	seedDatabase(t)
	status := check.NewStatus()

	stdout, _, err := runCommand(t, NewCheckCommand(status), "one = two")
	require.NoError(t, err)

	assert.Contains(t, stdout, "NOTE: "+check.DefaultSuccessMsg)
	assert.Contains(t, stdout, "NOTE: counted: 5 = 5")
	assert.Equal(t, 0, status.Code())
}

func TestCheckCommandExpressionFalse(t *testing.T) {
	seedDatabase(t)
	status := check.NewStatus()

	_, stderr, err := runCommand(t, NewCheckCommand(status), "quarantine = 0")
	require.NoError(t, err)

	assert.Contains(t, stderr, "ERROR: row count check failed")
	assert.Contains(t, stderr, "ERROR: counted: 3 = 0")
	assert.Equal(t, check.ExitError, status.Code())
}

func TestCheckCommandWarningSeverity(t *testing.T) {
	seedDatabase(t)
	status := check.NewStatus()

	_, stderr, err := runCommand(t, NewCheckCommand(status), "quarantine = 0", "--severity", "warning")
	require.NoError(t, err)

	assert.Contains(t, stderr, "WARNING: row count check failed")
	assert.Equal(t, check.ExitWarning, status.Code())
}

func TestCheckCommandAbendExits(t *testing.T) {
	seedDatabase(t)
	status := check.NewStatus()

	exitCode := -1
	oldExit := exitFunc
	exitFunc = func(code int) { exitCode = code }
	defer func() { exitFunc = oldExit }()

	_, stderr, err := runCommand(t, NewCheckCommand(status), "quarantine = 0", "--severity", "abend")
	require.NoError(t, err)

	assert.Contains(t, stderr, "ERROR: row count check failed")
	assert.Equal(t, check.ExitError, exitCode)
}

func TestCheckCommandTableNotFound(t *testing.T) {
	seedDatabase(t)
	status := check.NewStatus()

	_, stderr, err := runCommand(t, NewCheckCommand(status), "no_such_table = 0")
	require.NoError(t, err)

	assert.Contains(t, stderr, "ERROR: table no_such_table does not exist")
	assert.Equal(t, check.ExitError, status.Code())
}

func TestCheckCommandArithmetic(t *testing.T) {
	seedDatabase(t)
	status := check.NewStatus()

	stdout, _, err := runCommand(t, NewCheckCommand(status), "one + two - 5 = quarantine + 2")
	require.NoError(t, err)

	assert.Contains(t, stdout, "NOTE: evaluated: 5 = 5")
	assert.Equal(t, 0, status.Code())
}

func TestTablesCommandMarkdown(t *testing.T) {
	seedDatabase(t)

	stdout, _, err := runCommand(t, NewTablesCommand())
	require.NoError(t, err)

	assert.Contains(t, stdout, "| Schema | Table | Rows |")
	assert.Contains(t, stdout, "| main | one | 5 |")
	assert.Contains(t, stdout, "| main | quarantine | 3 |")
}

func TestTablesCommandJSON(t *testing.T) {
	seedDatabase(t)
	t.Setenv("ROWCHECK_OUTPUT", "json")

	stdout, _, err := runCommand(t, NewTablesCommand())
	require.NoError(t, err)

	assert.Contains(t, stdout, `"name": "one"`)
	assert.Contains(t, stdout, `"row_count": 5`)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, NewVersionCommand("1.2.3"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "rowcheck v1.2.3")
}
