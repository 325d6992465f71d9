package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/rowcheck/internal/adapter"
	"github.com/leapstack-labs/rowcheck/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List tables in the target database with their row counts",
		Long: `List every base table the target database exposes, with its schema
and current row count. Useful for discovering the names a check
expression can reference.`,
		RunE: runTables,
	}
}

func runTables(cmd *cobra.Command, _ []string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	tables, err := cmdCtx.DB.ListTables(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return renderTablesJSON(r, tables)
	case output.ModeMarkdown:
		renderTablesMarkdown(r, tables)
		return nil
	default:
		renderTablesText(r, tables)
		return nil
	}
}

func renderTablesText(r *output.Renderer, tables []adapter.TableInfo) {
	if len(tables) == 0 {
		r.Note("no tables found")
		return
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Schema", "Table", "Rows"})
	for _, info := range tables {
		t.AppendRow(table.Row{info.Schema, info.Name, info.RowCount})
	}
	t.SetStyle(table.StyleLight)
	r.Println(t.Render())
}

func renderTablesMarkdown(r *output.Renderer, tables []adapter.TableInfo) {
	r.Println("| Schema | Table | Rows |")
	r.Println("|--------|-------|------|")
	for _, info := range tables {
		r.Printf("| %s | %s | %d |\n", info.Schema, info.Name, info.RowCount)
	}
}

func renderTablesJSON(r *output.Renderer, tables []adapter.TableInfo) error {
	type tableJSON struct {
		Schema   string `json:"schema"`
		Name     string `json:"name"`
		RowCount int64  `json:"row_count"`
	}
	out := make([]tableJSON, 0, len(tables))
	for _, info := range tables {
		out = append(out, tableJSON{Schema: info.Schema, Name: info.Name, RowCount: info.RowCount})
	}
	return r.JSON(out)
}
