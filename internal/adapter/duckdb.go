package adapter

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

func init() {
	Register("duckdb", func() Adapter { return NewDuckDBAdapter() })
}

// DuckDBAdapter implements the Adapter interface for DuckDB.
type DuckDBAdapter struct {
	baseSQLAdapter
}

// NewDuckDBAdapter creates a new DuckDB adapter instance.
func NewDuckDBAdapter() *DuckDBAdapter {
	return &DuckDBAdapter{}
}

// Connect establishes a connection to DuckDB.
// Use ":memory:" as the path for an in-memory database.
func (a *DuckDBAdapter) Connect(ctx context.Context, cfg Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	a.db = db
	a.config = cfg
	return nil
}

func (a *DuckDBAdapter) defaultSchema() string {
	if a.config.Schema != "" {
		return a.config.Schema
	}
	return "main"
}

// TableExists checks information_schema for the referenced table.
func (a *DuckDBAdapter) TableExists(ctx context.Context, table string) (bool, error) {
	if a.db == nil {
		return false, fmt.Errorf("database connection not established")
	}
	schema, name := splitQualified(table, a.defaultSchema())

	var count int
	err := a.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = ? AND table_name = ?`,
		schema, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check table %s: %w", table, err)
	}
	return count > 0, nil
}

// RowCount returns the number of rows in the referenced table.
func (a *DuckDBAdapter) RowCount(ctx context.Context, table string) (int64, error) {
	schema, name := splitQualified(table, a.defaultSchema())
	return a.countRows(ctx, schema, name)
}

// ListTables returns every base table with its row count.
func (a *DuckDBAdapter) ListTables(ctx context.Context) ([]TableInfo, error) {
	if a.db == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	rows, err := a.db.QueryContext(ctx,
		`SELECT table_schema, table_name FROM information_schema.tables
		 WHERE table_type = 'BASE TABLE'
		 ORDER BY table_schema, table_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []TableInfo
	for rows.Next() {
		var info TableInfo
		if err := rows.Scan(&info.Schema, &info.Name); err != nil {
			return nil, fmt.Errorf("failed to scan table row: %w", err)
		}
		tables = append(tables, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table list: %w", err)
	}

	for i := range tables {
		count, err := a.countRows(ctx, tables[i].Schema, tables[i].Name)
		if err != nil {
			return nil, err
		}
		tables[i].RowCount = count
	}
	return tables, nil
}

// DialectName returns "duckdb".
func (a *DuckDBAdapter) DialectName() string {
	return "duckdb"
}
