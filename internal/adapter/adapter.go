// Package adapter provides database adapters for rowcheck's table
// existence checks and row counting.
package adapter

import "context"

// Config holds the configuration for connecting to a database.
type Config struct {
	// Type specifies the database type (e.g., "duckdb", "postgres", "sqlite")
	Type string

	// Path is the file path for file-based databases (e.g., DuckDB, SQLite)
	// Use ":memory:" for in-memory databases
	Path string

	// Host is the hostname for network-based databases
	Host string

	// Port is the port number for network-based databases
	Port int

	// Database is the database name
	Database string

	// Username for authentication
	Username string

	// Password for authentication
	Password string

	// Schema is the default schema for unqualified table references
	Schema string

	// Options contains additional driver-specific options
	Options map[string]string
}

// TableInfo describes one table visible to the adapter.
type TableInfo struct {
	Schema   string
	Name     string
	RowCount int64
}

// Adapter is the storage collaborator behind a check: it answers
// whether a table exists and how many rows it holds. Table references
// may be bare names or qualified as "schema.table".
type Adapter interface {
	// Connect establishes a connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string) error

	// TableExists reports whether the referenced table exists.
	TableExists(ctx context.Context, table string) (bool, error)

	// RowCount returns the number of rows in the referenced table.
	RowCount(ctx context.Context, table string) (int64, error)

	// ListTables returns every base table with its row count.
	ListTables(ctx context.Context) ([]TableInfo, error)

	// DialectName returns the SQL dialect name (e.g., "duckdb").
	DialectName() string
}
