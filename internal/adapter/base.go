package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// baseSQLAdapter provides the database/sql plumbing shared by all
// adapters. Concrete adapters supply the existence query and the
// default schema.
type baseSQLAdapter struct {
	db     *sql.DB
	config Config
}

func (b *baseSQLAdapter) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *baseSQLAdapter) Exec(ctx context.Context, sqlStr string) error {
	if b.db == nil {
		return fmt.Errorf("database connection not established")
	}
	if _, err := b.db.ExecContext(ctx, sqlStr); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}

// splitQualified splits a table reference into schema and name, using
// defaultSchema when the reference is unqualified.
func splitQualified(table, defaultSchema string) (schema, name string) {
	if parts := strings.SplitN(table, ".", 2); len(parts) == 2 {
		return parts[0], parts[1]
	}
	return defaultSchema, table
}

// quoteIdent double-quotes an identifier, doubling embedded quotes.
// The operand grammar upstream already restricts references to word
// characters; quoting keeps count queries valid for any of them.
func quoteIdent(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// countRows runs SELECT COUNT(*) against a qualified table.
func (b *baseSQLAdapter) countRows(ctx context.Context, schema, name string) (int64, error) {
	if b.db == nil {
		return 0, fmt.Errorf("database connection not established")
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s.%s", quoteIdent(schema), quoteIdent(name))
	var count int64
	if err := b.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows of %s.%s: %w", schema, name, err)
	}
	return count, nil
}
