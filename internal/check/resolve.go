package check

import (
	"context"
	"fmt"
	"regexp"
)

// Counter is the storage collaborator: existence checks and row counts
// for the tables an expression references. Implementations must return
// identical counts for repeated lookups within one invocation.
type Counter interface {
	TableExists(ctx context.Context, table string) (bool, error)
	RowCount(ctx context.Context, table string) (int64, error)
}

// tokenSplit separates operand terms: whitespace and the arithmetic
// operators are all separators.
var tokenSplit = regexp.MustCompile(`[\s+\-*]+`)

// extractTables returns the table tokens of both operands in
// left-to-right order, LHS first. Tokens that do not begin with a
// letter (integer literals) are skipped.
func extractTables(lhs, rhs string) []string {
	var tables []string
	for _, side := range []string{lhs, rhs} {
		for _, tok := range tokenSplit.Split(side, -1) {
			if tok == "" {
				continue
			}
			if c := tok[0]; (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				tables = append(tables, tok)
			}
		}
	}
	return tables
}

// resolveCounts verifies every referenced table exists, then fetches
// each row count. The first missing table aborts the invocation before
// any counting happens; duplicates are checked and counted once. A
// storage error is returned as a hard failure of the invocation, never
// as a reportable outcome.
func resolveCounts(ctx context.Context, counter Counter, tables []string) (map[string]int64, *Failure, error) {
	seen := make(map[string]struct{}, len(tables))
	ordered := make([]string, 0, len(tables))
	for _, name := range tables {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)

		exists, err := counter.TableExists(ctx, name)
		if err != nil {
			return nil, nil, fmt.Errorf("storage unavailable: checking table %s: %w", name, err)
		}
		if !exists {
			return nil, &Failure{Kind: FailTableNotFound, Table: name}, nil
		}
	}

	counts := make(map[string]int64, len(ordered))
	for _, name := range ordered {
		n, err := counter.RowCount(ctx, name)
		if err != nil {
			return nil, nil, fmt.Errorf("storage unavailable: counting rows of %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil, nil
}
