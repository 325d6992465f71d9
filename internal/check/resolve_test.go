package check

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounter is an in-memory Counter that records every call.
type fakeCounter struct {
	counts      map[string]int64
	existsCalls []string
	countCalls  []string
	existsErr   error
	countErr    error
}

func (f *fakeCounter) TableExists(_ context.Context, table string) (bool, error) {
	f.existsCalls = append(f.existsCalls, table)
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.counts[table]
	return ok, nil
}

func (f *fakeCounter) RowCount(_ context.Context, table string) (int64, error) {
	f.countCalls = append(f.countCalls, table)
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[table], nil
}

func TestExtractTables(t *testing.T) {
	tests := []struct {
		name string
		lhs  string
		rhs  string
		want []string
	}{
		{name: "single names", lhs: "one", rhs: "two", want: []string{"one", "two"}},
		{name: "integers skipped", lhs: "one - 3", rhs: "0", want: []string{"one"}},
		{name: "lhs before rhs in order", lhs: "b + a", rhs: "c", want: []string{"b", "a", "c"}},
		{name: "qualified kept whole", lhs: "stage.orders", rhs: "orders", want: []string{"stage.orders", "orders"}},
		{name: "duplicates kept", lhs: "a + a", rhs: "a", want: []string{"a", "a", "a"}},
		{name: "underscore-led token skipped", lhs: "_tmp + a", rhs: "1", want: []string{"a"}},
		{name: "all integers", lhs: "1 + 2", rhs: "3", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractTables(tt.lhs, tt.rhs))
		})
	}
}

func TestResolveCounts(t *testing.T) {
	ctx := context.Background()

	t.Run("all tables counted once", func(t *testing.T) {
		counter := &fakeCounter{counts: map[string]int64{"a": 1, "b": 2}}
		counts, fail, err := resolveCounts(ctx, counter, []string{"a", "b", "a"})
		require.NoError(t, err)
		require.Nil(t, fail)
		assert.Equal(t, map[string]int64{"a": 1, "b": 2}, counts)
		assert.Equal(t, []string{"a", "b"}, counter.existsCalls)
		assert.Equal(t, []string{"a", "b"}, counter.countCalls)
	})

	t.Run("first missing table fails fast", func(t *testing.T) {
		counter := &fakeCounter{counts: map[string]int64{"a": 1, "c": 3}}
		counts, fail, err := resolveCounts(ctx, counter, []string{"a", "missing", "c"})
		require.NoError(t, err)
		require.NotNil(t, fail)
		assert.Equal(t, FailTableNotFound, fail.Kind)
		assert.Equal(t, "missing", fail.Table)
		assert.Nil(t, counts)
		// Existence checking stopped at the missing table and no
		// counting happened at all.
		assert.Equal(t, []string{"a", "missing"}, counter.existsCalls)
		assert.Empty(t, counter.countCalls)
	})

	t.Run("existence error is a hard failure", func(t *testing.T) {
		counter := &fakeCounter{existsErr: errors.New("connection reset")}
		_, fail, err := resolveCounts(ctx, counter, []string{"a"})
		require.Error(t, err)
		assert.Nil(t, fail)
		assert.Contains(t, err.Error(), "storage unavailable")
	})

	t.Run("count error is a hard failure", func(t *testing.T) {
		counter := &fakeCounter{counts: map[string]int64{"a": 1}, countErr: errors.New("connection reset")}
		_, fail, err := resolveCounts(ctx, counter, []string{"a"})
		require.Error(t, err)
		assert.Nil(t, fail)
		assert.Contains(t, err.Error(), "storage unavailable")
	})
}
