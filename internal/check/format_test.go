package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "short run untouched", input: "123", want: "123"},
		{name: "four digits", input: "1234", want: "1,234"},
		{name: "seven digits", input: "1234567", want: "1,234,567"},
		{name: "exact groups", input: "123456", want: "123,456"},
		{name: "inside expression", input: "1234567 = 1000 + 9", want: "1,234,567 = 1,000 + 9"},
		{name: "non-digits untouched", input: "a = b", want: "a = b"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, groupDigits(tt.input))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1,234,567", formatCount(1234567, true))
	assert.Equal(t, "1234567", formatCount(1234567, false))
	assert.Equal(t, "0", formatCount(0, true))
}

func TestSubstituteCounts(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		counts map[string]int64
		want   string
	}{
		{
			name:   "simple substitution",
			expr:   "one = two",
			counts: map[string]int64{"one": 5, "two": 5},
			want:   "5 = 5",
		},
		{
			name:   "no word-boundary bleed",
			expr:   "one = oneX",
			counts: map[string]int64{"one": 5, "oneX": 9},
			want:   "5 = 9",
		},
		{
			name:   "qualified before bare suffix",
			expr:   "stage.orders = orders",
			counts: map[string]int64{"stage.orders": 10, "orders": 12},
			want:   "10 = 12",
		},
		{
			name:   "every occurrence replaced",
			expr:   "a + a = 2",
			counts: map[string]int64{"a": 1},
			want:   "1 + 1 = 2",
		},
		{
			name:   "spacing preserved",
			expr:   "one=two",
			counts: map[string]int64{"one": 5, "two": 5},
			want:   "5=5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, substituteCounts(tt.expr, tt.counts))
		})
	}
}

func TestSubstitutedEcho(t *testing.T) {
	counts := map[string]int64{"big": 1234567}
	assert.Equal(t, "1,234,567 > 1,000", substitutedEcho("big > 1000", counts, true))
	assert.Equal(t, "1234567 > 1000", substitutedEcho("big > 1000", counts, false))
}
