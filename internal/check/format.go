package check

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

// formatCount renders a row count, optionally with thousands
// separators.
func formatCount(n int64, commas bool) string {
	if commas {
		return englishPrinter.Sprintf("%d", n)
	}
	return strconv.FormatInt(n, 10)
}

var digitRun = regexp.MustCompile(`\d+`)

// groupDigits reformats every integer substring of s with a separator
// every three digits from the right. Non-digit characters are left
// untouched.
func groupDigits(s string) string {
	return digitRun.ReplaceAllStringFunc(s, func(run string) string {
		var b strings.Builder
		for i, c := range run {
			if i > 0 && (len(run)-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteRune(c)
		}
		return b.String()
	})
}

// substituteCounts replaces each whole-word occurrence of a table name
// in expr with its row count. Longer names are substituted first so a
// qualified reference is never clipped by its bare suffix, and the
// word-boundary anchors keep a name from matching inside a longer one.
func substituteCounts(expr string, counts map[string]int64) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	out := expr
	for _, name := range names {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
		out = re.ReplaceAllLiteralString(out, strconv.FormatInt(counts[name], 10))
	}
	return out
}

// substitutedEcho is the display form of an expression with counts in
// place of names, comma-grouping every integer substring when asked.
func substitutedEcho(expr string, counts map[string]int64, commas bool) string {
	out := substituteCounts(expr, counts)
	if commas {
		out = groupDigits(out)
	}
	return out
}
