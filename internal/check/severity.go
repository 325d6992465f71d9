package check

import "strings"

// Severity controls how a failed check is reported and whether the
// process survives it.
type Severity int

// Severity levels, ordered from least to most drastic.
const (
	// SeverityNote reports the failure as informational only.
	SeverityNote Severity = iota
	// SeverityWarning reports a warning and raises the exit floor to 4.
	SeverityWarning
	// SeverityError reports an error and raises the exit floor to 8.
	SeverityError
	// SeverityAbend reports an error and terminates the process.
	SeverityAbend
)

// DefaultSeverity is used when the caller does not request a severity.
const DefaultSeverity = "error"

// String returns the canonical lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityAbend:
		return "abend"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a user-supplied severity to its canonical form.
// Matching is case-insensitive on the whole word and accepts the
// synonyms warn, err, and abort. Returns SeverityError and false when
// the input is not recognized.
func ParseSeverity(raw string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "note":
		return SeverityNote, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error", "err":
		return SeverityError, true
	case "abend", "abort":
		return SeverityAbend, true
	default:
		return SeverityError, false
	}
}
