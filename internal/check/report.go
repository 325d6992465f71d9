package check

// Level is the message type attached to an emitted line.
type Level int

// Message levels, mirroring a batch log.
const (
	LevelNote Level = iota
	LevelWarning
	LevelError
)

// String returns the log tag for the level.
func (l Level) String() string {
	switch l {
	case LevelNote:
		return "NOTE"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Emitter receives the human-readable lines a check produces. The CLI
// backs it with the terminal renderer; tests record the lines.
type Emitter interface {
	Emit(level Level, text string)
}

// Outcome is everything the host boundary needs to act on one check.
// Fatal means the caller must terminate the process once all output is
// flushed; the checker itself never terminates anything.
type Outcome struct {
	OK       bool
	Severity Severity
	Level    Level
	Fatal    bool
	LHSValue int64
	RHSValue int64
}

// reportLevel maps a normalized severity to the message level and exit
// floor of a failed check. The false return flags a severity that
// should never have reached the reporter.
func reportLevel(sev Severity) (Level, int, bool) {
	switch sev {
	case SeverityNote:
		return LevelNote, 0, true
	case SeverityWarning:
		return LevelWarning, ExitWarning, true
	case SeverityError:
		return LevelError, ExitError, true
	case SeverityAbend:
		return LevelError, ExitError, true
	default:
		return LevelError, ExitError, false
	}
}
