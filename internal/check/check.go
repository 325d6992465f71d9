// Package check validates row-count comparison expressions against a
// database and reports the outcome with a configurable severity.
//
// A check runs five stages in strict order: severity normalization,
// expression parsing, operand validation, table resolution and
// counting, then evaluation and reporting. Any stage may reject the
// check with a Failure that jumps straight to the reporter; only the
// resolution stage touches storage.
package check

import (
	"context"
	"log/slog"
)

// DefaultSuccessMsg is emitted when a check passes and the caller did
// not supply a banner.
const DefaultSuccessMsg = "row count check passed"

// Request describes one check invocation.
type Request struct {
	// Expr is the comparison expression, e.g. "orders = staged + rejected".
	Expr string

	// Severity of a failed check: note, warning, error, or abend.
	// Empty means DefaultSeverity.
	Severity string

	// SuccessMsg is the banner emitted when the check passes. Empty
	// means DefaultSuccessMsg.
	SuccessMsg string

	// Commas enables thousands separators in echoed counts.
	Commas bool
}

// Checker runs row-count checks. It holds no state between runs; row
// counts are cached per invocation only.
type Checker struct {
	counter Counter
	emitter Emitter
	status  *Status
	logger  *slog.Logger
}

// New creates a Checker. The status accumulator is shared with the
// host process so repeated checks keep raising the same exit floor.
func New(counter Counter, emitter Emitter, status *Status, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{counter: counter, emitter: emitter, status: status, logger: logger}
}

// Run executes one check. Every validation or evaluation rejection is
// reported through the emitter and returned as a non-OK Outcome; the
// only error returned is a storage failure, which is fatal for the
// invocation and produces no outcome.
func (c *Checker) Run(ctx context.Context, req Request) (*Outcome, error) {
	rawSeverity := req.Severity
	if rawSeverity == "" {
		rawSeverity = DefaultSeverity
	}

	var (
		fail       *Failure
		parsed     ParsedExpression
		counts     map[string]int64
		result     EvaluationResult
		multiTable bool
	)

	sev, ok := ParseSeverity(rawSeverity)
	if !ok {
		// The failed normalization itself is reported at error severity.
		fail = &Failure{Kind: FailInvalidSeverity, Detail: rawSeverity}
		sev = SeverityError
	}

	if fail == nil {
		parsed, fail = parseExpression(req.Expr)
	}
	if fail == nil {
		fail = validateOperands(parsed.LHS, parsed.RHS)
	}
	if fail == nil {
		tables := extractTables(parsed.LHS, parsed.RHS)
		multiTable = countSideTables(parsed.LHS) > 1 || countSideTables(parsed.RHS) > 1
		var err error
		counts, fail, err = resolveCounts(ctx, c.counter, tables)
		if err != nil {
			return nil, err
		}
	}
	if fail == nil {
		result, fail = c.evaluate(parsed, counts)
	}

	return c.report(req, sev, parsed, counts, result, multiTable, fail), nil
}

// evaluate computes both sides and the comparison.
func (c *Checker) evaluate(parsed ParsedExpression, counts map[string]int64) (EvaluationResult, *Failure) {
	lhs, fail := evalOperand(parsed.LHS, counts)
	if fail != nil {
		return EvaluationResult{}, fail
	}
	rhs, fail := evalOperand(parsed.RHS, counts)
	if fail != nil {
		return EvaluationResult{}, fail
	}
	result := EvaluationResult{
		LHSValue:        lhs,
		RHSValue:        rhs,
		ComparisonHolds: compare(lhs, rhs, parsed.Operator),
	}
	c.logger.Debug("expression evaluated",
		"lhs", lhs, "rhs", rhs, "operator", parsed.Operator, "holds", result.ComparisonHolds)
	if !result.ComparisonHolds {
		return result, &Failure{Kind: FailExpressionFalse}
	}
	return result, nil
}

// report emits the message set for the outcome and applies the exit
// floor. It is the single place failures are turned into output.
func (c *Checker) report(req Request, sev Severity, parsed ParsedExpression, counts map[string]int64, result EvaluationResult, multiTable bool, fail *Failure) *Outcome {
	if fail == nil {
		// Success is always informational, whatever severity was requested.
		msg := req.SuccessMsg
		if msg == "" {
			msg = DefaultSuccessMsg
		}
		c.emitter.Emit(LevelNote, msg)
		c.emitter.Emit(LevelNote, "checked: "+req.Expr)
		c.emitter.Emit(LevelNote, "counted: "+substitutedEcho(req.Expr, counts, req.Commas))
		if multiTable {
			c.emitter.Emit(LevelNote, "evaluated: "+evaluatedEcho(result, parsed.Operator, req.Commas))
		}
		return &Outcome{
			OK:       true,
			Severity: sev,
			Level:    LevelNote,
			LHSValue: result.LHSValue,
			RHSValue: result.RHSValue,
		}
	}

	level, floor, known := reportLevel(sev)
	primary := fail.message()
	if !known {
		primary = "internal error: unrecognized severity reached the reporter"
	}

	c.emitter.Emit(level, primary)
	c.emitter.Emit(level, "checked: "+req.Expr)
	if fail.Kind == FailExpressionFalse {
		c.emitter.Emit(level, "counted: "+substitutedEcho(req.Expr, counts, req.Commas))
		if multiTable {
			c.emitter.Emit(level, "evaluated: "+evaluatedEcho(result, parsed.Operator, req.Commas))
		}
	}

	if floor > 0 {
		c.status.RaiseFloor(floor)
	}
	c.logger.Debug("check failed", "kind", int(fail.Kind), "severity", sev.String(), "floor", floor)

	return &Outcome{
		Severity: sev,
		Level:    level,
		Fatal:    known && sev == SeverityAbend,
		LHSValue: result.LHSValue,
		RHSValue: result.RHSValue,
	}
}

// evaluatedEcho renders each side's evaluated subtotal around the
// comparator.
func evaluatedEcho(result EvaluationResult, operator string, commas bool) string {
	return formatCount(result.LHSValue, commas) + " " + operator + " " + formatCount(result.RHSValue, commas)
}

// countSideTables counts the table references on one operand.
func countSideTables(side string) int {
	return len(extractTables(side, ""))
}
