package check

import "fmt"

// FailureKind identifies which stage rejected a check.
type FailureKind int

// Failure kinds, one per rejection the pipeline can produce.
const (
	// FailInvalidSeverity means the requested severity is not recognized.
	FailInvalidSeverity FailureKind = iota
	// FailMalformedExpression means the expression is not a single comparison.
	FailMalformedExpression
	// FailInvalidLHS means the left-hand operand violates the operand grammar.
	FailInvalidLHS
	// FailInvalidRHS means the right-hand operand violates the operand grammar.
	FailInvalidRHS
	// FailInvalidOperands means both operands violate the operand grammar.
	FailInvalidOperands
	// FailTableNotFound means a referenced table does not exist.
	FailTableNotFound
	// FailExpressionFalse means the comparison evaluated to false.
	FailExpressionFalse
	// FailInternal guards against unreachable states.
	FailInternal
)

// Failure is the single rejection type every stage routes through.
// The reporter matches it exactly once; stages never emit messages
// themselves.
type Failure struct {
	Kind FailureKind

	// Table names the missing table for FailTableNotFound.
	Table string

	// Detail carries extra context for the message, such as the
	// unrecognized severity string.
	Detail string
}

// message returns the primary human-readable line for the failure.
func (f *Failure) message() string {
	switch f.Kind {
	case FailInvalidSeverity:
		return fmt.Sprintf("severity %q is not one of note, warning, error, abend", f.Detail)
	case FailMalformedExpression:
		return "expression is not a single comparison of row-count operands"
	case FailInvalidLHS:
		return "left-hand operand is not a valid sum of table names and integers"
	case FailInvalidRHS:
		return "right-hand operand is not a valid sum of table names and integers"
	case FailInvalidOperands:
		return "neither operand is a valid sum of table names and integers"
	case FailTableNotFound:
		return fmt.Sprintf("table %s does not exist", f.Table)
	case FailExpressionFalse:
		return "row count check failed"
	default:
		return "internal error: check reached an unexpected state"
	}
}
