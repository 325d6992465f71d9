package check

import "regexp"

// Identifier limits: a namespace is a letter or underscore followed by
// at most 8 word characters, a table name a letter or underscore
// followed by at most 32.
const (
	namespacePattern  = `[A-Za-z_]\w{0,8}`
	identifierPattern = `[A-Za-z_]\w{0,32}`
)

// operandPattern matches a complete operand: one term, or a chain of
// terms joined by + - *, with optional surrounding whitespace. A term
// is an optionally namespace-qualified identifier or a bare integer.
var operandPattern = regexp.MustCompile(
	`^\s*(?:` + termPattern + `\s*[-+*]\s*)*` + termPattern + `\s*$`,
)

const termPattern = `(?:(?:` + namespacePattern + `\.)?` + identifierPattern + `|\d+)`

// validateOperands checks both sides against the operand grammar. The
// returned failure names the faulty side, or both when neither parses.
func validateOperands(lhs, rhs string) *Failure {
	lhsOK := operandPattern.MatchString(lhs)
	rhsOK := operandPattern.MatchString(rhs)
	switch {
	case lhsOK && rhsOK:
		return nil
	case !lhsOK && !rhsOK:
		return &Failure{Kind: FailInvalidOperands}
	case !lhsOK:
		return &Failure{Kind: FailInvalidLHS}
	default:
		return &Failure{Kind: FailInvalidRHS}
	}
}
