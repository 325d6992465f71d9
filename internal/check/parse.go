package check

import "regexp"

// ParsedExpression is an expression split at its single comparator.
type ParsedExpression struct {
	LHS      string
	Operator string
	RHS      string
}

// exprPattern splits an expression at the first comparator token.
// Operand characters are whitespace, word characters, and + - * .
// The LHS match is non-greedy so the first comparator wins, and the
// two-character comparators are listed before the single-character
// ones so "a <= b" never splits at the bare "<".
var exprPattern = regexp.MustCompile(`^([\s\w+\-*.]+?)(<>|<=|>=|=|<|>)([\s\w+\-*.]+)$`)

// parseExpression validates the overall shape of an expression and
// splits it into sides. A missing comparator, a second comparator, or
// any character outside the operand set rejects the whole string.
func parseExpression(expr string) (ParsedExpression, *Failure) {
	m := exprPattern.FindStringSubmatch(expr)
	if m == nil {
		return ParsedExpression{}, &Failure{Kind: FailMalformedExpression}
	}
	return ParsedExpression{LHS: m[1], Operator: m[2], RHS: m[3]}, nil
}
