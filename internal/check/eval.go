package check

import "strconv"

// EvaluationResult holds the evaluated sides of a comparison and
// whether it holds.
type EvaluationResult struct {
	LHSValue        int64
	RHSValue        int64
	ComparisonHolds bool
}

// evalOperand evaluates one validated operand as integer arithmetic.
// Multiplication binds tighter than addition and subtraction; equal
// precedence associates left to right. Table references take their
// values from counts.
func evalOperand(operand string, counts map[string]int64) (int64, *Failure) {
	values, ops, fail := scanOperand(operand, counts)
	if fail != nil {
		return 0, fail
	}

	// Collapse multiplications first.
	vals := []int64{values[0]}
	var addOps []byte
	for i, op := range ops {
		if op == '*' {
			vals[len(vals)-1] *= values[i+1]
		} else {
			addOps = append(addOps, op)
			vals = append(vals, values[i+1])
		}
	}

	acc := vals[0]
	for i, op := range addOps {
		if op == '+' {
			acc += vals[i+1]
		} else {
			acc -= vals[i+1]
		}
	}
	return acc, nil
}

// scanOperand splits an operand into term values and the operators
// between them. The operand grammar was validated earlier, so any
// leftover state here is an internal error.
func scanOperand(operand string, counts map[string]int64) ([]int64, []byte, *Failure) {
	var values []int64
	var ops []byte

	i := 0
	n := len(operand)
	for i < n {
		switch c := operand[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '+' || c == '-' || c == '*':
			ops = append(ops, c)
			i++
		default:
			start := i
			for i < n && isTermChar(operand[i]) {
				i++
			}
			term := operand[start:i]
			if term == "" {
				return nil, nil, &Failure{Kind: FailInternal, Detail: "empty term in " + operand}
			}
			v, fail := termValue(term, counts)
			if fail != nil {
				return nil, nil, fail
			}
			values = append(values, v)
		}
	}

	if len(values) != len(ops)+1 {
		return nil, nil, &Failure{Kind: FailInternal, Detail: "unbalanced terms in " + operand}
	}
	return values, ops, nil
}

func isTermChar(c byte) bool {
	return c == '.' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func termValue(term string, counts map[string]int64) (int64, *Failure) {
	if c := term[0]; c >= '0' && c <= '9' {
		v, err := strconv.ParseInt(term, 10, 64)
		if err != nil {
			return 0, &Failure{Kind: FailInternal, Detail: "integer literal " + term + " out of range"}
		}
		return v, nil
	}
	v, ok := counts[term]
	if !ok {
		// Identifiers that never resolved to a table, such as a
		// leading-underscore name, have no value to substitute.
		return 0, &Failure{Kind: FailInternal, Detail: "no row count resolved for " + term}
	}
	return v, nil
}

// compare applies the comparator to the evaluated sides.
func compare(lhs, rhs int64, operator string) bool {
	switch operator {
	case "=":
		return lhs == rhs
	case "<>":
		return lhs != rhs
	case "<=":
		return lhs <= rhs
	case ">=":
		return lhs >= rhs
	case "<":
		return lhs < rhs
	case ">":
		return lhs > rhs
	default:
		return false
	}
}
