package gridcalc

import (
	"errors"
	"fmt"
	"math"
)

// Evaluator errors. All are recoverable: callers report them and retry.
var (
	// ErrDivisionByZero is returned when the divisor of a division is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidNumber is returned when raw text fails to parse as a real number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidOperation is returned for an operator outside the closed set.
	ErrInvalidOperation = errors.New("invalid operation")
)

// Operator identifies one of the five supported binary operations.
// The set is closed: dispatch is a static switch, not a mutable table.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpPower    Operator = "^"
)

// Operators lists the closed operator set in menu order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower}

// Valid reports whether op is a member of the closed operator set.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower:
		return true
	}
	return false
}

func (op Operator) String() string {
	return string(op)
}

// Evaluate applies op to a and b and returns the numeric result.
//
// Division by zero returns ErrDivisionByZero; an operator outside the
// closed set returns ErrInvalidOperation. Exponentiation follows
// math.Pow semantics, including fractional and negative exponents
// (a negative base with a fractional exponent yields NaN).
//
// Pure function: no state, no side effects.
func Evaluate(a float64, op Operator, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, fmt.Errorf("%w: %g / %g", ErrDivisionByZero, a, b)
		}
		return a / b, nil
	case OpPower:
		return math.Pow(a, b), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidOperation, string(op))
	}
}
