package gridcalc

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber parses raw text as a real number. Failures wrap
// ErrInvalidNumber.
func ParseNumber(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, strings.TrimSpace(text))
	}
	return v, nil
}

// ParseOperator parses raw text as a member of the closed operator set.
// Failures wrap ErrInvalidOperation.
func ParseOperator(text string) (Operator, error) {
	op := Operator(strings.TrimSpace(text))
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperation, strings.TrimSpace(text))
	}
	return op, nil
}

// EvaluateFields evaluates a basic calculation whose operands arrive as
// raw text, surfacing the full error taxonomy: ErrInvalidNumber for
// unparseable operands, ErrInvalidOperation for an unknown operator,
// ErrDivisionByZero from the evaluation itself.
func EvaluateFields(aText, opText, bText string) (float64, error) {
	a, err := ParseNumber(aText)
	if err != nil {
		return 0, err
	}
	op, err := ParseOperator(opText)
	if err != nil {
		return 0, err
	}
	b, err := ParseNumber(bText)
	if err != nil {
		return 0, err
	}
	return Evaluate(a, op, b)
}

// ParseEquation builds an Equation from raw menu fields. Pure: the
// interactive retry loop belongs to the caller.
func ParseEquation(xLeft bool, opText, knownText, targetText string) (Equation, error) {
	op, err := ParseOperator(opText)
	if err != nil {
		return Equation{}, err
	}
	known, err := ParseNumber(knownText)
	if err != nil {
		return Equation{}, err
	}
	target, err := ParseNumber(targetText)
	if err != nil {
		return Equation{}, err
	}

	side := XLeft
	if !xLeft {
		side = XRight
	}
	return Equation{Target: target, Op: op, Known: known, XSide: side}, nil
}
