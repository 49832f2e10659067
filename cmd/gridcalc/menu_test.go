package main

import (
	"strings"
	"testing"
)

// TestRunMenu_BasicCalculation scripts option 1: 5 + 3.
func TestRunMenu_BasicCalculation(t *testing.T) {
	in := strings.NewReader("1\n5\n+\n3\n5\n")
	var out strings.Builder

	if err := runMenu(in, &out); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}

	if !strings.Contains(out.String(), "Result: 8") {
		t.Errorf("output missing calculation result:\n%s", out.String())
	}
}

// TestRunMenu_RetryOnBadInput verifies invalid numbers and operators
// re-prompt instead of aborting the loop.
func TestRunMenu_RetryOnBadInput(t *testing.T) {
	in := strings.NewReader("1\nabc\n5\n%\n+\n3\n5\n")
	var out strings.Builder

	if err := runMenu(in, &out); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Please enter a valid number") {
		t.Error("missing invalid-number retry message")
	}
	if !strings.Contains(got, "Invalid operation") {
		t.Error("missing invalid-operation retry message")
	}
	if !strings.Contains(got, "Result: 8") {
		t.Errorf("calculation did not complete after retries:\n%s", got)
	}
}

// TestRunMenu_SolveEquation scripts option 2: x + 5 = 10.
func TestRunMenu_SolveEquation(t *testing.T) {
	in := strings.NewReader("2\ny\n+\n5\n10\nn\n5\n")
	var out strings.Builder

	if err := runMenu(in, &out); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Solution: x = 5.0000") {
		t.Errorf("output missing solution:\n%s", got)
	}
	if !strings.Contains(got, "Verification: 10.0000 ≈ 10") {
		t.Errorf("output missing verification line:\n%s", got)
	}
}

// TestRunMenu_SolveEquationRightSide scripts option 2 with x on the
// right: 3 * x = 15. The known operand is asked before the operation,
// matching the order of the equation as written.
func TestRunMenu_SolveEquationRightSide(t *testing.T) {
	in := strings.NewReader("2\nn\n3\n*\n15\nn\n5\n")
	var out strings.Builder

	if err := runMenu(in, &out); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}

	got := out.String()
	knownAt := strings.Index(got, "Number before the operation")
	opAt := strings.Index(got, "Operation (")
	if knownAt == -1 || opAt == -1 || knownAt > opAt {
		t.Errorf("known operand not prompted before the operation:\n%s", got)
	}
	if !strings.Contains(got, "Solution: x = 5.0000") {
		t.Errorf("output missing solution:\n%s", got)
	}
	if !strings.Contains(got, "Verification: 15.0000 ≈ 15") {
		t.Errorf("output missing verification line:\n%s", got)
	}
}

// TestRunMenu_DivideByZeroGuard verifies the divisor re-prompt on
// option 1.
func TestRunMenu_DivideByZeroGuard(t *testing.T) {
	in := strings.NewReader("1\n10\n/\n0\n2\n5\n")
	var out strings.Builder

	if err := runMenu(in, &out); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Cannot divide by zero") {
		t.Error("missing divide-by-zero guard message")
	}
	if !strings.Contains(got, "Result: 5") {
		t.Errorf("division did not complete after retry:\n%s", got)
	}
}

// TestRunMenu_EOF verifies end of input exits cleanly.
func TestRunMenu_EOF(t *testing.T) {
	var out strings.Builder
	if err := runMenu(strings.NewReader(""), &out); err != nil {
		t.Fatalf("runMenu on empty input: %v", err)
	}
}
