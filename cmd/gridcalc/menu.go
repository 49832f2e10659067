package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alexshd/gridcalc"
)

const divider = "=================================================="

// runMenu drives the interactive loop. All parsing is delegated to the
// gridcalc package; this loop only prompts, retries, and formats.
// Returns nil on option 5 or end of input.
func runMenu(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, divider)
		fmt.Fprintln(out, "SMART CALCULATOR")
		fmt.Fprintln(out, divider)
		fmt.Fprintln(out, "1. Basic calculation")
		fmt.Fprintln(out, "2. Solve equation (grid search)")
		fmt.Fprintln(out, "3. Search visualization demo")
		fmt.Fprintln(out, "4. About the search strategy")
		fmt.Fprintln(out, "5. Exit")

		choice, ok := prompt(sc, out, "\nChoose option (1-5): ")
		if !ok {
			return sc.Err()
		}

		switch choice {
		case "1":
			if !basicCalculation(sc, out) {
				return sc.Err()
			}
		case "2":
			if !equationSolver(sc, out) {
				return sc.Err()
			}
		case "3":
			visualizationDemo(out)
		case "4":
			aboutSearch(out)
		case "5":
			fmt.Fprintln(out, "\nThanks for using gridcalc!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice, enter 1-5")
		}
	}
}

// prompt prints text and reads one trimmed line. ok is false at end of
// input.
func prompt(sc *bufio.Scanner, out io.Writer, text string) (string, bool) {
	fmt.Fprint(out, text)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

// promptNumber re-prompts until the input parses as a real number.
func promptNumber(sc *bufio.Scanner, out io.Writer, text string) (float64, bool) {
	for {
		raw, ok := prompt(sc, out, text)
		if !ok {
			return 0, false
		}
		n, err := gridcalc.ParseNumber(raw)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number")
			continue
		}
		return n, true
	}
}

// promptOperator re-prompts until the input is a member of the closed
// operator set.
func promptOperator(sc *bufio.Scanner, out io.Writer) (gridcalc.Operator, bool) {
	for {
		raw, ok := prompt(sc, out, "Operation (+, -, *, /, ^): ")
		if !ok {
			return "", false
		}
		op, err := gridcalc.ParseOperator(raw)
		if err != nil {
			fmt.Fprintf(out, "Invalid operation, choose one of: %v\n", gridcalc.Operators)
			continue
		}
		return op, true
	}
}

// basicCalculation handles menu option 1. Returns false at end of input.
func basicCalculation(sc *bufio.Scanner, out io.Writer) bool {
	a, ok := promptNumber(sc, out, "Enter first number: ")
	if !ok {
		return false
	}
	op, ok := promptOperator(sc, out)
	if !ok {
		return false
	}

	var b float64
	for {
		b, ok = promptNumber(sc, out, "Enter second number: ")
		if !ok {
			return false
		}
		if op == gridcalc.OpDivide && b == 0 {
			fmt.Fprintln(out, "Cannot divide by zero, enter another number")
			continue
		}
		break
	}

	result, err := gridcalc.Evaluate(a, op, b)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return true
	}
	fmt.Fprintf(out, "\nResult: %g\n", result)
	return true
}

// equationSolver handles menu option 2: collect the equation, run the
// visualized search, print the solution and its verification, repeat
// until the user declines.
func equationSolver(sc *bufio.Scanner, out io.Writer) bool {
	fmt.Fprintln(out)
	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, "EQUATION SOLVER (grid search)")
	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, "I can solve equations like:")
	fmt.Fprintln(out, "  x + 5 = 10")
	fmt.Fprintln(out, "  x * 3 = 15")
	fmt.Fprintln(out, "  10 - x = 7")
	fmt.Fprintln(out, "  20 / x = 4")

	for {
		answer, ok := prompt(sc, out, "\nIs x on the left side? (y/n): ")
		if !ok {
			return false
		}
		xLeft := strings.HasPrefix(strings.ToLower(answer), "y")

		// Field order follows the equation as written: for x OP k the
		// operation comes first, for k OP x the known operand does.
		var (
			op    gridcalc.Operator
			known float64
		)
		if xLeft {
			fmt.Fprintln(out, "Enter in format: x op num = result")
			op, ok = promptOperator(sc, out)
			if !ok {
				return false
			}
			known, ok = promptNumber(sc, out, "Number after the operation: ")
			if !ok {
				return false
			}
		} else {
			fmt.Fprintln(out, "Enter in format: num op x = result")
			known, ok = promptNumber(sc, out, "Number before the operation: ")
			if !ok {
				return false
			}
			op, ok = promptOperator(sc, out)
			if !ok {
				return false
			}
		}
		target, ok := promptNumber(sc, out, "Desired result (after =): ")
		if !ok {
			return false
		}

		side := gridcalc.XLeft
		if !xLeft {
			side = gridcalc.XRight
		}
		eq := gridcalc.Equation{Target: target, Op: op, Known: known, XSide: side}
		solveAndReport(out, eq)

		again, ok := prompt(sc, out, "\nSolve another equation? (y/n): ")
		if !ok {
			return false
		}
		if !strings.HasPrefix(strings.ToLower(again), "y") {
			return true
		}
	}
}

// solveAndReport runs the visualized search for eq and prints the trace,
// the solution, and the verification line.
func solveAndReport(out io.Writer, eq gridcalc.Equation) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "SEARCHING FOR SOLUTION...")
	fmt.Fprintf(out, "Goal: find x where %s\n", eq)
	fmt.Fprintln(out, "\nTesting values:")
	fmt.Fprintln(out, strings.Repeat("-", 40))

	cfg := gridcalc.DefaultSearchConfig()
	start := time.Now()
	steps, res := gridcalc.VisualizeSearch(eq, cfg)

	for _, step := range steps {
		switch {
		case step.Err != nil:
			fmt.Fprintf(out, "  x = %6.1f → %v\n", step.X, step.Err)
		case step.Exact:
			fmt.Fprintf(out, "  x = %6.1f → result = %6.1f [FOUND IT]\n", step.X, step.Result)
		default:
			fmt.Fprintf(out, "  x = %6.1f → result = %6.1f [off by %.1f]\n",
				step.X, step.Result, step.Residual)
		}
	}
	if res.Steps > len(steps) {
		fmt.Fprintln(out, "\n...continuing detailed search...")
	}

	slog.Debug("search finished",
		"equation", eq.String(),
		"kind", string(res.Kind),
		"candidates", res.Steps,
		"took", time.Since(start))

	fmt.Fprintln(out)
	printResult(out, eq, res, cfg)
}

// visualizationDemo handles menu option 3 with the fixed demo equation
// x + 5 = 12.
func visualizationDemo(out io.Writer) {
	fmt.Fprintln(out, "\nLet's solve: x + 5 = 12")
	solveAndReport(out, gridcalc.Equation{
		Target: 12,
		Op:     gridcalc.OpAdd,
		Known:  5,
		XSide:  gridcalc.XLeft,
	})
}

// aboutSearch handles menu option 4.
func aboutSearch(out io.Writer) {
	fmt.Fprintln(out, "\nABOUT THE SEARCH STRATEGY")
	fmt.Fprintln(out, strings.Repeat("-", 40))
	fmt.Fprintln(out, "The solver uses a brute-force linear scan:")
	fmt.Fprintln(out, "- tries candidate x values from -100 to 100 at step 0.1")
	fmt.Fprintln(out, "- checks each candidate against the equation")
	fmt.Fprintln(out, "- the first candidate within 0.0001 of the target wins")
	fmt.Fprintln(out, "- otherwise the closest candidate is reported")
	fmt.Fprintln(out, "\nSmarter strategies (BFS, DFS, A*) prune this space;")
	fmt.Fprintln(out, "the scan here visits all 2001 candidates when it must.")
}
