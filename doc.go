// Package gridcalc evaluates basic binary arithmetic and solves
// single-variable linear equations by brute-force grid search.
//
// # Overview
//
// Two collaborating pieces:
//
//   - Evaluate: maps an operator from the closed set {+, -, *, /, ^} and
//     two operands to a numeric result or a classified error.
//   - Solve: given x OP known = target (or known OP x = target), scans
//     candidate x values across a fixed range at a fixed step and returns
//     the first exact hit, or the closest approximate sample.
//
// # Quick Start
//
// Solve x + 5 = 10:
//
//	eq := gridcalc.Equation{
//	    Target: 10,
//	    Op:     gridcalc.OpAdd,
//	    Known:  5,
//	    XSide:  gridcalc.XLeft,
//	}
//
//	res := gridcalc.Solve(eq, gridcalc.DefaultSearchConfig())
//	fmt.Printf("x = %.4f (%s)\n", res.X, res.Kind)
//
// Verify the solution by re-evaluating the equation at the returned x:
//
//	v := gridcalc.Verify(eq, res.X, gridcalc.DefaultSearchConfig().Epsilon)
//	fmt.Printf("check: %.4f (residual %.6f)\n", v.Result, v.Residual)
//
// # Search Policy
//
// The scan walks the grid in strictly ascending order and returns the
// FIRST candidate whose residual |result - target| falls below epsilon.
// This is deliberate: it reproduces the reference behavior, where a
// later, closer match is never found once an earlier one triggers a
// return. When no candidate is exact, the candidate with the minimal
// residual wins. With the default config ([-100, 100], step 0.1) every
// solve evaluates exactly 2001 candidates, both endpoints included.
//
// Candidates where evaluation fails (division by zero mid-scan) or
// produces a non-finite value carry a non-finite residual and are
// passed over without special-casing.
//
// All functions are pure and deterministic; the package performs no I/O.
// The interactive front end lives in cmd/gridcalc.
package gridcalc
