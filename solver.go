package gridcalc

import (
	"fmt"
	"math"
)

// Side indicates which operand of the binary operation is the unknown.
type Side string

const (
	// XLeft means the equation is x OP known = target.
	XLeft Side = "left"

	// XRight means the equation is known OP x = target.
	XRight Side = "right"
)

// Equation is a single-variable linear equation with one unknown operand.
// Known and Target are finite real numbers supplied by the caller.
type Equation struct {
	Target float64  // Desired result (right of the equals sign)
	Op     Operator // Binary operation
	Known  float64  // The non-x operand
	XSide  Side     // Which side of Op the unknown occupies
}

// String renders the equation with x in place of the unknown.
func (eq Equation) String() string {
	if eq.XSide == XRight {
		return fmt.Sprintf("%g %s x = %g", eq.Known, eq.Op, eq.Target)
	}
	return fmt.Sprintf("x %s %g = %g", eq.Op, eq.Known, eq.Target)
}

// EvaluateAt computes the equation's operation with x substituted for
// the unknown operand.
func (eq Equation) EvaluateAt(x float64) (float64, error) {
	if eq.XSide == XRight {
		return Evaluate(eq.Known, eq.Op, x)
	}
	return Evaluate(x, eq.Op, eq.Known)
}

// Residual returns |result - target| at x. Evaluation errors map to +Inf
// so the candidate can never win a comparison against a finite incumbent;
// a non-finite result propagates naturally (Inf or NaN residual), which
// fails every < comparison the same way.
func (eq Equation) Residual(x float64) float64 {
	result, err := eq.EvaluateAt(x)
	if err != nil {
		return math.Inf(1)
	}
	return math.Abs(result - eq.Target)
}

// SearchConfig controls the grid scan.
type SearchConfig struct {
	Min     float64 // First candidate value
	Max     float64 // Scan stops once the candidate exceeds this
	Step    float64 // Candidate increment
	Epsilon float64 // Residual threshold for an exact hit
}

// DefaultSearchConfig returns the reference scan parameters:
// 2001 candidates across [-100, 100] at step 0.1, epsilon 1e-4.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Min:     -100,
		Max:     100,
		Step:    0.1,
		Epsilon: 0.0001,
	}
}

// ResultKind classifies a SearchResult.
type ResultKind string

const (
	// Exact means a candidate's residual fell below epsilon.
	Exact ResultKind = "EXACT"

	// Approximate means no candidate was exact; X is the closest sample.
	Approximate ResultKind = "APPROXIMATE"

	// NotFound means no candidate produced a finite residual, the range
	// was empty, or the step was non-positive. Defensive terminal case,
	// not an error.
	NotFound ResultKind = "NOT_FOUND"
)

// SearchResult is the outcome of a single Solve call.
type SearchResult struct {
	Kind     ResultKind
	X        float64 // Solution candidate (meaningless for NotFound)
	Residual float64 // |result - target| at X
	Steps    int     // Candidates evaluated before returning
}

// Solve scans candidate x values in ascending order from cfg.Min to
// cfg.Max by repeated addition of cfg.Step, evaluating the equation at
// each candidate.
//
// Policy, preserved from the reference behavior:
//
//   - The FIRST candidate whose residual falls below cfg.Epsilon wins
//     and the scan returns immediately. A later, closer grid point is
//     never examined.
//   - Otherwise the candidate with the minimal residual wins, tracked
//     with strict <, so the earliest of equal-residual candidates is kept.
//   - Candidates whose evaluation fails or produces a non-finite result
//     carry a non-finite residual and therefore never win either
//     comparison; the scan continues past them.
//
// The accumulated floating-point drift of repeated Step addition is
// accepted, not corrected: with the default config the grid point near 5
// is 4.999999999998595, and epsilon absorbs the difference.
//
// Deterministic and pure: identical arguments yield identical results.
func Solve(eq Equation, cfg SearchConfig) SearchResult {
	// A non-positive step can never advance past Max; treat it like an
	// empty range instead of scanning forever.
	if cfg.Step <= 0 {
		return SearchResult{Kind: NotFound, Residual: math.Inf(1)}
	}

	var (
		bestX        float64
		bestResidual = math.Inf(1)
		found        bool
		steps        int
	)

	for x := cfg.Min; x <= cfg.Max; x += cfg.Step {
		steps++
		residual := eq.Residual(x)

		if residual < cfg.Epsilon {
			return SearchResult{Kind: Exact, X: x, Residual: residual, Steps: steps}
		}
		if residual < bestResidual {
			bestResidual = residual
			bestX = x
			found = true
		}
	}

	if !found {
		return SearchResult{Kind: NotFound, Residual: math.Inf(1), Steps: steps}
	}
	return SearchResult{Kind: Approximate, X: bestX, Residual: bestResidual, Steps: steps}
}
