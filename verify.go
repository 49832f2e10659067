package gridcalc

import "math"

// Verification reports a re-evaluation of the equation at a solved x.
type Verification struct {
	Result   float64
	Residual float64
	Exact    bool  // Residual < epsilon
	Err      error // Non-nil when re-evaluation failed
}

// Verify re-runs the evaluator at x and compares against the target.
// Pure consumer of Evaluate: owns no state, triggers no search.
func Verify(eq Equation, x float64, epsilon float64) Verification {
	result, err := eq.EvaluateAt(x)
	if err != nil {
		return Verification{Residual: math.Inf(1), Err: err}
	}

	residual := math.Abs(result - eq.Target)
	return Verification{
		Result:   result,
		Residual: residual,
		Exact:    residual < epsilon,
	}
}
