package gridcalc

import "math"

// TraceStep records one coarse probe of the search visualization.
type TraceStep struct {
	X        float64
	Result   float64
	Residual float64
	Err      error // Non-nil when evaluation failed at X
	Exact    bool  // Residual fell below epsilon
}

// PreviewPoints are the coarse probes shown before the full scan.
var PreviewPoints = []float64{-10, -5, 0, 5, 10, 15, 20}

// VisualizeSearch probes the preview points in order, recording the
// result and residual at each, then falls through to the full grid scan.
// If a probe is already exact, it becomes the answer and the full scan
// is skipped. Pure: callers own the printing.
func VisualizeSearch(eq Equation, cfg SearchConfig) ([]TraceStep, SearchResult) {
	steps := make([]TraceStep, 0, len(PreviewPoints))

	for _, x := range PreviewPoints {
		result, err := eq.EvaluateAt(x)
		step := TraceStep{X: x, Result: result, Err: err, Residual: math.Inf(1)}
		if err == nil {
			step.Residual = math.Abs(result - eq.Target)
			step.Exact = step.Residual < cfg.Epsilon
		}
		steps = append(steps, step)

		if step.Exact {
			return steps, SearchResult{
				Kind:     Exact,
				X:        x,
				Residual: step.Residual,
				Steps:    len(steps),
			}
		}
	}

	return steps, Solve(eq, cfg)
}
