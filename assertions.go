package gridcalc

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for solver assertions.
type AssertionConfig struct {
	// How far a returned x may sit from its ideal grid point. Absorbs
	// the accumulated drift of repeated step addition (≈1.5e-12 across
	// the default 2001-candidate scan).
	GridTolerance float64

	// Residual threshold for exact hits, mirroring SearchConfig.Epsilon.
	Epsilon float64
}

// DefaultAssertionConfig returns tolerances matched to DefaultSearchConfig.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		GridTolerance: 1e-9,
		Epsilon:       0.0001,
	}
}

// AssertExact verifies Solve finds an exact hit at wantX under the
// default search config.
func AssertExact(t *testing.T, eq Equation, wantX float64) SearchResult {
	t.Helper()

	cfg := DefaultSearchConfig()
	res := Solve(eq, cfg)

	if res.Kind != Exact {
		t.Fatalf("%s: got %s (x=%g, residual=%g), expected exact hit at x=%g",
			eq, res.Kind, res.X, res.Residual, wantX)
	}

	tol := DefaultAssertionConfig().GridTolerance
	if math.Abs(res.X-wantX) > tol {
		t.Errorf("%s: x = %.15g, expected %g (tolerance %g)", eq, res.X, wantX, tol)
	}

	if res.Residual >= cfg.Epsilon {
		t.Errorf("%s: exact residual %.6g not below epsilon %g", eq, res.Residual, cfg.Epsilon)
	}

	t.Logf("✓ %s: exact x = %.4f (residual %.2e, %d candidates)",
		eq, res.X, res.Residual, res.Steps)
	return res
}

// AssertApproximate verifies Solve falls back to the closest sample:
// a full scan with a residual at or above epsilon.
func AssertApproximate(t *testing.T, eq Equation) SearchResult {
	t.Helper()

	cfg := DefaultSearchConfig()
	res := Solve(eq, cfg)

	if res.Kind != Approximate {
		t.Fatalf("%s: got %s (x=%g, residual=%g), expected approximate fallback",
			eq, res.Kind, res.X, res.Residual)
	}

	if res.Residual < cfg.Epsilon {
		t.Errorf("%s: approximate residual %.6g below epsilon %g (should have been exact)",
			eq, res.Residual, cfg.Epsilon)
	}

	if res.Steps != 2001 {
		t.Errorf("%s: scanned %d candidates, expected the full 2001", eq, res.Steps)
	}

	t.Logf("✓ %s: closest x = %.4f (residual %.4f after full scan)",
		eq, res.X, res.Residual)
	return res
}

// AssertEvaluates verifies Evaluate(a, op, b) matches want within
// floating tolerance.
func AssertEvaluates(t *testing.T, a float64, op Operator, b float64, want float64) {
	t.Helper()

	got, err := Evaluate(a, op, b)
	if err != nil {
		t.Fatalf("Evaluate(%g, %s, %g) failed: %v", a, op, b, err)
	}

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Evaluate(%g, %s, %g) = %.15g, expected %g", a, op, b, got, want)
	}
}
