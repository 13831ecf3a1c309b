package astrometry

import (
	"math"
	"testing"
)

// TestSearch_LinearRoot finds the root of a simple analytic function.
func TestSearch_LinearRoot(t *testing.T) {
	const target = 0.7
	fn := func(tm Time) (float64, error) {
		return tm.UT - target, nil
	}
	t1 := TimeFromDays(0)
	t2 := TimeFromDays(1)

	result, err := Search(fn, t1, t2, 1.0)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result == nil {
		t.Fatal("Search returned no root for a bracketed linear function")
	}
	// 1 second tolerance in days.
	if math.Abs(result.UT-target) > 1.0/secondsPerDay {
		t.Errorf("root at %.9f, expected %.9f", result.UT, target)
	}
	if result.UT < t1.UT || result.UT > t2.UT {
		t.Errorf("root %.9f outside bracket [%.1f, %.1f]", result.UT, t1.UT, t2.UT)
	}
}

// TestSearch_QuadraticRoot exercises the interpolation shortcut with a
// smooth nonlinear function.
func TestSearch_QuadraticRoot(t *testing.T) {
	// sin crosses zero upward at UT = 0.
	fn := func(tm Time) (float64, error) {
		return math.Sin(tm.UT), nil
	}
	result, err := Search(fn, TimeFromDays(-0.7), TimeFromDays(0.9), 0.1)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if result == nil {
		t.Fatal("Search found no root")
	}
	if math.Abs(result.UT) > 0.1/secondsPerDay {
		t.Errorf("root at %.12f, expected 0", result.UT)
	}
}

// TestSearch_NoRoot verifies that a bracket without an ascending zero
// crossing yields a nil result, not an error.
func TestSearch_NoRoot(t *testing.T) {
	cases := []struct {
		name string
		fn   SearchFunc
	}{
		{"always positive", func(tm Time) (float64, error) { return 1.0, nil }},
		{"always negative", func(tm Time) (float64, error) { return -1.0, nil }},
		{"descending only", func(tm Time) (float64, error) { return math.Cos(tm.UT), nil }},
	}
	for _, tc := range cases {
		result, err := Search(tc.fn, TimeFromDays(0), TimeFromDays(3), 1.0)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if result != nil {
			t.Errorf("%s: expected no root, got %v", tc.name, result)
		}
	}
}

// TestSearch_InvalidTolerance rejects non-positive tolerances.
func TestSearch_InvalidTolerance(t *testing.T) {
	fn := func(tm Time) (float64, error) { return tm.UT, nil }
	if _, err := Search(fn, TimeFromDays(-1), TimeFromDays(1), 0); err != ErrInvalidArgument {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

// TestQuadInterp_TwoRootsRejected checks that an ambiguous parabola is
// not interpolated.
func TestQuadInterp_TwoRootsRejected(t *testing.T) {
	// f(x) = x^2 - 0.25 has roots at -0.5 and +0.5, both inside [-1,1].
	tm := TimeFromDays(0)
	if _, ok := quadInterp(tm, 1.0, 0.75, -0.25, 0.75); ok {
		t.Error("expected rejection of a parabola with two roots in range")
	}
}
