package astrometry

import (
	"math"
	"testing"
)

func TestNormalizeLongitude(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-30, 330},
		{725, 5},
		{-725, 355},
	}
	for _, tc := range cases {
		if got := NormalizeLongitude(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("NormalizeLongitude(%f) = %f, expected %f", tc.in, got, tc.want)
		}
	}
}

func TestLongitudeOffset(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{90, 90},
		{180, 180},
		{181, -179},
		{270, -90},
		{-90, -90},
		{359, -1},
	}
	for _, tc := range cases {
		if got := LongitudeOffset(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("LongitudeOffset(%f) = %f, expected %f", tc.in, got, tc.want)
		}
	}
}

func TestBody_String(t *testing.T) {
	if got := Mars.String(); got != "Mars" {
		t.Errorf("Mars.String() = %q", got)
	}
	if got := Body(99).String(); got == "" {
		t.Error("unknown body produced empty string")
	}
}

func TestAngleBetween(t *testing.T) {
	tm := TimeFromDays(0)
	a := Vector{1, 0, 0, tm}
	b := Vector{0, 1, 0, tm}
	if got := angleBetween(a, b); math.Abs(got-90) > 1e-9 {
		t.Errorf("perpendicular vectors: %f deg", got)
	}
	if got := angleBetween(a, a); math.Abs(got) > 1e-6 {
		t.Errorf("identical vectors: %f deg", got)
	}
	c := Vector{-2, 0, 0, tm}
	if got := angleBetween(a, c); math.Abs(got-180) > 1e-9 {
		t.Errorf("opposite vectors: %f deg", got)
	}
	if got := angleBetween(a, Vector{T: tm}); got != 0 {
		t.Errorf("zero vector: %f deg, expected 0", got)
	}
}

func TestVectorArithmetic(t *testing.T) {
	tm := TimeFromDays(0)
	a := Vector{1, 2, 3, tm}
	b := Vector{4, -5, 6, tm}
	sum := a.Add(b)
	if sum.X != 5 || sum.Y != -3 || sum.Z != 9 {
		t.Errorf("Add = %+v", sum)
	}
	diff := a.Sub(b)
	if diff.X != -3 || diff.Y != 7 || diff.Z != -3 {
		t.Errorf("Sub = %+v", diff)
	}
	if l := (Vector{3, 4, 0, tm}).Length(); math.Abs(l-5) > 1e-12 {
		t.Errorf("Length = %f", l)
	}
}
