package astrometry

import (
	"math"
	"testing"
)

// seasonTolDays allows two minutes of slack against published times,
// enough to absorb the truncation of the Earth series.
const seasonTolDays = 120.0 / secondsPerDay

func TestSeasons_2020(t *testing.T) {
	si, err := Seasons(2020)
	if err != nil {
		t.Fatalf("Seasons: %v", err)
	}
	cases := []struct {
		name string
		got  Time
		want Time
	}{
		// USNO values for 2020.
		{"march equinox", si.MarEquinox, TimeFromCalendar(2020, 3, 20, 3, 49, 36)},
		{"june solstice", si.JunSolstice, TimeFromCalendar(2020, 6, 20, 21, 43, 40)},
		{"september equinox", si.SepEquinox, TimeFromCalendar(2020, 9, 22, 13, 30, 38)},
		{"december solstice", si.DecSolstice, TimeFromCalendar(2020, 12, 21, 10, 2, 19)},
	}
	for _, tc := range cases {
		if diff := math.Abs(tc.got.UT - tc.want.UT); diff > seasonTolDays {
			t.Errorf("%s = %v, expected %v (off by %.1f s)",
				tc.name, tc.got, tc.want, diff*secondsPerDay)
		}
	}
}

func TestSeasons_Ordering(t *testing.T) {
	for _, year := range []int{1975, 2005, 2035} {
		si, err := Seasons(year)
		if err != nil {
			t.Fatalf("Seasons(%d): %v", year, err)
		}
		if !(si.MarEquinox.UT < si.JunSolstice.UT &&
			si.JunSolstice.UT < si.SepEquinox.UT &&
			si.SepEquinox.UT < si.DecSolstice.UT) {
			t.Errorf("season times out of order for %d: %v %v %v %v",
				year, si.MarEquinox, si.JunSolstice, si.SepEquinox, si.DecSolstice)
		}
		// Each quarter spans roughly 89 to 94 days.
		q1 := si.JunSolstice.UT - si.MarEquinox.UT
		q2 := si.SepEquinox.UT - si.JunSolstice.UT
		q3 := si.DecSolstice.UT - si.SepEquinox.UT
		for i, q := range []float64{q1, q2, q3} {
			if q < 88 || q > 95 {
				t.Errorf("year %d quarter %d spans %.2f days", year, i+1, q)
			}
		}
	}
}

func TestSearchSunLongitude_NotFound(t *testing.T) {
	// Two days is far too short a window to sweep 90 degrees of
	// longitude, so the search must report not found.
	start := TimeFromCalendar(2020, 1, 1, 0, 0, 0)
	ecl, err := SunPosition(start)
	if err != nil {
		t.Fatalf("SunPosition: %v", err)
	}
	target := NormalizeLongitude(ecl.Elon.Deg() + 90)
	result, err := SearchSunLongitude(target, start, 2.0)
	if err != nil {
		t.Fatalf("SearchSunLongitude: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result, got %v", result)
	}
}
