package astrometry

import (
	"testing"
)

func TestSearchLunarApsis_DistanceRanges(t *testing.T) {
	apsis, err := SearchLunarApsis(TimeFromCalendar(2020, 1, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("SearchLunarApsis: %v", err)
	}
	// Walk two years of events checking alternation and distances.
	for i := 0; i < 50; i++ {
		switch apsis.Kind {
		case Perigee:
			if apsis.DistKm < 356000 || apsis.DistKm > 370500 {
				t.Errorf("event %d: perigee distance %f km", i, apsis.DistKm)
			}
		case Apogee:
			if apsis.DistKm < 403900 || apsis.DistKm > 406800 {
				t.Errorf("event %d: apogee distance %f km", i, apsis.DistKm)
			}
		default:
			t.Fatalf("event %d: unknown kind %v", i, apsis.Kind)
		}

		next, err := NextLunarApsis(apsis)
		if err != nil {
			t.Fatalf("NextLunarApsis %d: %v", i, err)
		}
		if next.Kind == apsis.Kind {
			t.Fatalf("event %d: kind %v repeated", i, next.Kind)
		}
		gap := next.Time.UT - apsis.Time.UT
		// Half an anomalistic month, give or take the Moon's large
		// perturbations.
		if gap < 11 || gap > 17 {
			t.Errorf("event %d: apsis gap %f days", i, gap)
		}
		apsis = next
	}
}

func TestSearchLunarApsis_DistKmConsistent(t *testing.T) {
	apsis, err := SearchLunarApsis(TimeFromCalendar(2015, 6, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("SearchLunarApsis: %v", err)
	}
	if got := apsis.DistAU * KmPerAU; got != apsis.DistKm {
		t.Errorf("DistKm = %f, DistAU converts to %f", apsis.DistKm, got)
	}
}
