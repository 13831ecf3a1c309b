package astrometry

import (
	"errors"
	"math"
	"testing"
)

func TestMoonPhase_Range(t *testing.T) {
	for d := 0; d < 60; d += 5 {
		tm := TimeFromCalendar(2022, 3, 1, 0, 0, 0).AddDays(float64(d))
		phase, err := MoonPhase(tm)
		if err != nil {
			t.Fatalf("MoonPhase: %v", err)
		}
		if phase < 0 || phase >= 360 {
			t.Errorf("day %d: phase %f outside [0, 360)", d, phase)
		}
	}
}

func TestMoonPhase_Periodicity(t *testing.T) {
	t1 := TimeFromCalendar(2021, 7, 1, 0, 0, 0)
	t2 := t1.AddDays(MeanSynodicMonth)
	p1, err := MoonPhase(t1)
	if err != nil {
		t.Fatalf("MoonPhase: %v", err)
	}
	p2, err := MoonPhase(t2)
	if err != nil {
		t.Fatalf("MoonPhase: %v", err)
	}
	// One mean synodic month later the phase has come nearly full
	// circle; individual months vary by several hours.
	if diff := math.Abs(LongitudeOffset(p2 - p1)); diff > 8 {
		t.Errorf("phase drift over one synodic month = %f deg", diff)
	}
}

func TestSearchMoonPhase_FullMoon(t *testing.T) {
	// The full moon of January 2020 was at 19:21 UTC on the 10th.
	start := TimeFromCalendar(2020, 1, 1, 0, 0, 0)
	result, err := SearchMoonPhase(180, start, 40)
	if err != nil {
		t.Fatalf("SearchMoonPhase: %v", err)
	}
	if result == nil {
		t.Fatal("no full moon found in 40 days")
	}
	want := TimeFromCalendar(2020, 1, 10, 19, 21, 0)
	if diff := math.Abs(result.UT-want.UT) * secondsPerDay; diff > 600 {
		t.Errorf("full moon at %v, expected %v (off by %.0f s)", result, want, diff)
	}
}

func TestSearchMoonPhase_LimitTooShort(t *testing.T) {
	// Right after a full moon, the next one is a month away.
	start := TimeFromCalendar(2020, 1, 11, 0, 0, 0)
	result, err := SearchMoonPhase(180, start, 3)
	if err != nil {
		t.Fatalf("SearchMoonPhase: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil within 3 days, got %v", result)
	}
}

func TestMoonQuarter_Sequence(t *testing.T) {
	mq, err := SearchMoonQuarter(TimeFromCalendar(2019, 6, 1, 0, 0, 0))
	if err != nil {
		t.Fatalf("SearchMoonQuarter: %v", err)
	}
	prev := mq
	for i := 0; i < 8; i++ {
		next, err := NextMoonQuarter(prev)
		if err != nil {
			t.Fatalf("NextMoonQuarter %d: %v", i, err)
		}
		if next.Quarter != (prev.Quarter+1)%4 {
			t.Errorf("quarter %d followed by %d", prev.Quarter, next.Quarter)
		}
		gap := next.Time.UT - prev.Time.UT
		// Quarter spacing ranges roughly 6.5 to 8.2 days.
		if gap < 6 || gap > 9 {
			t.Errorf("gap between quarters = %f days", gap)
		}
		prev = next
	}
}

func TestPairLongitude_EarthRejected(t *testing.T) {
	if _, err := PairLongitude(Earth, Sun, TimeFromDays(0)); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("expected ErrInvalidBody, got %v", err)
	}
}

func TestEclipticLongitude_SunRejected(t *testing.T) {
	if _, err := EclipticLongitude(Sun, TimeFromDays(0)); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("expected ErrInvalidBody, got %v", err)
	}
}
