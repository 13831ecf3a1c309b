package astrometry

import (
	"errors"
	"math"
	"testing"
)

func TestSynodicPeriod(t *testing.T) {
	cases := []struct {
		body Body
		want float64
	}{
		{Mercury, 115.88},
		{Venus, 583.92},
		{Mars, 779.94},
		{Jupiter, 398.88},
	}
	for _, tc := range cases {
		got, err := SynodicPeriod(tc.body)
		if err != nil {
			t.Fatalf("%v: %v", tc.body, err)
		}
		if math.Abs(got-tc.want) > 0.5 {
			t.Errorf("%v synodic period = %f, expected %f", tc.body, got, tc.want)
		}
	}
	if _, err := SynodicPeriod(Earth); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("Earth: expected ErrInvalidBody, got %v", err)
	}
}

func TestSearchRelativeLongitude_MarsOpposition(t *testing.T) {
	// Mars reached opposition on 2020-10-13.
	start := TimeFromCalendar(2020, 9, 1, 0, 0, 0)
	tm, err := SearchRelativeLongitude(Mars, 0, start)
	if err != nil {
		t.Fatalf("SearchRelativeLongitude: %v", err)
	}
	want := TimeFromCalendar(2020, 10, 13, 23, 0, 0)
	if diff := math.Abs(tm.UT - want.UT); diff > 1.0 {
		t.Errorf("opposition at %v, expected near %v (off by %.2f days)", tm, want, diff)
	}
}

func TestSearchRelativeLongitude_VenusInferiorConjunction(t *testing.T) {
	// Venus passed inferior conjunction on 2020-06-03.
	start := TimeFromCalendar(2020, 4, 1, 0, 0, 0)
	tm, err := SearchRelativeLongitude(Venus, 0, start)
	if err != nil {
		t.Fatalf("SearchRelativeLongitude: %v", err)
	}
	want := TimeFromCalendar(2020, 6, 3, 18, 0, 0)
	if diff := math.Abs(tm.UT - want.UT); diff > 1.0 {
		t.Errorf("inferior conjunction at %v, expected near %v (off by %.2f days)", tm, want, diff)
	}
}

func TestSearchRelativeLongitude_MercurySequence(t *testing.T) {
	// Consecutive inferior conjunctions of Mercury are one synodic
	// period apart, which varies between about 105 and 129 days. Every
	// result must lie at or after its start time.
	start := TimeFromCalendar(2020, 1, 1, 0, 0, 0)
	prev, err := SearchRelativeLongitude(Mercury, 0, start)
	if err != nil {
		t.Fatalf("first conjunction: %v", err)
	}
	if prev.UT < start.UT {
		t.Fatalf("conjunction %v precedes start %v", prev, start)
	}
	for i := 0; i < 4; i++ {
		next, err := SearchRelativeLongitude(Mercury, 0, prev.AddDays(1))
		if err != nil {
			t.Fatalf("conjunction %d: %v", i+2, err)
		}
		gap := next.UT - prev.UT
		if gap < 100 || gap > 135 {
			t.Errorf("conjunction gap %d = %f days", i+1, gap)
		}
		prev = next
	}
}

func TestAngleFromSun_Range(t *testing.T) {
	tm := TimeFromCalendar(2021, 2, 1, 0, 0, 0)
	angle, err := AngleFromSun(Moon, tm)
	if err != nil {
		t.Fatalf("AngleFromSun: %v", err)
	}
	if angle < 0 || angle > 180 {
		t.Errorf("angle = %f outside [0, 180]", angle)
	}
	if _, err := AngleFromSun(Earth, tm); !errors.Is(err, ErrInvalidBody) {
		t.Errorf("Earth: expected ErrInvalidBody, got %v", err)
	}
}

func TestSearchMaxElongation_Venus2020(t *testing.T) {
	// Venus reached greatest eastern elongation (46.1 degrees) on
	// 2020-03-24.
	start := TimeFromCalendar(2020, 1, 1, 0, 0, 0)
	evt, err := SearchMaxElongation(Venus, start)
	if err != nil {
		t.Fatalf("SearchMaxElongation: %v", err)
	}
	want := TimeFromCalendar(2020, 3, 24, 22, 0, 0)
	if diff := math.Abs(evt.Time.UT - want.UT); diff > 2.0 {
		t.Errorf("max elongation at %v, expected near %v", evt.Time, want)
	}
	if math.Abs(evt.Elongation-46.1) > 1.0 {
		t.Errorf("elongation = %f deg, expected about 46.1", evt.Elongation)
	}
	if evt.Visibility != EveningVisibility {
		t.Errorf("visibility = %v, expected evening", evt.Visibility)
	}
}

func TestSearchMaxElongation_InvalidBody(t *testing.T) {
	start := TimeFromDays(0)
	for _, body := range []Body{Mars, Jupiter, Moon} {
		if _, err := SearchMaxElongation(body, start); !errors.Is(err, ErrInvalidBody) {
			t.Errorf("%v: expected ErrInvalidBody, got %v", body, err)
		}
	}
}

func TestElongation_SeparationBounds(t *testing.T) {
	tm := TimeFromCalendar(2022, 6, 15, 0, 0, 0)
	evt, err := Elongation(Mercury, tm)
	if err != nil {
		t.Fatalf("Elongation: %v", err)
	}
	if evt.EclipticSeparation < 0 || evt.EclipticSeparation > 180 {
		t.Errorf("ecliptic separation = %f outside [0, 180]", evt.EclipticSeparation)
	}
	if evt.Elongation < 0 || evt.Elongation > 180 {
		t.Errorf("elongation = %f outside [0, 180]", evt.Elongation)
	}
}
