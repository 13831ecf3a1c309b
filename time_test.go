package astrometry

import (
	"math"
	"testing"
	"time"
)

func TestTimeFromCalendar_J2000(t *testing.T) {
	tm := TimeFromCalendar(2000, 1, 1, 12, 0, 0)
	if math.Abs(tm.UT) > 1e-9 {
		t.Errorf("UT at epoch = %g, expected 0", tm.UT)
	}
	// Delta-T at 2000.0 is 63.8 seconds.
	wantTT := 63.8 / secondsPerDay
	if math.Abs(tm.TT-wantTT) > 1e-9 {
		t.Errorf("TT at epoch = %g, expected %g", tm.TT, wantTT)
	}
}

func TestTimeFromCalendar_RoundTrip(t *testing.T) {
	tm := TimeFromCalendar(2023, 7, 15, 6, 30, 15.5)
	got := tm.UTC()
	want := time.Date(2023, 7, 15, 6, 30, 15, 500000000, time.UTC)
	if got.Sub(want).Abs() > time.Millisecond {
		t.Errorf("round trip gave %v, expected %v", got, want)
	}
}

func TestTime_AddDays(t *testing.T) {
	t1 := TimeFromCalendar(2020, 1, 1, 0, 0, 0)
	t2 := t1.AddDays(10.25)
	if math.Abs(t2.UT-t1.UT-10.25) > 1e-12 {
		t.Errorf("AddDays advanced UT by %g, expected 10.25", t2.UT-t1.UT)
	}
	// TT must be recomputed, not shifted.
	if math.Abs((t2.TT-t2.UT)-deltaT(t2.UT)/secondsPerDay) > 1e-12 {
		t.Error("AddDays did not rebuild TT from the Delta-T table")
	}
}

func TestTime_JulianDate(t *testing.T) {
	tm := TimeFromCalendar(2000, 1, 1, 12, 0, 0)
	want := 2451545.0 + 63.8/secondsPerDay
	if math.Abs(tm.julianDate()-want) > 1e-6 {
		t.Errorf("julianDate at epoch = %f, expected %f", tm.julianDate(), want)
	}
}

func TestTimeFromCalendar_FarDates(t *testing.T) {
	// Dates centuries from the epoch must convert exactly, not clamp
	// at the 292-year limit of a time.Duration.
	cases := []struct {
		name string
		got  Time
		want float64 // UT days since J2000
	}{
		// 1700-01-01 is 109572 days before 2000-01-01 (Gregorian).
		{"1700 noon", TimeFromCalendar(1700, 1, 1, 12, 0, 0), -109572},
		// One full Gregorian cycle of 146097 days.
		{"1600 noon", TimeFromCalendar(1600, 1, 1, 12, 0, 0), -146097},
		// 2200-01-01 is 73048 days after 2000-01-01.
		{"2200 midnight", TimeFromCalendar(2200, 1, 1, 0, 0, 0), 73047.5},
	}
	for _, tc := range cases {
		if math.Abs(tc.got.UT-tc.want) > 1e-9 {
			t.Errorf("%s: UT = %f, expected %f", tc.name, tc.got.UT, tc.want)
		}
	}

	early := TimeFromCalendar(1700, 1, 1, 12, 0, 0)
	want := time.Date(1700, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := early.UTC(); got.Sub(want).Abs() > time.Millisecond {
		t.Errorf("round trip gave %v, expected %v", got, want)
	}
}

func TestDeltaT_Clamped(t *testing.T) {
	// Dates before the start of the table reuse the first entry, so the
	// extrapolated value must match the value at the table edge.
	early := deltaT(TimeFromCalendar(1500, 1, 1, 0, 0, 0).UT)
	edge := deltaT(TimeFromCalendar(1700, 1, 1, 0, 0, 0).UT)
	if math.Abs(early-edge) > 1.0 {
		t.Errorf("deltaT(1500) = %f, expected clamp near %f", early, edge)
	}
	late := deltaT(TimeFromCalendar(2500, 1, 1, 0, 0, 0).UT)
	lateEdge := deltaT(TimeFromCalendar(2200, 1, 1, 0, 0, 0).UT)
	if math.Abs(late-lateEdge) > 1.0 {
		t.Errorf("deltaT(2500) = %f, expected clamp near %f", late, lateEdge)
	}
}

func TestTime_String(t *testing.T) {
	tm := TimeFromCalendar(2020, 3, 20, 3, 49, 36)
	if got := tm.String(); got != "2020-03-20T03:49:36.000Z" {
		t.Errorf("String() = %q", got)
	}
}
