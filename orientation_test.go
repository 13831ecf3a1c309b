package astrometry

import (
	"math"
	"testing"
)

func TestMeanObliquity_J2000(t *testing.T) {
	// IAU 2006 value at J2000: 23.4392794 degrees.
	got := meanObliquityDeg(0)
	if math.Abs(got-23.4392794) > 1e-6 {
		t.Errorf("mean obliquity at J2000 = %.7f, expected 23.4392794", got)
	}
	// Obliquity decreases slowly, about 47 arcseconds per century.
	later := meanObliquityDeg(36525)
	if later >= got || got-later > 0.02 {
		t.Errorf("obliquity drift over one century = %f deg", got-later)
	}
}

func TestNutationAngles_Bounded(t *testing.T) {
	// Nutation in longitude stays within about 17.5 arcseconds and
	// nutation in obliquity within about 9.5.
	for y := 0; y < 40; y += 4 {
		tm := TimeFromCalendar(1990+y, 1, 1, 0, 0, 0)
		psi, eps := nutationAngles(tm)
		if math.Abs(psi) > 20 {
			t.Errorf("year %d: psi = %f arcsec", 1990+y, psi)
		}
		if math.Abs(eps) > 12 {
			t.Errorf("year %d: eps = %f arcsec", 1990+y, eps)
		}
	}
}

func TestSiderealTime_J2000(t *testing.T) {
	// Apparent sidereal time at the J2000 epoch is about 18.697 hours.
	gast := siderealTime(TimeFromDays(0))
	if gast < 0 || gast >= 24 {
		t.Fatalf("sidereal time %f outside [0, 24)", gast)
	}
	if math.Abs(gast-18.697) > 0.02 {
		t.Errorf("sidereal time at J2000 = %f h, expected about 18.697", gast)
	}
}

func TestSiderealTime_DailyGain(t *testing.T) {
	// Sidereal time gains close to 3.94 minutes per solar day.
	t1 := TimeFromCalendar(2021, 10, 1, 0, 0, 0)
	t2 := t1.AddDays(1)
	gain := math.Mod(siderealTime(t2)-siderealTime(t1)+24, 24)
	if math.Abs(gain-3.94/60) > 0.01 {
		t.Errorf("daily sidereal gain = %f h, expected about 0.0657", gain)
	}
}

func TestPrecession_RoundTrip(t *testing.T) {
	tm := TimeFromCalendar(2030, 1, 1, 0, 0, 0)
	v := Vector{1, 2, 3, tm}
	there := precession(0, v, tm.TT)
	back := precession(tm.TT, there, 0)
	if math.Abs(back.X-v.X) > 1e-12 || math.Abs(back.Y-v.Y) > 1e-12 || math.Abs(back.Z-v.Z) > 1e-12 {
		t.Errorf("precession round trip drifted: %+v vs %+v", back, v)
	}
}

func TestPrecession_PanicsOnBadEpochs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when neither epoch is J2000")
		}
	}()
	precession(100, Vector{1, 0, 0, TimeFromDays(0)}, 200)
}

func TestNutation_EquinoxShift(t *testing.T) {
	// A direction along the mean equinox of date acquires apparent
	// ecliptic longitude equal to the nutation in longitude, sign
	// included. For this geometry the relation is exact.
	tm := TimeFromCalendar(2020, 3, 20, 0, 0, 0)
	psi, _ := nutationAngles(tm)
	if psi >= 0 {
		t.Fatalf("psi = %f arcsec, expected negative in early 2020", psi)
	}
	w := nutation(tm, fromMeanToTrue, Vector{1, 0, 0, tm})
	tobl := tilt(tm).tobl * degToRad
	ecl, err := rotateEcliptic(w, math.Cos(tobl), math.Sin(tobl))
	if err != nil {
		t.Fatalf("rotateEcliptic: %v", err)
	}
	lon := ecl.Elon.Deg()
	if lon > 180 {
		lon -= 360
	}
	if math.Abs(lon*3600-psi) > 0.001 {
		t.Errorf("apparent longitude of mean equinox = %f arcsec, expected psi = %f", lon*3600, psi)
	}
}

func TestNutation_RoundTrip(t *testing.T) {
	tm := TimeFromCalendar(2018, 4, 1, 0, 0, 0)
	v := Vector{-0.3, 0.8, 0.5, tm}
	there := nutation(tm, fromMeanToTrue, v)
	back := nutation(tm, fromTrueToMean, there)
	if math.Abs(back.X-v.X) > 1e-12 || math.Abs(back.Y-v.Y) > 1e-12 || math.Abs(back.Z-v.Z) > 1e-12 {
		t.Errorf("nutation round trip drifted: %+v vs %+v", back, v)
	}
}

func TestGeoPos_ObserverRadius(t *testing.T) {
	// An observer at sea level sits about one Earth radius from the
	// geocenter.
	tm := TimeFromCalendar(2020, 5, 1, 0, 0, 0)
	for _, lat := range []float64{-60, 0, 45, 89} {
		obs := Observer{Latitude: lat, Longitude: 30, Height: 0}
		r := geoPos(tm, obs).Length() * KmPerAU
		if r < 6350 || r > 6380 {
			t.Errorf("lat %f: observer radius %f km", lat, r)
		}
	}
}
