package astrometry

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestEclipticEquatorRoundTrip(t *testing.T) {
	tm := TimeFromCalendar(2020, 6, 1, 0, 0, 0)
	v := Vector{0.3, -0.9, 0.2, tm}
	back := EquatorFromEcliptic(EclipticFromEquator(v))
	if math.Abs(back.X-v.X) > 1e-12 || math.Abs(back.Y-v.Y) > 1e-12 || math.Abs(back.Z-v.Z) > 1e-12 {
		t.Errorf("round trip drifted: got %+v, want %+v", back, v)
	}
}

func TestEclipticEquatorRoundTrip_Bodies(t *testing.T) {
	// Real heliocentric vectors across the supported time span survive
	// the frame round trip to well under 1e-9 AU.
	bodies := []Body{Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
	for _, year := range []int{1750, 1900, 2020, 2150} {
		tm := TimeFromCalendar(year, 7, 1, 0, 0, 0)
		for _, body := range bodies {
			v, err := HelioVector(body, tm)
			if err != nil {
				t.Fatalf("%v %d: %v", body, year, err)
			}
			back := EquatorFromEcliptic(EclipticFromEquator(v))
			if back.Sub(v).Length() > 1e-9 {
				t.Errorf("%v %d: round trip drifted by %g AU", body, year, back.Sub(v).Length())
			}
		}
	}
}

func TestVector2RadecDegenerate(t *testing.T) {
	tm := TimeFromDays(0)

	if _, err := vector2radec(Vector{0, 0, 0, tm}); !errors.Is(err, ErrZeroVector) {
		t.Errorf("zero vector: expected ErrZeroVector, got %v", err)
	}

	eq, err := vector2radec(Vector{0, 0, 2.5, tm})
	if err != nil {
		t.Fatalf("polar vector: %v", err)
	}
	if eq.RA != 0 {
		t.Errorf("north polar RA = %v, expected 0", eq.RA)
	}
	if math.Abs(eq.Dec.Deg()-90) > 1e-12 {
		t.Errorf("north polar Dec = %v, expected +90", eq.Dec.Deg())
	}
	if math.Abs(eq.Dist-2.5) > 1e-12 {
		t.Errorf("polar Dist = %v, expected 2.5", eq.Dist)
	}

	eq, err = vector2radec(Vector{0, 0, -1, tm})
	if err != nil {
		t.Fatalf("south polar vector: %v", err)
	}
	if math.Abs(eq.Dec.Deg()+90) > 1e-12 {
		t.Errorf("south polar Dec = %v, expected -90", eq.Dec.Deg())
	}
}

func TestSunPosition_Equinox(t *testing.T) {
	// At the March equinox the Sun's apparent ecliptic longitude is 0
	// by definition.
	seasons, err := Seasons(2020)
	if err != nil {
		t.Fatalf("Seasons: %v", err)
	}
	ecl, err := SunPosition(seasons.MarEquinox)
	if err != nil {
		t.Fatalf("SunPosition: %v", err)
	}
	lon := ecl.Elon.Deg()
	if lon > 180 {
		lon -= 360
	}
	if math.Abs(lon) > 0.01 {
		t.Errorf("sun longitude at equinox = %f deg, expected 0", lon)
	}
	if math.Abs(ecl.Elat.Deg()) > 0.01 {
		t.Errorf("sun latitude = %f deg, expected near 0", ecl.Elat.Deg())
	}
}

func TestHorizon_Zenith(t *testing.T) {
	// A body whose declination equals the observer's latitude and whose
	// hour angle is zero stands at the zenith.
	tm := TimeFromCalendar(2021, 4, 10, 8, 0, 0)
	obs := Observer{Latitude: 35, Longitude: -80, Height: 0}
	gast := siderealTime(tm)
	raHours := math.Mod(gast+obs.Longitude/15.0+24.0, 24.0)
	hor := Horizon(tm, obs, unit.RAFromHour(raHours), unit.AngleFromDeg(obs.Latitude), NoRefraction)
	if math.Abs(hor.Altitude-90) > 1e-6 {
		t.Errorf("altitude = %f, expected 90", hor.Altitude)
	}
}

func TestRefractionAngle(t *testing.T) {
	if r := RefractionAngle(NoRefraction, 0); r != 0 {
		t.Errorf("NoRefraction gave %f", r)
	}
	// Standard refraction at the horizon is about 29 arcminutes.
	r := RefractionAngle(NormalRefraction, 0)
	if r < 0.45 || r > 0.52 {
		t.Errorf("refraction at horizon = %f deg, expected about 0.48", r)
	}
	// Refraction decreases with altitude.
	if hi := RefractionAngle(NormalRefraction, 45); hi >= r || hi <= 0 {
		t.Errorf("refraction at 45 deg = %f, expected between 0 and %f", hi, r)
	}
}

func TestInverseRefractionAngle(t *testing.T) {
	for _, alt := range []float64{-0.5, 0, 1, 10, 45} {
		inv := InverseRefractionAngle(NormalRefraction, alt)
		trueAlt := alt + inv
		back := RefractionAngle(NormalRefraction, trueAlt)
		if math.Abs(trueAlt+back-alt) > 1e-10 {
			t.Errorf("alt %f: inverse does not cancel forward, residual %g", alt, trueAlt+back-alt)
		}
	}
}
