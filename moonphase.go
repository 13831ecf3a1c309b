package astrometry

import "math"

// EclipticLongitude returns a body's heliocentric ecliptic longitude in
// degrees, J2000 equinox. The Sun has no heliocentric longitude.
func EclipticLongitude(body Body, t Time) (float64, error) {
	if body == Sun {
		return 0, ErrInvalidBody
	}
	hv, err := HelioVector(body, t)
	if err != nil {
		return 0, err
	}
	ecl, err := rotateEcliptic(hv, math.Cos(obliquity2000), math.Sin(obliquity2000))
	if err != nil {
		return 0, err
	}
	return ecl.Elon.Deg(), nil
}

// PairLongitude returns the geocentric ecliptic longitude of body1
// relative to body2, in degrees [0, 360). Light travel time and
// aberration are omitted so that the difference is consistent between
// the two bodies.
func PairLongitude(body1, body2 Body, t Time) (float64, error) {
	if body1 == Earth || body2 == Earth {
		return 0, ErrInvalidBody
	}
	vector1, err := GeoVector(body1, t, false)
	if err != nil {
		return 0, err
	}
	ecl1, err := rotateEcliptic(vector1, math.Cos(obliquity2000), math.Sin(obliquity2000))
	if err != nil {
		return 0, err
	}
	vector2, err := GeoVector(body2, t, false)
	if err != nil {
		return 0, err
	}
	ecl2, err := rotateEcliptic(vector2, math.Cos(obliquity2000), math.Sin(obliquity2000))
	if err != nil {
		return 0, err
	}
	return NormalizeLongitude(ecl1.Elon.Deg() - ecl2.Elon.Deg()), nil
}

// MoonPhase returns the Moon's phase angle in degrees [0, 360): the
// geocentric ecliptic longitude of the Moon relative to the Sun.
// 0 is new moon, 90 first quarter, 180 full, 270 third quarter.
func MoonPhase(t Time) (float64, error) {
	return PairLongitude(Moon, Sun, t)
}

// SearchMoonPhase finds the next time after start, within limitDays,
// when the Moon's phase angle equals targetLon degrees. It returns
// (nil, nil) when the phase is not reached inside the window.
func SearchMoonPhase(targetLon float64, start Time, limitDays float64) (*Time, error) {
	// The offset function has one ascending zero per synodic month, so
	// estimate where it lands and bracket tightly around it.
	fn := func(t Time) (float64, error) {
		phase, err := MoonPhase(t)
		if err != nil {
			return 0, err
		}
		return LongitudeOffset(phase - targetLon), nil
	}
	ya, err := fn(start)
	if err != nil {
		return nil, err
	}
	if ya > 0 {
		ya -= 360
	}
	estDt := -MeanSynodicMonth * ya / 360
	dt1 := estDt - 1.5
	dt2 := estDt + 1.5
	if limitDays < dt1 {
		return nil, nil
	}
	if dt2 > limitDays {
		dt2 = limitDays
	}
	return Search(fn, start.AddDays(dt1), start.AddDays(dt2), 1.0)
}

// MoonQuarter is one of the four principal lunar phases.
type MoonQuarter struct {
	// Quarter is 0 for new moon, 1 for first quarter, 2 for full moon,
	// 3 for third quarter.
	Quarter int
	Time    Time
}

// SearchMoonQuarter finds the first quarter phase event after start.
func SearchMoonQuarter(start Time) (MoonQuarter, error) {
	phase, err := MoonPhase(start)
	if err != nil {
		return MoonQuarter{}, err
	}
	quarter := (1 + int(math.Floor(phase/90))) % 4
	t, err := SearchMoonPhase(90*float64(quarter), start, 10)
	if err != nil {
		return MoonQuarter{}, err
	}
	if t == nil {
		// A quarter always occurs within 10 days.
		return MoonQuarter{}, ErrInternal
	}
	return MoonQuarter{Quarter: quarter, Time: *t}, nil
}

// NextMoonQuarter finds the quarter phase event that follows the given
// one.
func NextMoonQuarter(mq MoonQuarter) (MoonQuarter, error) {
	// Skip 6 days to land firmly past mq but before the next quarter.
	next, err := SearchMoonQuarter(mq.Time.AddDays(6))
	if err != nil {
		return MoonQuarter{}, err
	}
	if next.Quarter != (mq.Quarter+1)%4 {
		return MoonQuarter{}, ErrInternal
	}
	return next, nil
}
