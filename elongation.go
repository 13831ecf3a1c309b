package astrometry

import "math"

// AngleFromSun returns the angle in degrees between the given body and
// the Sun as seen from the Earth's center.
func AngleFromSun(body Body, t Time) (float64, error) {
	if body == Earth {
		return 0, ErrInvalidBody
	}
	sv, err := GeoVector(Sun, t, true)
	if err != nil {
		return 0, err
	}
	bv, err := GeoVector(body, t, true)
	if err != nil {
		return 0, err
	}
	return angleBetween(sv, bv), nil
}

// SynodicPeriod returns the average number of days between consecutive
// relative-longitude alignments of a planet with the Earth.
func SynodicPeriod(body Body) (float64, error) {
	if body == Earth {
		return 0, ErrInvalidBody
	}
	tp, ok := planetOrbitalPeriod[body]
	if !ok {
		return 0, ErrInvalidBody
	}
	te := planetOrbitalPeriod[Earth]
	return math.Abs(te / (te/tp - 1)), nil
}

// SearchRelativeLongitude finds the next time after start when the
// planet's geocentric ecliptic longitude relative to the Sun, in the
// planet's direction of apparent motion, reaches targetRelLon degrees.
// Inferior conjunction of Mercury or Venus is relative longitude 0, as
// are opposition of the outer planets.
func SearchRelativeLongitude(body Body, targetRelLon float64, start Time) (Time, error) {
	if body == Earth || body == Sun || body == Moon {
		return Time{}, ErrInvalidBody
	}
	syn, err := SynodicPeriod(body)
	if err != nil {
		return Time{}, err
	}

	// Inner planets overtake the Earth, so their relative longitude
	// runs in the opposite sense.
	direction := +1.0
	if body == Mercury || body == Venus {
		direction = -1.0
	}

	errorAngle := func(t Time) (float64, error) {
		plon, err := EclipticLongitude(body, t)
		if err != nil {
			return 0, err
		}
		elon, err := EclipticLongitude(Earth, t)
		if err != nil {
			return 0, err
		}
		diff := direction * (elon - plon)
		return LongitudeOffset(diff - targetRelLon), nil
	}

	// Iterate: the relative longitude changes nearly linearly at the
	// synodic rate, so each step divides the remaining error. Adjust
	// the assumed rate from the observed convergence, keeping the
	// correction within a sane band.
	t := start
	angle, err := errorAngle(t)
	if err != nil {
		return Time{}, err
	}
	if angle > 0 {
		// Force the search forward in time; small overshoots during
		// the iteration stay small and converge on their own.
		angle -= 360
	}
	for iter := 0; iter < 100; iter++ {
		dayAdjust := (-angle / 360) * syn
		t = t.AddDays(dayAdjust)
		if math.Abs(dayAdjust)*secondsPerDay < 1 {
			return t, nil
		}
		prevAngle := angle
		if angle, err = errorAngle(t); err != nil {
			return Time{}, err
		}
		if math.Abs(prevAngle) < 30 && prevAngle != angle {
			// Near convergence, refine the synodic rate from the pace
			// actually observed; matters for eccentric orbits.
			ratio := prevAngle / (prevAngle - angle)
			if ratio > 0.5 && ratio < 2.0 {
				syn *= ratio
			}
		}
	}
	return Time{}, ErrNoConverge
}

// Visibility tells whether a body is best seen before sunrise or after
// sunset.
type Visibility int

const (
	MorningVisibility Visibility = iota
	EveningVisibility
)

// ElongationEvent describes a body's separation from the Sun at one
// instant.
type ElongationEvent struct {
	Time       Time
	Visibility Visibility
	// Elongation is the angle between the body and the Sun in degrees.
	Elongation float64
	// EclipticSeparation is the difference of their geocentric
	// ecliptic longitudes in degrees.
	EclipticSeparation float64
}

// Elongation measures a body's angular separation from the Sun as seen
// from the Earth, along with which twilight it is visible in.
func Elongation(body Body, t Time) (ElongationEvent, error) {
	rlon, err := PairLongitude(body, Sun, t)
	if err != nil {
		return ElongationEvent{}, err
	}
	var vis Visibility
	var esep float64
	if rlon > 180 {
		vis = MorningVisibility
		esep = 360 - rlon
	} else {
		vis = EveningVisibility
		esep = rlon
	}
	angle, err := AngleFromSun(body, t)
	if err != nil {
		return ElongationEvent{}, err
	}
	return ElongationEvent{
		Time:               t,
		Visibility:         vis,
		Elongation:         angle,
		EclipticSeparation: esep,
	}, nil
}

// SearchMaxElongation finds the next maximum elongation of Mercury or
// Venus after start. Other bodies do not have elongation maxima in the
// relevant sense and yield ErrInvalidBody.
func SearchMaxElongation(body Body, start Time) (ElongationEvent, error) {
	// Relative longitude bounds that bracket every maximum elongation.
	var s1, s2 float64
	switch body {
	case Mercury:
		s1, s2 = 50, 85
	case Venus:
		s1, s2 = 40, 50
	default:
		return ElongationEvent{}, ErrInvalidBody
	}

	negSlope := func(t Time) (float64, error) {
		// Measure the negated elongation slope so the minimum of the
		// negation (maximum elongation) appears as an ascending root.
		const dt = 0.01
		e1, err := AngleFromSun(body, t.AddDays(-dt/2))
		if err != nil {
			return 0, err
		}
		e2, err := AngleFromSun(body, t.AddDays(+dt/2))
		if err != nil {
			return 0, err
		}
		return (e1 - e2) / dt, nil
	}

	searchTime := start
	for attempt := 1; attempt <= 2; attempt++ {
		t1, t2, err := bracketInferiorApproach(body, searchTime, s1, s2)
		if err != nil {
			return ElongationEvent{}, err
		}
		m1, err := negSlope(t1)
		if err != nil {
			return ElongationEvent{}, err
		}
		if m1 >= 0 {
			return ElongationEvent{}, ErrInternal
		}
		m2, err := negSlope(t2)
		if err != nil {
			return ElongationEvent{}, err
		}
		if m2 <= 0 {
			return ElongationEvent{}, ErrInternal
		}
		tx, err := Search(negSlope, t1, t2, 10.0)
		if err != nil {
			return ElongationEvent{}, err
		}
		if tx == nil {
			return ElongationEvent{}, ErrInternal
		}
		if tx.TT >= start.TT {
			return Elongation(body, *tx)
		}
		// The found event is before start; try the next cycle.
		searchTime = t2.AddDays(1)
	}
	return ElongationEvent{}, ErrNoConverge
}

// bracketInferiorApproach finds the span of relative longitudes
// [lo, hi] approaching the next inferior conjunction of an inner planet
// and returns the times bounding it.
func bracketInferiorApproach(body Body, start Time, s1, s2 float64) (Time, Time, error) {
	syn, err := SynodicPeriod(body)
	if err != nil {
		return Time{}, Time{}, err
	}
	plon, err := EclipticLongitude(body, start)
	if err != nil {
		return Time{}, Time{}, err
	}
	elon, err := EclipticLongitude(Earth, start)
	if err != nil {
		return Time{}, Time{}, err
	}
	// Relative longitude here runs from +s toward 0 (inferior
	// conjunction) and on to -s.
	rlon := LongitudeOffset(plon - elon)
	var adjustDays, rlonLo, rlonHi float64
	switch {
	case rlon >= -s1 && rlon < +s1:
		// Between maximum elongations; the next maximum is ahead.
		adjustDays = 0
		rlonLo = +s1
		rlonHi = +s2
	case rlon >= +s2 || rlon < -s2:
		adjustDays = 0
		rlonLo = -s2
		rlonHi = -s1
	case rlon >= 0:
		// Just past the evening maximum; back up to bracket it.
		adjustDays = -syn / 4
		rlonLo = +s1
		rlonHi = +s2
	default:
		adjustDays = -syn / 4
		rlonLo = -s2
		rlonHi = -s1
	}
	startAdj := start.AddDays(adjustDays)
	t1, err := SearchRelativeLongitude(body, rlonLo, startAdj)
	if err != nil {
		return Time{}, Time{}, err
	}
	t2, err := SearchRelativeLongitude(body, rlonHi, t1)
	if err != nil {
		return Time{}, Time{}, err
	}
	return t1, t2, nil
}
