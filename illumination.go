package astrometry

import "math"

// IllumInfo describes how brightly lit a body appears from the Earth.
type IllumInfo struct {
	Time Time
	// Mag is the visual magnitude (lower is brighter).
	Mag float64
	// PhaseAngle is the Sun-body-Earth angle in degrees.
	PhaseAngle float64
	// PhaseFraction is the illuminated fraction of the apparent disc.
	PhaseFraction float64
	// HelioDist is the body's distance from the Sun in AU.
	HelioDist float64
	// GeoDist is the body's distance from the Earth in AU.
	GeoDist float64
	// RingTilt is the tilt of Saturn's rings toward the Earth in
	// degrees; zero for every other body.
	RingTilt float64
}

const moonMeanDistanceAU = 385000.6 / KmPerAU

// visualMagnitude evaluates the standard phase-polynomial magnitude
// models for the planets.
func visualMagnitude(body Body, phase, helioDist, geoDist float64) (float64, error) {
	var c0, c1, c2, c3 float64
	switch body {
	case Mercury:
		c0, c1, c2, c3 = -0.60, +4.98, -4.88, +3.02
	case Venus:
		if phase < 163.6 {
			c0, c1, c2, c3 = -4.47, +1.03, +0.57, +0.13
		} else {
			c0, c1 = 0.98, -1.02
		}
	case Mars:
		c0, c1 = -1.52, +1.60
	case Jupiter:
		c0, c1 = -9.40, +0.50
	case Uranus:
		c0, c1 = -7.19, +0.25
	case Neptune:
		c0 = -6.87
	case Pluto:
		c0, c1 = -1.00, +4.00
	default:
		return 0, ErrInvalidBody
	}
	x := phase / 100
	mag := c0 + x*(c1+x*(c2+x*c3))
	mag += 5 * math.Log10(helioDist*geoDist)
	return mag, nil
}

// saturnMagnitude models Saturn's brightness including the ring system,
// whose contribution depends on how far the rings are tilted open as
// seen from the Earth. gc is Saturn's geocentric J2000 position.
func saturnMagnitude(t Time, helioDist, geoDist float64, gc Vector) (mag, ringTilt float64, err error) {
	ecl, err := rotateEcliptic(gc, math.Cos(obliquity2000), math.Sin(obliquity2000))
	if err != nil {
		return 0, 0, err
	}
	ir := 28.06 * degToRad // inclination of the ring plane
	nr := (169.51 + 3.82e-5*t.TT) * degToRad

	lat := ecl.Elat.Rad()
	lon := ecl.Elon.Rad()
	tilt := math.Asin(math.Sin(lat)*math.Cos(ir) - math.Cos(lat)*math.Sin(ir)*math.Sin(lon-nr))
	sinTilt := math.Sin(math.Abs(tilt))

	mag = -9.0 - 2.6*sinTilt + 1.2*sinTilt*sinTilt
	mag += 5 * math.Log10(helioDist*geoDist)
	return mag, tilt * radToDeg, nil
}

func moonMagnitude(phase, helioDist, geoDist float64) float64 {
	// An empirical fit; the Moon's brightness is not well modeled by a
	// phase polynomial.
	rad := phase * degToRad
	mag := -12.717 + 1.49*math.Abs(rad) + 0.0431*rad*rad*rad*rad
	mag += 5 * math.Log10(helioDist*geoDist/moonMeanDistanceAU)
	return mag
}

// Illumination computes a body's illumination phase and visual
// magnitude as seen from the Earth's center. The Earth itself cannot be
// observed from the Earth and yields ErrInvalidBody.
func Illumination(body Body, t Time) (IllumInfo, error) {
	if body == Earth {
		return IllumInfo{}, ErrInvalidBody
	}
	gc, err := GeoVector(body, t, true)
	if err != nil {
		return IllumInfo{}, err
	}
	geoDist := gc.Length()

	var hc Vector
	var phase, helioDist float64
	if body == Sun {
		// There is no Sun-Sun-Earth angle; treat the Sun as fully lit.
		phase = 0
		helioDist = 1.0e-30
	} else {
		hc, err = HelioVector(body, t)
		if err != nil {
			return IllumInfo{}, err
		}
		helioDist = hc.Length()
		phase = angleBetween(gc, hc)
	}

	info := IllumInfo{
		Time:          t,
		PhaseAngle:    phase,
		PhaseFraction: (1 + math.Cos(phase*degToRad)) / 2,
		HelioDist:     helioDist,
		GeoDist:       geoDist,
	}

	switch body {
	case Sun:
		info.Mag = -0.17 + 5*math.Log10(geoDist*4.8481368110953594e-6)
	case Moon:
		info.Mag = moonMagnitude(phase, helioDist, geoDist)
	case Saturn:
		info.Mag, info.RingTilt, err = saturnMagnitude(t, helioDist, geoDist, gc)
		if err != nil {
			return IllumInfo{}, err
		}
	default:
		info.Mag, err = visualMagnitude(body, phase, helioDist, geoDist)
		if err != nil {
			return IllumInfo{}, err
		}
	}
	return info, nil
}

// SearchPeakMagnitude finds the next time after start when Venus is at
// its brightest. Venus is the only body whose brightness peaks between
// inferior conjunctions; other bodies yield ErrInvalidBody.
func SearchPeakMagnitude(body Body, start Time) (IllumInfo, error) {
	if body != Venus {
		return IllumInfo{}, ErrInvalidBody
	}
	// Relative longitude bounds bracketing every brightness peak.
	const s1, s2 = 10.0, 30.0

	magSlope := func(t Time) (float64, error) {
		const dt = 0.01
		i1, err := Illumination(body, t.AddDays(-dt/2))
		if err != nil {
			return 0, err
		}
		i2, err := Illumination(body, t.AddDays(+dt/2))
		if err != nil {
			return 0, err
		}
		// Brightness peaks where the magnitude stops falling.
		return (i2.Mag - i1.Mag) / dt, nil
	}

	searchTime := start
	for attempt := 1; attempt <= 2; attempt++ {
		t1, t2, err := bracketInferiorApproach(body, searchTime, s1, s2)
		if err != nil {
			return IllumInfo{}, err
		}
		m1, err := magSlope(t1)
		if err != nil {
			return IllumInfo{}, err
		}
		if m1 >= 0 {
			return IllumInfo{}, ErrInternal
		}
		m2, err := magSlope(t2)
		if err != nil {
			return IllumInfo{}, err
		}
		if m2 <= 0 {
			return IllumInfo{}, ErrInternal
		}
		tx, err := Search(magSlope, t1, t2, 10.0)
		if err != nil {
			return IllumInfo{}, err
		}
		if tx == nil {
			return IllumInfo{}, ErrInternal
		}
		if tx.TT >= start.TT {
			return Illumination(body, *tx)
		}
		searchTime = t2.AddDays(1)
	}
	return IllumInfo{}, ErrNoConverge
}
