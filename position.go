package astrometry

import "math"

// HelioVector computes the heliocentric position of a body in J2000
// equatorial coordinates, in AU. The Sun itself is the origin.
func HelioVector(body Body, t Time) (Vector, error) {
	switch body {
	case Sun:
		return Vector{T: t}, nil
	case Pluto:
		return plutoVector(t)
	case Moon:
		earth := calcEarth(t)
		moon := GeoMoon(t)
		return earth.Add(moon), nil
	default:
		if model, ok := vsopModels[body]; ok {
			return calcVsop(model, t), nil
		}
		return Vector{}, ErrInvalidBody
	}
}

// GeoVector computes the geocentric position of a body in J2000
// equatorial coordinates, corrected for light travel time. When
// aberration is true the Earth's motion during the light's flight is
// also accounted for.
func GeoVector(body Body, t Time, aberration bool) (Vector, error) {
	switch body {
	case Earth:
		return Vector{T: t}, nil
	case Moon:
		return GeoMoon(t), nil
	}

	var earth Vector
	if !aberration {
		// Without aberration the observer is treated as stationary, so
		// the Earth's position is evaluated only once.
		earth = calcEarth(t)
	}

	// Iterate to solve for light travel time: the body is seen where
	// it was when the arriving light departed.
	ltime := t
	for iter := 0; iter < 10; iter++ {
		if aberration {
			earth = calcEarth(ltime)
		}
		h, err := HelioVector(body, ltime)
		if err != nil {
			return Vector{}, err
		}
		geo := Vector{h.X - earth.X, h.Y - earth.Y, h.Z - earth.Z, t}
		ltime2 := t.AddDays(-geo.Length() / CAuDay)
		if math.Abs(ltime2.TT-ltime.TT) < 1.0e-9 {
			return geo, nil
		}
		ltime = ltime2
	}
	return Vector{}, ErrNoConverge
}

// Equator computes a body's equatorial coordinates as seen by an
// observer on the Earth's surface. With ofDate true the coordinates are
// referred to the true equator and equinox of date, otherwise to J2000.
func Equator(body Body, t Time, observer Observer, ofDate, aberration bool) (Equatorial, error) {
	gcObserver := geoPos(t, observer)
	gc, err := GeoVector(body, t, aberration)
	if err != nil {
		return Equatorial{}, err
	}
	j2000 := Vector{gc.X - gcObserver.X, gc.Y - gcObserver.Y, gc.Z - gcObserver.Z, t}
	if !ofDate {
		return vector2radec(j2000)
	}
	temp := precession(0, j2000, t.TT)
	datevect := nutation(t, fromMeanToTrue, temp)
	return vector2radec(datevect)
}
