package astrometry

import "math"

// Refraction selects the atmospheric refraction model used when
// converting between true and apparent altitudes.
type Refraction int

const (
	// NoRefraction disables the correction entirely.
	NoRefraction Refraction = iota
	// NormalRefraction applies average atmospheric conditions and
	// tapers the correction below -1 degree so that it vanishes at
	// the nadir.
	NormalRefraction
	// JplHorizonsRefraction matches the convention used by the JPL
	// Horizons system: the same formula as NormalRefraction but with
	// no taper below -1 degree.
	JplHorizonsRefraction
)

// RefractionAngle returns the refraction correction in degrees to add
// to a true altitude to obtain the apparent altitude.
func RefractionAngle(refraction Refraction, altitude float64) float64 {
	if altitude < -90.0 || altitude > +90.0 {
		return 0.0
	}
	if refraction != NormalRefraction && refraction != JplHorizonsRefraction {
		return 0.0
	}
	// Bennett/Saemundsson formula, tuned for average conditions
	// (10 C, 1010 mb).
	hd := altitude
	if hd < -1.0 {
		hd = -1.0
	}
	refr := (1.02 / math.Tan((hd+10.3/(hd+5.11))*degToRad)) / 60.0
	if refraction == NormalRefraction && altitude < -1.0 {
		// Taper off below the formula's valid range so refraction
		// reaches zero at the nadir.
		refr *= (altitude + 90.0) / 89.0
	}
	return refr
}

// InverseRefractionAngle returns the correction in degrees to add to an
// apparent (refracted) altitude to recover the true altitude. It is the
// inverse of RefractionAngle to within a small iteration tolerance.
func InverseRefractionAngle(refraction Refraction, bentAltitude float64) float64 {
	if bentAltitude < -90.0 || bentAltitude > +90.0 {
		return 0.0
	}
	// Iterate: find the true altitude whose refracted image lands at
	// the given apparent altitude.
	altitude := bentAltitude - RefractionAngle(refraction, bentAltitude)
	for {
		diff := (altitude + RefractionAngle(refraction, altitude)) - bentAltitude
		if math.Abs(diff) < 1.0e-14 {
			return altitude - bentAltitude
		}
		altitude -= diff
	}
}
