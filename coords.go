package astrometry

import (
	"math"

	"github.com/soniakeys/unit"
)

// Observer is a geographic location on the Earth's surface.
// Latitude and Longitude are in degrees (north and east positive),
// Height in meters above mean sea level.
type Observer struct {
	Latitude  float64
	Longitude float64
	Height    float64
}

// Equatorial holds equatorial coordinates and the distance to the body.
type Equatorial struct {
	RA   unit.RA    // right ascension
	Dec  unit.Angle // declination
	Dist float64    // distance in AU
}

// Ecliptic holds ecliptic cartesian and spherical coordinates.
type Ecliptic struct {
	Vec  Vector     // ecliptic cartesian position in AU
	Elat unit.Angle // ecliptic latitude
	Elon unit.Angle // ecliptic longitude
}

// Topocentric holds a position relative to an observer's local horizon.
// Azimuth is measured in degrees clockwise from north; Altitude in
// degrees above the horizon. RA and Dec are the equatorial coordinates
// the observer would measure, adjusted for refraction when a refraction
// option other than NoRefraction is chosen.
type Topocentric struct {
	Azimuth  float64
	Altitude float64
	RA       unit.RA
	Dec      unit.Angle
}

// vector2radec converts an equatorial cartesian vector to right
// ascension, declination, and distance. A zero vector has no direction
// and yields ErrZeroVector.
func vector2radec(pos Vector) (Equatorial, error) {
	xyproj := pos.X*pos.X + pos.Y*pos.Y
	dist := math.Sqrt(xyproj + pos.Z*pos.Z)
	var eq Equatorial
	eq.Dist = dist
	if xyproj == 0 {
		if pos.Z == 0 {
			return Equatorial{}, ErrZeroVector
		}
		eq.RA = 0
		if pos.Z < 0 {
			eq.Dec = unit.AngleFromDeg(-90)
		} else {
			eq.Dec = unit.AngleFromDeg(90)
		}
		return eq, nil
	}
	ra := math.Atan2(pos.Y, pos.X)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	eq.RA = unit.RA(ra)
	eq.Dec = unit.Angle(math.Atan2(pos.Z, math.Sqrt(xyproj)))
	return eq, nil
}

// Equinox J2000 obliquity in radians, used for the fixed ecliptic
// conversions.
const obliquity2000 = 84381.406 * asecToRad

// EquatorFromEcliptic converts J2000 ecliptic cartesian coordinates to
// J2000 equatorial cartesian coordinates.
func EquatorFromEcliptic(ecl Vector) Vector {
	c := math.Cos(obliquity2000)
	s := math.Sin(obliquity2000)
	return Vector{
		X: ecl.X,
		Y: ecl.Y*c - ecl.Z*s,
		Z: ecl.Y*s + ecl.Z*c,
		T: ecl.T,
	}
}

// EclipticFromEquator converts J2000 equatorial cartesian coordinates to
// J2000 ecliptic cartesian coordinates. It is the inverse of
// EquatorFromEcliptic.
func EclipticFromEquator(equ Vector) Vector {
	c := math.Cos(obliquity2000)
	s := math.Sin(obliquity2000)
	return Vector{
		X: equ.X,
		Y: equ.Y*c + equ.Z*s,
		Z: -equ.Y*s + equ.Z*c,
		T: equ.T,
	}
}

// rotateEcliptic converts an equatorial vector to ecliptic spherical
// coordinates using the given cosine and sine of the obliquity.
func rotateEcliptic(pos Vector, cosOb, sinOb float64) (Ecliptic, error) {
	ex := pos.X
	ey := pos.Y*cosOb + pos.Z*sinOb
	ez := -pos.Y*sinOb + pos.Z*cosOb
	xyproj := math.Sqrt(ex*ex + ey*ey)
	if xyproj == 0 && ez == 0 {
		return Ecliptic{}, ErrZeroVector
	}
	elon := 0.0
	if xyproj > 0 {
		elon = math.Atan2(ey, ex)
		if elon < 0 {
			elon += 2 * math.Pi
		}
	}
	elat := math.Atan2(ez, xyproj)
	return Ecliptic{
		Vec:  Vector{ex, ey, ez, pos.T},
		Elat: unit.Angle(elat),
		Elon: unit.Angle(elon),
	}, nil
}

// SunPosition computes the apparent ecliptic coordinates of the Sun as
// seen from the Earth's center, corrected for light travel time,
// relative to the true equinox and ecliptic of date.
func SunPosition(t Time) (Ecliptic, error) {
	// Light leaving the Sun now arrives about 1 AU / c later.
	adjusted := t.AddDays(-1.0 / CAuDay)
	earth := calcEarth(adjusted)
	sun2000 := Vector{-earth.X, -earth.Y, -earth.Z, adjusted}

	stemp := precession(0, sun2000, adjusted.TT)
	sunOfDate := nutation(adjusted, fromMeanToTrue, stemp)

	trueObliq := tilt(adjusted).tobl * degToRad
	return rotateEcliptic(sunOfDate, math.Cos(trueObliq), math.Sin(trueObliq))
}

// Horizon computes a body's apparent position in the observer's sky.
// The supplied right ascension and declination must be equator-of-date
// coordinates, as returned by Equator with ofDate true. The refraction
// argument selects the atmospheric model applied to the result.
func Horizon(t Time, observer Observer, ra unit.RA, dec unit.Angle, refraction Refraction) Topocentric {
	latRad := observer.Latitude * degToRad
	lonRad := observer.Longitude * degToRad
	sinlat := math.Sin(latRad)
	coslat := math.Cos(latRad)
	sinlon := math.Sin(lonRad)
	coslon := math.Cos(lonRad)

	// Observer's local zenith, north, and west directions in
	// equator-of-date coordinates.
	uze := [3]float64{coslat * coslon, coslat * sinlon, sinlat}
	une := [3]float64{-sinlat * coslon, -sinlat * sinlon, coslat}
	uwe := [3]float64{sinlon, -coslon, 0}

	angle := -15.0 * siderealTime(t)
	uz := spin(angle, uze)
	un := spin(angle, une)
	uw := spin(angle, uwe)

	sindc := math.Sin(dec.Rad())
	cosdc := math.Cos(dec.Rad())
	sinra := math.Sin(ra.Rad())
	cosra := math.Cos(ra.Rad())
	p := [3]float64{cosdc * cosra, cosdc * sinra, sindc}

	pz := p[0]*uz[0] + p[1]*uz[1] + p[2]*uz[2]
	pn := p[0]*un[0] + p[1]*un[1] + p[2]*un[2]
	pw := p[0]*uw[0] + p[1]*uw[1] + p[2]*uw[2]

	proj := math.Hypot(pn, pw)
	az := 0.0
	if proj > 0 {
		az = -math.Atan2(pw, pn) * radToDeg
		if az < 0 {
			az += 360
		} else if az >= 360 {
			az -= 360
		}
	}
	zd := math.Atan2(proj, pz) * radToDeg

	horRA := ra
	horDec := dec

	refr := RefractionAngle(refraction, 90.0-zd)
	if refr > 0 {
		zd0 := zd
		zd -= refr
		if zd > 3.0e-4 {
			// Shift the direction vector by the refraction angle and
			// re-derive the apparent equatorial coordinates.
			sinzd := math.Sin(zd * degToRad)
			coszd := math.Cos(zd * degToRad)
			sinzd0 := math.Sin(zd0 * degToRad)
			coszd0 := math.Cos(zd0 * degToRad)
			var pr [3]float64
			for j := 0; j < 3; j++ {
				pr[j] = (p[j] - coszd0*uz[j]) / sinzd0
			}
			for j := 0; j < 3; j++ {
				p[j] = coszd*uz[j] + sinzd*pr[j]
			}
			projr := math.Hypot(p[0], p[1])
			if projr > 0 {
				raRad := math.Atan2(p[1], p[0])
				if raRad < 0 {
					raRad += 2 * math.Pi
				}
				horRA = unit.RA(raRad)
				horDec = unit.Angle(math.Atan2(p[2], projr))
			}
		}
	}

	return Topocentric{
		Azimuth:  az,
		Altitude: 90.0 - zd,
		RA:       horRA,
		Dec:      horDec,
	}
}
