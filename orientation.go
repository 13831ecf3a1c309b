package astrometry

import (
	"fmt"
	"math"
)

// Earth orientation: mean obliquity, nutation, precession, sidereal
// time, and the topocentric observer vector.

// meanObliquityDeg returns the mean obliquity of the ecliptic in degrees
// for a terrestrial time given as days since J2000.
func meanObliquityDeg(tt float64) float64 {
	t := tt / 36525.0
	asec := 84381.406 +
		t*(-46.836769+
			t*(-0.0001831+
				t*(0.00200340+
					t*(-0.000000576+
						t*(-0.0000000434)))))
	return asec / 3600.0
}

// nutationTerm is one row of the IAU 2000B luni-solar series: integer
// multipliers of the five fundamental arguments and the sin/cos
// coefficients for nutation in longitude and obliquity, in units of
// 0.1 microarcseconds.
type nutationTerm struct {
	nl, nlp, nf, nd, nom     int
	ps, pst, pc, ec, ect, es float64
}

// The dominant rows of the IAU 2000B series. The omitted tail terms are
// each below 1.5 milliarcseconds.
var nutationSeries = []nutationTerm{
	{0, 0, 0, 0, 1, -172064161, -174666, 33386, 92052331, 9086, 15377},
	{0, 0, 2, -2, 2, -13170906, -1675, -13696, 5730336, -3015, -4587},
	{0, 0, 2, 0, 2, -2276413, -234, 2796, 978459, -485, 1374},
	{0, 0, 0, 0, 2, 2074554, 207, -698, -897492, 470, -291},
	{0, 1, 0, 0, 0, 1475877, -3633, 11817, 73871, -184, -1924},
	{0, 1, 2, -2, 2, -516821, 1226, -524, 224386, -677, -174},
	{1, 0, 0, 0, 0, 711159, 73, -872, -6750, 0, 358},
	{0, 0, 2, 0, 1, -387298, -367, 380, 200728, 18, 318},
	{1, 0, 2, 0, 2, -301461, -36, 816, 129025, -63, 367},
	{0, -1, 2, -2, 2, 215829, -494, 111, -95929, 299, 132},
	{0, 0, 2, -2, 1, 128227, 137, 181, -68982, -9, 39},
	{-1, 0, 2, 0, 2, 123457, 11, 19, -53311, 32, -4},
	{-1, 0, 0, 2, 0, 156994, 10, -168, -1235, 0, 82},
	{1, 0, 0, 0, 1, 63110, 63, 27, -33228, 0, -9},
	{-1, 0, 0, 0, 1, -57976, -63, -189, 31429, 0, -75},
	{-1, 0, 2, 2, 2, -59641, -11, 149, 25543, -11, 66},
	{1, 0, 2, 0, 1, -51613, -42, 129, 26366, 0, 78},
	{-2, 0, 2, 0, 1, 45893, 50, 31, -24236, -10, 20},
	{0, 0, 0, 2, 0, 63384, 11, -150, -1220, 0, 29},
	{0, 0, 2, 2, 2, -38571, -1, 158, 16452, -11, 68},
	{0, -2, 2, -2, 2, 32481, 0, 0, -13870, 0, 0},
	{-2, 0, 0, 2, 0, -47722, 0, -18, 477, 0, -25},
	{2, 0, 2, 0, 2, -31046, -1, 131, 13238, -11, 59},
	{1, 0, 2, -2, 2, 28593, 0, -1, -12338, 10, -3},
	{-1, 0, 2, 0, 1, 20441, 21, 10, -10758, 0, -3},
	{2, 0, 0, 0, 0, 29243, 0, -74, -609, 0, 13},
	{0, 0, 2, 0, 0, 25887, 0, -66, -550, 0, 11},
	{0, 1, 0, 0, 1, -14053, -25, 79, 8551, -2, -45},
	{-1, 0, 0, 2, 1, 15164, 10, 11, -8001, 0, -1},
	{0, 2, 2, -2, 2, -15794, 72, -16, 6850, -42, -5},
}

// nutationAngles returns the nutation in longitude (psi) and obliquity
// (eps), both in arcseconds, for the given time. The computation is a
// pure function of time; there is no per-instance cache.
func nutationAngles(t Time) (psi, eps float64) {
	tc := t.TT / 36525.0

	// Fundamental luni-solar arguments in radians.
	el := math.Mod(485868.249036+tc*1717915923.2178, asec360) * asecToRad
	elp := math.Mod(1287104.79305+tc*129596581.0481, asec360) * asecToRad
	f := math.Mod(335779.526232+tc*1739527262.8478, asec360) * asecToRad
	d := math.Mod(1072260.70369+tc*1602961601.2090, asec360) * asecToRad
	om := math.Mod(450160.398036-tc*6962890.5431, asec360) * asecToRad

	var dp, de float64
	// Sum from the smallest terms upward to limit rounding drift.
	for i := len(nutationSeries) - 1; i >= 0; i-- {
		term := nutationSeries[i]
		arg := float64(term.nl)*el + float64(term.nlp)*elp +
			float64(term.nf)*f + float64(term.nd)*d + float64(term.nom)*om
		sarg := math.Sin(arg)
		carg := math.Cos(arg)
		dp += (term.ps+term.pst*tc)*sarg + term.pc*carg
		de += (term.ec+term.ect*tc)*carg + term.es*sarg
	}

	// Fixed offsets compensate for the truncated planetary terms.
	psi = -0.000135 + dp*1e-7
	eps = +0.000388 + de*1e-7
	return psi, eps
}

// earthTilt bundles the orientation angles needed by several
// transformations: nutation angles in arcseconds, mean and true
// obliquity in degrees, and the equation of the equinoxes in sidereal
// seconds.
type earthTilt struct {
	psi, eps   float64
	mobl, tobl float64
	ee         float64
}

func tilt(t Time) earthTilt {
	psi, eps := nutationAngles(t)
	mobl := meanObliquityDeg(t.TT)
	tobl := mobl + eps/3600.0
	ee := psi * math.Cos(mobl*degToRad) / 15.0
	return earthTilt{psi: psi, eps: eps, mobl: mobl, tobl: tobl, ee: ee}
}

// precessionRot builds the rotation matrix between the J2000 mean
// equator and the mean equator of the epoch tt days after J2000, using
// the IAU 2006 precession angles.
func precessionRot(tt float64, into2000 bool) rotationMatrix {
	t := tt / 36525.0
	const eps0 = 84381.406

	psia := t * (5038.481507 + t*(-1.0790069+t*(-0.00114045+t*(0.000132851+t*(-0.0000000951)))))
	omegaa := eps0 + t*(-0.025754+t*(0.0512623+t*(-0.00772503+t*(-0.000000467+t*(0.0000003337)))))
	chia := t * (10.556403 + t*(-2.3814292+t*(-0.00121197+t*(0.000170663+t*(-0.0000000560)))))

	sa := math.Sin(eps0 * asecToRad)
	ca := math.Cos(eps0 * asecToRad)
	sb := math.Sin(-psia * asecToRad)
	cb := math.Cos(-psia * asecToRad)
	sc := math.Sin(-omegaa * asecToRad)
	cc := math.Cos(-omegaa * asecToRad)
	sd := math.Sin(chia * asecToRad)
	cd := math.Cos(chia * asecToRad)

	xx := cd*cb - sb*sd*cc
	yx := cd*sb*ca + sd*cc*cb*ca - sa*sd*sc
	zx := cd*sb*sa + sd*cc*cb*sa + ca*sd*sc
	xy := -sd*cb - sb*cd*cc
	yy := -sd*sb*ca + cd*cc*cb*ca - sa*cd*sc
	zy := -sd*sb*sa + cd*cc*cb*sa + ca*cd*sc
	xz := sb * sc
	yz := -sc*cb*ca - sa*cc
	zz := -sc*cb*sa + cc*ca

	// Rows below take a J2000 vector to the mean equator of date.
	fromJ2000 := rotationMatrix{
		{xx, yx, zx},
		{xy, yy, zy},
		{xz, yz, zz},
	}
	if into2000 {
		return fromJ2000.transpose()
	}
	return fromJ2000
}

// precession rotates a vector between the J2000 mean equator and the
// mean equator of another epoch. Exactly one of tt1, tt2 must be zero
// (one endpoint is always J2000); anything else is a programming error
// and panics.
func precession(tt1 float64, pos Vector, tt2 float64) Vector {
	if tt1 != 0 && tt2 != 0 {
		panic(fmt.Sprintf("precession: one of tt1=%f, tt2=%f must be zero", tt1, tt2))
	}
	if tt1 == 0 {
		return precessionRot(tt2, false).rotate(pos)
	}
	return precessionRot(tt1, true).rotate(pos)
}

// nutationDirection selects the sense of the nutation rotation.
type nutationDirection int

const (
	fromMeanToTrue nutationDirection = iota
	fromTrueToMean
)

func nutationRot(t Time, dir nutationDirection) rotationMatrix {
	et := tilt(t)
	oblm := et.mobl * degToRad
	oblt := et.tobl * degToRad
	psi := et.psi * asecToRad

	cobm := math.Cos(oblm)
	sobm := math.Sin(oblm)
	cobt := math.Cos(oblt)
	sobt := math.Sin(oblt)
	cpsi := math.Cos(psi)
	spsi := math.Sin(psi)

	// Mean equator and equinox of date to true equator and equinox:
	// rotate by the obliquity onto the ecliptic, advance the equinox by
	// psi, then rotate back by the true obliquity.
	forward := rotationMatrix{
		{cpsi, -spsi * cobm, -spsi * sobm},
		{spsi * cobt, cpsi*cobm*cobt + sobm*sobt, cpsi*sobm*cobt - cobm*sobt},
		{spsi * sobt, cpsi*cobm*sobt - sobm*cobt, cpsi*sobm*sobt + cobm*cobt},
	}
	if dir == fromTrueToMean {
		return forward.transpose()
	}
	return forward
}

func nutation(t Time, dir nutationDirection, pos Vector) Vector {
	return nutationRot(t, dir).rotate(pos)
}

// earthRotationAngle returns the ERA in degrees for a universal time in
// days since J2000.
func earthRotationAngle(ut float64) float64 {
	thet1 := 0.7790572732640 + 0.00273781191135448*ut
	thet3 := math.Mod(ut, 1.0)
	theta := 360.0 * math.Mod(thet1+thet3, 1.0)
	if theta < 0 {
		theta += 360.0
	}
	return theta
}

// siderealTime returns Greenwich apparent sidereal time in sidereal
// hours [0, 24).
func siderealTime(t Time) float64 {
	tc := t.TT / 36525.0
	eqeq := 15.0 * tilt(t).ee
	theta := earthRotationAngle(t.UT)
	st := eqeq +
		0.014506 +
		tc*(4612.156534+
			tc*(1.3915817+
				tc*(-0.00000044+
					tc*(-0.000029956+
						tc*(-0.0000000368)))))
	gst := math.Mod(st/3600.0+theta, 360.0) / 15.0
	if gst < 0 {
		gst += 24.0
	}
	return gst
}

// terra computes the geocentric equatorial position of an observer on
// the WGS-84-like oblate ellipsoid, in AU, for the given sidereal time
// in hours.
func terra(observer Observer, st float64) [3]float64 {
	df2 := (1.0 - earthFlattening) * (1.0 - earthFlattening)
	phi := observer.Latitude * degToRad
	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)
	c := 1.0 / math.Sqrt(cosphi*cosphi+df2*sinphi*sinphi)
	s := df2 * c
	htKm := observer.Height / 1000.0
	ach := earthEquatorialRadiusKm*c + htKm
	ash := earthEquatorialRadiusKm*s + htKm
	stlocl := (st*15.0 + observer.Longitude) * degToRad
	sinst := math.Sin(stlocl)
	cosst := math.Cos(stlocl)
	return [3]float64{
		ach * cosphi * cosst / KmPerAU,
		ach * cosphi * sinst / KmPerAU,
		ash * sinphi / KmPerAU,
	}
}

// geoPos returns the observer's position relative to the Earth's center
// in J2000 equatorial coordinates.
func geoPos(t Time, observer Observer) Vector {
	gast := siderealTime(t)
	pos := terra(observer, gast)
	ofdate := Vector{pos[0], pos[1], pos[2], t}
	mean := nutation(t, fromTrueToMean, ofdate)
	return precession(t.TT, mean, 0)
}
