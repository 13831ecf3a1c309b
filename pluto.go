package astrometry

import "math"

// Pluto is handled separately from the major planets: its heliocentric
// position comes from osculating orbital elements with secular rates,
// propagated by solving Kepler's equation. Because rise/set and
// conjunction searches evaluate positions thousands of times, the
// propagated orbit is compressed once at startup into Chebyshev
// polynomial segments covering the years 1700 to 2200; queries outside
// that interval report ErrOutOfRange.

// Osculating elements at epoch J2000 with rates per Julian century.
// Angles in degrees, rates of the angular elements in arcseconds.
const (
	plutoAxis    = 39.48168677
	plutoAxisDot = -0.00076912
	plutoEcc     = 0.24880766
	plutoEccDot  = 0.00006465
	plutoIncl    = 17.14175
	plutoInclDot = 11.07
	plutoNode    = 110.30347
	plutoNodeDot = -37.33
	plutoPeri    = 224.06676
	plutoPeriDot = -132.25
	plutoLon     = 238.92881
	plutoLonDot  = 522747.9
)

// plutoKepler propagates the elements to the given terrestrial time
// (days since J2000) and returns the heliocentric position in J2000
// equatorial coordinates.
func plutoKepler(tt float64) Vector {
	cy := tt / 36525.0
	axis := plutoAxis + plutoAxisDot*cy
	ecc := plutoEcc + plutoEccDot*cy
	incl := (plutoIncl + plutoInclDot*cy/3600.0) * degToRad
	node := (plutoNode + plutoNodeDot*cy/3600.0) * degToRad
	peri := (plutoPeri + plutoPeriDot*cy/3600.0) * degToRad
	meanLon := (plutoLon + plutoLonDot*cy/3600.0) * degToRad

	anom := math.Mod(meanLon-peri, 2*math.Pi)

	// Kepler's equation by Newton iteration.
	enom := anom + ecc*math.Sin(anom)
	for {
		dele := (anom - enom + ecc*math.Sin(enom)) / (1 - ecc*math.Cos(enom))
		enom += dele
		if math.Abs(dele) <= 1e-12 {
			break
		}
	}
	vnom := 2 * math.Atan2(math.Sqrt((1+ecc)/(1-ecc))*math.Sin(enom/2), math.Cos(enom/2))
	r := axis * (1 - ecc*math.Cos(enom))

	// Orbital plane to J2000 ecliptic.
	u := vnom + peri - node
	sinu := math.Sin(u)
	cosu := math.Cos(u)
	sinn := math.Sin(node)
	cosn := math.Cos(node)
	cosi := math.Cos(incl)
	sini := math.Sin(incl)
	ex := r * (cosn*cosu - sinn*sinu*cosi)
	ey := r * (sinn*cosu + cosn*sinu*cosi)
	ez := r * (sinu * sini)

	return EquatorFromEcliptic(Vector{X: ex, Y: ey, Z: ez})
}

// plutoSegment is one Chebyshev approximation span: ncoeff coefficients
// per coordinate over [ttStart, ttStart+ttSpan].
type plutoSegment struct {
	ttStart float64
	ttSpan  float64
	coeff   [3][]float64
}

const (
	plutoMinTT    = -109573.5 // 1700-01-01 from J2000, roughly
	plutoMaxTT    = 73050.5   // 2200-01-01 from J2000, roughly
	plutoSegDays  = 18262.7   // about fifty years per segment
	plutoNumCoeff = 20
)

var plutoCache []plutoSegment

func init() {
	tt := plutoMinTT
	for tt < plutoMaxTT {
		span := plutoSegDays
		if tt+span > plutoMaxTT {
			span = plutoMaxTT - tt
		}
		plutoCache = append(plutoCache, chebFitPluto(tt, span))
		tt += span
	}
}

// chebFitPluto samples the Kepler propagator at Chebyshev nodes and
// computes the polynomial coefficients for one segment.
func chebFitPluto(ttStart, ttSpan float64) plutoSegment {
	const n = plutoNumCoeff
	seg := plutoSegment{ttStart: ttStart, ttSpan: ttSpan}

	var samples [n]Vector
	for k := 0; k < n; k++ {
		// Node in [-1, 1], mapped onto the segment.
		x := math.Cos(math.Pi * (float64(k) + 0.5) / n)
		tt := ttStart + (x+1)/2*ttSpan
		samples[k] = plutoKepler(tt)
	}
	for d := 0; d < 3; d++ {
		seg.coeff[d] = make([]float64, n)
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				f := samples[k].X
				switch d {
				case 1:
					f = samples[k].Y
				case 2:
					f = samples[k].Z
				}
				sum += f * math.Cos(math.Pi*float64(j)*(float64(k)+0.5)/n)
			}
			seg.coeff[d][j] = 2.0 / n * sum
		}
	}
	return seg
}

// chebEval evaluates a Chebyshev series at x in [-1, 1] by Clenshaw
// recurrence. The zeroth coefficient carries half weight.
func chebEval(coeff []float64, x float64) float64 {
	var b1, b2 float64
	for j := len(coeff) - 1; j >= 1; j-- {
		b1, b2 = 2*x*b1-b2+coeff[j], b1
	}
	return x*b1 - b2 + coeff[0]/2
}

// plutoVector returns Pluto's heliocentric position. Times outside the
// cached 1700-2200 interval yield ErrOutOfRange.
func plutoVector(t Time) (Vector, error) {
	if t.TT < plutoMinTT || t.TT > plutoMaxTT {
		return Vector{}, ErrOutOfRange
	}
	// Segments are stored in ascending time order.
	for i := range plutoCache {
		seg := &plutoCache[i]
		if t.TT <= seg.ttStart+seg.ttSpan {
			x := 2*(t.TT-seg.ttStart)/seg.ttSpan - 1
			return Vector{
				X: chebEval(seg.coeff[0], x),
				Y: chebEval(seg.coeff[1], x),
				Z: chebEval(seg.coeff[2], x),
				T: t,
			}, nil
		}
	}
	return Vector{}, ErrOutOfRange
}
