package astrometry

import "math"

// Geocentric lunar position from an adaptation of Brown's lunar theory
// (via the improved lunar ephemeris). The fundamental elements are
// referred to the epoch 1900 Jan 0.5 and the mean equinox of date; the
// result is precessed to J2000 equatorial coordinates.

// moonTerm is one periodic term: an amplitude and integer multiples of
// the four principal arguments (mean anomaly of the Moon, mean anomaly
// of the Sun, argument of latitude, mean elongation).
type moonTerm struct {
	f float64
	c [4]int
}

// Solar terms in longitude, arcseconds.
var moonLonTabs = []moonTerm{
	{0.127, [4]int{0, 0, 0, 6}},
	{13.902, [4]int{0, 0, 0, 4}},
	{2369.912, [4]int{0, 0, 0, 2}},
	{1.979, [4]int{1, 0, 0, 4}},
	{191.953, [4]int{1, 0, 0, 2}},
	{22639.5, [4]int{1, 0, 0, 0}},
	{-4586.465, [4]int{1, 0, 0, -2}},
	{-38.428, [4]int{1, 0, 0, -4}},
	{-0.393, [4]int{1, 0, 0, -6}},
	{-0.289, [4]int{0, 1, 0, 4}},
	{-24.42, [4]int{0, 1, 0, 2}},
	{-668.146, [4]int{0, 1, 0, 0}},
	{-165.145, [4]int{0, 1, 0, -2}},
	{-1.877, [4]int{0, 1, 0, -4}},
	{0.403, [4]int{0, 0, 0, 3}},
	{-125.154, [4]int{0, 0, 0, 1}},
	{0.213, [4]int{2, 0, 0, 4}},
	{14.387, [4]int{2, 0, 0, 2}},
	{769.016, [4]int{2, 0, 0, 0}},
	{-211.656, [4]int{2, 0, 0, -2}},
	{-30.773, [4]int{2, 0, 0, -4}},
	{-0.57, [4]int{2, 0, 0, -6}},
	{-2.921, [4]int{1, 1, 0, 2}},
	{-109.673, [4]int{1, 1, 0, 0}},
	{-205.962, [4]int{1, 1, 0, -2}},
	{-4.391, [4]int{1, 1, 0, -4}},
	{-0.072, [4]int{1, 1, 0, -6}},
	{0.283, [4]int{1, -1, 0, 4}},
	{14.577, [4]int{1, -1, 0, 2}},
	{147.687, [4]int{1, -1, 0, 0}},
	{28.475, [4]int{1, -1, 0, -2}},
	{0.636, [4]int{1, -1, 0, -4}},
	{-0.189, [4]int{0, 2, 0, 2}},
	{-7.486, [4]int{0, 2, 0, 0}},
	{-8.096, [4]int{0, 2, 0, -2}},
	{-0.151, [4]int{0, 2, 0, -4}},
	{-0.085, [4]int{0, 0, 2, 4}},
	{-5.741, [4]int{0, 0, 2, 2}},
	{-411.608, [4]int{0, 0, 2, 0}},
	{-55.173, [4]int{0, 0, 2, -2}},
	{-8.466, [4]int{1, 0, 0, 1}},
	{18.609, [4]int{1, 0, 0, -1}},
	{3.215, [4]int{1, 0, 0, -3}},
	{0.15, [4]int{0, 1, 0, 3}},
	{18.023, [4]int{0, 1, 0, 1}},
	{0.56, [4]int{0, 1, 0, -1}},
	{1.06, [4]int{3, 0, 0, 2}},
	{36.124, [4]int{3, 0, 0, 0}},
	{-13.193, [4]int{3, 0, 0, -2}},
	{-1.187, [4]int{3, 0, 0, -4}},
	{-0.293, [4]int{3, 0, 0, -6}},
	{-0.29, [4]int{2, 1, 0, 2}},
	{-7.649, [4]int{2, 1, 0, 0}},
	{-8.627, [4]int{2, 1, 0, -2}},
	{-2.74, [4]int{2, 1, 0, -4}},
	{-0.091, [4]int{2, 1, 0, -6}},
	{1.181, [4]int{2, -1, 0, 2}},
	{9.703, [4]int{2, -1, 0, 0}},
	{-2.494, [4]int{2, -1, 0, -2}},
	{0.36, [4]int{2, -1, 0, -4}},
	{-1.167, [4]int{1, 2, 0, 0}},
	{-7.412, [4]int{1, 2, 0, -2}},
	{-0.311, [4]int{1, 2, 0, -4}},
	{0.757, [4]int{1, -2, 0, 2}},
	{2.58, [4]int{1, -2, 0, 0}},
	{2.533, [4]int{1, -2, 0, -2}},
	{-0.103, [4]int{0, 3, 0, 0}},
	{-0.344, [4]int{0, 3, 0, -2}},
	{-0.992, [4]int{1, 0, 2, 2}},
	{-45.099, [4]int{1, 0, 2, 0}},
	{-0.179, [4]int{1, 0, 2, -2}},
	{-0.301, [4]int{1, 0, 2, -4}},
	{-6.382, [4]int{1, 0, -2, 2}},
	{39.528, [4]int{1, 0, -2, 0}},
	{9.366, [4]int{1, 0, -2, -2}},
	{0.202, [4]int{1, 0, -2, -4}},
	{0.415, [4]int{0, 1, 2, 0}},
	{-2.152, [4]int{0, 1, 2, -2}},
	{-1.44, [4]int{0, 1, -2, 2}},
	{0.076, [4]int{0, 1, -2, 0}},
	{0.384, [4]int{0, 1, -2, -2}},
	{-0.586, [4]int{2, 0, 0, 1}},
	{1.75, [4]int{2, 0, 0, -1}},
	{1.225, [4]int{2, 0, 0, -3}},
	{1.267, [4]int{1, 1, 0, 1}},
	{0.137, [4]int{1, 1, 0, -1}},
	{0.233, [4]int{1, 1, 0, -3}},
	{-0.122, [4]int{1, -1, 0, 1}},
	{-1.089, [4]int{1, -1, 0, -1}},
	{-0.276, [4]int{1, -1, 0, -3}},
	{0.255, [4]int{0, 0, 2, 1}},
	{0.584, [4]int{0, 0, 2, -1}},
	{0.254, [4]int{0, 0, 2, -3}},
	{0.07, [4]int{4, 0, 0, 2}},
	{1.938, [4]int{4, 0, 0, 0}},
	{-0.952, [4]int{4, 0, 0, -2}},
	{-0.551, [4]int{3, 1, 0, 0}},
	{-0.482, [4]int{3, 1, 0, -2}},
	{-0.1, [4]int{3, 1, 0, -4}},
	{0.088, [4]int{3, -1, 0, 2}},
	{0.681, [4]int{3, -1, 0, 0}},
	{-0.183, [4]int{3, -1, 0, -2}},
	{-0.297, [4]int{2, 2, 0, -2}},
	{-0.161, [4]int{2, 2, 0, -4}},
	{0.197, [4]int{2, -2, 0, 0}},
	{0.254, [4]int{2, -2, 0, -2}},
	{-0.25, [4]int{1, 3, 0, -2}},
	{-0.123, [4]int{2, 0, 2, 2}},
	{-3.996, [4]int{2, 0, 2, 0}},
	{0.557, [4]int{2, 0, 2, -2}},
	{-0.459, [4]int{2, 0, -2, 2}},
	{-1.37, [4]int{2, 0, -2, 0}},
	{0.538, [4]int{2, 0, -2, -2}},
	{0.173, [4]int{2, 0, -2, -4}},
	{0.263, [4]int{1, 1, 2, 0}},
	{0.083, [4]int{1, 1, -2, 2}},
	{-0.083, [4]int{1, 1, -2, 0}},
	{0.426, [4]int{1, 1, -2, -2}},
	{-0.304, [4]int{1, -1, 2, 0}},
	{-0.372, [4]int{1, -1, -2, 2}},
	{0.083, [4]int{1, -1, -2, 0}},
	{0.418, [4]int{0, 0, 4, 0}},
	{0.074, [4]int{0, 0, 4, -2}},
	{0.13, [4]int{3, 0, 0, -1}},
	{0.092, [4]int{2, 1, 0, 1}},
	{0.084, [4]int{2, 1, 0, -3}},
	{-0.352, [4]int{2, -1, 0, -1}},
	{0.113, [4]int{5, 0, 0, 0}},
	{-0.33, [4]int{3, 0, 2, 0}},
	{0.09, [4]int{1, 0, 4, 0}},
	{-0.08, [4]int{1, 0, -4, 0}},
}

// Solar terms in latitude: sine series.
var moonLatSinTabs = []moonTerm{
	{-112.79, [4]int{0, 0, 0, 1}},
	{2373.36, [4]int{0, 0, 0, 2}},
	{-4.01, [4]int{0, 0, 0, 3}},
	{14.06, [4]int{0, 0, 0, 4}},
	{6.98, [4]int{1, 0, 0, 4}},
	{192.72, [4]int{1, 0, 0, 2}},
	{-13.51, [4]int{1, 0, 0, 1}},
	{22609.07, [4]int{1, 0, 0, 0}},
	{3.59, [4]int{1, 0, 0, -1}},
	{-4578.13, [4]int{1, 0, 0, -2}},
	{5.44, [4]int{1, 0, 0, -3}},
	{-38.64, [4]int{1, 0, 0, -4}},
	{14.78, [4]int{2, 0, 0, 2}},
	{767.96, [4]int{2, 0, 0, 0}},
	{2.01, [4]int{2, 0, 0, -1}},
	{-152.53, [4]int{2, 0, 0, -2}},
	{-34.07, [4]int{2, 0, 0, -4}},
	{2.96, [4]int{3, 0, 0, 2}},
	{50.64, [4]int{3, 0, 0, 0}},
	{-16.4, [4]int{3, 0, 0, -2}},
	{3.6, [4]int{4, 0, 0, 0}},
	{-1.58, [4]int{4, 0, 0, -2}},
	{-1.59, [4]int{0, 1, 0, 4}},
	{-25.1, [4]int{0, 1, 0, 2}},
	{17.93, [4]int{0, 1, 0, 1}},
	{-126.98, [4]int{0, 1, 0, 0}},
	{-165.06, [4]int{0, 1, 0, -2}},
	{-6.46, [4]int{0, 1, 0, -4}},
	{-1.68, [4]int{0, 2, 0, 2}},
	{-16.35, [4]int{0, 2, 0, -2}},
	{-11.75, [4]int{1, 1, 0, 2}},
	{1.52, [4]int{1, 1, 0, 1}},
	{-115.18, [4]int{1, 1, 0, 0}},
	{-182.36, [4]int{1, 1, 0, -2}},
	{-9.66, [4]int{1, 1, 0, -4}},
	{-2.27, [4]int{-1, 1, 0, 4}},
	{-23.59, [4]int{-1, 1, 0, 2}},
	{-138.76, [4]int{-1, 1, 0, 0}},
	{-31.7, [4]int{-1, 1, 0, -2}},
	{-1.53, [4]int{-1, 1, 0, -4}},
	{-10.56, [4]int{2, 1, 0, 0}},
	{-7.59, [4]int{2, 1, 0, -2}},
	{-2.54, [4]int{2, 1, 0, -4}},
	{3.32, [4]int{2, -1, 0, 2}},
	{11.67, [4]int{2, -1, 0, 0}},
	{-6.12, [4]int{1, 2, 0, -2}},
	{-2.4, [4]int{-1, 2, 0, 2}},
	{-2.32, [4]int{-1, 2, 0, 0}},
	{-1.82, [4]int{-1, 2, 0, -2}},
	{-52.14, [4]int{0, 0, 2, -2}},
	{-1.67, [4]int{0, 0, 2, -4}},
	{-9.52, [4]int{1, 0, 2, -2}},
	{-85.13, [4]int{-1, 0, 2, 0}},
	{3.37, [4]int{-1, 0, 2, -2}},
	{-2.26, [4]int{0, 1, 2, -2}},
}

// Solar terms in latitude: cosine series applied as a correction factor
// to the principal latitude amplitude.
var moonLatCosTabs = []moonTerm{
	{-0.725, [4]int{0, 0, 0, 1}},
	{0.601, [4]int{0, 0, 0, 2}},
	{0.394, [4]int{0, 0, 0, 3}},
	{-0.445, [4]int{1, 0, 0, 4}},
	{0.455, [4]int{1, 0, 0, 1}},
	{0.192, [4]int{1, 0, 0, -3}},
	{5.679, [4]int{2, 0, 0, -2}},
	{-0.308, [4]int{2, 0, 0, -4}},
	{-0.166, [4]int{3, 0, 0, 2}},
	{-1.3, [4]int{3, 0, 0, 0}},
	{0.258, [4]int{3, 0, 0, -2}},
	{-1.302, [4]int{0, 1, 0, 0}},
	{-0.416, [4]int{0, 1, 0, -4}},
	{-0.74, [4]int{0, 2, 0, -2}},
	{0.787, [4]int{1, 1, 0, 2}},
	{0.461, [4]int{1, 1, 0, 0}},
	{2.056, [4]int{1, 1, 0, -2}},
	{-0.471, [4]int{1, 1, 0, -4}},
	{-0.443, [4]int{-1, 1, 0, 2}},
	{0.679, [4]int{-1, 1, 0, 0}},
	{-1.54, [4]int{-1, 1, 0, -2}},
	{0.259, [4]int{2, 1, 0, 0}},
	{-0.212, [4]int{2, -1, 0, 2}},
	{-0.151, [4]int{2, -1, 0, 0}},
}

// Nodal terms in latitude.
var moonNodeTabs = []moonTerm{
	{-526.069, [4]int{0, 0, 1, -2}},
	{-3.352, [4]int{0, 0, 1, -4}},
	{44.297, [4]int{1, 0, 1, -2}},
	{-6, [4]int{1, 0, 1, -4}},
	{20.599, [4]int{-1, 0, 1, 0}},
	{-30.598, [4]int{-1, 0, 1, -2}},
	{-24.649, [4]int{-2, 0, 1, 0}},
	{-2, [4]int{-2, 0, 1, -2}},
	{-22.571, [4]int{0, 1, 1, -2}},
	{10.985, [4]int{0, -1, 1, -2}},
}

// Solar terms in parallax, arcseconds about the mean value 3422.7.
var moonParTabs = []moonTerm{
	{0.2607, [4]int{0, 0, 0, 4}},
	{28.2333, [4]int{0, 0, 0, 2}},
	{0.0433, [4]int{1, 0, 0, 4}},
	{3.0861, [4]int{1, 0, 0, 2}},
	{186.5398, [4]int{1, 0, 0, 0}},
	{34.3117, [4]int{1, 0, 0, -2}},
	{0.6008, [4]int{1, 0, 0, -4}},
	{-0.3, [4]int{0, 1, 0, 2}},
	{-0.3997, [4]int{0, 1, 0, 0}},
	{1.9178, [4]int{0, 1, 0, -2}},
	{0.0339, [4]int{0, 1, 0, -4}},
	{-0.9781, [4]int{0, 0, 0, 1}},
	{0.2833, [4]int{2, 0, 0, 2}},
	{10.1657, [4]int{2, 0, 0, 0}},
	{-0.3039, [4]int{2, 0, 0, -2}},
	{0.3722, [4]int{2, 0, 0, -4}},
	{0.0109, [4]int{2, 0, 0, -6}},
	{-0.0484, [4]int{1, 1, 0, 2}},
	{-0.949, [4]int{1, 1, 0, 0}},
	{1.4437, [4]int{1, 1, 0, -2}},
	{0.0673, [4]int{1, 1, 0, -4}},
	{0.2302, [4]int{1, -1, 0, 2}},
	{1.1528, [4]int{1, -1, 0, 0}},
	{-0.2257, [4]int{1, -1, 0, -2}},
	{-0.0102, [4]int{1, -1, 0, -4}},
	{0.0918, [4]int{0, 2, 0, -2}},
	{-0.0124, [4]int{0, 0, 2, 0}},
	{-0.1052, [4]int{0, 0, 2, -2}},
	{-0.1093, [4]int{1, 0, 0, 1}},
	{0.0118, [4]int{1, 0, 0, -1}},
	{-0.0386, [4]int{1, 0, 0, -3}},
	{0.1494, [4]int{0, 1, 0, 1}},
	{0.0243, [4]int{3, 0, 0, 2}},
	{0.6215, [4]int{3, 0, 0, 0}},
	{-0.1187, [4]int{3, 0, 0, -2}},
	{-0.1038, [4]int{2, 1, 0, 0}},
	{-0.0192, [4]int{2, 1, 0, -2}},
	{0.0324, [4]int{2, 1, 0, -4}},
	{0.0213, [4]int{2, -1, 0, 2}},
	{0.1268, [4]int{2, -1, 0, 0}},
	{-0.0106, [4]int{1, 2, 0, 0}},
	{0.0484, [4]int{1, 2, 0, -2}},
	{0.0112, [4]int{1, -2, 0, 2}},
	{0.0196, [4]int{1, -2, 0, 0}},
	{-0.0212, [4]int{1, -2, 0, -2}},
	{-0.0833, [4]int{1, 0, 2, -2}},
	{-0.0481, [4]int{1, 0, -2, 2}},
	{-0.7136, [4]int{1, 0, -2, 0}},
	{-0.0112, [4]int{1, 0, -2, -2}},
	{-0.01, [4]int{2, 0, 0, 1}},
	{0.0155, [4]int{2, 0, 0, -1}},
	{0.0164, [4]int{1, 1, 0, 1}},
	{0.0401, [4]int{4, 0, 0, 0}},
	{-0.013, [4]int{4, 0, 0, -2}},
	{0.0115, [4]int{3, -1, 0, 0}},
	{-0.0141, [4]int{2, 0, -2, -2}},
}

// moonMaxMult bounds the integer multiples appearing in the tables.
const moonMaxMult = 6

// moonCalc evaluates the periodic series for one instant. The sines and
// cosines of all needed integer multiples of the four principal
// arguments are built once by angle addition, so each table term costs
// a few multiplies instead of a trig call.
type moonCalc struct {
	k1, k2, k3, k4 float64
	cosm, sinm     [4][2*moonMaxMult + 1]float64
}

func newMoonCalc(argsDeg [4]float64, k1, k2, k3, k4 float64) *moonCalc {
	mc := &moonCalc{k1: k1, k2: k2, k3: k3, k4: k4}
	for a := 0; a < 4; a++ {
		c1 := math.Cos(argsDeg[a] * degToRad)
		s1 := math.Sin(argsDeg[a] * degToRad)
		mc.cosm[a][moonMaxMult] = 1
		mc.sinm[a][moonMaxMult] = 0
		for n := 1; n <= moonMaxMult; n++ {
			cp := mc.cosm[a][moonMaxMult+n-1]
			sp := mc.sinm[a][moonMaxMult+n-1]
			mc.cosm[a][moonMaxMult+n] = cp*c1 - sp*s1
			mc.sinm[a][moonMaxMult+n] = sp*c1 + cp*s1
			mc.cosm[a][moonMaxMult-n] = mc.cosm[a][moonMaxMult+n]
			mc.sinm[a][moonMaxMult-n] = -mc.sinm[a][moonMaxMult+n]
		}
	}
	return mc
}

func (mc *moonCalc) scale(x float64, i, j, k, m int) float64 {
	for n := intAbs(i); n > 0; n-- {
		x *= mc.k1
	}
	for n := intAbs(j); n > 0; n-- {
		x *= mc.k2
	}
	for n := intAbs(k); n > 0; n-- {
		x *= mc.k3
	}
	if m&1 != 0 {
		x *= mc.k4
	}
	return x
}

func (mc *moonCalc) sinTerm(coef float64, i, j, k, m int, extraDeg float64) float64 {
	c, s := mc.combined(i, j, k, m)
	if extraDeg != 0 {
		er := extraDeg * degToRad
		s = s*math.Cos(er) + c*math.Sin(er)
	}
	return mc.scale(coef*s, i, j, k, m)
}

func (mc *moonCalc) cosTerm(coef float64, i, j, k, m int) float64 {
	c, _ := mc.combined(i, j, k, m)
	return mc.scale(coef*c, i, j, k, m)
}

// combined composes the cos/sin of the full argument by angle addition
// across the four tables.
func (mc *moonCalc) combined(i, j, k, m int) (float64, float64) {
	c := mc.cosm[0][moonMaxMult+i]
	s := mc.sinm[0][moonMaxMult+i]
	for a, n := range [3]int{j, k, m} {
		cn := mc.cosm[a+1][moonMaxMult+n]
		sn := mc.sinm[a+1][moonMaxMult+n]
		c, s = c*cn-s*sn, s*cn+c*sn
	}
	return c, s
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// geoMoonEcl returns the Moon's geocentric ecliptic longitude (degrees,
// mean equinox of date), latitude (radians), and equatorial horizontal
// parallax (radians).
func geoMoonEcl(t Time) (lonDeg, latRad, hpRad float64) {
	// Days and centuries since the 1900 Jan 0.5 epoch, in
	// terrestrial time.
	eday := t.TT + 36525.0
	capt := eday / 36525.0
	capt2 := capt * capt
	capt3 := capt2 * capt

	// Fundamental mean elements, degrees.
	dlong := 270.434164 + 13.1763965268*eday - 0.001133*capt2 + 2e-6*capt3
	argp := 334.329556 + 0.1114040803*eday - 0.010325*capt2 - 12e-6*capt3
	node := 259.183275 - 0.0529539222*eday + 0.002078*capt2 + 2e-6*capt3
	lsun := 279.696678 + 0.9856473354*eday + 0.000303*capt2
	psun := 281.220833 + 0.0000470684*eday + 0.000453*capt2 + 3e-6*capt3
	dlong = math.Mod(dlong, 360)
	argp = math.Mod(argp, 360)
	node = math.Remainder(node, 360)
	lsun = math.Mod(lsun, 360)
	psun = math.Mod(psun, 360)

	eccm := 22639.55
	eccs := 0.01675104 - 0.0000418*capt
	cpe := 124.986
	chp := 3422.451

	// Subsidiary planetary longitudes, fixed mean equinox of 1850.
	v0 := 342.069128 + 1.602130482*eday
	t0 := 98.998753 + 0.9856091138*eday
	m0 := 293.049675 + 0.5240329445*eday
	j0 := 237.352319 + 0.0830912295*eday

	// Long-period corrections to the fundamental elements.
	arg1 := (41.1 + 20.2*(capt+0.5)) * degToRad
	arg2 := (dlong - argp + 33 + 3*t0 - 10*v0 - 2.6*(capt+0.5)) * degToRad
	arg3 := (dlong - argp + 151.1 + 16*t0 - 18*v0 - (capt + 0.5)) * degToRad
	arg4 := node * degToRad
	arg5 := (node + 276.2 - 2.3*(capt+0.5)) * degToRad
	arg6 := (313.9 + 13*t0 - 8*v0) * degToRad
	arg7 := (dlong - argp + 112 + 29*t0 - 26*v0) * degToRad
	arg8 := (dlong + argp - 2*lsun + 273 + 21*t0 - 20*v0) * degToRad
	arg9 := (node + 290.1 - 0.9*(capt+0.5)) * degToRad
	arg10 := (115 + 38.5*(capt+0.5)) * degToRad

	dlong += (0.84*math.Sin(arg1) + 0.31*math.Sin(arg2) + 14.27*math.Sin(arg3) +
		7.261*math.Sin(arg4) + 0.282*math.Sin(arg5) + 0.237*math.Sin(arg6) +
		0.108*math.Sin(arg7) + 0.126*math.Sin(arg8)) / 3600
	argp += (-2.1*math.Sin(arg1) - 0.118*math.Sin(arg3) - 2.076*math.Sin(arg4) -
		0.84*math.Sin(arg5) - 0.593*math.Sin(arg6)) / 3600
	node += (0.63*math.Sin(arg1) + 0.17*math.Sin(arg3) + 95.96*math.Sin(arg4) +
		15.58*math.Sin(arg5) + 1.86*math.Sin(arg9)) / 3600
	t0 += (-6.4*math.Sin(arg1) - 1.89*math.Sin(arg6)) / 3600
	psun += (6.4*math.Sin(arg1) + 1.89*math.Sin(arg6)) / 3600
	dgamma := -4.318*math.Cos(arg4) - 0.698*math.Cos(arg5) - 0.083*math.Cos(arg9)
	j0 += 0.33 * math.Sin(arg10)

	// Rescale Brown's coefficients to current values of the
	// eccentricities, inclination, and parallax.
	k1 := eccm / 22639.5
	k2 := eccs / 0.01675104
	k3 := 1 + 2.708e-6 + 0.000108008*dgamma
	k4 := cpe / 125.154
	k5 := chp / 3422.7

	// Principal arguments.
	mnom := dlong - argp
	msun := lsun - psun
	noded := dlong - node
	dmoon := dlong - lsun

	mc := newMoonCalc([4]float64{mnom, msun, noded, dmoon}, k1, k2, k3, k4)

	// Solar terms in longitude.
	var lterms float64
	for _, tm := range moonLonTabs {
		lterms += mc.sinTerm(tm.f, tm.c[0], tm.c[1], tm.c[2], tm.c[3], 0)
	}
	// Planetary terms in longitude.
	lterms += mc.sinTerm(0.822, 0, 0, 0, 0, t0-v0)
	lterms += mc.sinTerm(0.307, 0, 0, 0, 0, 2*t0-2*v0+179.8)
	lterms += mc.sinTerm(0.348, 0, 0, 0, 0, 3*t0-2*v0+272.9)
	lterms += mc.sinTerm(0.176, 0, 0, 0, 0, 4*t0-3*v0+271.7)
	lterms += mc.sinTerm(0.092, 0, 0, 0, 0, 5*t0-3*v0+199)
	lterms += mc.sinTerm(0.129, 1, 0, 0, 0, -t0+v0+180)
	lterms += mc.sinTerm(0.152, 1, 0, 0, 0, t0-v0)
	lterms += mc.sinTerm(0.127, 1, 0, 0, 0, 3*t0-3*v0+180)
	lterms += mc.sinTerm(0.099, 0, 0, 0, 2, t0-v0)
	lterms += mc.sinTerm(0.136, 0, 0, 0, 2, 2*t0-2*v0+179.5)
	lterms += mc.sinTerm(0.083, -1, 0, 0, 2, -4*t0+4*v0+180)
	lterms += mc.sinTerm(0.662, -1, 0, 0, 2, -3*t0+3*v0+180)
	lterms += mc.sinTerm(0.137, -1, 0, 0, 2, -2*t0+2*v0)
	lterms += mc.sinTerm(0.133, -1, 0, 0, 2, t0-v0)
	lterms += mc.sinTerm(0.157, -1, 0, 0, 2, 2*t0-2*v0+179.6)
	lterms += mc.sinTerm(0.079, -1, 0, 0, 2, -8*t0+6*v0+162.6)
	lterms += mc.sinTerm(0.073, 2, 0, 0, -2, 3*t0-3*v0+180)
	lterms += mc.sinTerm(0.643, 0, 0, 0, 0, -t0+j0+178.8)
	lterms += mc.sinTerm(0.187, 0, 0, 0, 0, -2*t0+2*j0+359.6)
	lterms += mc.sinTerm(0.087, 0, 0, 0, 0, j0+289.9)
	lterms += mc.sinTerm(0.165, 0, 0, 0, 0, -t0+2*j0+241.5)
	lterms += mc.sinTerm(0.144, 1, 0, 0, 0, t0-j0+1)
	lterms += mc.sinTerm(0.158, 1, 0, 0, 0, -t0+j0+179)
	lterms += mc.sinTerm(0.19, 1, 0, 0, 0, -2*t0+2*j0+180)
	lterms += mc.sinTerm(0.096, 1, 0, 0, 0, -2*t0+3*j0+352.5)
	lterms += mc.sinTerm(0.07, 0, 0, 0, 2, 2*t0-2*j0+180)
	lterms += mc.sinTerm(0.167, 0, 0, 0, 2, -t0+j0+178.5)
	lterms += mc.sinTerm(0.085, 0, 0, 0, 2, -2*t0+2*j0+359.2)
	lterms += mc.sinTerm(1.137, -1, 0, 0, 2, 2*t0-2*j0+180.3)
	lterms += mc.sinTerm(0.211, -1, 0, 0, 2, -t0+j0+178.4)
	lterms += mc.sinTerm(0.089, -1, 0, 0, 2, -2*t0+2*j0+359.2)
	lterms += mc.sinTerm(0.436, -1, 0, 0, 2, 2*t0-3*j0+7.5)
	lterms += mc.sinTerm(0.24, 2, 0, 0, -2, -2*t0+2*j0+179.9)
	lterms += mc.sinTerm(0.284, 2, 0, 0, -2, -2*t0+3*j0+172.5)
	lterms += mc.sinTerm(0.195, 0, 0, 0, 0, -2*t0+2*m0+180.2)
	lterms += mc.sinTerm(0.327, 0, 0, 0, 0, -t0+2*m0+224.4)
	lterms += mc.sinTerm(0.093, 0, 0, 0, 0, -2*t0+4*m0+244.8)
	lterms += mc.sinTerm(0.073, 1, 0, 0, 0, -t0+2*m0+223.3)
	lterms += mc.sinTerm(0.074, 1, 0, 0, 0, t0-2*m0+306.3)
	lterms += mc.sinTerm(0.189, 0, 0, 0, 0, node+180)

	// Solar terms in latitude.
	var sterms float64
	for _, tm := range moonLatSinTabs {
		sterms += mc.sinTerm(tm.f, tm.c[0], tm.c[1], tm.c[2], tm.c[3], 0)
	}
	var cterms float64
	for _, tm := range moonLatCosTabs {
		cterms += mc.cosTerm(tm.f, tm.c[0], tm.c[1], tm.c[2], tm.c[3])
	}
	var nterms float64
	for _, tm := range moonNodeTabs {
		nterms += mc.sinTerm(tm.f, tm.c[0], tm.c[1], tm.c[2], tm.c[3], 0)
	}
	// Planetary terms in latitude.
	pterms := mc.sinTerm(0.215, 0, 0, 0, 0, dlong)

	// Solar terms in parallax.
	spterms := 3422.7
	for _, tm := range moonParTabs {
		spterms += mc.cosTerm(tm.f, tm.c[0], tm.c[1], tm.c[2], tm.c[3])
	}

	lonDeg = dlong + lterms/3600

	arglat := (noded + sterms/3600) * degToRad
	gamma1 := 18519.7 * k3
	gamma2 := -6.241 * k3 * k3 * k3
	gamma3 := 0.004 * k3 * k3 * k3 * k3 * k3
	k6 := (gamma1 + cterms) / gamma1
	beta := k6*(gamma1*math.Sin(arglat)+gamma2*math.Sin(3*arglat)+gamma3*math.Sin(5*arglat)+nterms) + pterms
	latRad = beta * asecToRad

	hp := k5 * spterms * asecToRad
	hpRad = hp + (hp*hp*hp)/6
	return lonDeg, latRad, hpRad
}

// GeoMoon computes the Moon's geocentric position in J2000 equatorial
// coordinates, in AU.
func GeoMoon(t Time) Vector {
	lonDeg, latRad, hpRad := geoMoonEcl(t)

	distAU := (earthEquatorialRadiusKm / KmPerAU) / math.Sin(hpRad)

	// Ecliptic of date to mean equator of date.
	obl := meanObliquityDeg(t.TT) * degToRad
	lon := lonDeg * degToRad
	coslat := math.Cos(latRad)
	gepos := Vector{
		X: distAU * math.Cos(lon) * coslat,
		Y: distAU * (math.Sin(lon)*coslat*math.Cos(obl) - math.Sin(latRad)*math.Sin(obl)),
		Z: distAU * (math.Sin(lon)*coslat*math.Sin(obl) + math.Sin(latRad)*math.Cos(obl)),
		T: t,
	}
	return precession(t.TT, gepos, 0)
}
