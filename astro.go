// Package astrometry computes positions, rise/set times, phases, and
// illumination of the Sun, Moon, planets, and Pluto for an arbitrary
// observer and time.
//
// Planetary positions come from truncated VSOP87-style trigonometric
// series, the Moon from a Brown-style periodic term accumulation, and
// Pluto from Chebyshev records covering 1700-2200. Event queries
// (seasons, moon quarters, rise/set, elongations, apsides) are built on
// a generic ascending-zero-crossing search over a time window.
//
// All operations are pure computations over immutable inputs. Callers
// needing concurrency can run independent queries in parallel; there is
// no shared mutable model state.
package astrometry

// Body identifies a celestial body supported by the position and event
// queries.
type Body int

const (
	// Sun is the Sun.
	Sun Body = iota
	// Moon is the Earth's Moon.
	Moon
	// Mercury is the planet Mercury.
	Mercury
	// Venus is the planet Venus.
	Venus
	// Earth is the planet Earth.
	Earth
	// Mars is the planet Mars.
	Mars
	// Jupiter is the planet Jupiter.
	Jupiter
	// Saturn is the planet Saturn.
	Saturn
	// Uranus is the planet Uranus.
	Uranus
	// Neptune is the planet Neptune.
	Neptune
	// Pluto is the dwarf planet Pluto.
	Pluto
)

var bodyNames = map[Body]string{
	Sun:     "Sun",
	Moon:    "Moon",
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
	Pluto:   "Pluto",
}

// String returns the English name of the body, or "Invalid" for a value
// outside the supported set.
func (b Body) String() string {
	if name, ok := bodyNames[b]; ok {
		return name
	}
	return "Invalid"
}

// Physical and temporal constants shared across the package.
const (
	// KmPerAU is the number of kilometers in one astronomical unit.
	KmPerAU = 1.4959787069098932e+8

	// CAuDay is the speed of light in AU/day.
	CAuDay = 173.1446326846693

	secondsPerDay = 86400.0
	degToRad      = 0.017453292519943296
	radToDeg      = 57.295779513082321
	asecToRad     = degToRad / 3600.0
	asec360       = 1296000.0

	// MeanSynodicMonth is the average number of days between new moons.
	MeanSynodicMonth = 29.530588

	// MeanAnomalisticMonth is the average number of days between lunar
	// perigees.
	MeanAnomalisticMonth = 27.55454988

	sunRadiusKm  = 695700.0
	moonRadiusKm = 1738.1

	earthEquatorialRadiusKm = 6378.1366
	earthFlattening         = 0.003352819697896

	// solarDaysPerSiderealDay converts a sidereal-hour offset into solar
	// days.
	solarDaysPerSiderealDay = 0.9972695717592592
)

// Orbital periods in days, used to derive synodic periods for the
// relative-longitude search.
var planetOrbitalPeriod = map[Body]float64{
	Mercury: 87.969,
	Venus:   224.701,
	Earth:   365.256,
	Mars:    686.980,
	Jupiter: 4332.589,
	Saturn:  10759.22,
	Uranus:  30685.4,
	Neptune: 60189.0,
	Pluto:   90560.0,
}

// NormalizeLongitude reduces an angle in degrees to the range [0, 360).
func NormalizeLongitude(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

// LongitudeOffset reduces an angle in degrees to the range (-180, +180].
func LongitudeOffset(diff float64) float64 {
	offset := diff
	for offset <= -180 {
		offset += 360
	}
	for offset > 180 {
		offset -= 360
	}
	return offset
}
