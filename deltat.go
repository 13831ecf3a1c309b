package astrometry

// Delta-T is the difference TT-UT in seconds, caused by the slow and
// irregular deceleration of the Earth's rotation. The table below holds
// piecewise-linear samples of (modified Julian day, delta seconds) from
// historical measurements through 2020 and a long-term parabolic
// projection out to 2200. Lookups outside the table clamp to the first
// or last sample.

type deltaTEntry struct {
	mjd float64
	dt  float64
}

// mjdJ2000 is the modified Julian day of the J2000 epoch.
const mjdJ2000 = 51544.5

func mjdOfYear(year float64) float64 {
	return mjdJ2000 + (year-2000.0)*365.25
}

var deltaTTable = []deltaTEntry{
	{mjdOfYear(1700), 8.8},
	{mjdOfYear(1710), 10.2},
	{mjdOfYear(1720), 11.3},
	{mjdOfYear(1730), 11.1},
	{mjdOfYear(1740), 12.5},
	{mjdOfYear(1750), 13.4},
	{mjdOfYear(1760), 15.2},
	{mjdOfYear(1770), 16.5},
	{mjdOfYear(1780), 17.1},
	{mjdOfYear(1790), 17.3},
	{mjdOfYear(1800), 13.7},
	{mjdOfYear(1810), 12.5},
	{mjdOfYear(1820), 11.9},
	{mjdOfYear(1830), 7.6},
	{mjdOfYear(1840), 5.7},
	{mjdOfYear(1850), 7.1},
	{mjdOfYear(1860), 7.9},
	{mjdOfYear(1870), 1.0},
	{mjdOfYear(1880), -5.4},
	{mjdOfYear(1890), -6.0},
	{mjdOfYear(1900), -2.7},
	{mjdOfYear(1910), 10.5},
	{mjdOfYear(1920), 21.2},
	{mjdOfYear(1930), 24.1},
	{mjdOfYear(1940), 24.3},
	{mjdOfYear(1950), 29.1},
	{mjdOfYear(1960), 33.1},
	{mjdOfYear(1970), 40.2},
	{mjdOfYear(1980), 50.5},
	{mjdOfYear(1990), 56.9},
	{mjdOfYear(2000), 63.8},
	{mjdOfYear(2010), 66.1},
	{mjdOfYear(2020), 69.4},
	{mjdOfYear(2030), 77.6},
	{mjdOfYear(2040), 84.7},
	{mjdOfYear(2050), 93.0},
	{mjdOfYear(2075), 118.5},
	{mjdOfYear(2100), 151.0},
	{mjdOfYear(2125), 190.5},
	{mjdOfYear(2150), 236.9},
	{mjdOfYear(2175), 290.4},
	{mjdOfYear(2200), 350.9},
}

// deltaT returns TT-UT in seconds at the given universal time expressed
// as days since J2000.
func deltaT(ut float64) float64 {
	mjd := ut + mjdJ2000
	table := deltaTTable
	if mjd <= table[0].mjd {
		return table[0].dt
	}
	if mjd >= table[len(table)-1].mjd {
		return table[len(table)-1].dt
	}
	// Binary search for the sample interval containing mjd.
	lo, hi := 0, len(table)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if table[mid].mjd <= mjd {
			lo = mid
		} else {
			hi = mid
		}
	}
	frac := (mjd - table[lo].mjd) / (table[hi].mjd - table[lo].mjd)
	return table[lo].dt + frac*(table[hi].dt-table[lo].dt)
}
