package astrometry

// SearchSunLongitude finds the next time after start, within limitDays,
// when the Sun's apparent ecliptic longitude reaches targetLon degrees.
// It returns (nil, nil) if the longitude is not reached inside the
// window.
func SearchSunLongitude(targetLon float64, start Time, limitDays float64) (*Time, error) {
	fn := func(t Time) (float64, error) {
		ecl, err := SunPosition(t)
		if err != nil {
			return 0, err
		}
		return LongitudeOffset(ecl.Elon.Deg() - targetLon), nil
	}
	return Search(fn, start, start.AddDays(limitDays), 1.0)
}

// SeasonsInfo holds the equinox and solstice times of a calendar year.
type SeasonsInfo struct {
	MarEquinox  Time
	JunSolstice Time
	SepEquinox  Time
	DecSolstice Time
}

func findSeasonChange(targetLon float64, year, month, day int) (Time, error) {
	start := TimeFromCalendar(year, month, day, 0, 0, 0)
	t, err := SearchSunLongitude(targetLon, start, 20.0)
	if err != nil {
		return Time{}, err
	}
	if t == nil {
		// The window is wide enough that the target longitude must be
		// crossed; failing to find it indicates a defect.
		return Time{}, ErrInternal
	}
	return *t, nil
}

// Seasons computes the two equinoxes and two solstices of the given
// calendar year.
func Seasons(year int) (SeasonsInfo, error) {
	var si SeasonsInfo
	var err error
	if si.MarEquinox, err = findSeasonChange(0, year, 3, 10); err != nil {
		return si, err
	}
	if si.JunSolstice, err = findSeasonChange(90, year, 6, 10); err != nil {
		return si, err
	}
	if si.SepEquinox, err = findSeasonChange(180, year, 9, 10); err != nil {
		return si, err
	}
	if si.DecSolstice, err = findSeasonChange(270, year, 12, 10); err != nil {
		return si, err
	}
	return si, nil
}
