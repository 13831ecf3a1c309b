package astrometry

import "math"

// Direction distinguishes rise events from set events.
type Direction int

const (
	// Rise selects events where the body ascends through the horizon.
	Rise Direction = +1
	// Set selects events where the body descends through the horizon.
	Set Direction = -1
)

// HourAngleEvent is the result of an hour angle search: the time of the
// event and the body's horizontal coordinates at that time.
type HourAngleEvent struct {
	Time    Time
	Horizon Topocentric
}

// SearchHourAngle finds the next time after start when a body reaches
// the given hour angle (sidereal hours in [0, 24)) as seen by the
// observer. Hour angle 0 is upper culmination, 12 is lower culmination.
func SearchHourAngle(body Body, observer Observer, hourAngle float64, start Time) (HourAngleEvent, error) {
	if hourAngle < 0.0 || hourAngle >= 24.0 {
		return HourAngleEvent{}, ErrInvalidArgument
	}

	t := start
	for iter := 1; iter <= 100; iter++ {
		gast := siderealTime(t)
		ofdate, err := Equator(body, t, observer, true, true)
		if err != nil {
			return HourAngleEvent{}, err
		}

		// How far the desired hour angle is from the current one, in
		// sidereal hours.
		delta := math.Mod(hourAngle+ofdate.RA.Hour()-observer.Longitude/15.0-gast, 24.0)
		if iter == 1 {
			// On the first pass only search forward in time.
			if delta < 0 {
				delta += 24
			}
		} else {
			if delta < -12 {
				delta += 24
			} else if delta > +12 {
				delta -= 24
			}
		}

		if math.Abs(delta)*3600 < 0.1 {
			hor := Horizon(t, observer, ofdate.RA, ofdate.Dec, NormalRefraction)
			return HourAngleEvent{Time: t, Horizon: hor}, nil
		}
		t = t.AddDays((delta / 24.0) * solarDaysPerSiderealDay)
	}
	return HourAngleEvent{}, ErrNoConverge
}

// bodyRadiusAU gives the radius used to decide when a body's upper limb
// touches the horizon. Bodies other than the Sun and Moon are treated
// as points.
func bodyRadiusAU(body Body) float64 {
	switch body {
	case Sun:
		return sunRadiusKm / KmPerAU
	case Moon:
		return moonRadiusKm / KmPerAU
	}
	return 0
}

// peakAltitude measures how far the body's apparent upper limb is above
// (direction Rise) or below (direction Set) the horizon, in degrees.
func peakAltitude(body Body, direction Direction, observer Observer, t Time) (float64, error) {
	ofdate, err := Equator(body, t, observer, true, true)
	if err != nil {
		return 0, err
	}
	hor := Horizon(t, observer, ofdate.RA, ofdate.Dec, NoRefraction)

	// The event is when the true altitude of the body's center equals
	// the limb correction plus standard refraction at the horizon.
	altitude := hor.Altitude + radToDeg*(bodyRadiusAU(body)/ofdate.Dist) + 34.0/60.0
	return float64(direction) * altitude, nil
}

// SearchRiseSet finds the next rise or set of a body after start,
// within limitDays, for the given observer. Standard refraction of 34
// arcminutes at the horizon and the Sun's or Moon's angular radius are
// applied. It returns (nil, nil) when no event occurs in the window,
// which is normal at polar latitudes.
func SearchRiseSet(body Body, observer Observer, direction Direction, start Time, limitDays float64) (*Time, error) {
	var haBefore, haAfter float64
	switch direction {
	case Rise:
		haBefore = 12 // below the horizon at lower culmination
		haAfter = 0   // above the horizon at upper culmination
	case Set:
		haBefore = 0
		haAfter = 12
	default:
		return nil, ErrInvalidArgument
	}

	fn := func(t Time) (float64, error) {
		return peakAltitude(body, direction, observer, t)
	}

	// The event lies between a culmination where the altitude error is
	// negative and the next one where it is positive. Walk culmination
	// pairs forward until such a bracket is found.
	altBefore, err := fn(start)
	if err != nil {
		return nil, err
	}
	timeBefore := start
	if altBefore > 0 {
		// Already past the event; wait for the next "before"
		// culmination.
		evtBefore, err := SearchHourAngle(body, observer, haBefore, start)
		if err != nil {
			return nil, err
		}
		timeBefore = evtBefore.Time
		if altBefore, err = fn(timeBefore); err != nil {
			return nil, err
		}
	}
	evtAfter, err := SearchHourAngle(body, observer, haAfter, timeBefore)
	if err != nil {
		return nil, err
	}
	altAfter, err := fn(evtAfter.Time)
	if err != nil {
		return nil, err
	}

	for {
		if altBefore <= 0 && altAfter > 0 {
			result, err := Search(fn, timeBefore, evtAfter.Time, 1.0)
			if err != nil {
				return nil, err
			}
			if result == nil {
				// A sign change was bracketed, so a root must exist.
				return nil, ErrInternal
			}
			if result.UT > start.UT+limitDays {
				return nil, nil
			}
			return result, nil
		}

		evtBefore, err := SearchHourAngle(body, observer, haBefore, evtAfter.Time)
		if err != nil {
			return nil, err
		}
		if evtBefore.Time.UT >= start.UT+limitDays {
			return nil, nil
		}
		evtAfter, err = SearchHourAngle(body, observer, haAfter, evtBefore.Time)
		if err != nil {
			return nil, err
		}
		timeBefore = evtBefore.Time
		if altBefore, err = fn(timeBefore); err != nil {
			return nil, err
		}
		if altAfter, err = fn(evtAfter.Time); err != nil {
			return nil, err
		}
	}
}
