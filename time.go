package astrometry

import (
	"math"
	"time"
)

// j2000Epoch is noon UTC on 2000-01-01, the zero point of the UT day
// count used throughout this package.
var j2000Epoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// Time is a moment expressed in the two timescales the models need:
// UT for anything tied to the Earth's rotation (sidereal time, rise and
// set) and TT for the orbital and orientation series. Both are fractional
// days since the J2000 epoch. TT is derived once at construction from
// the Delta-T table; a Time never changes after it is built.
type Time struct {
	// UT is universal time as days since 2000-01-01T12:00Z.
	UT float64
	// TT is terrestrial time as days since J2000. TT = UT + DeltaT/86400.
	TT float64
}

// TimeFromDays builds a Time from a universal-time day offset relative
// to the J2000 epoch.
func TimeFromDays(ut float64) Time {
	return Time{UT: ut, TT: ut + deltaT(ut)/secondsPerDay}
}

// TimeFromTime converts a native time.Time (any location) to a Time.
func TimeFromTime(t time.Time) Time {
	// Duration-based subtraction saturates about 292 years from the
	// epoch, well inside the supported span, so work in integer
	// seconds plus the sub-second part.
	sec := t.Unix() - j2000Epoch.Unix()
	ut := (float64(sec) + float64(t.Nanosecond())/1e9) / secondsPerDay
	return TimeFromDays(ut)
}

// TimeFromCalendar builds a Time from a UTC calendar date and time of
// day. The seconds argument may carry a fraction.
func TimeFromCalendar(year, month, day, hour, minute int, second float64) Time {
	sec := int(second)
	nsec := int((second - float64(sec)) * 1e9)
	return TimeFromTime(time.Date(year, time.Month(month), day, hour, minute, sec, nsec, time.UTC))
}

// AddDays returns a new Time the given number of universal-time days
// later (or earlier, if negative). TT is recomputed from the table.
func (t Time) AddDays(days float64) Time {
	return TimeFromDays(t.UT + days)
}

// UTC converts the Time back to a native time.Time in UTC.
func (t Time) UTC() time.Time {
	sec := t.UT * secondsPerDay
	whole := math.Floor(sec)
	nsec := math.Round((sec - whole) * 1e9)
	return time.Unix(j2000Epoch.Unix()+int64(whole), int64(nsec)).UTC()
}

// String formats the universal time as RFC 3339 with millisecond
// precision. The conversion rounds rather than truncates, so the
// sub-microsecond jitter of the day-count representation cannot show.
func (t Time) String() string {
	return t.UTC().Round(time.Millisecond).Format("2006-01-02T15:04:05.000Z07:00")
}

// julianDate returns the Julian date corresponding to the terrestrial
// time of t.
func (t Time) julianDate() float64 {
	return 2451545.0 + t.TT
}
