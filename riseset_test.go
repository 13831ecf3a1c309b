package astrometry

import (
	"errors"
	"math"
	"testing"
)

func TestSearchRiseSet_Equator(t *testing.T) {
	// At the equator near the equinox the Sun is up for very close to
	// twelve hours (slightly longer due to refraction and the solar
	// radius).
	obs := Observer{Latitude: 0, Longitude: 0, Height: 0}
	start := TimeFromCalendar(2020, 3, 19, 0, 0, 0)

	rise, err := SearchRiseSet(Sun, obs, Rise, start, 2)
	if err != nil {
		t.Fatalf("rise search: %v", err)
	}
	if rise == nil {
		t.Fatal("no sunrise found at the equator")
	}
	set, err := SearchRiseSet(Sun, obs, Set, *rise, 2)
	if err != nil {
		t.Fatalf("set search: %v", err)
	}
	if set == nil {
		t.Fatal("no sunset found after sunrise")
	}
	daylight := set.UT - rise.UT
	if math.Abs(daylight-0.5) > 0.02 {
		t.Errorf("daylight = %f days, expected about 0.5", daylight)
	}
}

func TestSearchRiseSet_PolarNight(t *testing.T) {
	// Near the north pole in December the Sun neither rises nor sets.
	obs := Observer{Latitude: 89, Longitude: 0, Height: 0}
	start := TimeFromCalendar(2020, 12, 10, 0, 0, 0)

	rise, err := SearchRiseSet(Sun, obs, Rise, start, 10)
	if err != nil {
		t.Fatalf("rise search: %v", err)
	}
	if rise != nil {
		t.Errorf("unexpected polar sunrise at %v", rise)
	}
	set, err := SearchRiseSet(Sun, obs, Set, start, 10)
	if err != nil {
		t.Fatalf("set search: %v", err)
	}
	if set != nil {
		t.Errorf("unexpected polar sunset at %v", set)
	}
}

func TestSearchRiseSet_MoonDaily(t *testing.T) {
	// The Moon rises roughly 50 minutes later each day.
	obs := Observer{Latitude: 28.6, Longitude: -80.6, Height: 0}
	start := TimeFromCalendar(2021, 9, 1, 0, 0, 0)

	r1, err := SearchRiseSet(Moon, obs, Rise, start, 3)
	if err != nil {
		t.Fatalf("first moonrise: %v", err)
	}
	if r1 == nil {
		t.Fatal("no moonrise found")
	}
	r2, err := SearchRiseSet(Moon, obs, Rise, r1.AddDays(0.1), 3)
	if err != nil {
		t.Fatalf("second moonrise: %v", err)
	}
	if r2 == nil {
		t.Fatal("no second moonrise found")
	}
	gap := r2.UT - r1.UT
	if gap < 0.9 || gap > 1.2 {
		t.Errorf("consecutive moonrises %f days apart", gap)
	}
}

func TestSearchHourAngle_Culmination(t *testing.T) {
	// At upper culmination the Sun crosses the meridian, so its azimuth
	// points due south from a northern mid-latitude site.
	obs := Observer{Latitude: 48.8, Longitude: 2.3, Height: 0}
	start := TimeFromCalendar(2022, 5, 1, 0, 0, 0)

	evt, err := SearchHourAngle(Sun, obs, 0, start)
	if err != nil {
		t.Fatalf("SearchHourAngle: %v", err)
	}
	if evt.Time.UT < start.UT {
		t.Errorf("event at %v precedes start %v", evt.Time, start)
	}
	azErr := math.Abs(evt.Horizon.Azimuth - 180)
	if azErr > 1 {
		t.Errorf("culmination azimuth = %f, expected near 180", evt.Horizon.Azimuth)
	}
	if evt.Horizon.Altitude < 40 || evt.Horizon.Altitude > 70 {
		t.Errorf("culmination altitude = %f", evt.Horizon.Altitude)
	}
}

func TestSearchHourAngle_InvalidArgument(t *testing.T) {
	obs := Observer{Latitude: 0, Longitude: 0}
	if _, err := SearchHourAngle(Sun, obs, 24, TimeFromDays(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("hour angle 24: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := SearchHourAngle(Sun, obs, -0.5, TimeFromDays(0)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("hour angle -0.5: expected ErrInvalidArgument, got %v", err)
	}
}
