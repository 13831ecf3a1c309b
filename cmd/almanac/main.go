// Package main provides the almanac command-line tool: positions of
// the Sun, Moon, and planets for an observing site, plus upcoming
// events (rise/set, moon quarters, seasons, lunar apsides).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/naoina/toml"
	sexa "github.com/soniakeys/sexagesimal"

	"go.ngs.io/astrometry"
)

const version = "0.1.0"

// site is the observing location, read from a TOML file.
type site struct {
	Name      string
	Latitude  float64
	Longitude float64
	Height    float64
}

func main() {
	sitePath := flag.String("site", "site.toml", "Path to the TOML site file")
	when := flag.String("time", "", "Observation time, RFC 3339 (default: now)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("almanac version %s\n", version)
		return
	}

	s, err := loadSite(*sitePath)
	if err != nil {
		log.Fatalf("loading site: %v", err)
	}
	observer := astrometry.Observer{
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		Height:    s.Height,
	}

	t := astrometry.TimeFromTime(time.Now().UTC())
	if *when != "" {
		parsed, err := time.Parse(time.RFC3339, *when)
		if err != nil {
			log.Fatalf("parsing -time: %v", err)
		}
		t = astrometry.TimeFromTime(parsed.UTC())
	}

	log.Printf("Site: %s (lat %.4f, lon %.4f, height %.0f m)",
		s.Name, s.Latitude, s.Longitude, s.Height)
	log.Printf("Time: %s", t)

	printPositions(t, observer)
	printSunMoonEvents(t, observer)
	printSeasons(t)
	printApsis(t)
}

func loadSite(path string) (site, error) {
	var s site
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.Latitude < -90 || s.Latitude > 90 {
		return s, fmt.Errorf("latitude %v out of range", s.Latitude)
	}
	return s, nil
}

var almanacBodies = []astrometry.Body{
	astrometry.Sun,
	astrometry.Moon,
	astrometry.Mercury,
	astrometry.Venus,
	astrometry.Mars,
	astrometry.Jupiter,
	astrometry.Saturn,
	astrometry.Uranus,
	astrometry.Neptune,
	astrometry.Pluto,
}

func printPositions(t astrometry.Time, observer astrometry.Observer) {
	fmt.Printf("\n%-8s  %-14s %-14s %10s %9s %9s %7s\n",
		"Body", "RA", "Dec", "Dist (AU)", "Az", "Alt", "Mag")
	for _, body := range almanacBodies {
		eq, err := astrometry.Equator(body, t, observer, true, true)
		if err != nil {
			log.Printf("%s: %v", body, err)
			continue
		}
		hor := astrometry.Horizon(t, observer, eq.RA, eq.Dec, astrometry.NormalRefraction)
		illum, err := astrometry.Illumination(body, t)
		if err != nil {
			log.Printf("%s: %v", body, err)
			continue
		}
		fmt.Printf("%-8s  %-14v %-14v %10.5f %9.3f %9.3f %7.2f\n",
			body,
			sexa.FmtRA(eq.RA),
			sexa.FmtAngle(eq.Dec),
			eq.Dist,
			hor.Azimuth,
			hor.Altitude,
			illum.Mag)
	}
}

func printSunMoonEvents(t astrometry.Time, observer astrometry.Observer) {
	fmt.Println()
	for _, body := range []astrometry.Body{astrometry.Sun, astrometry.Moon} {
		rise, err := astrometry.SearchRiseSet(body, observer, astrometry.Rise, t, 300)
		if err != nil {
			log.Fatalf("%s rise: %v", body, err)
		}
		set, err := astrometry.SearchRiseSet(body, observer, astrometry.Set, t, 300)
		if err != nil {
			log.Fatalf("%s set: %v", body, err)
		}
		fmt.Printf("%s rise: %v\n", body, orNever(rise))
		fmt.Printf("%s set:  %v\n", body, orNever(set))
	}

	mq, err := astrometry.SearchMoonQuarter(t)
	if err != nil {
		log.Fatalf("moon quarter: %v", err)
	}
	names := [4]string{"New Moon", "First Quarter", "Full Moon", "Third Quarter"}
	fmt.Printf("Next %s: %s\n", names[mq.Quarter], mq.Time)
}

func printSeasons(t astrometry.Time) {
	year := t.UTC().Year()
	si, err := astrometry.Seasons(year)
	if err != nil {
		log.Fatalf("seasons: %v", err)
	}
	fmt.Printf("\nSeasons %d:\n", year)
	fmt.Printf("  March equinox:      %s\n", si.MarEquinox)
	fmt.Printf("  June solstice:      %s\n", si.JunSolstice)
	fmt.Printf("  September equinox:  %s\n", si.SepEquinox)
	fmt.Printf("  December solstice:  %s\n", si.DecSolstice)
}

func printApsis(t astrometry.Time) {
	apsis, err := astrometry.SearchLunarApsis(t)
	if err != nil {
		log.Fatalf("lunar apsis: %v", err)
	}
	kind := "perigee"
	if apsis.Kind == astrometry.Apogee {
		kind = "apogee"
	}
	fmt.Printf("\nNext lunar %s: %s at %.0f km\n", kind, apsis.Time, apsis.DistKm)
}

func orNever(t *astrometry.Time) string {
	if t == nil {
		return "(none in window)"
	}
	return t.String()
}
