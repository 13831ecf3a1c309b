package astrometry

// ApsisKind distinguishes the nearest point of an orbit from the
// farthest.
type ApsisKind int

const (
	Perigee ApsisKind = iota
	Apogee
)

// Apsis is a lunar perigee or apogee event.
type Apsis struct {
	Time Time
	Kind ApsisKind
	// DistAU is the Moon's center-to-center distance in AU.
	DistAU float64
	// DistKm is the same distance in kilometers.
	DistKm float64
}

func moonDistance(t Time) float64 {
	return GeoMoon(t).Length()
}

// moonDistanceSlope measures the rate of change of the Moon's distance,
// scaled by direction so that the sought apsis appears as an ascending
// zero crossing.
func moonDistanceSlope(direction float64, t Time) float64 {
	const dt = 0.001
	dist1 := moonDistance(t.AddDays(-dt))
	dist2 := moonDistance(t.AddDays(+dt))
	return direction * (dist2 - dist1) / (2 * dt)
}

func makeApsis(t Time, kind ApsisKind) Apsis {
	dist := moonDistance(t)
	return Apsis{
		Time:   t,
		Kind:   kind,
		DistAU: dist,
		DistKm: dist * KmPerAU,
	}
}

// SearchLunarApsis finds the next lunar perigee or apogee after start,
// whichever comes first.
func SearchLunarApsis(start Time) (Apsis, error) {
	increment := 5.0 // days per sampling step, safely under a quarter anomalistic month

	positiveSlope := func(t Time) (float64, error) {
		return moonDistanceSlope(+1, t), nil
	}
	negativeSlope := func(t Time) (float64, error) {
		return moonDistanceSlope(-1, t), nil
	}

	t1 := start
	m1 := moonDistanceSlope(+1, t1)
	for iter := 0.0; iter*increment < 2*MeanAnomalisticMonth; iter++ {
		t2 := t1.AddDays(increment)
		m2 := moonDistanceSlope(+1, t2)

		if m1 < 0 && m2 >= 0 {
			// Distance stops shrinking: perigee.
			t, err := Search(positiveSlope, t1, t2, 1.0)
			if err != nil {
				return Apsis{}, err
			}
			if t == nil {
				return Apsis{}, ErrInternal
			}
			return makeApsis(*t, Perigee), nil
		}
		if m1 >= 0 && m2 < 0 {
			// Distance stops growing: apogee.
			t, err := Search(negativeSlope, t1, t2, 1.0)
			if err != nil {
				return Apsis{}, err
			}
			if t == nil {
				return Apsis{}, ErrInternal
			}
			return makeApsis(*t, Apogee), nil
		}
		t1 = t2
		m1 = m2
	}
	// One apsis of each kind occurs every anomalistic month.
	return Apsis{}, ErrInternal
}

// NextLunarApsis finds the apsis event that follows the given one.
// Perigees and apogees strictly alternate.
func NextLunarApsis(prev Apsis) (Apsis, error) {
	// Skip far enough that the search cannot rediscover prev.
	const skipDays = 11.0
	next, err := SearchLunarApsis(prev.Time.AddDays(skipDays))
	if err != nil {
		return Apsis{}, err
	}
	if next.Kind == prev.Kind {
		return Apsis{}, ErrInternal
	}
	return next, nil
}
