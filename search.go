package astrometry

import "math"

// SearchFunc is any continuous function of time whose ascending root is
// to be found. Implementations may fail, for example when an underlying
// ephemeris query goes out of range.
type SearchFunc func(t Time) (float64, error)

type quadResult struct {
	t    Time
	dfdt float64
}

// quadInterp fits a parabola through three equally spaced samples and
// returns its root within the sampled interval, if there is exactly
// one.
func quadInterp(tm Time, dt, fa, fm, fb float64) (quadResult, bool) {
	q := (fb+fa)/2 - fm
	r := (fb - fa) / 2
	s := fm

	var x float64
	if q == 0 {
		// Parabola degenerates to a line.
		if r == 0 {
			return quadResult{}, false
		}
		x = -s / r
		if x < -1 || x > +1 {
			return quadResult{}, false
		}
	} else {
		u := r*r - 4*q*s
		if u <= 0 {
			return quadResult{}, false
		}
		ru := math.Sqrt(u)
		x1 := (-r + ru) / (2 * q)
		x2 := (-r - ru) / (2 * q)
		switch {
		case -1 <= x1 && x1 <= +1:
			if -1 <= x2 && x2 <= +1 {
				// Two roots in range: ambiguous.
				return quadResult{}, false
			}
			x = x1
		case -1 <= x2 && x2 <= +1:
			x = x2
		default:
			return quadResult{}, false
		}
	}

	return quadResult{
		t:    tm.AddDays(x * dt),
		dfdt: (2*q*x + r) / dt,
	}, true
}

// Search finds a time between t1 and t2 when the function fn crosses
// from negative to non-negative, accurate to within toleranceSeconds.
// The function must have no more than one ascending root in the
// bracket. Search returns (nil, nil) when no ascending root is
// bracketed, and ErrNoConverge if the iteration fails to settle.
func Search(fn SearchFunc, t1, t2 Time, toleranceSeconds float64) (*Time, error) {
	dtToleranceDays := toleranceSeconds / secondsPerDay
	if dtToleranceDays <= 0 {
		return nil, ErrInvalidArgument
	}

	f1, err := fn(t1)
	if err != nil {
		return nil, err
	}
	f2, err := fn(t2)
	if err != nil {
		return nil, err
	}

	var fmid float64
	calcFmid := true
	for iter := 0; iter < 20; iter++ {
		dt := (t2.UT - t1.UT) / 2
		tmid := t1.AddDays(dt)
		if math.Abs(dt) < dtToleranceDays {
			return &tmid, nil
		}

		if calcFmid {
			fmid, err = fn(tmid)
			if err != nil {
				return nil, err
			}
		} else {
			// Reuse the value carried over from the bracket shrink.
			calcFmid = true
		}

		// Try a quadratic shortcut before bisecting.
		if qr, ok := quadInterp(tmid, t2.UT-tmid.UT, f1, fmid, f2); ok {
			fq, err := fn(qr.t)
			if err != nil {
				return nil, err
			}
			if qr.dfdt != 0 {
				if math.Abs(fq/qr.dfdt) < dtToleranceDays {
					return &qr.t, nil
				}
				// Estimate how far the root can be from tq and try to
				// confine the bracket around it.
				dtGuess := 1.2 * math.Abs(fq/qr.dfdt)
				if dtGuess < dt/10 {
					tleft := qr.t.AddDays(-dtGuess)
					tright := qr.t.AddDays(+dtGuess)
					if (tleft.UT-t1.UT)*(tleft.UT-t2.UT) < 0 &&
						(tright.UT-t1.UT)*(tright.UT-t2.UT) < 0 {
						fleft, err := fn(tleft)
						if err != nil {
							return nil, err
						}
						fright, err := fn(tright)
						if err != nil {
							return nil, err
						}
						if fleft < 0 && fright >= 0 {
							f1 = fleft
							f2 = fright
							t1 = tleft
							t2 = tright
							fmid = fq
							calcFmid = false
							continue
						}
					}
				}
			}
		}

		switch {
		case f1 < 0 && fmid >= 0:
			t2 = tmid
			f2 = fmid
		case fmid < 0 && f2 >= 0:
			t1 = tmid
			f1 = fmid
		default:
			// No ascending root in the bracket.
			return nil, nil
		}
	}
	return nil, ErrNoConverge
}
