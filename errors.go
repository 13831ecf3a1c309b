package astrometry

import "errors"

// ErrInvalidBody is returned when a body is not supported by the
// requested operation, for example asking for the geocentric position of
// the Earth itself.
var ErrInvalidBody = errors.New("astrometry: invalid body for this operation")

// ErrInvalidArgument is returned for out-of-range options such as an
// hour angle outside [0, 24), an unknown search direction, or a
// non-positive search tolerance.
var ErrInvalidArgument = errors.New("astrometry: invalid argument")

// ErrOutOfRange is returned when a requested time falls outside a
// model's valid span, such as Pluto outside 1700-2200.
var ErrOutOfRange = errors.New("astrometry: time outside valid model range")

// ErrNoConverge is returned when an iterative algorithm exceeds its
// iteration budget. It indicates a violated precondition rather than a
// normal runtime condition.
var ErrNoConverge = errors.New("astrometry: iteration failed to converge")

// ErrZeroVector is returned when spherical angles are requested for a
// vector of zero length, for which right ascension is undefined.
var ErrZeroVector = errors.New("astrometry: zero-length vector has no direction")

// ErrInternal is returned when an internal consistency check fails.
// Seeing it means a bug in this package.
var ErrInternal = errors.New("astrometry: internal inconsistency")
