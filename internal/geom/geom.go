// Package geom provides the 2D primitives used by the symmetry pipeline:
// a point/vector type with Cartesian and polar views, and the shared
// tolerance and precision constants every stage agrees on.
package geom

import "math"

const (
	// Epsilon is the distance/angle tolerance used for barycenter
	// coincidence, shell clustering and direction-key normalisation.
	// As an angle it must cover at least half the direction-key
	// rounding width (5e-5° ≈ 8.7e-7 rad) so near-π directions
	// normalise to 0 instead of rounding up to a 180-degree key.
	Epsilon = 1e-3

	// PrecisionFactor scales values before rounding to produce
	// direction keys (in degrees) and projected-distance keys. A
	// factor of 10000 keys directions at 1e-4° granularity; the same
	// resolution buckets projected distances, which must stay fine
	// enough to keep distinct shell projections in distinct buckets
	// on dense inputs while still collapsing mirror partners.
	PrecisionFactor = 10000
)

// Point2D is a 2D point or vector in Cartesian coordinates. Polar values
// are derived on access rather than stored.
type Point2D struct {
	X float64
	Y float64
}

// FromPolar builds a point from a magnitude and an angle in radians.
func FromPolar(r, a float64) Point2D {
	return Point2D{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// R returns the magnitude (distance from the origin).
func (p Point2D) R() float64 {
	return math.Hypot(p.X, p.Y)
}

// A returns the angle in radians, in (-π, π].
func (p Point2D) A() float64 {
	return math.Atan2(p.Y, p.X)
}

// Add returns p + q.
func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f. Scaling preserves the angle for f > 0.
func (p Point2D) Scale(f float64) Point2D {
	return Point2D{X: p.X * f, Y: p.Y * f}
}

// Mod returns x modulo m with the result in [0, m) for m > 0. math.Mod
// keeps the sign of x; the direction arithmetic needs the non-negative
// residue.
func Mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
