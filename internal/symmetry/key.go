// Package symmetry implements the reflective-symmetry search over an
// annotated point set: canonical direction keys, the tested-line
// registry, the per-shell validity test and the closure-accelerated
// search engine.
package symmetry

import (
	"math"
	"strconv"
	"strings"

	"github.com/banshee-data/symmetry.report/internal/geom"
)

// DirectionKey canonically identifies a line direction: degrees in
// [0°, 180°) scaled by geom.PrecisionFactor and rounded to an integer.
// A direction and its 180° opposite share one key, and angles closer
// than the precision collapse onto the same key.
type DirectionKey int64

// String renders the decimal-degree label ("0.0", "157.5", "12.3456")
// used to identify the direction in all outputs. Trailing zeros are
// trimmed but at least one decimal is always shown, so the label shape
// is independent of the key precision.
func (k DirectionKey) String() string {
	s := strconv.FormatFloat(float64(k)/geom.PrecisionFactor, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Degrees returns the direction the key stands for, in decimal degrees.
func (k DirectionKey) Degrees() float64 {
	return float64(k) / geom.PrecisionFactor
}

// CanonicalKey reduces an angle in radians to its DirectionKey. Angles
// within geom.Epsilon of 0 or π collapse to 0 before the mod-π
// reduction, removing the sign ambiguity on the horizontal axis. The
// reduction can land on either of two equivalent representatives when
// the angle sits on the wrap boundary, so both degree candidates are
// rounded independently and the larger one wins; that tie-break keeps
// the key stable across the boundary.
func CanonicalKey(angle float64) DirectionKey {
	a := angle
	if math.Abs(a) < geom.Epsilon || math.Abs(math.Pi-a) < geom.Epsilon {
		a = 0
	} else {
		a = geom.Mod(a, math.Pi)
	}
	k1 := roundScaledDegrees(geom.Mod(math.Pi+a, math.Pi))
	k2 := roundScaledDegrees(a)
	if k1 > k2 {
		return k1
	}
	return k2
}

// LineKey is CanonicalKey applied to a line given as a direction vector.
func LineKey(line geom.Point2D) DirectionKey {
	return CanonicalKey(line.A())
}

func roundScaledDegrees(rad float64) DirectionKey {
	deg := rad * 180 / math.Pi
	return DirectionKey(math.Round(deg * geom.PrecisionFactor))
}
