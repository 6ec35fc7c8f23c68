package symmetry

import (
	"math"

	"github.com/banshee-data/symmetry.report/internal/geom"
	"github.com/banshee-data/symmetry.report/internal/pointset"
)

// IsAligned reports whether p lies on the line through the barycenter
// with the given direction. A point coinciding with the barycenter is
// trivially aligned with every line; otherwise the angle between
// (p - barycenter) and the line must be congruent to 0 or π, modulo π,
// within geom.Epsilon.
func IsAligned(p pointset.Point, line, barycenter geom.Point2D) bool {
	rel := p.Location.Sub(barycenter)
	if rel.R() < geom.Epsilon {
		return true
	}
	m := geom.Mod(rel.A()-line.A(), math.Pi)
	return m < geom.Epsilon || math.Pi-m < geom.Epsilon
}

// IsShellSymmetric decides whether line reflects one shell onto itself.
// The shell's points all sit at the same distance from the barycenter,
// so a true reflection pairs every off-axis point with exactly one
// mirror partner at the same signed projected distance along the line:
// the distinct projections must number exactly half the pairable
// points. On-axis points are self-symmetric and drop out of the pairing
// count; points coinciding with the barycenter carry no information and
// are excluded entirely.
func IsShellSymmetric(shellPoints []pointset.Point, line, barycenter geom.Point2D) bool {
	onLine := 0
	considered := len(shellPoints)
	unique := make(map[int64]struct{})

	for _, p := range shellPoints {
		rel := p.Location.Sub(barycenter)
		if rel.R() < geom.Epsilon {
			considered--
			continue
		}
		angle := rel.A() - line.A()
		if IsAligned(p, line, barycenter) {
			onLine++
			continue
		}
		unique[projectedDistanceKey(p.DistBarycenter, angle)] = struct{}{}
	}

	return 2*len(unique) == considered-onLine
}

// projectedDistanceKey buckets the signed projection of a point onto
// the line at the fixed precision, so mirror partners hash to the same
// value.
func projectedDistanceKey(distBarycenter, angleToLine float64) int64 {
	return int64(math.Round(geom.PrecisionFactor * distBarycenter * math.Cos(angleToLine)))
}
