package symmetry

import (
	"math"

	"github.com/banshee-data/symmetry.report/internal/geom"
	"github.com/banshee-data/symmetry.report/internal/pointset"
)

// Segment is the drawable extent of one symmetry axis: the barycenter
// offset by ±radius along the axis direction.
type Segment [2]geom.Point2D

// Find locates every reflective symmetry axis of the annotated set. It
// returns the canonical direction labels in the order the axes were
// confirmed, and one Segment per label for downstream rendering.
//
// Candidates come from two passes. Pass one tests the line through the
// barycenter and each non-central point. Pass two, run only when the
// total point count is even, tests the bisector of every pair within
// each multi-member shell; some axes pass between two mirrored points
// and are reachable no other way. The even-count gate is a fixed
// contract.
//
// Each confirmed axis triggers a closure step before it is recorded:
// reflection axes of a figure compose under the dihedral group, so two
// confirmed axes algebraically determine further ones. Those derived
// directions are recorded as confirmed without re-validation, which
// collapses highly symmetric inputs from O(axes²) validations to
// O(axes) validations plus cheap compositions.
func Find(set *pointset.Set) ([]string, map[string]Segment) {
	barycenter, err := set.Barycenter()
	if err != nil {
		// Contract: Find requires a successfully constructed, non-empty set.
		return nil, nil
	}
	radius, _ := set.Radius()

	lines := NewLineSet()
	shells := partitionByShell(set.Points())

	// Pass 1: point-to-barycenter candidate lines.
	for _, p := range set.Points() {
		if p.Location.Sub(barycenter).R() < geom.Epsilon {
			continue
		}
		line := barycenter.Sub(p.Location)
		if lines.Contains(line, true) {
			continue
		}
		symmetric := isSymmetric(shells, line, barycenter)
		if symmetric {
			inferNextSymmetric(lines, line)
		}
		lines.Add(line, symmetric)
	}

	// Pass 2: pairwise bisectors within each multi-member shell.
	if set.Size()%2 == 0 {
		for _, shell := range shells {
			if len(shell) == 1 {
				continue
			}
			for i := 0; i < len(shell); i++ {
				for j := i + 1; j < len(shell); j++ {
					line := BisectorLine(shell[i].Location, shell[j].Location, barycenter)
					if lines.Contains(line, true) {
						continue
					}
					symmetric := isSymmetric(shells, line, barycenter)
					if symmetric {
						inferNextSymmetric(lines, line)
					}
					lines.Add(line, symmetric)
				}
			}
		}
	}

	keys := lines.SymmetricDirections()
	labels := make([]string, len(keys))
	segments := make(map[string]Segment, len(keys))
	for i, key := range keys {
		labels[i] = key.String()
		direction, _ := lines.Line(key)
		segments[labels[i]] = axisSegment(barycenter, radius, direction)
	}
	return labels, segments
}

// partitionByShell groups points by shell label. Groups appear in
// first-occurrence order and preserve input order within each group.
func partitionByShell(points []pointset.Point) [][]pointset.Point {
	index := make(map[int]int)
	var shells [][]pointset.Point
	for _, p := range points {
		i, ok := index[p.Shell]
		if !ok {
			i = len(shells)
			index[p.Shell] = i
			shells = append(shells, nil)
		}
		shells[i] = append(shells[i], p)
	}
	return shells
}

// isSymmetric checks a candidate line against every shell. A singleton
// shell has no partner at its distance, so its point can only survive
// the reflection by lying on the axis itself; multi-member shells must
// pass the projection-pairing test.
func isSymmetric(shells [][]pointset.Point, line, barycenter geom.Point2D) bool {
	for _, shell := range shells {
		if len(shell) > 1 {
			continue
		}
		if !IsAligned(shell[0], line, barycenter) {
			return false
		}
	}
	for _, shell := range shells {
		if len(shell) == 1 {
			continue
		}
		if !IsShellSymmetric(shell, line, barycenter) {
			return false
		}
	}
	return true
}

// inferNextSymmetric derives further confirmed axes from newLine and
// every axis confirmed so far: reflecting one confirmed axis across
// another yields a third. Derived directions whose key is already
// recorded on either side are left alone; the rest are confirmed
// directly, skipping validation.
func inferNextSymmetric(lines *LineSet, newLine geom.Point2D) {
	seen := make(map[DirectionKey]struct{})
	var derived []geom.Point2D

	for _, existing := range lines.SymmetricLines() {
		step := existing.A() - newLine.A()

		fromNew := geom.FromPolar(1, geom.Mod(newLine.A()-step, math.Pi))
		if key := LineKey(fromNew); !containsKey(seen, key) {
			seen[key] = struct{}{}
			derived = append(derived, fromNew)
		}

		fromExisting := geom.FromPolar(1, geom.Mod(existing.A()+step, math.Pi))
		if key := LineKey(fromExisting); !containsKey(seen, key) {
			seen[key] = struct{}{}
			derived = append(derived, fromExisting)
		}
	}

	for _, line := range derived {
		if !lines.Contains(line, true) {
			lines.Add(line, true)
		}
	}
}

func containsKey(set map[DirectionKey]struct{}, key DirectionKey) bool {
	_, ok := set[key]
	return ok
}

// BisectorLine builds the candidate axis separating points a and b: the
// line from their midpoint through the barycenter. When the midpoint
// coincides with the barycenter the direction degenerates, and the axis
// must instead run perpendicular to the segment joining the pair,
// reduced modulo π.
func BisectorLine(a, b, barycenter geom.Point2D) geom.Point2D {
	mid := a.Add(b).Scale(0.5)
	if barycenter.Sub(mid).R() < geom.Epsilon {
		return geom.FromPolar(1, geom.Mod(b.Sub(a).A()+math.Pi/2, math.Pi))
	}
	return barycenter.Sub(mid)
}

// axisSegment is the drawable segment barycenter ± radius along the
// axis direction.
func axisSegment(barycenter geom.Point2D, radius float64, direction geom.Point2D) Segment {
	a := direction.A()
	offset := geom.Point2D{X: math.Cos(a) * radius, Y: math.Sin(a) * radius}
	return Segment{barycenter.Add(offset), barycenter.Sub(offset)}
}
