// Package pointset annotates a raw list of 2D coordinates with the
// derived attributes the symmetry search consumes: a barycenter, a set
// radius, per-point distances and shell labels. A Set is built once and
// read-only afterwards.
package pointset

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/symmetry.report/internal/geom"
)

var (
	// ErrEmptyInput is returned when construction is attempted from an
	// empty coordinate sequence. No partial Set is produced.
	ErrEmptyInput = errors.New("pointset: empty coordinate sequence")

	// ErrEmptySet guards derived-attribute accessors on an empty Set.
	// Unreachable through New, but part of the public contract.
	ErrEmptySet = errors.New("pointset: point set is empty")
)

// Point is one annotated input coordinate. Shell groups points whose
// distances to the barycenter match within geom.Epsilon; labels start
// at 1 on the farthest point and grow inwards.
type Point struct {
	ID             string
	Location       geom.Point2D
	Shell          int
	DistBarycenter float64
}

// Set is an insertion-ordered collection of annotated points plus the
// set-level barycenter and radius. The radius equals the largest
// per-point distance to the barycenter.
type Set struct {
	points     []Point
	barycenter geom.Point2D
	radius     float64
}

// New annotates coords: sequential string IDs in input order, barycenter
// as the coordinate-wise mean, Euclidean distances, and shell labels
// assigned by walking the points in descending-distance order and
// bumping the label whenever two adjacent distances differ by more than
// geom.Epsilon. The adjacent comparison chains: a run of just-under-
// threshold steps keeps a single label even when the total spread
// exceeds the tolerance. That behaviour is a fixed contract.
func New(coords []geom.Point2D) (*Set, error) {
	if len(coords) == 0 {
		return nil, ErrEmptyInput
	}

	s := &Set{points: make([]Point, len(coords))}

	xs := make([]float64, len(coords))
	ys := make([]float64, len(coords))
	for i, c := range coords {
		s.points[i] = Point{ID: strconv.Itoa(i), Location: c}
		xs[i] = c.X
		ys[i] = c.Y
	}
	s.barycenter = geom.Point2D{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}

	for i := range s.points {
		s.points[i].DistBarycenter = s.points[i].Location.Sub(s.barycenter).R()
	}

	// Walk indices in descending-distance order; ties keep input order.
	order := make([]int, len(s.points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return s.points[order[a]].DistBarycenter > s.points[order[b]].DistBarycenter
	})

	s.radius = s.points[order[0]].DistBarycenter

	// The previous distance advances on every step, so membership chains
	// through adjacent deltas rather than comparing against one reference
	// distance per shell.
	shell := 1
	prev := s.points[order[0]].DistBarycenter
	for _, idx := range order {
		d := s.points[idx].DistBarycenter
		if math.Abs(prev-d) > geom.Epsilon {
			shell++
		}
		prev = d
		s.points[idx].Shell = shell
	}

	return s, nil
}

// Size returns the number of points.
func (s *Set) Size() int {
	return len(s.points)
}

// Points returns the annotated points in input order. The slice is
// shared; callers must not mutate it.
func (s *Set) Points() []Point {
	return s.points
}

// Barycenter returns the arithmetic mean location of the set.
func (s *Set) Barycenter() (geom.Point2D, error) {
	if len(s.points) == 0 {
		return geom.Point2D{}, ErrEmptySet
	}
	return s.barycenter, nil
}

// Radius returns the maximum point-to-barycenter distance.
func (s *Set) Radius() (float64, error) {
	if len(s.points) == 0 {
		return 0, ErrEmptySet
	}
	return s.radius, nil
}

// IDs returns the point identifiers in input order.
func (s *Set) IDs() ([]string, error) {
	if len(s.points) == 0 {
		return nil, ErrEmptySet
	}
	ids := make([]string, len(s.points))
	for i, p := range s.points {
		ids[i] = p.ID
	}
	return ids, nil
}

// ShellLabels returns the per-point shell labels in input order.
func (s *Set) ShellLabels() ([]int, error) {
	if len(s.points) == 0 {
		return nil, ErrEmptySet
	}
	labels := make([]int, len(s.points))
	for i, p := range s.points {
		labels[i] = p.Shell
	}
	return labels, nil
}
