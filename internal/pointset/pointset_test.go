package pointset

import (
	"errors"
	"math"
	"testing"

	"github.com/banshee-data/symmetry.report/internal/geom"
)

func TestNewEmptyInput(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("New(nil) err = %v, want ErrEmptyInput", err)
	}
	if _, err := New([]geom.Point2D{}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("New(empty) err = %v, want ErrEmptyInput", err)
	}
}

func TestBarycenterAndRadius(t *testing.T) {
	s, err := New([]geom.Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b, err := s.Barycenter()
	if err != nil {
		t.Fatalf("Barycenter: %v", err)
	}
	if math.Abs(b.X-1) > 1e-12 || math.Abs(b.Y) > 1e-12 {
		t.Errorf("barycenter = %+v, want (1,0)", b)
	}

	r, err := s.Radius()
	if err != nil {
		t.Fatalf("Radius: %v", err)
	}
	if math.Abs(r-1) > 1e-12 {
		t.Errorf("radius = %v, want 1", r)
	}
}

func TestRadiusIsMaxDistance(t *testing.T) {
	s, err := New([]geom.Point2D{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 5}, {X: 0, Y: -5}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, _ := s.Radius()
	attained := false
	for _, p := range s.Points() {
		if p.DistBarycenter > r+1e-12 {
			t.Errorf("point %s distance %v exceeds radius %v", p.ID, p.DistBarycenter, r)
		}
		if math.Abs(p.DistBarycenter-r) < 1e-12 {
			attained = true
		}
	}
	if !attained {
		t.Errorf("radius %v not attained by any point", r)
	}
}

func TestIDsSequentialInInputOrder(t *testing.T) {
	s, err := New([]geom.Point2D{{X: 3, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ids, err := s.IDs()
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	want := []string{"0", "1", "2"}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, id, want[i])
		}
	}
}

func TestShellLabelsGroupEqualDistances(t *testing.T) {
	// Unit square: all four corners equidistant from the center.
	s, err := New([]geom.Point2D{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	labels, err := s.ShellLabels()
	if err != nil {
		t.Fatalf("ShellLabels: %v", err)
	}
	for i, l := range labels {
		if l != 1 {
			t.Errorf("labels[%d] = %d, want 1", i, l)
		}
	}
}

func TestShellLabelsSeparateDistinctDistances(t *testing.T) {
	// Two rings around the origin plus the center point.
	s, err := New([]geom.Point2D{
		{X: 2, Y: 0}, {X: -2, Y: 0},
		{X: 1, Y: 0}, {X: -1, Y: 0},
		{X: 0, Y: 0},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	labels, _ := s.ShellLabels()
	want := []int{1, 1, 2, 2, 3}
	for i, l := range labels {
		if l != want[i] {
			t.Errorf("labels[%d] = %d, want %d", i, l, want[i])
		}
	}
}

func TestShellChainsThroughAdjacentDeltas(t *testing.T) {
	// Distances step down by slightly less than Epsilon each time, so the
	// whole chain shares one shell even though the total spread is well
	// over the tolerance.
	step := geom.Epsilon * 0.9
	coords := make([]geom.Point2D, 0, 8)
	// Mirror pairs keep the barycenter at the origin.
	for i := 0; i < 4; i++ {
		r := 10 - float64(i)*step
		coords = append(coords, geom.Point2D{X: r, Y: 0}, geom.Point2D{X: -r, Y: 0})
	}
	s, err := New(coords)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	labels, _ := s.ShellLabels()
	for i, l := range labels {
		if l != 1 {
			t.Errorf("labels[%d] = %d, want 1 (chained shell)", i, l)
		}
	}
}

func TestEmptySetAccessors(t *testing.T) {
	var s Set
	if _, err := s.Barycenter(); !errors.Is(err, ErrEmptySet) {
		t.Errorf("Barycenter err = %v, want ErrEmptySet", err)
	}
	if _, err := s.Radius(); !errors.Is(err, ErrEmptySet) {
		t.Errorf("Radius err = %v, want ErrEmptySet", err)
	}
	if _, err := s.IDs(); !errors.Is(err, ErrEmptySet) {
		t.Errorf("IDs err = %v, want ErrEmptySet", err)
	}
	if _, err := s.ShellLabels(); !errors.Is(err, ErrEmptySet) {
		t.Errorf("ShellLabels err = %v, want ErrEmptySet", err)
	}
}
