package symmetry

import (
	"math"
	"testing"

	"github.com/banshee-data/symmetry.report/internal/geom"
	"github.com/banshee-data/symmetry.report/internal/pointset"
)

func pt(x, y float64) pointset.Point {
	loc := geom.Point2D{X: x, Y: y}
	return pointset.Point{Location: loc, DistBarycenter: loc.R()}
}

func TestIsAligned(t *testing.T) {
	origin := geom.Point2D{}
	horizontal := geom.Point2D{X: 1, Y: 0}

	cases := []struct {
		name string
		p    pointset.Point
		want bool
	}{
		{"on the line, positive side", pt(2, 0), true},
		{"on the line, negative side", pt(-3, 0), true},
		{"perpendicular", pt(0, 1), false},
		{"oblique", pt(1, 1), false},
		{"barycenter-coincident", pt(0, 0), true},
		{"just off the line", pt(1, 2 * geom.Epsilon), false},
		{"within tolerance", pt(1, geom.Epsilon / 100), true},
	}
	for _, c := range cases {
		if got := IsAligned(c.p, horizontal, origin); got != c.want {
			t.Errorf("%s: IsAligned = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsAlignedOppositeSense(t *testing.T) {
	// Alignment must hold for angles congruent to π as well as 0, on
	// both sides of the boundary.
	origin := geom.Point2D{}
	line := geom.FromPolar(1, math.Pi/3)
	for _, da := range []float64{0, math.Pi, -math.Pi, geom.Epsilon / 3, math.Pi - geom.Epsilon/3} {
		p := pointset.Point{Location: geom.FromPolar(2, math.Pi/3+da), DistBarycenter: 2}
		if !IsAligned(p, line, origin) {
			t.Errorf("point at Δa=%v not aligned", da)
		}
	}
}

func TestIsShellSymmetricMirroredPair(t *testing.T) {
	origin := geom.Point2D{}
	shell := []pointset.Point{pt(1, 1), pt(1, -1)}

	horizontal := geom.Point2D{X: 1, Y: 0}
	if !IsShellSymmetric(shell, horizontal, origin) {
		t.Errorf("horizontal axis should reflect the mirrored pair")
	}

	vertical := geom.Point2D{X: 0, Y: 1}
	if IsShellSymmetric(shell, vertical, origin) {
		t.Errorf("the vertical axis maps (1,1) to (-1,1), which is absent")
	}

	oblique := geom.FromPolar(1, math.Pi/5)
	if IsShellSymmetric(shell, oblique, origin) {
		t.Errorf("oblique axis should not reflect the pair")
	}
}

func TestIsShellSymmetricOnAxisPointsExcluded(t *testing.T) {
	origin := geom.Point2D{}
	// Two points on the axis plus a mirrored pair across it.
	shell := []pointset.Point{pt(2, 0), pt(-2, 0), pt(math.Sqrt2, math.Sqrt2), pt(math.Sqrt2, -math.Sqrt2)}
	horizontal := geom.Point2D{X: 1, Y: 0}
	if !IsShellSymmetric(shell, horizontal, origin) {
		t.Errorf("on-axis points must drop out of the pairing count")
	}
}

func TestIsShellSymmetricBarycenterPointExcluded(t *testing.T) {
	origin := geom.Point2D{}
	shell := []pointset.Point{pt(0, 0), pt(1, 1), pt(1, -1)}
	horizontal := geom.Point2D{X: 1, Y: 0}
	if !IsShellSymmetric(shell, horizontal, origin) {
		t.Errorf("a barycenter-coincident point must contribute nothing")
	}
}

func TestIsShellSymmetricDenseRing(t *testing.T) {
	// Neighbouring projections on a 36-vertex ring are as close as
	// 1-cos(10°) ≈ 0.015; the projection buckets must keep them apart
	// while still collapsing exact mirror partners.
	origin := geom.Point2D{}
	shell := make([]pointset.Point, 0, 36)
	for i := 0; i < 36; i++ {
		loc := geom.FromPolar(1, 2*math.Pi*float64(i)/36)
		shell = append(shell, pointset.Point{Location: loc, DistBarycenter: 1})
	}

	if !IsShellSymmetric(shell, geom.Point2D{X: 1, Y: 0}, origin) {
		t.Errorf("the x axis must reflect the ring onto itself")
	}
	if IsShellSymmetric(shell, geom.FromPolar(1, math.Pi/36+0.02), origin) {
		t.Errorf("a direction off every mirror axis must fail the pairing test")
	}
}

func TestIsShellSymmetricUnpairedPoint(t *testing.T) {
	origin := geom.Point2D{}
	shell := []pointset.Point{pt(1, 1), pt(1, -1), pt(-math.Sqrt2, 0.05)}
	horizontal := geom.Point2D{X: 1, Y: 0}
	if IsShellSymmetric(shell, horizontal, origin) {
		t.Errorf("an off-axis point without a mirror partner must fail the test")
	}
}
