// Package render draws an annotated point set and its symmetry axes to
// a PNG for visual inspection: one scatter per shell, one line per
// axis, optionally the barycenter marker and per-point ID labels.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/symmetry.report/internal/pointset"
	"github.com/banshee-data/symmetry.report/internal/symmetry"
)

// Options controls the optional plot decorations.
type Options struct {
	IncludeLabels     bool // annotate each point with its ID
	IncludeBarycenter bool // mark the barycenter in black
}

// shellPalette cycles per shell label, mirroring the classic
// blue/green/red/cyan/magenta/yellow/black sequence.
var shellPalette = []color.RGBA{
	{B: 255, A: 255},
	{G: 160, A: 255},
	{R: 255, A: 255},
	{G: 200, B: 200, A: 255},
	{R: 200, B: 200, A: 255},
	{R: 220, G: 200, A: 255},
	{A: 255},
}

// ShellColor returns the plot color for a shell label.
func ShellColor(shell int) color.RGBA {
	return shellPalette[shell%len(shellPalette)]
}

// Plot writes a scatter of points colored by shell plus the given axis
// segments to outPath as a PNG. axisOrder fixes the drawing order of
// the segments.
func Plot(set *pointset.Set, segments map[string]symmetry.Segment, axisOrder []string, outPath string, opts Options) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("symmetry axes: %d", len(segments))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	byShell := make(map[int]plotter.XYs)
	var shells []int
	for _, pnt := range set.Points() {
		if _, ok := byShell[pnt.Shell]; !ok {
			shells = append(shells, pnt.Shell)
		}
		byShell[pnt.Shell] = append(byShell[pnt.Shell], plotter.XY{X: pnt.Location.X, Y: pnt.Location.Y})
	}
	for _, shell := range shells {
		sc, err := plotter.NewScatter(byShell[shell])
		if err != nil {
			return fmt.Errorf("failed to build scatter for shell %d: %w", shell, err)
		}
		sc.GlyphStyle.Color = ShellColor(shell)
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
	}

	for _, label := range axisOrder {
		seg, ok := segments[label]
		if !ok {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: seg[0].X, Y: seg[0].Y},
			{X: seg[1].X, Y: seg[1].Y},
		})
		if err != nil {
			return fmt.Errorf("failed to build line for axis %s: %w", label, err)
		}
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(label, line)
	}

	if opts.IncludeBarycenter {
		b, err := set.Barycenter()
		if err != nil {
			return err
		}
		sc, err := plotter.NewScatter(plotter.XYs{{X: b.X, Y: b.Y}})
		if err != nil {
			return fmt.Errorf("failed to build barycenter marker: %w", err)
		}
		sc.GlyphStyle.Color = color.RGBA{A: 255}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
	}

	if opts.IncludeLabels {
		xys := make(plotter.XYs, 0, set.Size())
		names := make([]string, 0, set.Size())
		for _, pnt := range set.Points() {
			xys = append(xys, plotter.XY{X: pnt.Location.X, Y: pnt.Location.Y})
			names = append(names, pnt.ID)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return fmt.Errorf("failed to build point labels: %w", err)
		}
		p.Add(labels)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, outPath); err != nil {
		return fmt.Errorf("failed to save plot to %s: %w", outPath, err)
	}
	return nil
}
