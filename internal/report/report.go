// Package report renders a self-contained interactive HTML view of an
// analysis: the point scatter with a shell-indexed visual map and one
// overlaid line per symmetry axis.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/symmetry.report/internal/pointset"
	"github.com/banshee-data/symmetry.report/internal/symmetry"
)

// Write renders the HTML report for one analysis to w. axisOrder fixes
// the series order; source names the input in the chart subtitle.
func Write(w io.Writer, set *pointset.Set, segments map[string]symmetry.Segment, axisOrder []string, source string) error {
	barycenter, err := set.Barycenter()
	if err != nil {
		return err
	}
	radius, err := set.Radius()
	if err != nil {
		return err
	}
	pad := radius * 1.1
	if pad == 0 {
		pad = 1
	}

	maxShell := 0
	data := make([]opts.ScatterData, 0, set.Size())
	for _, p := range set.Points() {
		if p.Shell > maxShell {
			maxShell = p.Shell
		}
		data = append(data, opts.ScatterData{Value: []interface{}{p.Location.X, p.Location.Y, p.Shell}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Symmetry Report", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Point Set Symmetry",
			Subtitle: fmt.Sprintf("source=%s points=%d shells=%d axes=%d", source, set.Size(), maxShell, len(axisOrder)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: barycenter.X - pad, Max: barycenter.X + pad, Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: barycenter.Y - pad, Max: barycenter.Y + pad, Name: "y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        1,
			Max:        float32(maxShell),
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#3e4989", "#26828e", "#35b779", "#b5de2b", "#fde725"}},
		}),
	)
	scatter.AddSeries("points", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	for _, label := range axisOrder {
		seg, ok := segments[label]
		if !ok {
			continue
		}
		line := charts.NewLine()
		line.AddSeries(label, []opts.LineData{
			{Value: []interface{}{seg[0].X, seg[0].Y}},
			{Value: []interface{}{seg[1].X, seg[1].Y}},
		})
		scatter.Overlap(line)
	}

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
