package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/banshee-data/symmetry.report/internal/geom"
	"github.com/banshee-data/symmetry.report/internal/pointset"
	"github.com/banshee-data/symmetry.report/internal/symmetry"
)

func TestWriteProducesHTML(t *testing.T) {
	set, err := pointset.New([]geom.Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}})
	if err != nil {
		t.Fatalf("pointset.New: %v", err)
	}
	labels, segments := symmetry.Find(set)

	var buf bytes.Buffer
	if err := Write(&buf, set, segments, labels, "pair.csv"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "echarts") {
		t.Errorf("report does not reference echarts")
	}
	for _, label := range labels {
		if !strings.Contains(html, label) {
			t.Errorf("report missing axis series %q", label)
		}
	}
	if !strings.Contains(html, "pair.csv") {
		t.Errorf("report missing source name in subtitle")
	}
}
