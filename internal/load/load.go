// Package load reads raw point coordinates from comma-delimited text
// files. It owns file access and parse validation; the core consumes
// only the resulting coordinate slice.
package load

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/banshee-data/symmetry.report/internal/geom"
)

// Points reads (x, y) rows from path. Blank rows are skipped; a row
// with fewer than two fields, or a non-numeric field, aborts the load.
// Extra fields beyond the first two are ignored.
func Points(path string) ([]geom.Point2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to extract coordinates from %s: %w", path, err)
	}

	points := make([]geom.Point2D, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		if len(row) < 2 {
			return nil, fmt.Errorf("missing x,y coordinates in %s row %d: %v", path, i+1, row)
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("bad x value in %s row %d: %w", path, i+1, err)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad y value in %s row %d: %w", path, i+1, err)
		}
		points = append(points, geom.Point2D{X: x, Y: y})
	}
	return points, nil
}
