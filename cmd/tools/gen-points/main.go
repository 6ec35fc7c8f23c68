// Command gen-points writes CSV point sets for exercising the symmetry
// analyzer: regular polygons, and multi-ring compositions built by
// rotating a collinear base through equal steps (which yields exactly
// one reflection axis per step).
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
)

var (
	shape    = flag.String("shape", "polygon", "shape to generate: polygon or rotation")
	vertices = flag.Int("n", 8, "polygon vertex count")
	radius   = flag.Float64("radius", 1.0, "polygon radius")
	rings    = flag.Int("rings", 100, "ring count for the rotation shape")
	steps    = flag.Int("steps", 100, "rotation step count")
	output   = flag.String("out", "", "output CSV path (default: stdout)")
	originX  = flag.Float64("cx", 0, "center x")
	originY  = flag.Float64("cy", 0, "center y")
)

func main() {
	flag.Parse()

	var rows [][2]float64
	switch *shape {
	case "polygon":
		rows = polygon(*vertices, *radius)
	case "rotation":
		rows = rotation(*rings, *steps)
	default:
		log.Fatalf("unknown shape %q (want polygon or rotation)", *shape)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("failed to create %s: %v", *output, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	for _, row := range rows {
		record := []string{
			strconv.FormatFloat(row[0]+*originX, 'g', -1, 64),
			strconv.FormatFloat(row[1]+*originY, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			log.Fatalf("failed to write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("failed to flush output: %v", err)
	}
	if *output != "" {
		fmt.Fprintf(os.Stderr, "wrote %d points to %s\n", len(rows), *output)
	}
}

// polygon returns the vertices of a regular n-gon, first vertex on the
// positive x axis.
func polygon(n int, r float64) [][2]float64 {
	rows := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		rows = append(rows, [2]float64{r * math.Cos(a), r * math.Sin(a)})
	}
	return rows
}

// rotation places one point per ring on the positive x axis and spins
// that base through the given number of equal steps.
func rotation(rings, steps int) [][2]float64 {
	rows := make([][2]float64, 0, rings*steps)
	for s := 0; s < steps; s++ {
		a := 2 * math.Pi * float64(s) / float64(steps)
		for r := 1; r <= rings; r++ {
			rows = append(rows, [2]float64{float64(r) * math.Cos(a), float64(r) * math.Sin(a)})
		}
	}
	return rows
}
