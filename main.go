// Command symmetry detects the reflective symmetry axes of a planar
// point set read from a CSV file, and reports them as fixed-precision
// direction labels plus drawable segments. Optional outputs: a PNG
// plot, an interactive HTML report, a JSON dump and an SQLite run
// archive.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/banshee-data/symmetry.report/internal/config"
	"github.com/banshee-data/symmetry.report/internal/db"
	"github.com/banshee-data/symmetry.report/internal/geom"
	"github.com/banshee-data/symmetry.report/internal/load"
	"github.com/banshee-data/symmetry.report/internal/monitoring"
	"github.com/banshee-data/symmetry.report/internal/pointset"
	"github.com/banshee-data/symmetry.report/internal/render"
	"github.com/banshee-data/symmetry.report/internal/report"
	"github.com/banshee-data/symmetry.report/internal/symmetry"
)

var (
	inputFile     = flag.String("input", "", "CSV file of x,y points (required unless -list)")
	configFile    = flag.String("config", "", "optional JSON config file")
	plotOutput    = flag.String("plot", "", "write a PNG plot to this path")
	reportOutput  = flag.String("report", "", "write an HTML report to this path")
	jsonOutput    = flag.String("json", "", "write the analysis as JSON to this path")
	dbPath        = flag.String("db", "", "archive the run in this SQLite database")
	migrationsDir = flag.String("migrations", "", "migrations directory (default from config)")
	withLabels    = flag.Bool("labels", false, "include point ID labels in the plot")
	noBarycenter  = flag.Bool("no-barycenter", false, "omit the barycenter marker from the plot")
	listRuns      = flag.Bool("list", false, "list archived runs from -db and exit")
	quiet         = flag.Bool("quiet", false, "suppress progress logging")
)

// analysis bundles everything one run produces.
type analysis struct {
	Source     string                      `json:"source"`
	PointCount int                         `json:"point_count"`
	ShellCount int                         `json:"shell_count"`
	Barycenter geom.Point2D                `json:"barycenter"`
	Radius     float64                     `json:"radius"`
	Directions []string                    `json:"directions"`
	Segments   map[string]symmetry.Segment `json:"segments"`
	DurationMs int64                       `json:"duration_ms"`

	set *pointset.Set
}

func main() {
	flag.Parse()

	if *quiet {
		monitoring.SetLogger(nil)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	applyFlagOverrides(cfg)

	if *listRuns {
		if cfg.DBPath == nil {
			log.Fatal("-list requires -db")
		}
		if err := printArchivedRuns(*cfg.DBPath, *cfg.MigrationsDir, *cfg.ListLimit); err != nil {
			log.Fatalf("list runs: %v", err)
		}
		return
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -input points.csv [flags]\n\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	result, err := runAnalysis(*inputFile)
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}
	printResult(result)

	if err := writeOutputs(result, cfg); err != nil {
		log.Fatalf("output failed: %v", err)
	}
}

// applyFlagOverrides lets explicit flags win over the config file.
func applyFlagOverrides(cfg *config.Config) {
	if *plotOutput != "" {
		cfg.PlotOutput = plotOutput
	}
	if *reportOutput != "" {
		cfg.ReportOutput = reportOutput
	}
	if *jsonOutput != "" {
		cfg.JSONOutput = jsonOutput
	}
	if *dbPath != "" {
		cfg.DBPath = dbPath
	}
	if *migrationsDir != "" {
		cfg.MigrationsDir = migrationsDir
	}
	if *withLabels {
		v := true
		cfg.IncludeLabels = &v
	}
	if *noBarycenter {
		v := false
		cfg.IncludeBarycenter = &v
	}
}

// runAnalysis loads, annotates and searches one input file. Any load
// or annotation failure aborts the run with no partial result.
func runAnalysis(path string) (*analysis, error) {
	coords, err := load.Points(path)
	if err != nil {
		return nil, err
	}
	monitoring.Logf("loaded %d points from %s", len(coords), path)

	set, err := pointset.New(coords)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate %s: %w", path, err)
	}

	start := time.Now()
	directions, segments := symmetry.Find(set)
	elapsed := time.Since(start)
	monitoring.Logf("found %d symmetry axes in %s", len(directions), elapsed)

	barycenter, err := set.Barycenter()
	if err != nil {
		return nil, err
	}
	radius, err := set.Radius()
	if err != nil {
		return nil, err
	}

	return &analysis{
		Source:     path,
		PointCount: set.Size(),
		ShellCount: shellCount(set),
		Barycenter: barycenter,
		Radius:     radius,
		Directions: directions,
		Segments:   segments,
		DurationMs: elapsed.Milliseconds(),
		set:        set,
	}, nil
}

func shellCount(set *pointset.Set) int {
	labels, err := set.ShellLabels()
	if err != nil {
		return 0
	}
	max := 0
	for _, l := range labels {
		if l > max {
			max = l
		}
	}
	return max
}

func printResult(result *analysis) {
	fmt.Printf("%s: %d points, %d shells, %d symmetry axes\n",
		result.Source, result.PointCount, result.ShellCount, len(result.Directions))
	for _, d := range result.Directions {
		seg := result.Segments[d]
		fmt.Printf("  %6s°  (%.4f, %.4f) -> (%.4f, %.4f)\n", d, seg[0].X, seg[0].Y, seg[1].X, seg[1].Y)
	}
}

func writeOutputs(result *analysis, cfg *config.Config) error {
	if cfg.PlotOutput != nil {
		opts := render.Options{
			IncludeLabels:     *cfg.IncludeLabels,
			IncludeBarycenter: *cfg.IncludeBarycenter,
		}
		if err := render.Plot(result.set, result.Segments, result.Directions, *cfg.PlotOutput, opts); err != nil {
			return err
		}
		monitoring.Logf("wrote plot to %s", *cfg.PlotOutput)
	}

	if cfg.ReportOutput != nil {
		f, err := os.Create(*cfg.ReportOutput)
		if err != nil {
			return fmt.Errorf("failed to create report %s: %w", *cfg.ReportOutput, err)
		}
		defer f.Close()
		if err := report.Write(f, result.set, result.Segments, result.Directions, result.Source); err != nil {
			return err
		}
		monitoring.Logf("wrote report to %s", *cfg.ReportOutput)
	}

	if cfg.JSONOutput != nil {
		if err := exportJSON(result, *cfg.JSONOutput); err != nil {
			return err
		}
		monitoring.Logf("wrote JSON to %s", *cfg.JSONOutput)
	}

	if cfg.DBPath != nil {
		runID, err := archiveRun(result, *cfg.DBPath, *cfg.MigrationsDir)
		if err != nil {
			return err
		}
		monitoring.Logf("archived run %s in %s", runID, *cfg.DBPath)
	}
	return nil
}

func exportJSON(result *analysis, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func archiveRun(result *analysis, path, migrations string) (string, error) {
	database, err := db.Open(path)
	if err != nil {
		return "", err
	}
	defer database.Close()

	if err := database.MigrateUp(migrations); err != nil {
		return "", err
	}
	return database.InsertRun(&db.SymmetryRun{
		Source:     result.Source,
		PointCount: result.PointCount,
		ShellCount: result.ShellCount,
		Directions: result.Directions,
		DurationMs: result.DurationMs,
	})
}

func printArchivedRuns(path, migrations string, limit int) error {
	database, err := db.Open(path)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.MigrateUp(migrations); err != nil {
		return err
	}
	runs, err := database.ListRuns(limit)
	if err != nil {
		return err
	}
	for _, run := range runs {
		fmt.Printf("%s  %s  points=%d shells=%d axes=%d\n",
			run.CreatedAt.Format(time.RFC3339), run.Source, run.PointCount, run.ShellCount, len(run.Directions))
	}
	return nil
}
