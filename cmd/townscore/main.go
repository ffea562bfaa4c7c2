// Package main provides the townscore CLI for scoring town files and sample towns.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/signalnine/townscore/batch"
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/boardgen"
	"github.com/signalnine/townscore/building"
	"github.com/signalnine/townscore/engine"
	"github.com/signalnine/townscore/render"
	"github.com/signalnine/townscore/townfile"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	townPath    string
	sample      string
	workers     int
	feedWorkers int
	jsonPath    string
	noColor     bool
	strictSize  bool
	logLevel    string
	logFormat   string
	showVersion bool
)

func init() {
	flag.StringVar(&townPath, "town", "", "Town file (HCL) to score")
	flag.StringVar(&sample, "sample", "", "Score a built-in town instead: an example name, 'all', or seed:N for a generated town")
	flag.IntVar(&workers, "workers", 0, "Towns scored in parallel (0 = auto-detect CPU count)")
	flag.IntVar(&feedWorkers, "feed-workers", 1, "Goroutines per fed-set search")
	flag.StringVar(&jsonPath, "json", "", "Write a JSON report to this file")
	flag.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&strictSize, "strict-size", false, "Reject town files with grids smaller than 3x3")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

// entry is one named town with the rules it is scored under.
type entry struct {
	town   townfile.Town
	other  *board.Grid
	config building.Config
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("townscore %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	log := newLogger(logLevel, logFormat, os.Stderr)
	runID := uuid.NewString()
	log = log.With("run_id", runID)

	entries, ctx, source, err := loadEntries(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printBanner(source, len(entries))

	scorer := engine.NewScorer(ctx)
	scorer.Workers = feedWorkers
	scorer.Logger = log

	jobs := make([]batch.Job, len(entries))
	for i, e := range entries {
		jobs[i] = batch.Job{Index: i, Town: e.town.Grid, Other: e.other, Config: e.config}
	}

	startTime := time.Now()
	results := batch.Run(jobs, scorer, workers)
	totalTime := time.Since(startTime)

	r := render.Renderer{NoColor: noColor}
	reports := make([]townfile.Report, len(results))
	for i, res := range results {
		e := entries[res.Index]
		fmt.Printf("Town %s (%dx%d)\n", e.town.Name, e.town.Grid.Rows(), e.town.Grid.Cols())
		if res.Err != nil {
			fmt.Printf("  error: %v\n\n", res.Err)
			log.Warn("town not scored", "town", e.town.Name, "error", res.Err)
		} else {
			if err := r.Town(os.Stdout, e.town.Grid, res.Card); err != nil {
				fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", e.town.Name, err)
			}
			fmt.Println()
		}
		reports[i] = townfile.NewReport(runID, e.town, e.config, res.Card, res.Err)
	}

	if jsonPath != "" {
		if err := townfile.WriteReport(jsonPath, reports); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
	}

	stats := batch.Aggregate(results)
	printSummary(stats, entries, totalTime)

	if stats.Errors > 0 {
		os.Exit(1)
	}
}

// loadEntries resolves -town or -sample into towns to score.
func loadEntries(log *slog.Logger) ([]entry, engine.ScoringContext, string, error) {
	ctx := engine.DefaultScoringContext()

	switch {
	case townPath != "" && sample != "":
		return nil, ctx, "", errors.New("-town and -sample are mutually exclusive")

	case townPath != "":
		opts := townfile.Options{Sizes: board.DefaultSizePolicy, Logger: log}
		if strictSize {
			opts.Sizes = board.StrictSizePolicy
		}
		f, err := townfile.Load(townPath, opts)
		if err != nil {
			return nil, ctx, "", err
		}
		entries := make([]entry, len(f.Towns))
		for i, t := range f.Towns {
			entries[i] = entry{town: t, other: f.Opponent(i), config: f.Config}
		}
		return entries, f.Scoring, townPath, nil

	case sample == "all":
		var entries []entry
		for _, ex := range boardgen.GetExamples() {
			entries = append(entries, fromExample(ex))
		}
		return entries, ctx, "all examples", nil

	case strings.HasPrefix(sample, "seed:"):
		seed, err := strconv.ParseInt(strings.TrimPrefix(sample, "seed:"), 10, 64)
		if err != nil {
			return nil, ctx, "", fmt.Errorf("invalid sample seed %q: %w", sample, err)
		}
		cfg := boardgen.DefaultGenConfig()
		cfg.Seed = seed
		t := townfile.Town{Name: sample, Grid: boardgen.Generate(cfg)}
		return []entry{{town: t, config: building.DefaultConfig()}}, ctx, "generated", nil

	case sample != "":
		ex, ok := boardgen.Lookup(sample)
		if !ok {
			return nil, ctx, "", fmt.Errorf("unknown sample %q (have %s, all, seed:N)",
				sample, strings.Join(boardgen.Names(), ", "))
		}
		return []entry{fromExample(ex)}, ctx, "example", nil
	}

	return nil, ctx, "", errors.New("one of -town or -sample is required")
}

func fromExample(ex boardgen.Example) entry {
	return entry{
		town:   townfile.Town{Name: ex.Name, Grid: ex.Town},
		other:  ex.Other,
		config: ex.Config,
	}
}

func printBanner(source string, towns int) {
	fmt.Println()
	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║                   Townscore Engine (Go)                    ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Source:         %s\n", source)
	fmt.Printf("  Towns:          %d\n", towns)
	fmt.Printf("  Workers:        %d (0=auto)\n", workers)
	fmt.Printf("  Feed Workers:   %d\n", feedWorkers)
	if jsonPath != "" {
		fmt.Printf("  Report:         %s\n", jsonPath)
	}
	fmt.Println()
}

func printSummary(stats batch.Stats, entries []entry, totalTime time.Duration) {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("                        SCORE SUMMARY")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("  Total Time:      %s\n", formatDuration(totalTime))
	fmt.Printf("  Towns:           %d\n", stats.TotalTowns)
	if stats.Errors > 0 {
		fmt.Printf("  Errors:          %d\n", stats.Errors)
	}

	if stats.BestIndex >= 0 {
		fmt.Printf("  Best Town:       %s (%d)\n", entries[stats.BestIndex].town.Name, stats.BestTotal)
		fmt.Printf("  Average Total:   %.2f\n", stats.AvgTotal)
		fmt.Printf("  Median Total:    %d\n", stats.MedianTotal)
		fmt.Printf("  Fed Sets Tried:  %s\n", humanize.Comma(int64(stats.TotalCandidates)))
	}

	fmt.Printf("  Avg Per Town:    %s\n", time.Duration(stats.AvgDurationNs))
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", m, s)
}
