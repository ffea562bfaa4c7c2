// Package batch scores many independent towns on a worker pool.
package batch

import (
	"sort"
	"time"

	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
	"github.com/signalnine/townscore/engine"
)

// Job is one town to score. Other is the opposing town read by feast halls.
type Job struct {
	Index  int
	Town   *board.Grid
	Other  *board.Grid
	Config building.Config
}

// Result holds the score card for Jobs[Index], or the contract violation
// that stopped it.
type Result struct {
	Index      int
	Card       *engine.ScoreCard
	Err        error
	DurationNs uint64
}

// Stats aggregates a batch of results.
type Stats struct {
	TotalTowns      uint32
	Errors          uint32
	BestIndex       int // -1 = no successful town
	BestTotal       int
	AvgTotal        float32
	MedianTotal     int
	TotalCandidates uint64
	AvgDurationNs   uint64
}

// ScoreOne scores a single job on the calling goroutine.
func ScoreOne(scorer *engine.Scorer, job Job) (res Result) {
	res.Index = job.Index
	start := time.Now()
	defer func() {
		res.DurationNs = uint64(time.Since(start).Nanoseconds())
		if r := recover(); r != nil {
			res.Card = nil
			res.Err = panicError(r)
		}
	}()

	res.Card = scorer.Score(job.Town, job.Config, job.Other)
	return res
}

// Aggregate computes summary statistics over results.
func Aggregate(results []Result) Stats {
	stats := Stats{
		TotalTowns: uint32(len(results)),
		BestIndex:  -1,
	}

	totals := make([]int, 0, len(results))
	totalDuration := uint64(0)

	for _, result := range results {
		totalDuration += result.DurationNs
		if result.Err != nil {
			stats.Errors++
			continue
		}

		total := result.Card.Total()
		if stats.BestIndex < 0 || total > stats.BestTotal {
			stats.BestIndex = result.Index
			stats.BestTotal = total
		}
		totals = append(totals, total)
		stats.TotalCandidates += uint64(result.Card.Candidates())
	}

	if len(totals) > 0 {
		sum := 0
		for _, t := range totals {
			sum += t
		}
		stats.AvgTotal = float32(sum) / float32(len(totals))
		stats.MedianTotal = median(totals)
	}

	if stats.TotalTowns > 0 {
		stats.AvgDurationNs = totalDuration / uint64(stats.TotalTowns)
	}

	return stats
}

// median returns the lower median of values.
func median(values []int) int {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	return sorted[(len(sorted)-1)/2]
}
