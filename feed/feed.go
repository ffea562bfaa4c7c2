// Package feed decides which buildings of a town are fed. Granaries and
// orchards feed by position; farms and greenhouses leave a choice, and the
// engine picks the candidate set that scores best.
package feed

import (
	"log/slog"

	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// FarmCapacity is how many buildings one farm feeds.
const FarmCapacity = 4

// Objective scores a candidate fed set. It must be safe for concurrent use.
type Objective func(fed board.IndexSet) int

// Options tune the candidate search.
type Options struct {
	// Workers > 1 scores candidates on that many goroutines.
	Workers int
	Logger  *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Result is the chosen fed set and how it was found.
type Result struct {
	Fed        board.IndexSet
	Score      int
	Candidates int
}

// FeedableColors returns the colors that can be fed under cfg.
func FeedableColors(cfg building.Config) board.ColorSet {
	set := board.NewColorSet(board.Blue)
	if cfg.Magenta == building.BarrettCastle {
		set = set.Add(board.Magenta)
	}
	return set
}

// IsFeedable reports whether cell holds a building that can be fed.
func IsFeedable(cell board.Cell, cfg building.Config) bool {
	c, ok := cell.Color()
	return ok && FeedableColors(cfg).Has(c)
}

// Feedable returns the feedable indices in row-major order.
func Feedable(g *board.Grid, cfg building.Config) []int {
	return g.Indices(FeedableColors(cfg))
}

// Feed picks the fed set for g according to the configured feeder.
func Feed(g *board.Grid, cfg building.Config, objective Objective, opts Options) Result {
	var res Result
	switch cfg.Red {
	case building.Farm:
		res = Best(FarmCandidates(g, cfg), objective, opts)
	case building.Granary:
		res = fixed(FeedGranaries(g, cfg), objective)
	case building.Greenhouse:
		res = Best(GreenhouseCandidates(g, cfg), objective, opts)
	case building.Orchard:
		res = fixed(FeedOrchards(g, cfg), objective)
	default:
		panic("feed: unknown red variant " + cfg.Red.String())
	}

	opts.logger().Debug("fed buildings chosen",
		"feeder", cfg.Red.String(),
		"fed", res.Fed.Sorted(),
		"score", res.Score,
		"candidates", res.Candidates,
	)
	return res
}

func fixed(fed board.IndexSet, objective Objective) Result {
	res := Result{Fed: fed}
	if objective != nil {
		res.Score = objective(fed)
	}
	return res
}
