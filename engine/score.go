package engine

import (
	"log/slog"

	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
	"github.com/signalnine/townscore/feed"
)

// Scorer scores towns with one rule table. Workers > 1 spreads the fed-set
// search over goroutines; results are identical either way.
type Scorer struct {
	Context ScoringContext
	Workers int
	Logger  *slog.Logger
}

// NewScorer returns a serial scorer for ctx.
func NewScorer(ctx ScoringContext) *Scorer {
	return &Scorer{Context: ctx}
}

// Score runs Scorer.Score with a serial scorer.
func Score(g *board.Grid, cfg building.Config, ctx ScoringContext, other *board.Grid) *ScoreCard {
	return NewScorer(ctx).Score(g, cfg, other)
}

// FeedObjective is what the fed-set search maximizes: the blue, orange and
// magenta totals with fed as the fed set.
func FeedObjective(g *board.Grid, cfg building.Config, ctx ScoringContext) feed.Objective {
	return func(fed board.IndexSet) int {
		return ScoreBlue(g, cfg, ctx, fed).Total() +
			ScoreOrange(g, cfg, ctx, fed).Total() +
			ScoreMagenta(g, cfg, ctx, fed).Total()
	}
}

// Score feeds the town once and scores every color plus the unused cells.
// other is the opposing town; it is only read by feast halls and may be nil
// otherwise.
func (s *Scorer) Score(g *board.Grid, cfg building.Config, other *board.Grid) *ScoreCard {
	ctx := s.Context
	res := feed.Feed(g, cfg, FeedObjective(g, cfg, ctx), feed.Options{
		Workers: s.Workers,
		Logger:  s.Logger,
	})

	card := &ScoreCard{
		fed:        res.Fed,
		candidates: res.Candidates,
	}
	card.colors[board.Black] = ScoreBlack(g, cfg, ctx)
	card.colors[board.Blue] = ScoreBlue(g, cfg, ctx, res.Fed)
	card.colors[board.Gray] = ScoreGray(g, cfg, ctx)
	card.colors[board.Green] = ScoreGreen(g, cfg, ctx, other)
	card.colors[board.Magenta] = ScoreMagenta(g, cfg, ctx, res.Fed)
	card.colors[board.Orange] = ScoreOrange(g, cfg, ctx, res.Fed)
	card.colors[board.Red] = ScoreRed(g, cfg, ctx)
	card.colors[board.Yellow] = ScoreYellow(g, cfg, ctx)
	card.unused = ScoreUnused(g, cfg, ctx)
	return card
}

// ScoreRed lists the feeders. They earn nothing themselves.
func ScoreRed(g *board.Grid, cfg building.Config, ctx ScoringContext) Points {
	return PerEach(g, board.Red, 0)
}
