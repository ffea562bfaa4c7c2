package engine

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// ScoreUnused charges the penalty for every empty or resource cell. The
// Cathedral of Caterina waives it once built.
func ScoreUnused(g *board.Grid, cfg building.Config, ctx ScoringContext) Points {
	penalty := ctx.UnusedPenalty
	if cfg.Magenta == building.CathedralOfCaterina && g.Count(board.Magenta) > 0 {
		penalty = 0
	}

	out := Points{}
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i).IsUnused() {
			out[i] = penalty
		}
	}
	return out
}
