package engine

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// ScoreGray scores gray buildings under the configured variant.
func ScoreGray(g *board.Grid, cfg building.Config, ctx ScoringContext) Points {
	switch cfg.Gray {
	case building.Fountain:
		return scoreFountains(g, ctx)
	case building.Millstone:
		return IfAdjacentTo(g, board.Gray, board.NewColorSet(board.Red, board.Yellow), ctx.MillstonePoints)
	case building.Shed:
		return PerEach(g, board.Gray, ctx.ShedPoints)
	case building.Well:
		cottages := board.NewColorSet(board.Blue)
		return PerCell(g, board.Gray, func(i int) int {
			return g.CountAdjacent(i, cottages) * ctx.WellPerAdjacentCottage
		})
	}
	panic("engine: unknown gray variant " + cfg.Gray.String())
}

// Fountains score when they sit in a connected run of at least
// FountainMinGroup gray buildings.
func scoreFountains(g *board.Grid, ctx ScoringContext) Points {
	out := Points{}
	for _, group := range g.ContiguousGroups(board.NewColorSet(board.Gray)) {
		points := 0
		if len(group) >= ctx.FountainMinGroup {
			points = ctx.FountainPoints
		}
		for _, i := range group {
			out[i] = points
		}
	}
	return out
}
