package engine

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// ScoreGreen scores green buildings. Feast halls compare against the
// opposing town, which must then be non-nil.
func ScoreGreen(g *board.Grid, cfg building.Config, ctx ScoringContext, other *board.Grid) Points {
	switch cfg.Green {
	case building.Almshouse:
		return ByCount(g, board.Green, ctx.AlmshouseByCount, ctx.AlmshouseDefault)
	case building.FeastHall:
		if other == nil {
			panic("engine: feast halls need the opposing town")
		}
		points := ctx.FeastHallPoints
		if g.Count(board.Green) > other.Count(board.Green) {
			points = ctx.FeastHallLeadPoints
		}
		return PerEach(g, board.Green, points)
	case building.Inn:
		rows, cols := g.CountPerRowAndCol(board.Green)
		return PerCell(g, board.Green, func(i int) int {
			if rows[g.Row(i)] == 1 && cols[g.Col(i)] == 1 {
				return ctx.InnPoints
			}
			return 0
		})
	case building.Tavern:
		return ByCount(g, board.Green, ctx.TavernByCount, ctx.TavernDefault)
	}
	panic("engine: unknown green variant " + cfg.Green.String())
}
