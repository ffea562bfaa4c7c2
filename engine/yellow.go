package engine

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// ScoreYellow scores yellow buildings under the configured variant.
func ScoreYellow(g *board.Grid, cfg building.Config, ctx ScoringContext) Points {
	switch cfg.Yellow {
	case building.Bakery:
		return IfAdjacentTo(g, board.Yellow, board.NewColorSet(board.Black, board.Red), ctx.BakeryPoints)
	case building.Market:
		rows, cols := g.CountPerRowAndCol(board.Yellow)
		return PerCell(g, board.Yellow, func(i int) int {
			return max(rows[g.Row(i)], cols[g.Col(i)]) * ctx.MarketPoints
		})
	case building.Tailor:
		return scoreTailors(g, ctx)
	case building.Theater:
		return scoreTheaters(g, ctx)
	}
	panic("engine: unknown yellow variant " + cfg.Yellow.String())
}

// Every tailor is worth one more for each tailor in the four center cells.
func scoreTailors(g *board.Grid, ctx ScoringContext) Points {
	if g.Count(board.Yellow) == 0 {
		return Points{}
	}
	inCenter := IfInIndexSet(g, board.Yellow, board.NewIndexSet(g.Centers()...), 1).Total()
	return PerEach(g, board.Yellow, (inCenter+1)*ctx.TailorPoints)
}

// Theaters count the distinct non-yellow colors sharing their row or column.
func scoreTheaters(g *board.Grid, ctx ScoringContext) Points {
	rowColors := make([]board.ColorSet, g.Rows())
	colColors := make([]board.ColorSet, g.Cols())
	for i := 0; i < g.Len(); i++ {
		if c, ok := g.Cell(i).Color(); ok && c != board.Yellow {
			rowColors[g.Row(i)] = rowColors[g.Row(i)].Add(c)
			colColors[g.Col(i)] = colColors[g.Col(i)].Add(c)
		}
	}
	return PerCell(g, board.Yellow, func(i int) int {
		return (rowColors[g.Row(i)] | colColors[g.Col(i)]).Len() * ctx.TheaterPerType
	})
}
