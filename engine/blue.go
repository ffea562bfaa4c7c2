package engine

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// ScoreBlue scores cottages. A cottage scores when fed, or unconditionally
// while the Grand Mausoleum stands on the board.
func ScoreBlue(g *board.Grid, cfg building.Config, ctx ScoringContext, fed board.IndexSet) Points {
	switch cfg.Blue {
	case building.Cottage:
		if cfg.Magenta == building.GrandMausoleumOfTheRodina && g.Count(board.Magenta) > 0 {
			return PerEach(g, board.Blue, ctx.CottageFedPoints)
		}
		return IfInIndexSet(g, board.Blue, fed, ctx.CottageFedPoints)
	}
	panic("engine: unknown blue variant " + cfg.Blue.String())
}
