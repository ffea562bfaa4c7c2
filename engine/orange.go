package engine

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// ScoreOrange scores orange buildings. Chapels and temples read the fed set.
func ScoreOrange(g *board.Grid, cfg building.Config, ctx ScoringContext, fed board.IndexSet) Points {
	switch cfg.Orange {
	case building.Abbey:
		return IfNotAdjacentTo(g, board.Orange, board.NewColorSet(board.Black, board.Green, board.Yellow), ctx.AbbeyPoints)
	case building.Chapel:
		weight := 0
		for i := range fed {
			weight += fedWeight(g, cfg, ctx, i)
		}
		return PerEach(g, board.Orange, weight*ctx.ChapelPerFed)
	case building.Cloister:
		corners := 0
		for _, i := range g.Corners() {
			if g.Cell(i).Is(board.Orange) {
				corners++
			}
		}
		return PerEach(g, board.Orange, corners*ctx.CloisterPerCorner)
	case building.Temple:
		return PerCell(g, board.Orange, func(i int) int {
			weight := 0
			for _, j := range g.Neighbors4(i) {
				if fed.Has(j) {
					weight += fedWeight(g, cfg, ctx, j)
				}
			}
			if weight >= ctx.TempleMinFed {
				return ctx.TemplePoints
			}
			return 0
		})
	}
	panic("engine: unknown orange variant " + cfg.Orange.String())
}

// fedWeight is how much a fed building counts toward chapels and temples.
// Barrett Castle counts as two cottages.
func fedWeight(g *board.Grid, cfg building.Config, ctx ScoringContext, i int) int {
	cell := g.Cell(i)
	switch {
	case cell.Is(board.Blue):
		return ctx.FedCottageWeight
	case cell.Is(board.Magenta) && cfg.Magenta == building.BarrettCastle:
		return ctx.FedCastleWeight
	}
	return 0
}
