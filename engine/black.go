package engine

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// ScoreBlack scores black buildings under the configured variant.
func ScoreBlack(g *board.Grid, cfg building.Config, ctx ScoringContext) Points {
	switch cfg.Black {
	case building.Bank:
		return PerEach(g, board.Black, ctx.BankPoints)
	case building.Factory:
		return PerEach(g, board.Black, ctx.FactoryPoints)
	case building.TradingPost:
		return PerEach(g, board.Black, ctx.TradingPostPoints)
	case building.Warehouse:
		return PerCell(g, board.Black, func(i int) int {
			return len(g.Cell(i).Resources()) * ctx.WarehousePerResource
		})
	}
	panic("engine: unknown black variant " + cfg.Black.String())
}
