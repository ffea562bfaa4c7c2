package engine

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// ScoreMagenta scores the monument. Monuments whose effect is not a score
// (and the unfinished ones) contribute 0 per building.
func ScoreMagenta(g *board.Grid, cfg building.Config, ctx ScoringContext, fed board.IndexSet) Points {
	switch cfg.Magenta {
	case building.ArchitectsGuild:
		return PerEach(g, board.Magenta, ctx.ArchitectsGuildPoints)
	case building.ArchiveOfTheSecondAge:
		types := g.Colors().Without(board.Magenta).Len()
		return PerEach(g, board.Magenta, types*ctx.ArchivePerType)
	case building.BarrettCastle:
		return IfInIndexSet(g, board.Magenta, fed, ctx.BarrettCastleFedPoints)
	case building.CathedralOfCaterina:
		return PerEach(g, board.Magenta, ctx.CathedralPoints)
	case building.FortIronweed:
		return PerEach(g, board.Magenta, ctx.FortIronweedPoints)
	case building.GroveUniversity:
		return PerEach(g, board.Magenta, ctx.GroveUniversityPoints)
	case building.MandrasPalace:
		return PerCell(g, board.Magenta, func(i int) int {
			return g.AdjacentColors(i).Len() * ctx.MandrasPalacePerType
		})
	case building.SilvaForum:
		largest := g.LargestGroup(board.AllColorsSet)
		return PerEach(g, board.Magenta, (largest+1)*ctx.SilvaForumPerBuilding)
	case building.TheSkyBaths:
		missing := board.NumColors - g.Colors().Len()
		return PerEach(g, board.Magenta, missing*ctx.SkyBathsPerMissingType)
	case building.GrandMausoleumOfTheRodina,
		building.ObeliskOfTheCrescent,
		building.OpaleyesWatch,
		building.ShrineOfTheElderTree,
		building.StatueOfTheBondmaker,
		building.TheStarloom:
		return PerEach(g, board.Magenta, 0)
	}
	panic("engine: unknown magenta variant " + cfg.Magenta.String())
}
