package feed

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// FeedGranaries feeds every feedable building sharing a row or column
// with a granary.
func FeedGranaries(g *board.Grid, cfg building.Config) board.IndexSet {
	rows, cols := g.CountPerRowAndCol(board.Red)
	fed := board.IndexSet{}
	for _, i := range Feedable(g, cfg) {
		if rows[g.Row(i)] > 0 || cols[g.Col(i)] > 0 {
			fed.Add(i)
		}
	}
	return fed
}
