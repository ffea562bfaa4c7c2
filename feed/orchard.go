package feed

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// FeedOrchards feeds every feedable building touching an orchard,
// diagonals included.
func FeedOrchards(g *board.Grid, cfg building.Config) board.IndexSet {
	fed := board.IndexSet{}
	for _, i := range Feedable(g, cfg) {
		if g.SurroundingColors(i).Has(board.Red) {
			fed.Add(i)
		}
	}
	return fed
}
