package feed

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// FarmCandidates streams every way to feed min(4*farms, feedable) of the
// feedable buildings, lexicographic over the row-major feedable list.
func FarmCandidates(g *board.Grid, cfg building.Config) Candidates {
	feedable := Feedable(g, cfg)
	k := min(FarmCapacity*g.Count(board.Red), len(feedable))
	return &pickCandidates{
		combos: NewCombinations(len(feedable), k),
		pick: func(combo []int) board.IndexSet {
			set := make(board.IndexSet, len(combo))
			for _, j := range combo {
				set.Add(feedable[j])
			}
			return set
		},
	}
}
