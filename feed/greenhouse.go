package feed

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// GreenhouseCandidates streams unions of contiguous feedable groups, exactly
// one group per greenhouse. With more greenhouses than groups there is no
// candidate and nothing is fed. Combinations run lexicographically over the
// groups in discovery order.
func GreenhouseCandidates(g *board.Grid, cfg building.Config) Candidates {
	groups := g.ContiguousGroups(FeedableColors(cfg))
	k := g.Count(board.Red)
	return &pickCandidates{
		combos: NewCombinations(len(groups), k),
		pick: func(combo []int) board.IndexSet {
			set := board.IndexSet{}
			for _, j := range combo {
				for _, i := range groups[j] {
					set.Add(i)
				}
			}
			return set
		},
	}
}
