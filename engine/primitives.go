package engine

import (
	"fmt"

	"github.com/signalnine/townscore/board"
)

// PerCell gives every building of color the points returned by fn.
// The other primitives are built on it.
func PerCell(g *board.Grid, color board.Color, fn func(i int) int) Points {
	out := Points{}
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i).Is(color) {
			out[i] = fn(i)
		}
	}
	return out
}

// PerEach gives every building of color the same points.
func PerEach(g *board.Grid, color board.Color, points int) Points {
	return PerCell(g, color, func(int) int { return points })
}

// IfAdjacentTo scores a building of color when one of its orthogonal
// neighbors has a color in neighbors.
func IfAdjacentTo(g *board.Grid, color board.Color, neighbors board.ColorSet, points int) Points {
	return PerCell(g, color, func(i int) int {
		if g.AdjacentColors(i).Intersects(neighbors) {
			return points
		}
		return 0
	})
}

// IfNotAdjacentTo scores a building of color when none of its orthogonal
// neighbors has a color in neighbors.
func IfNotAdjacentTo(g *board.Grid, color board.Color, neighbors board.ColorSet, points int) Points {
	return PerCell(g, color, func(i int) int {
		if g.AdjacentColors(i).Intersects(neighbors) {
			return 0
		}
		return points
	})
}

// ByCount looks up the number of buildings of color in pointsByCount,
// falling back to defaultPoints. Only the first building in row-major order
// receives the points; the others get 0. pointsByCount[0] must be 0.
func ByCount(g *board.Grid, color board.Color, pointsByCount map[int]int, defaultPoints int) Points {
	if v, ok := pointsByCount[0]; !ok || v != 0 {
		panic(fmt.Sprintf("engine: by-count table for %s must map 0 to 0", color))
	}

	n := g.Count(color)
	tier, ok := pointsByCount[n]
	if !ok {
		tier = defaultPoints
	}

	first := true
	return PerCell(g, color, func(int) int {
		if first {
			first = false
			return tier
		}
		return 0
	})
}

// IfInIndexSet scores a building of color when its index is in allowed.
func IfInIndexSet(g *board.Grid, color board.Color, allowed board.IndexSet, points int) Points {
	return PerCell(g, color, func(i int) int {
		if allowed.Has(i) {
			return points
		}
		return 0
	})
}
