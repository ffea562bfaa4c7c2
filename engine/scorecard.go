package engine

import (
	"encoding/json"

	"github.com/signalnine/townscore/board"
)

// ScoreCard is the per-cell breakdown of a town's score: one map per color
// and one for unused cells. Every cell appears in at most one map.
type ScoreCard struct {
	colors     [board.NumColors]Points
	unused     Points
	fed        board.IndexSet
	candidates int
}

// Total sums every entry of every map.
func (s *ScoreCard) Total() int {
	total := 0
	for _, points := range s.colors {
		for _, v := range points {
			total += v
		}
	}
	for _, v := range s.unused {
		total += v
	}
	return total
}

// Color returns the total for one building color.
func (s *ScoreCard) Color(c board.Color) int {
	return s.colors[c].Total()
}

func (s *ScoreCard) Black() int   { return s.Color(board.Black) }
func (s *ScoreCard) Blue() int    { return s.Color(board.Blue) }
func (s *ScoreCard) Gray() int    { return s.Color(board.Gray) }
func (s *ScoreCard) Green() int   { return s.Color(board.Green) }
func (s *ScoreCard) Magenta() int { return s.Color(board.Magenta) }
func (s *ScoreCard) Orange() int  { return s.Color(board.Orange) }
func (s *ScoreCard) Red() int     { return s.Color(board.Red) }
func (s *ScoreCard) Yellow() int  { return s.Color(board.Yellow) }

// Unused returns the total for empty and resource cells.
func (s *ScoreCard) Unused() int {
	return s.unused.Total()
}

// PointsFor returns a copy of the per-cell points of color c.
func (s *ScoreCard) PointsFor(c board.Color) Points {
	return s.colors[c].clone()
}

// UnusedPoints returns a copy of the per-cell points of unused cells.
func (s *ScoreCard) UnusedPoints() Points {
	return s.unused.clone()
}

// Flatten merges all nine maps into one index -> points map.
func (s *ScoreCard) Flatten() Points {
	out := Points{}
	for _, points := range s.colors {
		out.Merge(points)
	}
	out.Merge(s.unused)
	return out
}

// Fed returns the buildings that were fed.
func (s *ScoreCard) Fed() board.IndexSet {
	return s.fed.Union(nil)
}

// Candidates returns how many fed sets the search scored.
func (s *ScoreCard) Candidates() int {
	return s.candidates
}

type categoryJSON struct {
	Total int    `json:"total"`
	Cells Points `json:"cells"`
}

type scoreCardJSON struct {
	Total      int                     `json:"total"`
	Fed        []int                   `json:"fed"`
	Candidates int                     `json:"candidates"`
	Categories map[string]categoryJSON `json:"categories"`
}

func (s *ScoreCard) MarshalJSON() ([]byte, error) {
	out := scoreCardJSON{
		Total:      s.Total(),
		Fed:        s.fed.Sorted(),
		Candidates: s.candidates,
		Categories: make(map[string]categoryJSON, board.NumColors+1),
	}
	for _, c := range board.AllColors() {
		out.Categories[c.String()] = categoryJSON{Total: s.Color(c), Cells: s.PointsFor(c)}
	}
	out.Categories["unused"] = categoryJSON{Total: s.Unused(), Cells: s.UnusedPoints()}
	return json.Marshal(out)
}
