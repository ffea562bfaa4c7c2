package board

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sorted(idxs []int) []int {
	out := append([]int(nil), idxs...)
	sort.Ints(out)
	return out
}

func TestRowCol(t *testing.T) {
	g := New(7, 4)
	if g.Col(0) != 0 || g.Col(2) != 2 || g.Col(15) != 3 {
		t.Errorf("unexpected columns: %d %d %d", g.Col(0), g.Col(2), g.Col(15))
	}

	g = New(3, 5)
	if g.Row(0) != 0 || g.Row(7) != 1 || g.Row(10) != 2 {
		t.Errorf("unexpected rows: %d %d %d", g.Row(0), g.Row(7), g.Row(10))
	}
	if g.Index(2, 3) != 13 {
		t.Errorf("expected index 13, got %d", g.Index(2, 3))
	}
}

func TestNeighbors4(t *testing.T) {
	g := New(7, 5)
	cases := map[int][]int{
		0:  {1, 5},
		1:  {0, 2, 6},
		10: {5, 11, 15},
		14: {9, 13, 19},
		32: {27, 31, 33},
		12: {7, 11, 13, 17},
	}
	for idx, want := range cases {
		if diff := cmp.Diff(want, sorted(g.Neighbors4(idx))); diff != "" {
			t.Errorf("Neighbors4(%d) mismatch (-want +got):\n%s", idx, diff)
		}
	}
}

func TestDiagonals(t *testing.T) {
	g := New(4, 8)
	cases := map[int][]int{
		0:  {9},
		1:  {8, 10},
		8:  {1, 17},
		15: {6, 22},
		17: {8, 10, 24, 26},
	}
	for idx, want := range cases {
		if diff := cmp.Diff(want, sorted(g.Diagonals(idx))); diff != "" {
			t.Errorf("Diagonals(%d) mismatch (-want +got):\n%s", idx, diff)
		}
	}

	if got := len(g.Neighbors8(17)); got != 8 {
		t.Errorf("expected 8 surrounding cells, got %d", got)
	}
}

func TestCorners(t *testing.T) {
	if diff := cmp.Diff([]int{0, 7, 48, 55}, sorted(New(7, 8).Corners())); diff != "" {
		t.Errorf("7x8 corners mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 9, 11}, sorted(New(4, 3).Corners())); diff != "" {
		t.Errorf("4x3 corners mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 3}, sorted(New(1, 4).Corners())); diff != "" {
		t.Errorf("1x4 corners mismatch:\n%s", diff)
	}
}

func TestCenters(t *testing.T) {
	if diff := cmp.Diff([]int{5, 6, 9, 10}, sorted(New(4, 4).Centers())); diff != "" {
		t.Errorf("4x4 centers mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]int{14, 15, 20, 21}, sorted(New(6, 6).Centers())); diff != "" {
		t.Errorf("6x6 centers mismatch:\n%s", diff)
	}
}

func TestCentersPanicsOnOddGrid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for odd-sized grid")
		}
	}()
	New(3, 4).Centers()
}

func TestOutOfRangePanics(t *testing.T) {
	g := New(2, 2)
	for _, idx := range []int{-1, 4, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for index %d", idx)
				}
			}()
			g.Neighbors4(idx)
		}()
	}
}

func TestAdjacentColors(t *testing.T) {
	g := New(4, 8)
	g.Place(0, Building(Blue))
	g.Place(1, Building(Blue))
	g.Place(7, Building(Green))
	g.Place(8, Building(Orange))
	g.Place(9, Building(Yellow))
	g.Place(10, Building(Gray))
	g.Place(14, Building(Blue))
	g.Place(19, Building(Black))
	g.Place(21, Building(Red))
	g.Place(23, Building(Red))
	g.Place(24, Building(Magenta))

	cases := []struct {
		idx  int
		want ColorSet
	}{
		{0, NewColorSet(Blue, Orange)},
		{9, NewColorSet(Blue, Orange, Gray)},
		{22, NewColorSet(Blue, Red)},
		{24, 0},
	}
	for _, tc := range cases {
		if got := g.AdjacentColors(tc.idx); got != tc.want {
			t.Errorf("AdjacentColors(%d): expected %s, got %s", tc.idx, tc.want, got)
		}
	}

	if got := g.CountAdjacent(22, NewColorSet(Red)); got != 2 {
		t.Errorf("expected 2 adjacent red buildings, got %d", got)
	}
}

func TestCount(t *testing.T) {
	g := New(4, 5)
	g.Place(0, Building(Blue))
	g.Place(2, Building(Green))
	g.Place(8, Building(Gray))
	g.Place(13, Building(Blue))
	g.Place(14, ResourceCell(Wheat))

	want := map[Color]int{Black: 0, Green: 1, Gray: 1, Blue: 2}
	for c, n := range want {
		if got := g.Count(c); got != n {
			t.Errorf("Count(%s): expected %d, got %d", c, n, got)
		}
	}

	rows, cols := g.CountPerRowAndCol(Blue)
	if diff := cmp.Diff([]int{1, 0, 1, 0}, rows); diff != "" {
		t.Errorf("row counts mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 0, 0, 1, 0}, cols); diff != "" {
		t.Errorf("col counts mismatch:\n%s", diff)
	}
}

func TestCellProjection(t *testing.T) {
	if _, ok := Empty().Color(); ok {
		t.Error("empty cell should have no color")
	}
	if _, ok := ResourceCell(Stone).Color(); ok {
		t.Error("resource cell should have no color")
	}
	if !ResourceCell(Stone).IsUnused() || !Empty().IsUnused() {
		t.Error("empty and resource cells should be unused")
	}

	w := BuildingWithResources(Black, []Resource{Brick, Glass}, 3)
	if c, ok := w.Color(); !ok || c != Black {
		t.Errorf("expected black building, got %v %v", c, ok)
	}
	if len(w.Resources()) != 2 || w.Capacity() != 3 {
		t.Errorf("expected 2 of 3 stored, got %d of %d", len(w.Resources()), w.Capacity())
	}
}

func TestRemove(t *testing.T) {
	g := New(2, 2)
	g.Place(3, Building(Red))
	g.Remove(3)
	if !g.Cell(3).IsUnused() {
		t.Error("expected cell 3 to be empty after Remove")
	}
}

func TestSizePolicy(t *testing.T) {
	if err := DefaultSizePolicy.Check(1, 1); err != nil {
		t.Errorf("1x1 should pass the default policy: %v", err)
	}
	if err := StrictSizePolicy.Check(2, 5); err == nil {
		t.Error("2x5 should fail the strict policy")
	}
}

func randomGrid(rng *rand.Rand, rows, cols int) *Grid {
	g := New(rows, cols)
	for i := 0; i < g.Len(); i++ {
		switch n := rng.Intn(NumColors + 2); {
		case n < NumColors:
			g.Place(i, Building(Color(n)))
		case n == NumColors:
			g.Place(i, ResourceCell(Resource(rng.Intn(NumResources))))
		}
	}
	return g
}

func TestAdjacencySymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		g := New(1+rng.Intn(8), 1+rng.Intn(8))
		for i := 0; i < g.Len(); i++ {
			for _, j := range g.Neighbors4(i) {
				back := false
				for _, k := range g.Neighbors4(j) {
					if k == i {
						back = true
					}
				}
				if !back {
					t.Fatalf("%dx%d: %d lists %d as neighbor but not vice versa", g.Rows(), g.Cols(), i, j)
				}
			}
		}
	}
}
