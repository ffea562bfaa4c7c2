// Package board holds the town grid and the geometry queries scoring is built on.
package board

import "fmt"

// Grid is a rows x cols town stored row-major: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// New creates an empty grid. Both dimensions must be positive.
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index converts a row and column to a cell index.
func (g *Grid) Index(row, col int) int {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("board: position (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

func (g *Grid) Row(i int) int {
	g.checkIndex(i)
	return i / g.cols
}

func (g *Grid) Col(i int) int {
	g.checkIndex(i)
	return i % g.cols
}

// Cell returns the cell at index i.
func (g *Grid) Cell(i int) Cell {
	g.checkIndex(i)
	return g.cells[i]
}

// Place puts cell at index i, replacing what was there.
func (g *Grid) Place(i int, cell Cell) {
	g.checkIndex(i)
	g.cells[i] = cell
}

// Remove empties the cell at index i.
func (g *Grid) Remove(i int) {
	g.checkIndex(i)
	g.cells[i] = Empty()
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

func (g *Grid) checkIndex(i int) {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("board: index %d out of range [0, %d)", i, len(g.cells)))
	}
}

// Neighbors4 returns the orthogonal neighbors of i in north, west, east,
// south order, clipped at the edges.
func (g *Grid) Neighbors4(i int) []int {
	g.checkIndex(i)
	row, col := i/g.cols, i%g.cols
	out := make([]int, 0, 4)
	if row > 0 {
		out = append(out, i-g.cols)
	}
	if col > 0 {
		out = append(out, i-1)
	}
	if col < g.cols-1 {
		out = append(out, i+1)
	}
	if row < g.rows-1 {
		out = append(out, i+g.cols)
	}
	return out
}

// Diagonals returns the diagonal neighbors of i (NW, NE, SW, SE), clipped.
func (g *Grid) Diagonals(i int) []int {
	g.checkIndex(i)
	row, col := i/g.cols, i%g.cols
	out := make([]int, 0, 4)
	if row > 0 && col > 0 {
		out = append(out, i-g.cols-1)
	}
	if row > 0 && col < g.cols-1 {
		out = append(out, i-g.cols+1)
	}
	if row < g.rows-1 && col > 0 {
		out = append(out, i+g.cols-1)
	}
	if row < g.rows-1 && col < g.cols-1 {
		out = append(out, i+g.cols+1)
	}
	return out
}

// Neighbors8 returns the orthogonal and diagonal neighbors of i.
func (g *Grid) Neighbors8(i int) []int {
	return append(g.Neighbors4(i), g.Diagonals(i)...)
}

// Corners returns the four corner indices. On a single row or column some
// corners coincide; duplicates are dropped.
func (g *Grid) Corners() []int {
	n := len(g.cells)
	return dedupe([]int{0, g.cols - 1, n - g.cols, n - 1})
}

// Centers returns the four cells around the centroid. Rows and cols must be even.
func (g *Grid) Centers() []int {
	if g.rows%2 != 0 || g.cols%2 != 0 {
		panic(fmt.Sprintf("board: centers undefined for odd-sized %dx%d grid", g.rows, g.cols))
	}
	se := g.rows/2*g.cols + g.cols/2
	return []int{se - g.cols - 1, se - g.cols, se - 1, se}
}

// Count returns the number of buildings of color c.
func (g *Grid) Count(c Color) int {
	n := 0
	for _, cell := range g.cells {
		if cell.Is(c) {
			n++
		}
	}
	return n
}

// CountPerRowAndCol counts buildings of color c per row and per column.
func (g *Grid) CountPerRowAndCol(c Color) (rows []int, cols []int) {
	rows = make([]int, g.rows)
	cols = make([]int, g.cols)
	for i, cell := range g.cells {
		if cell.Is(c) {
			rows[i/g.cols]++
			cols[i%g.cols]++
		}
	}
	return rows, cols
}

// ColorsIn returns the building colors found at the given indices.
func (g *Grid) ColorsIn(idxs []int) ColorSet {
	var s ColorSet
	for _, i := range idxs {
		if c, ok := g.Cell(i).Color(); ok {
			s = s.Add(c)
		}
	}
	return s
}

// AdjacentColors returns the building colors among the orthogonal neighbors of i.
func (g *Grid) AdjacentColors(i int) ColorSet {
	return g.ColorsIn(g.Neighbors4(i))
}

// SurroundingColors returns the building colors among all eight neighbors of i.
func (g *Grid) SurroundingColors(i int) ColorSet {
	return g.ColorsIn(g.Neighbors8(i))
}

// Colors returns every building color present on the grid.
func (g *Grid) Colors() ColorSet {
	var s ColorSet
	for _, cell := range g.cells {
		if c, ok := cell.Color(); ok {
			s = s.Add(c)
		}
	}
	return s
}

// CountAdjacent counts orthogonal neighbors of i holding a color in set.
func (g *Grid) CountAdjacent(i int, set ColorSet) int {
	n := 0
	for _, j := range g.Neighbors4(i) {
		if c, ok := g.cells[j].Color(); ok && set.Has(c) {
			n++
		}
	}
	return n
}

// Indices returns, in row-major order, every index holding a color in set.
func (g *Grid) Indices(set ColorSet) []int {
	var out []int
	for i, cell := range g.cells {
		if c, ok := cell.Color(); ok && set.Has(c) {
			out = append(out, i)
		}
	}
	return out
}

func dedupe(idxs []int) []int {
	out := idxs[:0]
	for _, i := range idxs {
		seen := false
		for _, j := range out {
			if i == j {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, i)
		}
	}
	return out
}
