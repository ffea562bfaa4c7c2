package engine

import "sort"

// Points maps a cell index to the points that cell contributes.
type Points map[int]int

// Total sums every entry.
func (p Points) Total() int {
	total := 0
	for _, v := range p {
		total += v
	}
	return total
}

// Merge copies the entries of other into p.
func (p Points) Merge(other Points) {
	for i, v := range other {
		p[i] = v
	}
}

// Indices returns the keys in ascending order.
func (p Points) Indices() []int {
	idxs := make([]int, 0, len(p))
	for i := range p {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	return idxs
}

func (p Points) clone() Points {
	out := make(Points, len(p))
	out.Merge(p)
	return out
}
