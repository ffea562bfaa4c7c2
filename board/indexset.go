package board

import "sort"

// IndexSet is a set of cell indices, such as the fed buildings of a town.
type IndexSet map[int]struct{}

// NewIndexSet returns a set holding idxs.
func NewIndexSet(idxs ...int) IndexSet {
	s := make(IndexSet, len(idxs))
	for _, i := range idxs {
		s[i] = struct{}{}
	}
	return s
}

func (s IndexSet) Has(i int) bool {
	_, ok := s[i]
	return ok
}

func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

func (s IndexSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Union returns a new set holding the members of s and other.
func (s IndexSet) Union(other IndexSet) IndexSet {
	out := make(IndexSet, len(s)+len(other))
	for i := range s {
		out[i] = struct{}{}
	}
	for i := range other {
		out[i] = struct{}{}
	}
	return out
}

func (s IndexSet) Equal(other IndexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !other.Has(i) {
			return false
		}
	}
	return true
}
