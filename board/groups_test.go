package board

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func groupSets(groups [][]int) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = sorted(g)
	}
	return out
}

func TestContiguousGroups(t *testing.T) {
	g := New(4, 4)
	g.Place(0, Building(Blue))
	g.Place(1, Building(Blue))
	g.Place(2, Building(Magenta))
	g.Place(3, Building(Blue))
	g.Place(4, Building(Blue))

	if groups := g.ContiguousGroups(NewColorSet(Green)); len(groups) != 0 {
		t.Errorf("expected no green groups, got %v", groups)
	}

	got := groupSets(g.ContiguousGroups(NewColorSet(Blue)))
	if diff := cmp.Diff([][]int{{0, 1, 4}, {3}}, got); diff != "" {
		t.Errorf("blue groups mismatch (-want +got):\n%s", diff)
	}

	got = groupSets(g.ContiguousGroups(NewColorSet(Blue, Magenta)))
	if diff := cmp.Diff([][]int{{0, 1, 2, 3, 4}}, got); diff != "" {
		t.Errorf("blue+magenta groups mismatch (-want +got):\n%s", diff)
	}
}

func TestContiguousGroupsMixedColors(t *testing.T) {
	g := New(4, 4)
	g.Place(0, Building(Green))
	g.Place(1, Building(Red))
	g.Place(2, Building(Orange))
	g.Place(3, Building(Gray))

	got := groupSets(g.ContiguousGroups(NewColorSet(Green, Gray, Red)))
	if diff := cmp.Diff([][]int{{0, 1}, {3}}, got); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	g.Place(4, Building(Green))
	got = groupSets(g.ContiguousGroups(NewColorSet(Green, Gray, Red, Orange)))
	if diff := cmp.Diff([][]int{{0, 1, 2, 3, 4}}, got); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	if got := g.LargestGroup(AllColorsSet); got != 5 {
		t.Errorf("expected largest group 5, got %d", got)
	}
}

func TestGroupPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		g := randomGrid(rng, 1+rng.Intn(7), 1+rng.Intn(7))
		set := ColorSet(rng.Intn(256))

		seen := NewIndexSet()
		for _, group := range g.ContiguousGroups(set) {
			for _, i := range group {
				if seen.Has(i) {
					t.Fatalf("index %d appears in two groups", i)
				}
				seen.Add(i)
			}
		}

		want := NewIndexSet(g.Indices(set)...)
		if !seen.Equal(want) {
			t.Fatalf("groups cover %v, expected %v", seen.Sorted(), want.Sorted())
		}
	}
}

func BenchmarkContiguousGroups(b *testing.B) {
	g := randomGrid(rand.New(rand.NewSource(3)), 8, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ContiguousGroups(AllColorsSet)
	}
}
