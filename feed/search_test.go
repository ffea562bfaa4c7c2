package feed

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signalnine/townscore/board"
)

// sliceCandidates replays a fixed list of candidates.
type sliceCandidates struct {
	sets []board.IndexSet
	pos  int
}

func (s *sliceCandidates) Next() (board.IndexSet, bool) {
	if s.pos >= len(s.sets) {
		return nil, false
	}
	s.pos++
	return s.sets[s.pos-1], true
}

func sizeObjective(fed board.IndexSet) int { return fed.Len() }

func TestBestKeepsFirstOfEqualScores(t *testing.T) {
	sets := []board.IndexSet{
		board.NewIndexSet(1),
		board.NewIndexSet(2, 3),
		board.NewIndexSet(4, 5),
		board.NewIndexSet(6),
	}
	for _, workers := range []int{1, 3} {
		res := Best(&sliceCandidates{sets: sets}, sizeObjective, Options{Workers: workers})
		if diff := cmp.Diff([]int{2, 3}, res.Fed.Sorted()); diff != "" {
			t.Errorf("workers=%d: fed mismatch (-want +got):\n%s", workers, diff)
		}
		if res.Score != 2 {
			t.Errorf("workers=%d: expected score 2, got %d", workers, res.Score)
		}
		if res.Candidates != 4 {
			t.Errorf("workers=%d: expected 4 candidates, got %d", workers, res.Candidates)
		}
	}
}

func TestBestNeedsStrictImprovement(t *testing.T) {
	sets := []board.IndexSet{board.NewIndexSet(1), board.NewIndexSet(2)}
	zero := func(board.IndexSet) int { return 0 }

	for _, workers := range []int{1, 2} {
		res := Best(&sliceCandidates{sets: sets}, zero, Options{Workers: workers})
		if res.Fed.Len() != 0 {
			t.Errorf("workers=%d: expected the empty baseline, got %v", workers, res.Fed.Sorted())
		}
	}
}

func TestBestNoCandidates(t *testing.T) {
	res := Best(&sliceCandidates{}, sizeObjective, Options{})
	if res.Fed == nil || res.Fed.Len() != 0 || res.Candidates != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestBestParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		var sets []board.IndexSet
		for n := rng.Intn(60); n > 0; n-- {
			set := board.IndexSet{}
			for j := rng.Intn(5); j > 0; j-- {
				set.Add(rng.Intn(16))
			}
			sets = append(sets, set)
		}
		// Coarse scores force plenty of ties.
		objective := func(fed board.IndexSet) int {
			total := 0
			for i := range fed {
				total += i % 3
			}
			return total / 2
		}

		want := Best(&sliceCandidates{sets: sets}, objective, Options{Workers: 1})
		got := Best(&sliceCandidates{sets: sets}, objective, Options{Workers: 4})
		if !want.Fed.Equal(got.Fed) || want.Score != got.Score || want.Candidates != got.Candidates {
			t.Fatalf("trial %d: serial %v/%d, parallel %v/%d", trial,
				want.Fed.Sorted(), want.Score, got.Fed.Sorted(), got.Score)
		}
	}
}
