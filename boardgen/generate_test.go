package boardgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
	"github.com/signalnine/townscore/engine"
)

func cells(g *board.Grid) []string {
	out := make([]string, g.Len())
	for i := range out {
		out[i] = g.Cell(i).String()
	}
	return out
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Rows, cfg.Cols = 6, 6
	cfg.Seed = 42

	a := Generate(cfg)
	b := Generate(cfg)

	if diff := cmp.Diff(cells(a), cells(b)); diff != "" {
		t.Errorf("same seed produced different towns (-first +second):\n%s", diff)
	}
}

func TestGenerateDimensions(t *testing.T) {
	cfg := GenConfig{Rows: 3, Cols: 5, Seed: 7, EmptyLevel: 0.3, ResourceBand: 0.1}
	g := Generate(cfg)

	if g.Rows() != 3 || g.Cols() != 5 {
		t.Errorf("Expected 3x5 grid, got %dx%d", g.Rows(), g.Cols())
	}
}

func TestGenerateEmptyLevelBounds(t *testing.T) {
	full := GenConfig{Rows: 6, Cols: 6, Seed: 3, EmptyLevel: -1, ResourceBand: 0}
	g := Generate(full)
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i).Kind() != board.CellBuilding {
			t.Fatalf("cell %d: expected a building with no empty level, got %v", i, g.Cell(i))
		}
	}

	empty := GenConfig{Rows: 6, Cols: 6, Seed: 3, EmptyLevel: 2, ResourceBand: 0}
	g = Generate(empty)
	for i := 0; i < g.Len(); i++ {
		if !g.Cell(i).IsUnused() {
			t.Fatalf("cell %d: expected empty, got %v", i, g.Cell(i))
		}
	}
}

func TestGeneratedTownsScore(t *testing.T) {
	scorer := engine.NewScorer(engine.DefaultScoringContext())
	for seed := int64(1); seed <= 20; seed++ {
		cfg := DefaultGenConfig()
		cfg.Seed = seed
		g := Generate(cfg)

		card := scorer.Score(g, building.DefaultConfig(), nil)
		if card.Flatten().Total() != card.Total() {
			t.Errorf("seed %d: flattened points %d != total %d", seed, card.Flatten().Total(), card.Total())
		}
	}
}

func TestGetExamples(t *testing.T) {
	examples := GetExamples()

	if len(examples) != 6 {
		t.Errorf("Expected 6 examples, got %d", len(examples))
	}

	seen := map[string]bool{}
	for _, ex := range examples {
		if ex.Name == "" {
			t.Error("Example has empty name")
		}
		if seen[ex.Name] {
			t.Errorf("Duplicate example name %q", ex.Name)
		}
		seen[ex.Name] = true
		if ex.Town == nil {
			t.Errorf("Example %s has nil town", ex.Name)
		}
	}
}

func TestExamplesScore(t *testing.T) {
	ctx := engine.DefaultScoringContext()
	for _, ex := range GetExamples() {
		t.Run(ex.Name, func(t *testing.T) {
			card := engine.Score(ex.Town, ex.Config, ctx, ex.Other)
			if got := len(card.Flatten()); got != ex.Town.Len() {
				t.Errorf("expected %d scored cells, got %d", ex.Town.Len(), got)
			}
		})
	}
}

func TestTempleExample(t *testing.T) {
	ex, ok := Lookup("temples")
	if !ok {
		t.Fatal("temples example missing")
	}
	card := engine.Score(ex.Town, ex.Config, engine.DefaultScoringContext(), nil)

	if diff := cmp.Diff([]int{1, 4}, card.Fed().Sorted()); diff != "" {
		t.Errorf("fed cottages (-want +got):\n%s", diff)
	}
	if card.Orange() != 8 {
		t.Errorf("Expected orange 8, got %d", card.Orange())
	}
}

func TestGranaryExample(t *testing.T) {
	ex, ok := Lookup("granary")
	if !ok {
		t.Fatal("granary example missing")
	}
	card := engine.Score(ex.Town, ex.Config, engine.DefaultScoringContext(), nil)

	if diff := cmp.Diff([]int{4, 7, 9, 13}, card.Fed().Sorted()); diff != "" {
		t.Errorf("fed cottages (-want +got):\n%s", diff)
	}
	if card.Candidates() != 0 {
		t.Errorf("granary should not search, got %d candidates", card.Candidates())
	}
}

func TestCathedralExampleHasNoPenalty(t *testing.T) {
	ex, _ := Lookup("cathedral")
	card := engine.Score(ex.Town, ex.Config, engine.DefaultScoringContext(), nil)

	if card.Unused() != 0 {
		t.Errorf("Expected no unused penalty, got %d", card.Unused())
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup should miss unknown names")
	}
	if len(Names()) != len(GetExamples()) {
		t.Error("Names and GetExamples disagree")
	}
}

// ============================================================================
// Benchmarks
// ============================================================================

func BenchmarkGenerate(b *testing.B) {
	cfg := DefaultGenConfig()
	cfg.Rows, cfg.Cols = 6, 6
	cfg.Seed = 1
	for i := 0; i < b.N; i++ {
		Generate(cfg)
	}
}
