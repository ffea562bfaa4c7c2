package townfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
	"github.com/signalnine/townscore/engine"
)

const twoTowns = `
buildings {
  red    = "granary"
  orange = "temple"
}

scoring {
  cottage_fed     = 4
  tavern_by_count = { 0 = 0, 1 = 3 }
}

town "alice" {
  rows = 4
  cols = 4

  building "blue" { at = [0, idx(0, 1), idx(rows - 1, cols - 1)] }
  building "red"  { at = [5] }
  building "black" {
    at        = [2]
    resources = ["brick", "glass"]
    capacity  = 3
  }
  resource "wheat" { at = [3] }
}

town "bob" {
  rows = 2
  cols = 2
  building "green" { at = [0] }
}
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(twoTowns), "towns.hcl", Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if f.Config.Red != building.Granary || f.Config.Orange != building.Temple {
		t.Errorf("unexpected buildings: %s", f.Config)
	}
	if f.Config.Blue != building.Cottage || f.Config.Magenta != building.SilvaForum {
		t.Errorf("unset colors should keep their defaults: %s", f.Config)
	}

	if f.Scoring.CottageFedPoints != 4 {
		t.Errorf("expected cottage_fed 4, got %d", f.Scoring.CottageFedPoints)
	}
	if diff := cmp.Diff(map[int]int{0: 0, 1: 3}, f.Scoring.TavernByCount); diff != "" {
		t.Errorf("tavern table should be replaced (-want +got):\n%s", diff)
	}
	if f.Scoring.BankPoints != 4 {
		t.Errorf("untouched fields keep defaults, got bank %d", f.Scoring.BankPoints)
	}

	if len(f.Towns) != 2 {
		t.Fatalf("expected 2 towns, got %d", len(f.Towns))
	}
	alice := f.Towns[0].Grid
	if f.Towns[0].Name != "alice" || alice.Rows() != 4 || alice.Cols() != 4 {
		t.Errorf("unexpected first town %q %dx%d", f.Towns[0].Name, alice.Rows(), alice.Cols())
	}
	if diff := cmp.Diff([]int{0, 1, 15}, alice.Indices(board.NewColorSet(board.Blue))); diff != "" {
		t.Errorf("cottages mismatch (-want +got):\n%s", diff)
	}
	if got := alice.Cell(2).Resources(); len(got) != 2 || alice.Cell(2).Capacity() != 3 {
		t.Errorf("expected warehouse with 2 of 3 resources, got %v cap %d", got, alice.Cell(2).Capacity())
	}
	if r, ok := alice.Cell(3).Resource(); !ok || r != board.Wheat {
		t.Errorf("expected wheat at 3, got %s", alice.Cell(3))
	}

	if f.Opponent(0) != f.Towns[1].Grid || f.Opponent(1) != f.Towns[0].Grid {
		t.Error("expected the two towns to face each other")
	}
}

func TestParseScoresWithFileRules(t *testing.T) {
	f, err := Parse([]byte(twoTowns), "towns.hcl", Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	card := engine.Score(f.Towns[0].Grid, f.Config, f.Scoring, f.Opponent(0))

	// The granary at 5 feeds the cottage at 1 only.
	if diff := cmp.Diff([]int{1}, card.Fed().Sorted()); diff != "" {
		t.Errorf("fed mismatch (-want +got):\n%s", diff)
	}
	if card.Blue() != 4 {
		t.Errorf("expected blue 4, got %d", card.Blue())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unknown variant",
			src:  `buildings { red = "windmill" }`,
			want: "buildings.red",
		},
		{
			name: "unknown scoring field",
			src:  `scoring { cottage = 3 }`,
			want: "invalid scoring block",
		},
		{
			name: "invalid by-count table",
			src:  `scoring { almshouse_by_count = { 1 = 2 } }`,
			want: "scoring.almshouse_by_count",
		},
		{
			name: "duplicate town",
			src:  "town \"a\" {\n rows = 1\n cols = 1\n}\ntown \"a\" {\n rows = 1\n cols = 1\n}",
			want: "defined twice",
		},
		{
			name: "index out of range",
			src:  "town \"a\" {\n rows = 2\n cols = 2\n building \"blue\" { at = [idx(2, 0)] }\n}",
			want: "outside the 2x2 grid",
		},
		{
			name: "raw index out of range",
			src:  "town \"a\" {\n rows = 2\n cols = 2\n building \"blue\" { at = [4] }\n}",
			want: "outside the 2x2 grid",
		},
		{
			name: "cell placed twice",
			src:  "town \"a\" {\n rows = 2\n cols = 2\n building \"blue\" { at = [1] }\n resource \"wood\" { at = [1] }\n}",
			want: "placed twice",
		},
		{
			name: "unknown color",
			src:  "town \"a\" {\n rows = 2\n cols = 2\n building \"purple\" { at = [1] }\n}",
			want: "purple",
		},
		{
			name: "over capacity",
			src:  "town \"a\" {\n rows = 2\n cols = 2\n building \"black\" {\n at = [1]\n resources = [\"wood\", \"wood\"]\n capacity = 1\n }\n}",
			want: "exceed capacity",
		},
		{
			name: "tailors on odd grid",
			src:  "buildings { yellow = \"tailor\" }\ntown \"a\" {\n rows = 3\n cols = 4\n building \"yellow\" { at = [0] }\n}",
			want: "even grid dimensions",
		},
		{
			name: "syntax error",
			src:  "town \"a\" {",
			want: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl", Options{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseTailorsOnOddGridWithoutYellow(t *testing.T) {
	src := "buildings { yellow = \"tailor\" }\ntown \"a\" {\n rows = 3\n cols = 4\n building \"blue\" { at = [0, 5] }\n}"
	f, err := Parse([]byte(src), "odd.hcl", Options{})
	if err != nil {
		t.Fatalf("a town with no yellow building should load: %v", err)
	}
	if got := f.Towns[0].Grid.Count(board.Blue); got != 2 {
		t.Errorf("expected 2 blue buildings, got %d", got)
	}
}

func TestParseScoringReportsFirstBadAttribute(t *testing.T) {
	src := "scoring {\n zeta = missing_z\n alpha = missing_a\n}"
	for i := 0; i < 20; i++ {
		_, err := Parse([]byte(src), "bad.hcl", Options{})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "scoring.alpha") {
			t.Fatalf("expected the error to name scoring.alpha, got %v", err)
		}
	}
}

func TestParseSizePolicy(t *testing.T) {
	src := "town \"a\" {\n rows = 2\n cols = 5\n}"
	if _, err := Parse([]byte(src), "small.hcl", Options{}); err != nil {
		t.Errorf("default policy should accept 2x5: %v", err)
	}
	_, err := Parse([]byte(src), "small.hcl", Options{Sizes: board.StrictSizePolicy})
	if err == nil || !strings.Contains(err.Error(), "smaller than the minimum") {
		t.Errorf("expected the strict policy to reject 2x5, got %v", err)
	}
}

func TestLoadAndWriteReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "towns.hcl")
	if err := os.WriteFile(path, []byte(twoTowns), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if f.Path != path {
		t.Errorf("expected path %s, got %s", path, f.Path)
	}

	var reports []Report
	for i, town := range f.Towns {
		card := engine.Score(town.Grid, f.Config, f.Scoring, f.Opponent(i))
		reports = append(reports, NewReport("run-1", town, f.Config, card, nil))
	}

	out := filepath.Join(dir, "report.json")
	if err := WriteReport(out, reports); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var decoded []struct {
		RunID     string            `json:"run_id"`
		Town      string            `json:"town"`
		Buildings map[string]string `json:"buildings"`
		Score     struct {
			Total int `json:"total"`
		} `json:"score"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Town != "bob" || decoded[0].RunID != "run-1" {
		t.Fatalf("unexpected report: %s", data)
	}
	if decoded[0].Buildings["red"] != "granary" {
		t.Errorf("expected red granary, got %q", decoded[0].Buildings["red"])
	}
	if decoded[0].Score.Total != reports[0].Score.Total() {
		t.Errorf("expected total %d, got %d", reports[0].Score.Total(), decoded[0].Score.Total)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.hcl"), Options{}); err == nil {
		t.Error("expected an error for a missing file")
	}
}
