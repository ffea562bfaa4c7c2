package townfile

import (
	"encoding/json"
	"os"

	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
	"github.com/signalnine/townscore/engine"
)

// Report is the JSON record written for one scored town.
type Report struct {
	RunID     string            `json:"run_id,omitempty"`
	Town      string            `json:"town"`
	Rows      int               `json:"rows"`
	Cols      int               `json:"cols"`
	Buildings map[string]string `json:"buildings"`
	Score     *engine.ScoreCard `json:"score,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// NewReport describes a town, its building choices and its card. card may be
// nil when scoring failed; err is then recorded instead.
func NewReport(runID string, town Town, cfg building.Config, card *engine.ScoreCard, err error) Report {
	r := Report{
		RunID:     runID,
		Town:      town.Name,
		Rows:      town.Grid.Rows(),
		Cols:      town.Grid.Cols(),
		Buildings: make(map[string]string, board.NumColors),
		Score:     card,
	}
	for _, c := range board.AllColors() {
		r.Buildings[c.String()] = cfg.Variant(c)
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// WriteReport writes reports to path as indented JSON.
func WriteReport(path string, reports []Report) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
