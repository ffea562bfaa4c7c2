package townfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// fileRoot holds the top-level blocks of a town file.
type fileRoot struct {
	Buildings *buildingsBlock `hcl:"buildings,block"`
	Scoring   *scoringBlock   `hcl:"scoring,block"`
	Towns     []*townBlock    `hcl:"town,block"`
}

type buildingsBlock struct {
	Black   *string `hcl:"black,optional"`
	Blue    *string `hcl:"blue,optional"`
	Gray    *string `hcl:"gray,optional"`
	Green   *string `hcl:"green,optional"`
	Magenta *string `hcl:"magenta,optional"`
	Orange  *string `hcl:"orange,optional"`
	Red     *string `hcl:"red,optional"`
	Yellow  *string `hcl:"yellow,optional"`
}

type scoringBlock struct {
	Remain hcl.Body `hcl:",remain"`
}

type townBlock struct {
	Name   string   `hcl:"name,label"`
	Rows   int      `hcl:"rows"`
	Cols   int      `hcl:"cols"`
	Remain hcl.Body `hcl:",remain"`
}

// townContents is decoded after rows and cols are known, so placements can
// use idx() and the rows/cols variables.
type townContents struct {
	Buildings []*buildingBlock `hcl:"building,block"`
	Resources []*resourceBlock `hcl:"resource,block"`
}

type buildingBlock struct {
	Color     string   `hcl:"color,label"`
	At        []int    `hcl:"at"`
	Resources []string `hcl:"resources,optional"`
	Capacity  *int     `hcl:"capacity,optional"`
}

type resourceBlock struct {
	Kind string `hcl:"kind,label"`
	At   []int  `hcl:"at"`
}

// apply sets every variant named in the block.
func (b *buildingsBlock) apply(cfg *building.Config) error {
	choices := []struct {
		color board.Color
		key   *string
	}{
		{board.Black, b.Black},
		{board.Blue, b.Blue},
		{board.Gray, b.Gray},
		{board.Green, b.Green},
		{board.Magenta, b.Magenta},
		{board.Orange, b.Orange},
		{board.Red, b.Red},
		{board.Yellow, b.Yellow},
	}
	for _, c := range choices {
		if c.key == nil {
			continue
		}
		if err := cfg.Set(c.color, *c.key); err != nil {
			return fmt.Errorf("buildings.%s: %w", c.color, err)
		}
	}
	return nil
}

// evalContext exposes the grid size and the idx(row, col) helper.
func evalContext(rows, cols int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"rows": cty.NumberIntVal(int64(rows)),
			"cols": cty.NumberIntVal(int64(cols)),
		},
		Functions: map[string]function.Function{
			"idx": indexFunc(rows, cols),
		},
	}
}

// indexFunc converts a (row, col) pair to a row-major cell index.
func indexFunc(rows, cols int) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "row", Type: cty.Number},
			{Name: "col", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var row, col int
			if err := gocty.FromCtyValue(args[0], &row); err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			if err := gocty.FromCtyValue(args[1], &col); err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			if row < 0 || row >= rows || col < 0 || col >= cols {
				return cty.NilVal, fmt.Errorf("cell (%d, %d) is outside the %dx%d grid", row, col, rows, cols)
			}
			return cty.NumberIntVal(int64(row*cols + col)), nil
		},
	})
}

// build checks the size, decodes the placements and fills the grid.
func (tb *townBlock) build(cfg building.Config, sizes board.SizePolicy) (Town, error) {
	if err := sizes.Check(tb.Rows, tb.Cols); err != nil {
		return Town{}, err
	}

	var contents townContents
	if diags := gohcl.DecodeBody(tb.Remain, evalContext(tb.Rows, tb.Cols), &contents); diags.HasErrors() {
		return Town{}, diags
	}

	g := board.New(tb.Rows, tb.Cols)
	placed := make(map[int]struct{})
	put := func(i int, cell board.Cell) error {
		if i < 0 || i >= g.Len() {
			return fmt.Errorf("index %d is outside the %dx%d grid", i, tb.Rows, tb.Cols)
		}
		if _, dup := placed[i]; dup {
			return fmt.Errorf("cell %d placed twice", i)
		}
		placed[i] = struct{}{}
		g.Place(i, cell)
		return nil
	}

	for _, b := range contents.Buildings {
		cell, err := b.cell()
		if err != nil {
			return Town{}, err
		}
		for _, i := range b.At {
			if err := put(i, cell); err != nil {
				return Town{}, fmt.Errorf("building %q: %w", b.Color, err)
			}
		}
	}
	for _, r := range contents.Resources {
		res, err := board.ParseResource(r.Kind)
		if err != nil {
			return Town{}, err
		}
		for _, i := range r.At {
			if err := put(i, board.ResourceCell(res)); err != nil {
				return Town{}, fmt.Errorf("resource %q: %w", r.Kind, err)
			}
		}
	}

	// The four center cells only exist on even grids.
	if cfg.Yellow == building.Tailor && g.Count(board.Yellow) > 0 && (tb.Rows%2 != 0 || tb.Cols%2 != 0) {
		return Town{}, fmt.Errorf("tailors need even grid dimensions, got %dx%d", tb.Rows, tb.Cols)
	}

	return Town{Name: tb.Name, Grid: g}, nil
}

func (b *buildingBlock) cell() (board.Cell, error) {
	color, err := board.ParseColor(b.Color)
	if err != nil {
		return board.Cell{}, err
	}
	if len(b.Resources) == 0 && b.Capacity == nil {
		return board.Building(color), nil
	}

	stored := make([]board.Resource, 0, len(b.Resources))
	for _, name := range b.Resources {
		r, err := board.ParseResource(name)
		if err != nil {
			return board.Cell{}, fmt.Errorf("building %q: %w", b.Color, err)
		}
		stored = append(stored, r)
	}

	capacity := len(stored)
	if b.Capacity != nil {
		capacity = *b.Capacity
	}
	if len(stored) > capacity {
		return board.Cell{}, fmt.Errorf("building %q: %d resources exceed capacity %d", b.Color, len(stored), capacity)
	}
	return board.BuildingWithResources(color, stored, capacity), nil
}
