package boardgen

import (
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
)

// Example is a hand-built town that shows off one rule.
type Example struct {
	Name        string
	Description string
	Config      building.Config
	Town        *board.Grid
	Other       *board.Grid // opposing town, set when feast halls need one
}

func place(g *board.Grid, c board.Color, idxs ...int) {
	for _, i := range idxs {
		g.Place(i, board.Building(c))
	}
}

// CreateTempleExample creates two temples that both touch the same pair of
// cottages; one farm can feed exactly that pair.
func CreateTempleExample() Example {
	cfg := building.DefaultConfig()
	cfg.Orange = building.Temple

	g := board.New(4, 4)
	place(g, board.Blue, 1, 4)
	place(g, board.Orange, 0, 5)
	place(g, board.Red, 15)

	return Example{
		Name:        "temples",
		Description: "one farm, two temples sharing two cottages",
		Config:      cfg,
		Town:        g,
	}
}

// CreateGranaryExample creates a granary feeding along its row and column.
func CreateGranaryExample() Example {
	cfg := building.DefaultConfig()
	cfg.Red = building.Granary

	g := board.New(4, 4)
	place(g, board.Red, 5)
	place(g, board.Blue, 0, 4, 7, 9, 13, 15)
	place(g, board.Orange, 8)

	return Example{
		Name:        "granary",
		Description: "a granary feeding its row and column, no search",
		Config:      cfg,
		Town:        g,
	}
}

// CreateGreenhouseExample creates three cottage clusters competing for one
// greenhouse, with temples and a castle shifting the best choice.
func CreateGreenhouseExample() Example {
	cfg := building.DefaultConfig()
	cfg.Red = building.Greenhouse
	cfg.Orange = building.Temple
	cfg.Magenta = building.BarrettCastle

	g := board.New(6, 6)
	place(g, board.Orange, 0, 25, 30, 32)
	place(g, board.Blue, 1, 6, 7, 4, 5, 10, 11, 29, 34, 35)
	place(g, board.Magenta, 28, 31)
	place(g, board.Red, 3)

	return Example{
		Name:        "greenhouse",
		Description: "one greenhouse, four feedable groups, temples around a castle",
		Config:      cfg,
		Town:        g,
	}
}

// CreateFeastHallExample creates two towns for a feast hall comparison.
func CreateFeastHallExample() Example {
	cfg := building.DefaultConfig()
	cfg.Green = building.FeastHall

	g := board.New(4, 4)
	place(g, board.Green, 0, 5, 10)
	place(g, board.Blue, 1, 2)
	place(g, board.Red, 3)

	other := board.New(4, 4)
	place(other, board.Green, 0, 15)
	place(other, board.Blue, 5)

	return Example{
		Name:        "feast-hall",
		Description: "three feast halls against an opponent with two",
		Config:      cfg,
		Town:        g,
		Other:       other,
	}
}

// CreateCathedralExample creates a sparse town whose empty cells cost
// nothing once the Cathedral of Caterina stands.
func CreateCathedralExample() Example {
	cfg := building.DefaultConfig()
	cfg.Magenta = building.CathedralOfCaterina
	cfg.Black = building.Warehouse

	g := board.New(4, 4)
	place(g, board.Magenta, 6)
	g.Place(9, board.BuildingWithResources(board.Black, []board.Resource{board.Wood, board.Stone}, 3))
	g.Place(0, board.ResourceCell(board.Wheat))

	return Example{
		Name:        "cathedral",
		Description: "a near-empty town that pays no unused penalty",
		Config:      cfg,
		Town:        g,
	}
}

// CreateTailorExample creates tailors filling the four center cells.
func CreateTailorExample() Example {
	cfg := building.DefaultConfig()
	cfg.Yellow = building.Tailor

	g := board.New(4, 4)
	place(g, board.Yellow, 0, 5, 6, 9, 10)

	return Example{
		Name:        "tailors",
		Description: "five tailors, four in the center",
		Config:      cfg,
		Town:        g,
	}
}

// GetExamples returns all hand-built examples.
func GetExamples() []Example {
	return []Example{
		CreateTempleExample(),
		CreateGranaryExample(),
		CreateGreenhouseExample(),
		CreateFeastHallExample(),
		CreateCathedralExample(),
		CreateTailorExample(),
	}
}

// Lookup returns the example called name.
func Lookup(name string) (Example, bool) {
	for _, ex := range GetExamples() {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}

// Names lists the example names in order.
func Names() []string {
	examples := GetExamples()
	names := make([]string, len(examples))
	for i, ex := range examples {
		names[i] = ex.Name
	}
	return names
}
