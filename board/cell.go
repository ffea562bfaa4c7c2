package board

import "fmt"

// CellKind tags what a cell holds.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellResource
	CellBuilding
)

// Cell is one square of a town: empty, a raw resource, or a building.
// Buildings may hold stored resources up to a capacity (warehouses).
type Cell struct {
	kind      CellKind
	resource  Resource
	color     Color
	resources []Resource
	capacity  int
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// ResourceCell returns a cell holding a raw resource.
func ResourceCell(r Resource) Cell {
	return Cell{kind: CellResource, resource: r}
}

// Building returns a cell holding a building of color c.
func Building(c Color) Cell {
	return Cell{kind: CellBuilding, color: c}
}

// BuildingWithResource returns a building carrying a single resource.
func BuildingWithResource(c Color, r Resource) Cell {
	return Cell{kind: CellBuilding, color: c, resources: []Resource{r}, capacity: 1}
}

// BuildingWithResources returns a building storing resources up to capacity.
func BuildingWithResources(c Color, rs []Resource, capacity int) Cell {
	if len(rs) > capacity {
		panic(fmt.Sprintf("board: %d resources exceed capacity %d", len(rs), capacity))
	}
	stored := make([]Resource, len(rs))
	copy(stored, rs)
	return Cell{kind: CellBuilding, color: c, resources: stored, capacity: capacity}
}

func (c Cell) Kind() CellKind {
	return c.kind
}

// Color returns the building color, or false when the cell holds no building.
func (c Cell) Color() (Color, bool) {
	if c.kind != CellBuilding {
		return 0, false
	}
	return c.color, true
}

// Is reports whether the cell holds a building of the given color.
func (c Cell) Is(color Color) bool {
	return c.kind == CellBuilding && c.color == color
}

// IsUnused reports whether the cell is empty or holds a raw resource.
func (c Cell) IsUnused() bool {
	return c.kind != CellBuilding
}

// Resource returns the raw resource of a resource cell.
func (c Cell) Resource() (Resource, bool) {
	if c.kind != CellResource {
		return 0, false
	}
	return c.resource, true
}

// Resources returns the resources stored in a building.
func (c Cell) Resources() []Resource {
	return c.resources
}

// Capacity returns how many resources a building can store.
func (c Cell) Capacity() int {
	return c.capacity
}

func (c Cell) String() string {
	switch c.kind {
	case CellResource:
		return c.resource.String()
	case CellBuilding:
		if len(c.resources) > 0 {
			return fmt.Sprintf("%s%v", c.color, c.resources)
		}
		return c.color.String()
	default:
		return "empty"
	}
}
