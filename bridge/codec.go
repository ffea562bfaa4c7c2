package bridge

import (
	"fmt"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/signalnine/townscore/bindings/townscore"
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
	"github.com/signalnine/townscore/engine"
)

// MaxDimension is the largest row count, column count or building capacity
// the wire format carries.
const MaxDimension = math.MaxUint8

// EncodeTown serializes g as a Town table. It panics when a dimension or a
// capacity exceeds MaxDimension.
func EncodeTown(builder *flatbuffers.Builder, name string, g *board.Grid) flatbuffers.UOffsetT {
	if g.Rows() > MaxDimension || g.Cols() > MaxDimension {
		panic(fmt.Sprintf("bridge: town %q is %dx%d, the wire limit is %dx%d",
			name, g.Rows(), g.Cols(), MaxDimension, MaxDimension))
	}
	nameOffset := builder.CreateString(name)

	// Cell tables must exist before the vector that holds them
	cellOffsets := make([]flatbuffers.UOffsetT, g.Len())
	for i := 0; i < g.Len(); i++ {
		cellOffsets[i] = encodeCell(builder, g.Cell(i))
	}

	townscore.TownStartCellsVector(builder, len(cellOffsets))
	for i := len(cellOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(cellOffsets[i])
	}
	cells := builder.EndVector(len(cellOffsets))

	townscore.TownStart(builder)
	townscore.TownAddName(builder, nameOffset)
	townscore.TownAddRows(builder, byte(g.Rows()))
	townscore.TownAddCols(builder, byte(g.Cols()))
	townscore.TownAddCells(builder, cells)
	return townscore.TownEnd(builder)
}

func encodeCell(builder *flatbuffers.Builder, cell board.Cell) flatbuffers.UOffsetT {
	if cell.Capacity() > MaxDimension {
		panic(fmt.Sprintf("bridge: capacity %d exceeds the wire limit %d", cell.Capacity(), MaxDimension))
	}
	var resources flatbuffers.UOffsetT
	stored := cell.Resources()
	if len(stored) > 0 {
		townscore.CellStartResourcesVector(builder, len(stored))
		for i := len(stored) - 1; i >= 0; i-- {
			builder.PrependByte(byte(stored[i]))
		}
		resources = builder.EndVector(len(stored))
	}

	townscore.CellStart(builder)
	townscore.CellAddKind(builder, byte(cell.Kind()))
	switch cell.Kind() {
	case board.CellResource:
		r, _ := cell.Resource()
		townscore.CellAddValue(builder, byte(r))
	case board.CellBuilding:
		c, _ := cell.Color()
		townscore.CellAddValue(builder, byte(c))
		townscore.CellAddCapacity(builder, byte(cell.Capacity()))
	}
	if resources > 0 {
		townscore.CellAddResources(builder, resources)
	}
	return townscore.CellEnd(builder)
}

// DecodeTown rebuilds a grid from a Town table.
func DecodeTown(t *townscore.Town) (*board.Grid, error) {
	name := string(t.Name())
	rows, cols := int(t.Rows()), int(t.Cols())
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("town %q: invalid dimensions %dx%d", name, rows, cols)
	}
	if n := t.CellsLength(); n != rows*cols {
		return nil, fmt.Errorf("town %q: %d cells for a %dx%d grid", name, n, rows, cols)
	}

	g := board.New(rows, cols)
	cell := new(townscore.Cell)
	for i := 0; i < g.Len(); i++ {
		t.Cells(cell, i)
		c, err := decodeCell(cell)
		if err != nil {
			return nil, fmt.Errorf("town %q: cell %d: %w", name, i, err)
		}
		g.Place(i, c)
	}
	return g, nil
}

func decodeCell(c *townscore.Cell) (board.Cell, error) {
	switch board.CellKind(c.Kind()) {
	case board.CellEmpty:
		return board.Empty(), nil

	case board.CellResource:
		if int(c.Value()) >= board.NumResources {
			return board.Cell{}, fmt.Errorf("unknown resource %d", c.Value())
		}
		return board.ResourceCell(board.Resource(c.Value())), nil

	case board.CellBuilding:
		if int(c.Value()) >= board.NumColors {
			return board.Cell{}, fmt.Errorf("unknown color %d", c.Value())
		}
		color := board.Color(c.Value())
		if c.ResourcesLength() == 0 && c.Capacity() == 0 {
			return board.Building(color), nil
		}

		stored := make([]board.Resource, c.ResourcesLength())
		for j := range stored {
			r := c.Resources(j)
			if int(r) >= board.NumResources {
				return board.Cell{}, fmt.Errorf("unknown resource %d", r)
			}
			stored[j] = board.Resource(r)
		}
		capacity := int(c.Capacity())
		if len(stored) > capacity {
			return board.Cell{}, fmt.Errorf("%d resources exceed capacity %d", len(stored), capacity)
		}
		return board.BuildingWithResources(color, stored, capacity), nil
	}
	return board.Cell{}, fmt.Errorf("unknown cell kind %d", c.Kind())
}

// encodeBuildings lists the configured variant key for every color.
func encodeBuildings(builder *flatbuffers.Builder, cfg building.Config) flatbuffers.UOffsetT {
	colors := board.AllColors()
	keys := make([]flatbuffers.UOffsetT, len(colors))
	for i, c := range colors {
		keys[i] = builder.CreateString(cfg.Variant(c))
	}

	townscore.ScoreRequestStartBuildingsVector(builder, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(keys[i])
	}
	return builder.EndVector(len(keys))
}

func decodeBuildings(req *townscore.ScoreRequest) (building.Config, error) {
	cfg := building.DefaultConfig()
	n := req.BuildingsLength()
	if n > board.NumColors {
		return cfg, fmt.Errorf("%d building keys for %d colors", n, board.NumColors)
	}
	for j := 0; j < n; j++ {
		key := string(req.Buildings(j))
		if key == "" {
			continue
		}
		if err := cfg.Set(board.Color(j), key); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// encodeCard writes a ScoreResponse for card, or one carrying only errMsg.
func encodeCard(builder *flatbuffers.Builder, cellCount int, card *engine.ScoreCard, durationNs uint64, errMsg string) flatbuffers.UOffsetT {
	if card == nil {
		msg := builder.CreateString(errMsg)
		townscore.ScoreResponseStart(builder)
		townscore.ScoreResponseAddDurationNs(builder, durationNs)
		townscore.ScoreResponseAddError(builder, msg)
		return townscore.ScoreResponseEnd(builder)
	}

	colors := board.AllColors()
	categories := make([]int32, 0, len(colors)+1)
	for _, c := range colors {
		categories = append(categories, int32(card.Color(c)))
	}
	categories = append(categories, int32(card.Unused()))

	townscore.ScoreResponseStartCategoriesVector(builder, len(categories))
	for i := len(categories) - 1; i >= 0; i-- {
		builder.PrependInt32(categories[i])
	}
	categoriesVec := builder.EndVector(len(categories))

	points := card.Flatten()
	townscore.ScoreResponseStartCellPointsVector(builder, cellCount)
	for i := cellCount - 1; i >= 0; i-- {
		builder.PrependInt32(int32(points[i]))
	}
	pointsVec := builder.EndVector(cellCount)

	// Decoded towns have at most MaxDimension^2 cells, so indices fit in uint16.
	fed := card.Fed().Sorted()
	townscore.ScoreResponseStartFedVector(builder, len(fed))
	for i := len(fed) - 1; i >= 0; i-- {
		builder.PrependUint16(uint16(fed[i]))
	}
	fedVec := builder.EndVector(len(fed))

	townscore.ScoreResponseStart(builder)
	townscore.ScoreResponseAddTotal(builder, int32(card.Total()))
	townscore.ScoreResponseAddCategories(builder, categoriesVec)
	townscore.ScoreResponseAddCellPoints(builder, pointsVec)
	townscore.ScoreResponseAddFed(builder, fedVec)
	townscore.ScoreResponseAddCandidates(builder, uint32(card.Candidates()))
	townscore.ScoreResponseAddDurationNs(builder, durationNs)
	return townscore.ScoreResponseEnd(builder)
}
