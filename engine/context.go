package engine

import (
	"fmt"
	"maps"
)

// ScoringContext holds every rule constant the scorers read. Values are
// plain integers so rule experiments only need a different table.
type ScoringContext struct {
	// Black
	BankPoints           int `json:"bank"`
	FactoryPoints        int `json:"factory"`
	TradingPostPoints    int `json:"trading_post"`
	WarehousePerResource int `json:"warehouse_per_resource"`

	// Blue
	CottageFedPoints int `json:"cottage_fed"`

	// Gray
	FountainPoints         int `json:"fountain"`
	FountainMinGroup       int `json:"fountain_min_group"`
	MillstonePoints        int `json:"millstone"`
	ShedPoints             int `json:"shed"`
	WellPerAdjacentCottage int `json:"well_per_adjacent_cottage"`

	// Green
	AlmshouseByCount    map[int]int `json:"almshouse_by_count"`
	AlmshouseDefault    int         `json:"almshouse_default"`
	TavernByCount       map[int]int `json:"tavern_by_count"`
	TavernDefault       int         `json:"tavern_default"`
	InnPoints           int         `json:"inn"`
	FeastHallPoints     int         `json:"feast_hall"`
	FeastHallLeadPoints int         `json:"feast_hall_lead"`

	// Magenta
	ArchitectsGuildPoints  int `json:"architects_guild"`
	ArchivePerType         int `json:"archive_per_type"`
	BarrettCastleFedPoints int `json:"barrett_castle_fed"`
	CathedralPoints        int `json:"cathedral_of_caterina"`
	FortIronweedPoints     int `json:"fort_ironweed"`
	GroveUniversityPoints  int `json:"grove_university"`
	MandrasPalacePerType   int `json:"mandras_palace_per_type"`
	SilvaForumPerBuilding  int `json:"silva_forum_per_building"`
	SkyBathsPerMissingType int `json:"sky_baths_per_missing_type"`

	// Orange
	AbbeyPoints       int `json:"abbey"`
	ChapelPerFed      int `json:"chapel_per_fed"`
	CloisterPerCorner int `json:"cloister_per_corner"`
	TemplePoints      int `json:"temple"`
	TempleMinFed      int `json:"temple_min_fed"`

	// Fed weights used by chapels and temples.
	FedCottageWeight int `json:"fed_cottage_weight"`
	FedCastleWeight  int `json:"fed_castle_weight"`

	// Yellow
	BakeryPoints   int `json:"bakery"`
	MarketPoints   int `json:"market"`
	TailorPoints   int `json:"tailor"`
	TheaterPerType int `json:"theater_per_type"`

	// Empty and resource cells.
	UnusedPenalty int `json:"unused_penalty"`
}

// DefaultScoringContext returns the standard rule constants.
func DefaultScoringContext() ScoringContext {
	return ScoringContext{
		BankPoints:           4,
		FactoryPoints:        0,
		TradingPostPoints:    1,
		WarehousePerResource: -1,

		CottageFedPoints: 3,

		FountainPoints:         2,
		FountainMinGroup:       2,
		MillstonePoints:        2,
		ShedPoints:             1,
		WellPerAdjacentCottage: 1,

		AlmshouseByCount:    map[int]int{0: 0, 1: -1, 2: 5, 3: -3, 4: 15, 5: -5},
		AlmshouseDefault:    26,
		TavernByCount:       map[int]int{0: 0, 1: 2, 2: 5, 3: 9, 4: 14},
		TavernDefault:       20,
		InnPoints:           3,
		FeastHallPoints:     2,
		FeastHallLeadPoints: 3,

		ArchitectsGuildPoints:  1,
		ArchivePerType:         1,
		BarrettCastleFedPoints: 5,
		CathedralPoints:        2,
		FortIronweedPoints:     7,
		GroveUniversityPoints:  3,
		MandrasPalacePerType:   2,
		SilvaForumPerBuilding:  1,
		SkyBathsPerMissingType: 2,

		AbbeyPoints:       3,
		ChapelPerFed:      1,
		CloisterPerCorner: 1,
		TemplePoints:      4,
		TempleMinFed:      2,

		FedCottageWeight: 1,
		FedCastleWeight:  2,

		BakeryPoints:   3,
		MarketPoints:   1,
		TailorPoints:   1,
		TheaterPerType: 1,

		UnusedPenalty: -1,
	}
}

// Clone returns a copy that shares no maps with c.
func (c ScoringContext) Clone() ScoringContext {
	out := c
	out.AlmshouseByCount = maps.Clone(c.AlmshouseByCount)
	out.TavernByCount = maps.Clone(c.TavernByCount)
	return out
}

// ValidationError represents a rule table problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validate returns a list of validation errors (empty = valid).
func (c ScoringContext) Validate() []ValidationError {
	var errors []ValidationError

	byCount := []struct {
		field string
		table map[int]int
	}{
		{"scoring.almshouse_by_count", c.AlmshouseByCount},
		{"scoring.tavern_by_count", c.TavernByCount},
	}
	for _, bc := range byCount {
		if v, ok := bc.table[0]; !ok || v != 0 {
			errors = append(errors, ValidationError{
				Field:   bc.field,
				Message: "count 0 must map to 0 points",
			})
		}
		for n := range bc.table {
			if n < 0 {
				errors = append(errors, ValidationError{
					Field:   bc.field,
					Message: fmt.Sprintf("negative count %d", n),
				})
			}
		}
	}

	if c.UnusedPenalty > 0 {
		errors = append(errors, ValidationError{
			Field:   "scoring.unused_penalty",
			Message: fmt.Sprintf("penalty must not be positive, got %d", c.UnusedPenalty),
		})
	}
	if c.TempleMinFed <= 0 {
		errors = append(errors, ValidationError{
			Field:   "scoring.temple_min_fed",
			Message: "threshold must be positive",
		})
	}
	if c.FountainMinGroup <= 0 {
		errors = append(errors, ValidationError{
			Field:   "scoring.fountain_min_group",
			Message: "minimum group size must be positive",
		})
	}

	return errors
}
