// Package building enumerates the scoring variants available to each building
// color and the per-game configuration that selects one variant per color.
package building

import (
	"fmt"

	"github.com/signalnine/townscore/board"
)

// BlackVariant selects the black building rule.
type BlackVariant uint8

const (
	Bank BlackVariant = iota
	Factory
	TradingPost
	Warehouse
)

// BlueVariant selects the blue building rule.
type BlueVariant uint8

const (
	Cottage BlueVariant = iota
)

// GrayVariant selects the gray building rule.
type GrayVariant uint8

const (
	Fountain GrayVariant = iota
	Millstone
	Shed
	Well
)

// GreenVariant selects the green building rule.
type GreenVariant uint8

const (
	Almshouse GreenVariant = iota
	FeastHall
	Inn
	Tavern
)

// MagentaVariant selects the monument in play.
type MagentaVariant uint8

const (
	ArchitectsGuild MagentaVariant = iota
	ArchiveOfTheSecondAge
	BarrettCastle
	CathedralOfCaterina
	FortIronweed
	GrandMausoleumOfTheRodina
	GroveUniversity
	MandrasPalace
	ObeliskOfTheCrescent
	OpaleyesWatch
	ShrineOfTheElderTree
	SilvaForum
	StatueOfTheBondmaker
	TheSkyBaths
	TheStarloom
)

// OrangeVariant selects the orange building rule.
type OrangeVariant uint8

const (
	Abbey OrangeVariant = iota
	Chapel
	Cloister
	Temple
)

// RedVariant selects the feeder rule.
type RedVariant uint8

const (
	Farm RedVariant = iota
	Granary
	Greenhouse
	Orchard
)

// YellowVariant selects the yellow building rule.
type YellowVariant uint8

const (
	Bakery YellowVariant = iota
	Market
	Tailor
	Theater
)

// Variant keys, as used in town files.
var (
	blackKeys   = []string{"bank", "factory", "trading-post", "warehouse"}
	blueKeys    = []string{"cottage"}
	grayKeys    = []string{"fountain", "millstone", "shed", "well"}
	greenKeys   = []string{"almshouse", "feast-hall", "inn", "tavern"}
	orangeKeys  = []string{"abbey", "chapel", "cloister", "temple"}
	redKeys     = []string{"farm", "granary", "greenhouse", "orchard"}
	yellowKeys  = []string{"bakery", "market", "tailor", "theater"}
	magentaKeys = []string{
		"architects-guild",
		"archive-of-the-second-age",
		"barrett-castle",
		"cathedral-of-caterina",
		"fort-ironweed",
		"grand-mausoleum-of-the-rodina",
		"grove-university",
		"mandras-palace",
		"obelisk-of-the-crescent",
		"opaleyes-watch",
		"shrine-of-the-elder-tree",
		"silva-forum",
		"statue-of-the-bondmaker",
		"the-sky-baths",
		"the-starloom",
	}
)

var keysByColor = map[board.Color][]string{
	board.Black:   blackKeys,
	board.Blue:    blueKeys,
	board.Gray:    grayKeys,
	board.Green:   greenKeys,
	board.Magenta: magentaKeys,
	board.Orange:  orangeKeys,
	board.Red:     redKeys,
	board.Yellow:  yellowKeys,
}

func key(keys []string, v uint8) string {
	if int(v) < len(keys) {
		return keys[v]
	}
	return fmt.Sprintf("unknown(%d)", v)
}

func lookup(keys []string, kind, name string) (uint8, error) {
	for i, k := range keys {
		if k == name {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s building %q", kind, name)
}

func (v BlackVariant) String() string   { return key(blackKeys, uint8(v)) }
func (v BlueVariant) String() string    { return key(blueKeys, uint8(v)) }
func (v GrayVariant) String() string    { return key(grayKeys, uint8(v)) }
func (v GreenVariant) String() string   { return key(greenKeys, uint8(v)) }
func (v MagentaVariant) String() string { return key(magentaKeys, uint8(v)) }
func (v OrangeVariant) String() string  { return key(orangeKeys, uint8(v)) }
func (v RedVariant) String() string     { return key(redKeys, uint8(v)) }
func (v YellowVariant) String() string  { return key(yellowKeys, uint8(v)) }

func (v BlackVariant) valid() bool   { return int(v) < len(blackKeys) }
func (v BlueVariant) valid() bool    { return int(v) < len(blueKeys) }
func (v GrayVariant) valid() bool    { return int(v) < len(grayKeys) }
func (v GreenVariant) valid() bool   { return int(v) < len(greenKeys) }
func (v MagentaVariant) valid() bool { return int(v) < len(magentaKeys) }
func (v OrangeVariant) valid() bool  { return int(v) < len(orangeKeys) }
func (v RedVariant) valid() bool     { return int(v) < len(redKeys) }
func (v YellowVariant) valid() bool  { return int(v) < len(yellowKeys) }
