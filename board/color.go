package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Color is the category of a building. Every building belongs to exactly one.
type Color uint8

const (
	Black Color = iota
	Blue
	Gray
	Green
	Magenta
	Orange
	Red
	Yellow
)

// NumColors is the number of building colors.
const NumColors = 8

var colorNames = [NumColors]string{
	"black", "blue", "gray", "green", "magenta", "orange", "red", "yellow",
}

func (c Color) String() string {
	if int(c) < NumColors {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor resolves a color by its lower-case name.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// AllColors returns every color in declaration order.
func AllColors() []Color {
	colors := make([]Color, NumColors)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

// ColorSet is a bitmask over Color.
type ColorSet uint8

// NewColorSet returns the set holding the given colors.
func NewColorSet(colors ...Color) ColorSet {
	var s ColorSet
	for _, c := range colors {
		s = s.Add(c)
	}
	return s
}

// AllColorsSet holds every color.
const AllColorsSet ColorSet = 0xFF

func (s ColorSet) Has(c Color) bool {
	return s&(1<<c) != 0
}

func (s ColorSet) Add(c Color) ColorSet {
	return s | 1<<c
}

func (s ColorSet) Without(c Color) ColorSet {
	return s &^ (1 << c)
}

// Len returns the number of colors in the set.
func (s ColorSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

func (s ColorSet) Intersects(other ColorSet) bool {
	return s&other != 0
}

// Colors lists the members in declaration order.
func (s ColorSet) Colors() []Color {
	colors := make([]Color, 0, s.Len())
	for c := Color(0); c < NumColors; c++ {
		if s.Has(c) {
			colors = append(colors, c)
		}
	}
	return colors
}

func (s ColorSet) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Colors() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
