package building

import (
	"fmt"
	"strings"

	"github.com/signalnine/townscore/board"
)

// Config picks one variant per color for a game. It is built once and only
// read by scoring.
type Config struct {
	Black   BlackVariant
	Blue    BlueVariant
	Gray    GrayVariant
	Green   GreenVariant
	Magenta MagentaVariant
	Orange  OrangeVariant
	Red     RedVariant
	Yellow  YellowVariant
}

// DefaultConfig returns the introductory building set.
func DefaultConfig() Config {
	return Config{
		Black:   Factory,
		Blue:    Cottage,
		Gray:    Well,
		Green:   Tavern,
		Magenta: SilvaForum,
		Orange:  Chapel,
		Red:     Farm,
		Yellow:  Theater,
	}
}

// Set assigns the variant named key to color.
func (c *Config) Set(color board.Color, key string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	keys, ok := keysByColor[color]
	if !ok {
		return fmt.Errorf("unknown color %v", color)
	}
	v, err := lookup(keys, color.String(), key)
	if err != nil {
		return err
	}

	switch color {
	case board.Black:
		c.Black = BlackVariant(v)
	case board.Blue:
		c.Blue = BlueVariant(v)
	case board.Gray:
		c.Gray = GrayVariant(v)
	case board.Green:
		c.Green = GreenVariant(v)
	case board.Magenta:
		c.Magenta = MagentaVariant(v)
	case board.Orange:
		c.Orange = OrangeVariant(v)
	case board.Red:
		c.Red = RedVariant(v)
	case board.Yellow:
		c.Yellow = YellowVariant(v)
	}
	return nil
}

// Keys lists the variant keys available to color.
func Keys(color board.Color) []string {
	return append([]string(nil), keysByColor[color]...)
}

// Variant returns the key of the variant configured for color.
func (c Config) Variant(color board.Color) string {
	switch color {
	case board.Black:
		return c.Black.String()
	case board.Blue:
		return c.Blue.String()
	case board.Gray:
		return c.Gray.String()
	case board.Green:
		return c.Green.String()
	case board.Magenta:
		return c.Magenta.String()
	case board.Orange:
		return c.Orange.String()
	case board.Red:
		return c.Red.String()
	case board.Yellow:
		return c.Yellow.String()
	}
	return ""
}

// Codes packs the variants into one byte per color, in color order.
func (c Config) Codes() [board.NumColors]uint8 {
	return [board.NumColors]uint8{
		uint8(c.Black), uint8(c.Blue), uint8(c.Gray), uint8(c.Green),
		uint8(c.Magenta), uint8(c.Orange), uint8(c.Red), uint8(c.Yellow),
	}
}

// FromCodes is the inverse of Codes. The result may need Validate.
func FromCodes(codes [board.NumColors]uint8) Config {
	return Config{
		Black:   BlackVariant(codes[board.Black]),
		Blue:    BlueVariant(codes[board.Blue]),
		Gray:    GrayVariant(codes[board.Gray]),
		Green:   GreenVariant(codes[board.Green]),
		Magenta: MagentaVariant(codes[board.Magenta]),
		Orange:  OrangeVariant(codes[board.Orange]),
		Red:     RedVariant(codes[board.Red]),
		Yellow:  YellowVariant(codes[board.Yellow]),
	}
}

// ValidationError describes one invalid field.
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
func (c Config) Validate() []ValidationError {
	var errors []ValidationError
	check := func(ok bool, color board.Color, v uint8) {
		if !ok {
			errors = append(errors, ValidationError{
				Field:   "buildings." + color.String(),
				Message: fmt.Sprintf("variant code %d out of range", v),
			})
		}
	}
	check(c.Black.valid(), board.Black, uint8(c.Black))
	check(c.Blue.valid(), board.Blue, uint8(c.Blue))
	check(c.Gray.valid(), board.Gray, uint8(c.Gray))
	check(c.Green.valid(), board.Green, uint8(c.Green))
	check(c.Magenta.valid(), board.Magenta, uint8(c.Magenta))
	check(c.Orange.valid(), board.Orange, uint8(c.Orange))
	check(c.Red.valid(), board.Red, uint8(c.Red))
	check(c.Yellow.valid(), board.Yellow, uint8(c.Yellow))
	return errors
}

func (c Config) String() string {
	parts := make([]string, 0, board.NumColors)
	for _, color := range board.AllColors() {
		parts = append(parts, color.String()+"="+c.Variant(color))
	}
	return strings.Join(parts, " ")
}
