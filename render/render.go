// Package render draws a scored town in the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/engine"
)

const cellWidth = 6 // glyph, fed marker, space, 3-wide points

// Renderer draws towns. The zero value renders with color.
type Renderer struct {
	NoColor bool
}

var palette = map[board.Color]color.Style{
	board.Black:   {color.FgDarkGray, color.OpBold},
	board.Blue:    {color.FgBlue, color.OpBold},
	board.Gray:    {color.FgWhite},
	board.Green:   {color.FgGreen, color.OpBold},
	board.Magenta: {color.FgMagenta, color.OpBold},
	board.Orange:  {color.FgLightRed},
	board.Red:     {color.FgRed, color.OpBold},
	board.Yellow:  {color.FgYellow, color.OpBold},
}

// Town renders g with the per-cell points of card.
func Town(w io.Writer, g *board.Grid, card *engine.ScoreCard) error {
	return Renderer{}.Town(w, g, card)
}

func (r Renderer) paint(c board.Color, s string) string {
	if r.NoColor {
		return s
	}
	return palette[c].Sprint(s)
}

func (r Renderer) signed(n int) string {
	s := fmt.Sprintf("%+3d", n)
	if n == 0 {
		s = fmt.Sprintf("%3d", n)
	}
	if r.NoColor {
		return s
	}
	switch {
	case n > 0:
		return color.FgLightGreen.Sprint(s)
	case n < 0:
		return color.FgLightRed.Sprint(s)
	}
	return color.FgDarkGray.Sprint(s)
}

// cell renders one cell: @ for a building, . for a resource, blank for
// empty, * after a fed building, then its points.
func (r Renderer) cell(g *board.Grid, i int, points engine.Points, fed board.IndexSet) string {
	cell := g.Cell(i)
	glyph := " "
	switch cell.Kind() {
	case board.CellBuilding:
		c, _ := cell.Color()
		glyph = r.paint(c, "@")
	case board.CellResource:
		glyph = "."
	}

	mark := " "
	if fed.Has(i) {
		mark = "*"
	}
	return glyph + mark + " " + r.signed(points[i])
}

// Town renders a boxed grid followed by the category summary.
func (r Renderer) Town(w io.Writer, g *board.Grid, card *engine.ScoreCard) error {
	var sb strings.Builder
	points := card.Flatten()
	fed := card.Fed()

	border := strings.Repeat("─", g.Cols()*(cellWidth+1)+1)
	sb.WriteString("┌" + border + "┐\n")
	for row := 0; row < g.Rows(); row++ {
		sb.WriteString("│ ")
		for col := 0; col < g.Cols(); col++ {
			sb.WriteString(r.cell(g, g.Index(row, col), points, fed))
			sb.WriteString(" ")
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("└" + border + "┘\n")

	r.summary(&sb, card)
	_, err := io.WriteString(w, sb.String())
	return err
}

// Summary writes only the per-category totals.
func (r Renderer) Summary(w io.Writer, card *engine.ScoreCard) error {
	var sb strings.Builder
	r.summary(&sb, card)
	_, err := io.WriteString(w, sb.String())
	return err
}

func (r Renderer) summary(sb *strings.Builder, card *engine.ScoreCard) {
	for _, c := range board.AllColors() {
		fmt.Fprintf(sb, "  %s %s\n", r.paint(c, fmt.Sprintf("%-8s", c)), r.signed(card.Color(c)))
	}
	fmt.Fprintf(sb, "  %-8s %s\n", "unused", r.signed(card.Unused()))
	fmt.Fprintf(sb, "  %-8s %s\n", "total", r.signed(card.Total()))
}
