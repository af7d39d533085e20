package battleship

import (
	"fmt"
	"strings"
)

const (
	GlyphEmpty   = "o"
	GlyphShip    = "■"
	GlyphHit     = "X"
	GlyphMiss    = "T"
	GlyphBlocked = "."
)

func glyph(state CellState, foggy bool) string {
	switch state {
	case CellStateShip:
		if foggy {
			return GlyphEmpty
		}
		return GlyphShip
	case CellStateHit:
		return GlyphHit
	case CellStateMiss:
		return GlyphMiss
	case CellStateBlocked:
		return GlyphBlocked
	default:
		return GlyphEmpty
	}
}

// Render draws the board with x as columns and y as rows:
//
//	  | 0 | 1 | 2 |
//	0 | o | ■ | o |
//
// With foggy set, ships that were not hit are drawn as empty water.
func (b *Board) Render(foggy bool) string {
	var sb strings.Builder

	sb.WriteString("  |")
	for x := 0; x < b.size; x++ {
		fmt.Fprintf(&sb, " %d |", x)
	}
	sb.WriteString("\n")

	for y := 0; y < b.size; y++ {
		fmt.Fprintf(&sb, "%d |", y)
		for x := 0; x < b.size; x++ {
			fmt.Fprintf(&sb, " %s |", glyph(b.grid[x][y], foggy))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) String() string {
	return b.Render(b.Foggy)
}

// RenderPair prints two boards next to each other, each under its title.
// Every board is drawn with its own Foggy setting.
func RenderPair(left, right *Board, leftTitle, rightTitle string) string {
	leftLines := strings.Split(strings.TrimRight(left.String(), "\n"), "\n")
	rightLines := strings.Split(strings.TrimRight(right.String(), "\n"), "\n")

	width := len([]rune(leftTitle))
	for _, l := range leftLines {
		width = max(width, len([]rune(l)))
	}

	var sb strings.Builder
	writeRow := func(l, r string) {
		sb.WriteString(l)
		sb.WriteString(strings.Repeat(" ", width-len([]rune(l))+4))
		sb.WriteString(r)
		sb.WriteString("\n")
	}

	writeRow(leftTitle, rightTitle)
	for i := 0; i < max(len(leftLines), len(rightLines)); i++ {
		var l, r string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		writeRow(l, r)
	}
	return sb.String()
}
