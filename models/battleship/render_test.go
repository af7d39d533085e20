package battleship

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	b := NewBoard(3)
	require.NoError(t, b.PlaceShip(NewShip(NewCell(0, 0), 1, OrientationHorizontal)))
	require.NoError(t, b.PlaceShip(NewShip(NewCell(2, 2), 1, OrientationHorizontal)))

	_, err := b.Shot(NewCell(2, 2))
	require.NoError(t, err)
	_, err = b.Shot(NewCell(0, 2))
	require.NoError(t, err)

	expected := "" +
		"  | 0 | 1 | 2 |\n" +
		"0 | ■ | o | o |\n" +
		"1 | o | . | . |\n" +
		"2 | T | . | X |\n"
	require.Equal(t, expected, b.Render(false))

	fogged := strings.ReplaceAll(expected, GlyphShip, GlyphEmpty)
	require.Equal(t, fogged, b.Render(true))
}

func TestRenderUsesFoggyField(t *testing.T) {
	b := NewBoard(5)
	require.NoError(t, b.PlaceShip(NewShip(NewCell(1, 1), 3, OrientationVertical)))

	require.Contains(t, b.String(), GlyphShip)
	b.Foggy = true
	require.NotContains(t, b.String(), GlyphShip)
}

func TestRenderPair(t *testing.T) {
	own := NewBoard(5)
	require.NoError(t, own.PlaceShip(NewShip(NewCell(0, 0), 2, OrientationHorizontal)))
	opponent := NewBoard(5)
	require.NoError(t, opponent.PlaceShip(NewShip(NewCell(0, 0), 2, OrientationHorizontal)))
	opponent.Foggy = true

	lines := strings.Split(strings.TrimRight(RenderPair(own, opponent, "Player board:", "Computer board:"), "\n"), "\n")
	require.Len(t, lines, 7)
	require.True(t, strings.HasPrefix(lines[0], "Player board:"))
	require.True(t, strings.HasSuffix(lines[0], "Computer board:"))

	// own ships are shown, the opponent's are not
	require.Equal(t, 2, strings.Count(lines[2], GlyphShip))
}
