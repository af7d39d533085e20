package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

func newScenarioBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard(6)
	require.NoError(t, b.PlaceShip(NewShip(NewCell(0, 0), 3, OrientationHorizontal)))
	return b
}

func TestShipCells(t *testing.T) {
	tests := []struct {
		name     string
		ship     Ship
		expected []Cell
	}{
		{
			name:     "horizontal walks x",
			ship:     NewShip(NewCell(0, 0), 3, OrientationHorizontal),
			expected: []Cell{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			name:     "vertical walks y",
			ship:     NewShip(NewCell(4, 1), 2, OrientationVertical),
			expected: []Cell{{4, 1}, {4, 2}},
		},
		{
			name:     "single cell",
			ship:     NewShip(NewCell(5, 5), 1, OrientationVertical),
			expected: []Cell{{5, 5}},
		},
		{
			name:     "negative length has no cells",
			ship:     NewShip(NewCell(2, 2), -2, OrientationHorizontal),
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.ship.Cells())
			for _, c := range test.expected {
				require.True(t, test.ship.Occupies(c))
			}
			require.Equal(t, test.ship.Length(), test.ship.Health())
		})
	}
}

func TestCheckBounds(t *testing.T) {
	b := NewBoard(6)
	require.True(t, b.CheckBounds(NewCell(0, 0)))
	require.True(t, b.CheckBounds(NewCell(5, 5)))
	require.False(t, b.CheckBounds(NewCell(6, 0)))
	require.False(t, b.CheckBounds(NewCell(0, 6)))
	require.False(t, b.CheckBounds(NewCell(-1, 3)))
}

func TestPlaceShip(t *testing.T) {
	tests := []struct {
		name string
		ship Ship
		ok   bool
	}{
		{name: "inside first ship buffer", ship: NewShip(NewCell(1, 1), 1, OrientationHorizontal), ok: false},
		{name: "diagonal to first ship", ship: NewShip(NewCell(3, 1), 1, OrientationHorizontal), ok: false},
		{name: "overlapping first ship", ship: NewShip(NewCell(2, 0), 2, OrientationVertical), ok: false},
		{name: "out of bounds", ship: NewShip(NewCell(4, 4), 3, OrientationHorizontal), ok: false},
		{name: "negative origin", ship: NewShip(NewCell(-1, 4), 1, OrientationHorizontal), ok: false},
		{name: "zero length", ship: NewShip(NewCell(5, 5), 0, OrientationHorizontal), ok: false},
		{name: "negative length", ship: NewShip(NewCell(4, 4), -1, OrientationVertical), ok: false},
		{name: "one cell gap", ship: NewShip(NewCell(4, 0), 2, OrientationVertical), ok: true},
		{name: "far corner", ship: NewShip(NewCell(3, 5), 3, OrientationHorizontal), ok: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b := newScenarioBoard(t)
			var err error
			require.NotPanics(t, func() { err = b.PlaceShip(test.ship) })
			if !test.ok {
				require.ErrorIs(t, err, cerr.ErrInvalidPlacement)
				require.Equal(t, 1, b.FleetSize())
				return
			}
			require.NoError(t, err)
			require.Equal(t, 2, b.FleetSize())
			for _, c := range test.ship.Cells() {
				require.Equal(t, CellStateShip, b.State(c))
			}
		})
	}
}

func TestPlaceShipLeavesBufferUnblocked(t *testing.T) {
	b := newScenarioBoard(t)
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			require.NotEqual(t, CellStateBlocked, b.State(NewCell(x, y)))
		}
	}
	require.False(t, b.IsTargeted(NewCell(1, 1)))
}

func TestShotScenario(t *testing.T) {
	b := newScenarioBoard(t)

	outcome, err := b.Shot(NewCell(0, 0))
	require.NoError(t, err)
	require.Equal(t, ShotOutcomeHit, outcome)
	require.Equal(t, 2, b.Fleet()[0].Health())

	_, err = b.Shot(NewCell(0, 0))
	require.ErrorIs(t, err, cerr.ErrAlreadyTargeted)
	require.Equal(t, 2, b.Fleet()[0].Health())

	outcome, err = b.Shot(NewCell(1, 0))
	require.NoError(t, err)
	require.Equal(t, ShotOutcomeHit, outcome)
	require.Equal(t, 1, b.Fleet()[0].Health())
	require.Equal(t, 0, b.SunkCount())

	outcome, err = b.Shot(NewCell(2, 0))
	require.NoError(t, err)
	require.Equal(t, ShotOutcomeSunk, outcome)
	require.Equal(t, 0, b.Fleet()[0].Health())
	require.Equal(t, 1, b.SunkCount())
	require.True(t, b.AllSunk())

	for x := 0; x <= 3; x++ {
		for y := 0; y <= 1; y++ {
			c := NewCell(x, y)
			if y == 0 && x <= 2 {
				require.Equal(t, CellStateHit, b.State(c), c.String())
				continue
			}
			require.Equal(t, CellStateBlocked, b.State(c), c.String())
			require.True(t, b.IsTargeted(c))
		}
	}
	require.Equal(t, CellStateEmpty, b.State(NewCell(4, 0)))
	require.Equal(t, CellStateEmpty, b.State(NewCell(0, 2)))

	_, err = b.Shot(NewCell(3, 1))
	require.ErrorIs(t, err, cerr.ErrAlreadyTargeted)
}

func TestShotKeepsEarlierMissInBuffer(t *testing.T) {
	b := newScenarioBoard(t)

	outcome, err := b.Shot(NewCell(1, 1))
	require.NoError(t, err)
	require.Equal(t, ShotOutcomeMiss, outcome)

	for _, c := range []Cell{{0, 0}, {1, 0}, {2, 0}} {
		_, err := b.Shot(c)
		require.NoError(t, err)
	}
	require.Equal(t, CellStateMiss, b.State(NewCell(1, 1)))
	require.Equal(t, CellStateBlocked, b.State(NewCell(0, 1)))
}

func TestShotOutOfBoundsLeavesBoardUnchanged(t *testing.T) {
	b := newScenarioBoard(t)
	before := b.Render(false)

	for _, c := range []Cell{{6, 6}, {-1, 0}, {0, 6}} {
		_, err := b.Shot(c)
		require.ErrorIs(t, err, cerr.ErrOutOfBounds)
	}
	require.Equal(t, before, b.Render(false))
	require.Equal(t, 3, b.Fleet()[0].Health())
}

func TestShotMiss(t *testing.T) {
	b := newScenarioBoard(t)

	outcome, err := b.Shot(NewCell(5, 5))
	require.NoError(t, err)
	require.Equal(t, ShotOutcomeMiss, outcome)
	require.False(t, outcome.KeepsTurn())
	require.Equal(t, CellStateMiss, b.State(NewCell(5, 5)))

	_, err = b.Shot(NewCell(5, 5))
	require.ErrorIs(t, err, cerr.ErrAlreadyTargeted)
}

func TestSunkCountIncrementsOncePerShip(t *testing.T) {
	b := NewBoard(6)
	require.NoError(t, b.PlaceShip(NewShip(NewCell(0, 0), 1, OrientationHorizontal)))
	require.NoError(t, b.PlaceShip(NewShip(NewCell(5, 5), 1, OrientationHorizontal)))

	outcome, err := b.Shot(NewCell(0, 0))
	require.NoError(t, err)
	require.Equal(t, ShotOutcomeSunk, outcome)
	require.Equal(t, 1, b.SunkCount())
	require.False(t, b.AllSunk())

	_, err = b.Shot(NewCell(0, 0))
	require.Error(t, err)
	require.Equal(t, 1, b.SunkCount())

	outcome, err = b.Shot(NewCell(5, 5))
	require.NoError(t, err)
	require.Equal(t, ShotOutcomeSunk, outcome)
	require.Equal(t, 2, b.SunkCount())
	require.True(t, b.AllSunk())
}

func TestFleetReturnsCopies(t *testing.T) {
	b := newScenarioBoard(t)
	fleet := b.Fleet()
	fleet[0].GotHit()

	require.Equal(t, 3, b.Fleet()[0].Health())
}

func TestFlatten(t *testing.T) {
	b := NewBoard(5)
	require.NoError(t, b.PlaceShip(NewShip(NewCell(1, 2), 2, OrientationVertical)))

	bits := b.Flatten()
	require.Len(t, bits, 25)
	for i, bit := range bits {
		x, y := i%5, i/5
		if x == 1 && (y == 2 || y == 3) {
			require.Equal(t, uint8(1), bit)
		} else {
			require.Equal(t, uint8(0), bit)
		}
	}
}
