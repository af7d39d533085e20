package battleship

import (
	"errors"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

const (
	DefaultPlacementMaxAttempts = 2000
	DefaultMaxRegenerations     = 100
)

// Lengths of the ships every fleet is made of, 11 cells in total.
var FleetShipLengths = [...]int{3, 2, 2, 1, 1, 1, 1}

// Rand is a uniform integer source. IntN returns a value in [0, n).
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type PlacementOptions struct {
	// Attempts shared by all ships of one board
	MaxAttempts int

	// Whole boards thrown away before giving up
	MaxRegenerations int
}

func DefaultPlacementOptions() PlacementOptions {
	return PlacementOptions{
		MaxAttempts:      DefaultPlacementMaxAttempts,
		MaxRegenerations: DefaultMaxRegenerations,
	}
}

func randomShip(size, length int, rng Rand) Ship {
	origin := NewCell(rng.IntN(size), rng.IntN(size))
	return NewShip(origin, length, Orientation(rng.IntN(2)))
}

// GenerateFleet places FleetShipLengths on an empty board with random
// origins and orientations. A ship that does not fit is redrawn for the
// same slot. When the attempts of the whole fleet go over maxAttempts
// the board is dropped and ErrPlacementExhausted is returned.
func GenerateFleet(size int, rng Rand, maxAttempts int) (*Board, error) {
	if size < 1 {
		return nil, cerr.ErrInvalidGridSize(size, 1, GridSizeMax)
	}
	board := NewBoard(size)
	attempts := 0

	for _, length := range FleetShipLengths {
		for {
			attempts++
			if attempts > maxAttempts {
				return nil, cerr.ErrFleetPlacement(maxAttempts)
			}

			if err := board.PlaceShip(randomShip(size, length, rng)); err == nil {
				break
			}
		}
	}
	return board, nil
}

// NewRandomBoard keeps generating boards from scratch until one holds the
// whole fleet, giving up after opts.MaxRegenerations boards.
func NewRandomBoard(size int, rng Rand, opts PlacementOptions) (*Board, error) {
	for i := 0; i < opts.MaxRegenerations; i++ {
		board, err := GenerateFleet(size, rng, opts.MaxAttempts)
		if err == nil {
			return board, nil
		}
		if !errors.Is(err, cerr.ErrPlacementExhausted) {
			return nil, err
		}
	}
	return nil, cerr.ErrBoardRegeneration(opts.MaxRegenerations)
}
