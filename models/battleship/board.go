package battleship

import (
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

type ShotOutcome uint8

const (
	ShotOutcomeMiss ShotOutcome = iota
	ShotOutcomeHit
	ShotOutcomeSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotOutcomeHit:
		return "hit"
	case ShotOutcomeSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// KeepsTurn reports whether the shooting side fires again.
func (o ShotOutcome) KeepsTurn() bool {
	return o == ShotOutcomeHit || o == ShotOutcomeSunk
}

type Board struct {
	size  int
	grid  Grid
	fleet []*Ship

	// occupied cells of every ship plus their buffer
	placed cellSet

	// every cell fired at, plus the buffer of sunk ships
	targeted cellSet

	sunkCount int

	// Hides un-hit ships when the board is printed
	Foggy bool
}

func NewBoard(size int) *Board {
	return &Board{
		size:     size,
		grid:     NewGrid(size),
		fleet:    make([]*Ship, 0, len(FleetShipLengths)),
		placed:   make(cellSet, size*size),
		targeted: make(cellSet, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) CheckBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.size && c.Y >= 0 && c.Y < b.size
}

// State returns the state of an in-bound cell. Out-of-bound cells
// are reported as empty.
func (b *Board) State(c Cell) CellState {
	if !b.CheckBounds(c) {
		return CellStateEmpty
	}
	return b.grid[c.X][c.Y]
}

func (b *Board) SunkCount() int {
	return b.sunkCount
}

func (b *Board) FleetSize() int {
	return len(b.fleet)
}

func (b *Board) AllSunk() bool {
	return len(b.fleet) > 0 && b.sunkCount == len(b.fleet)
}

// Fleet returns copies of the ships in placement order.
func (b *Board) Fleet() []Ship {
	ships := make([]Ship, len(b.fleet))
	for i, sh := range b.fleet {
		ships[i] = *sh
	}
	return ships
}

func (b *Board) IsTargeted(c Cell) bool {
	return b.targeted.has(c)
}

// PlaceShip adds a copy of ship to the fleet. The ship must fit in the
// grid and must not touch, even diagonally, any ship placed before it.
func (b *Board) PlaceShip(ship Ship) error {
	if ship.length < 1 {
		return cerr.ErrShipPlacement(ship.origin.X, ship.origin.Y, ship.length, "ship must be at least one cell long")
	}
	cells := ship.Cells()
	for _, c := range cells {
		if !b.CheckBounds(c) {
			return cerr.ErrShipPlacement(ship.origin.X, ship.origin.Y, ship.length, "ship goes out of bounds")
		}
		if b.placed.has(c) {
			return cerr.ErrShipPlacement(ship.origin.X, ship.origin.Y, ship.length, "ship overlaps another ship or its buffer")
		}
	}

	owned := ship
	for _, c := range cells {
		b.grid[c.X][c.Y] = CellStateShip
		b.placed.add(c)
	}
	b.fleet = append(b.fleet, &owned)

	for _, c := range cells {
		for _, n := range c.Neighborhood() {
			if b.CheckBounds(n) {
				b.placed.add(n)
			}
		}
	}
	return nil
}

// Shot fires at c. Off-grid and repeated targets are rejected
// without changing the board.
func (b *Board) Shot(c Cell) (ShotOutcome, error) {
	if !b.CheckBounds(c) {
		return ShotOutcomeMiss, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	if b.targeted.has(c) {
		return ShotOutcomeMiss, cerr.ErrCellAlreadyTargeted(c.X, c.Y)
	}
	b.targeted.add(c)

	ship := b.shipAt(c)
	if ship == nil {
		b.grid[c.X][c.Y] = CellStateMiss
		return ShotOutcomeMiss, nil
	}

	b.grid[c.X][c.Y] = CellStateHit
	if !ship.GotHit() {
		return ShotOutcomeHit, nil
	}

	b.blockAround(ship)
	b.sunkCount++
	return ShotOutcomeSunk, nil
}

// Ships never overlap, so at most one can occupy c.
func (b *Board) shipAt(c Cell) *Ship {
	for _, sh := range b.fleet {
		if sh.Occupies(c) {
			return sh
		}
	}
	return nil
}

func (b *Board) blockAround(ship *Ship) {
	for _, c := range ship.Cells() {
		for _, n := range c.Neighborhood() {
			if !b.CheckBounds(n) || b.targeted.has(n) {
				continue
			}
			b.grid[n.X][n.Y] = CellStateBlocked
			b.targeted.add(n)
		}
	}
}

// Flatten returns the ship occupancy of the board row by row,
// 1 for a cell that belongs to a ship and 0 otherwise.
func (b *Board) Flatten() []uint8 {
	out := make([]uint8, 0, b.size*b.size)
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			var bit uint8
			if b.shipAt(Cell{X: x, Y: y}) != nil {
				bit = 1
			}
			out = append(out, bit)
		}
	}
	return out
}
