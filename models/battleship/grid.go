package battleship

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateShip
	CellStateHit
	CellStateMiss

	// Buffer around a sunk ship. Such cells cannot hold a ship
	// and count as already targeted.
	CellStateBlocked
)

func (s CellState) String() string {
	switch s {
	case CellStateShip:
		return "ship"
	case CellStateHit:
		return "hit"
	case CellStateMiss:
		return "miss"
	case CellStateBlocked:
		return "blocked"
	default:
		return "empty"
	}
}

// Grid is indexed as grid[x][y].
type Grid [][]CellState

// Creates a new default grid
// All indexes are zero/CellStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]CellState, gridSize)
	}
	return grid
}

type cellSet map[Cell]struct{}

func (s cellSet) has(c Cell) bool {
	_, prs := s[c]
	return prs
}

func (s cellSet) add(c Cell) {
	s[c] = struct{}{}
}
