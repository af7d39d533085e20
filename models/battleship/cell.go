package battleship

import "fmt"

// Offsets of a cell's 3x3 neighbourhood, the cell itself included.
var neighborhoodOffsets = [9][2]int{
	{0, 0}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Neighborhood returns the cell and its 8 surrounding cells.
// Cells outside the grid are included; callers filter them.
func (c Cell) Neighborhood() []Cell {
	cells := make([]Cell, 0, len(neighborhoodOffsets))
	for _, off := range neighborhoodOffsets {
		cells = append(cells, Cell{X: c.X + off[0], Y: c.Y + off[1]})
	}
	return cells
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
