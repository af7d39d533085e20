package battleship

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

type Ship struct {
	origin      Cell
	length      int
	orientation Orientation
	health      int
}

func NewShip(origin Cell, length int, orientation Orientation) Ship {
	return Ship{
		origin:      origin,
		length:      length,
		orientation: orientation,
		health:      length,
	}
}

func (sh *Ship) Origin() Cell {
	return sh.origin
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Health() int {
	return sh.health
}

// Cells derives the occupied cells from the origin, walking along
// the X axis for horizontal ships and the Y axis for vertical ones.
// A ship shorter than one cell has none.
func (sh *Ship) Cells() []Cell {
	if sh.length < 1 {
		return nil
	}
	cells := make([]Cell, 0, sh.length)
	for i := 0; i < sh.length; i++ {
		c := sh.origin
		if sh.orientation == OrientationHorizontal {
			c.X += i
		} else {
			c.Y += i
		}
		cells = append(cells, c)
	}
	return cells
}

func (sh *Ship) Occupies(c Cell) bool {
	switch sh.orientation {
	case OrientationHorizontal:
		return c.Y == sh.origin.Y && c.X >= sh.origin.X && c.X < sh.origin.X+sh.length
	default:
		return c.X == sh.origin.X && c.Y >= sh.origin.Y && c.Y < sh.origin.Y+sh.length
	}
}

// GotHit takes one point of health and reports whether the ship sank
// with this hit. A sunk ship stays at zero.
func (sh *Ship) GotHit() bool {
	if sh.health == 0 {
		return false
	}
	sh.health--
	return sh.health == 0
}

func (sh *Ship) IsSunk() bool {
	return sh.health == 0
}
