package battleship

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

// Player picks the next cell to fire at. The error is for hard
// failures only, such as a closed input; a bad target is rejected
// by the board and the player is asked again.
type Player interface {
	RequestTarget() (Cell, error)
}

type AutoPlayer struct {
	gridSize int
	rng      Rand
	out      io.Writer
}

var _ Player = (*AutoPlayer)(nil)

// NewAutoPlayer returns a player firing at uniformly random cells of
// the grid. It keeps no history and may pick a cell twice. out may be nil.
func NewAutoPlayer(gridSize int, rng Rand, out io.Writer) *AutoPlayer {
	return &AutoPlayer{gridSize: gridSize, rng: rng, out: out}
}

func (ap *AutoPlayer) RequestTarget() (Cell, error) {
	if ap.gridSize < 1 {
		return Cell{}, cerr.ErrInvalidGridSize(ap.gridSize, 1, GridSizeMax)
	}
	c := NewCell(ap.rng.IntN(ap.gridSize), ap.rng.IntN(ap.gridSize))
	if ap.out != nil {
		fmt.Fprintf(ap.out, "Opponent fires at: %d %d\n", c.X, c.Y)
	}
	return c, nil
}

type InteractivePlayer struct {
	reader *bufio.Reader
	out    io.Writer
}

var _ Player = (*InteractivePlayer)(nil)

func NewInteractivePlayer(in io.Reader, out io.Writer) *InteractivePlayer {
	return &InteractivePlayer{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// RequestTarget prompts until a line of two non-negative numbers "x y"
// is entered, x being the column and y the row. Whether the cell is on
// the grid is up to the board. Only a closed or failing input ends it.
func (ip *InteractivePlayer) RequestTarget() (Cell, error) {
	for {
		fmt.Fprint(ip.out, "Enter column and row 'x y': ")

		// a last line without newline still counts
		line, err := ip.reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return Cell{}, err
		}

		c, err := ParseTarget(line)
		if err != nil {
			fmt.Fprintln(ip.out, "Input error:", err)
			continue
		}
		return c, nil
	}
}

func ParseTarget(line string) (Cell, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return Cell{}, cerr.ErrInvalidInputTokens(len(tokens))
	}

	coords := [2]int{}
	for i, token := range tokens {
		if !isDigits(token) {
			return Cell{}, cerr.ErrInvalidInputNumber(token)
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return Cell{}, cerr.ErrInvalidInputNumber(token)
		}
		coords[i] = n
	}
	return NewCell(coords[0], coords[1]), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
