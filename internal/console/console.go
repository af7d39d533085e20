// Package console prints a game to a terminal as it is played.
package console

import (
	"errors"
	"fmt"
	"io"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
)

type Console struct {
	out    io.Writer
	titles [2]string

	// whether the boards are redrawn before every shot
	showBoards bool
}

var _ mb.Observer = (*Console)(nil)

// New returns a console printing to out. titles name side A and side B.
func New(out io.Writer, titles [2]string, showBoards bool) *Console {
	return &Console{out: out, titles: titles, showBoards: showBoards}
}

func (c *Console) printBoards(g *mb.Game) {
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, mb.RenderPair(
		g.Board(mb.SideA), g.Board(mb.SideB),
		c.titles[mb.SideA]+" board:", c.titles[mb.SideB]+" board:",
	))
}

func (c *Console) announceTurn(g *mb.Game) {
	if c.showBoards {
		c.printBoards(g)
	}
	fmt.Fprintf(c.out, "%s to move!\n", c.titles[g.ActiveSide()])
}

func (c *Console) OnGameStart(g *mb.Game) {
	fmt.Fprintf(c.out, "Game %s started!\n", g.Uuid)
	fmt.Fprintf(c.out, "Fleet commitments: %s %s, %s %s\n",
		c.titles[mb.SideA], g.Commitment(mb.SideA).RootHex(),
		c.titles[mb.SideB], g.Commitment(mb.SideB).RootHex(),
	)
	c.announceTurn(g)
}

func (c *Console) OnShot(g *mb.Game, ev mb.ShotEvent) {
	switch ev.Outcome {
	case mb.ShotOutcomeHit:
		fmt.Fprintln(c.out, "Hit!")
	case mb.ShotOutcomeSunk:
		fmt.Fprintln(c.out, "Sunk!")
	default:
		fmt.Fprintln(c.out, "Miss!")
	}
	if !g.IsOver() {
		c.announceTurn(g)
	}
}

func (c *Console) OnShotRejected(_ *mb.Game, shooter mb.Side, _ mb.Cell, err error) {
	switch {
	case errors.Is(err, cerr.ErrOutOfBounds):
		fmt.Fprintf(c.out, "%s's shot is off the board!\n", c.titles[shooter])
	case errors.Is(err, cerr.ErrAlreadyTargeted):
		fmt.Fprintf(c.out, "%s already fired there!\n", c.titles[shooter])
	default:
		fmt.Fprintf(c.out, "%s's shot rejected: %v\n", c.titles[shooter], err)
	}
}

func (c *Console) OnGameOver(g *mb.Game) {
	if c.showBoards {
		c.printBoards(g)
	}
	fmt.Fprintf(c.out, "%s wins after %d shots!\n", c.titles[g.Winner()], g.Moves())
}
