package battleship

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saeidalz13/battleship-sim/internal/commit"
	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

type Side uint8

const (
	SideA Side = iota
	SideB

	// Winner of a game that is not over
	SideNone
)

func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "none"
	}
}

type GameState uint8

const (
	StateAwaitingShot GameState = iota
	StateGameOver
)

type Game struct {
	Uuid     string
	GridSize int

	boards      [2]*Board
	players     [2]Player
	commitments [2]commit.Commitment

	state   GameState
	active  Side
	winner  Side
	moves   int
	started bool

	observer Observer
	logger   *zap.Logger
}

type GameOption func(*Game)

func WithObserver(o Observer) GameOption {
	return func(g *Game) {
		g.observer = o
	}
}

func WithLogger(l *zap.Logger) GameOption {
	return func(g *Game) {
		g.logger = l
	}
}

// NewGame pairs boards[side] with players[side]: players[SideA] fires at
// boards[SideB] and the other way round. Both fleets are committed to
// before the first shot.
func NewGame(boards [2]*Board, players [2]Player, opts ...GameOption) (*Game, error) {
	if boards[SideA].Size() != boards[SideB].Size() {
		return nil, cerr.ErrBoardSizeMismatch(boards[SideA].Size(), boards[SideB].Size())
	}

	game := &Game{
		Uuid:     uuid.NewString()[:6],
		GridSize: boards[SideA].Size(),
		boards:   boards,
		players:  players,
		state:    StateAwaitingShot,
		active:   SideA,
		winner:   SideNone,
		observer: nopObserver{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(game)
	}
	game.logger = game.logger.With(zap.String("game", game.Uuid))

	for _, side := range []Side{SideA, SideB} {
		c, err := commit.New(boards[side].Flatten())
		if err != nil {
			return nil, err
		}
		game.commitments[side] = c
	}

	return game, nil
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) IsOver() bool {
	return g.state == StateGameOver
}

// ActiveSide is the side whose turn it is. Once the game is over it
// stays on the winner.
func (g *Game) ActiveSide() Side {
	return g.active
}

// Winner is SideNone until IsOver reports true.
func (g *Game) Winner() Side {
	return g.winner
}

// Moves counts accepted shots of both sides.
func (g *Game) Moves() int {
	return g.moves
}

// Board returns the board of side for reading; shots go through Turn.
func (g *Game) Board(side Side) *Board {
	return g.boards[side]
}

func (g *Game) Commitment(side Side) commit.Commitment {
	return g.commitments[side]
}

func (g *Game) start() {
	if g.started {
		return
	}
	g.started = true
	g.logger.Info("game started",
		zap.Int("grid_size", g.GridSize),
		zap.String("commitment_a", g.commitments[SideA].RootHex()),
		zap.String("commitment_b", g.commitments[SideB].RootHex()),
	)
	g.observer.OnGameStart(g)
}

// Turn plays one accepted shot of the active side. Targets the opponent's
// board rejects are reported and requested again; they do not count as a
// move. A hit or a sunk ship keeps the turn, a miss passes it on.
func (g *Game) Turn() (ShotOutcome, error) {
	if g.state == StateGameOver {
		return ShotOutcomeMiss, cerr.ErrGameFinished(g.Uuid)
	}
	g.start()

	shooter := g.active
	defender := g.boards[shooter.Other()]

	for {
		target, err := g.players[shooter].RequestTarget()
		if err != nil {
			return ShotOutcomeMiss, err
		}

		outcome, err := defender.Shot(target)
		if err != nil {
			if errors.Is(err, cerr.ErrOutOfBounds) || errors.Is(err, cerr.ErrAlreadyTargeted) {
				g.logger.Debug("shot rejected", zap.Stringer("side", shooter), zap.Stringer("target", target), zap.Error(err))
				g.observer.OnShotRejected(g, shooter, target, err)
				continue
			}
			return ShotOutcomeMiss, err
		}
		g.moves++

		switch {
		case outcome == ShotOutcomeSunk && defender.AllSunk():
			g.state = StateGameOver
			g.winner = shooter
		case !outcome.KeepsTurn():
			g.active = shooter.Other()
		}

		g.logger.Debug("shot resolved",
			zap.Stringer("side", shooter),
			zap.Stringer("target", target),
			zap.Stringer("outcome", outcome),
			zap.Int("sunk", defender.SunkCount()),
		)
		g.observer.OnShot(g, ShotEvent{
			Shooter:   shooter,
			Target:    target,
			Outcome:   outcome,
			SunkCount: defender.SunkCount(),
			KeepsTurn: g.state == StateAwaitingShot && g.active == shooter,
		})

		if g.state == StateGameOver {
			g.logger.Info("game over", zap.Stringer("winner", g.winner), zap.Int("moves", g.moves))
			g.observer.OnGameOver(g)
		}
		return outcome, nil
	}
}

// Play runs turns until one fleet is sunk and returns the winning side.
// When a turn fails the game is left unfinished and SideNone is returned
// with the error.
func (g *Game) Play() (Side, error) {
	g.start()
	for g.state != StateGameOver {
		if _, err := g.Turn(); err != nil {
			return SideNone, err
		}
	}
	return g.winner, nil
}

// VerifyCommitments checks, after the game, that the fleets still match
// what was committed to at the start.
func (g *Game) VerifyCommitments() (bool, error) {
	for _, side := range []Side{SideA, SideB} {
		c := g.commitments[side]
		ok, err := commit.Verify(g.boards[side].Flatten(), c.RootHex(), c.SaltHex())
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
