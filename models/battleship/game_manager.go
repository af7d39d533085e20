package battleship

import (
	"sync"

	"go.uber.org/zap"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

const (
	GridSizeMin     int = 5
	GridSizeDefault int = 6
	GridSizeMax     int = 10
)

type GameManager interface {
	CreateGame(players [2]Player, rng Rand, opts ...GameOption) (*Game, error)
	FetchGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string) error
	Results() [2]int

	isGridSizeValid(int) bool
}

type BattleshipGameManager struct {
	games     map[string]*Game
	wins      [2]int
	gridSize  int
	placement PlacementOptions
	logger    *zap.Logger
	mu        sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(gridSize int, placement PlacementOptions, logger *zap.Logger) (*BattleshipGameManager, error) {
	bgm := &BattleshipGameManager{
		games:     make(map[string]*Game, 10),
		gridSize:  gridSize,
		placement: placement,
		logger:    logger,
	}
	if !bgm.isGridSizeValid(gridSize) {
		return nil, cerr.ErrInvalidGridSize(gridSize, GridSizeMin, GridSizeMax)
	}
	if bgm.logger == nil {
		bgm.logger = zap.NewNop()
	}
	return bgm, nil
}

// CreateGame places a fresh random fleet for both sides and registers the
// game. Side B's board is fogged, it belongs to the opponent of the
// player sitting at side A.
func (bgm *BattleshipGameManager) CreateGame(players [2]Player, rng Rand, opts ...GameOption) (*Game, error) {
	var boards [2]*Board
	for _, side := range []Side{SideA, SideB} {
		board, err := NewRandomBoard(bgm.gridSize, rng, bgm.placement)
		if err != nil {
			return nil, err
		}
		boards[side] = board
	}
	boards[SideB].Foggy = true

	opts = append([]GameOption{WithLogger(bgm.logger)}, opts...)
	game, err := NewGame(boards, players, opts...)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	bgm.games[game.Uuid] = game
	bgm.mu.Unlock()

	bgm.logger.Debug("game created", zap.String("game", game.Uuid))
	return game, nil
}

func (bgm *BattleshipGameManager) FetchGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

// TerminateGame drops the game and, if it was played out, counts the
// win of its winner.
func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) error {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	game, prs := bgm.games[gameUuid]
	if !prs {
		return cerr.ErrGameNotExists(gameUuid)
	}
	if game.IsOver() {
		bgm.wins[game.Winner()]++
	}
	delete(bgm.games, gameUuid)
	return nil
}

// Results returns the wins of each side over all terminated games.
func (bgm *BattleshipGameManager) Results() [2]int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return bgm.wins
}

func (bgm *BattleshipGameManager) isGridSizeValid(gridSize int) bool {
	return gridSize >= GridSizeMin && gridSize <= GridSizeMax
}
