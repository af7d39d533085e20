package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-sim/internal/error"
)

func TestNewBattleshipGameManagerGridSize(t *testing.T) {
	for _, size := range []int{GridSizeMin - 1, GridSizeMax + 1, 0} {
		_, err := NewBattleshipGameManager(size, DefaultPlacementOptions(), nil)
		require.Error(t, err, "size %d", size)
	}

	for _, size := range []int{GridSizeMin, GridSizeDefault, GridSizeMax} {
		_, err := NewBattleshipGameManager(size, DefaultPlacementOptions(), nil)
		require.NoError(t, err, "size %d", size)
	}
}

func TestGameManagerLifecycle(t *testing.T) {
	bgm, err := NewBattleshipGameManager(GridSizeDefault, DefaultPlacementOptions(), nil)
	require.NoError(t, err)

	rng := newTestRand(9)
	players := [2]Player{NewAutoPlayer(GridSizeDefault, rng, nil), NewAutoPlayer(GridSizeDefault, rng, nil)}

	game, err := bgm.CreateGame(players, rng)
	require.NoError(t, err)
	require.False(t, game.Board(SideA).Foggy)
	require.True(t, game.Board(SideB).Foggy)
	requireValidFleet(t, game.Board(SideA))
	requireValidFleet(t, game.Board(SideB))

	fetched, err := bgm.FetchGame(game.Uuid)
	require.NoError(t, err)
	require.Same(t, game, fetched)

	winner, err := game.Play()
	require.NoError(t, err)

	require.NoError(t, bgm.TerminateGame(game.Uuid))
	results := bgm.Results()
	require.Equal(t, 1, results[winner])
	require.Equal(t, 0, results[winner.Other()])

	_, err = bgm.FetchGame(game.Uuid)
	require.Error(t, err)
	require.Error(t, bgm.TerminateGame(game.Uuid))
}

func TestGameManagerPlacementExhausted(t *testing.T) {
	bgm, err := NewBattleshipGameManager(GridSizeMin, PlacementOptions{MaxAttempts: 1, MaxRegenerations: 1}, nil)
	require.NoError(t, err)

	_, err = bgm.CreateGame([2]Player{}, constRand(0))
	require.ErrorIs(t, err, cerr.ErrBoardRegenerationExhausted)
}
