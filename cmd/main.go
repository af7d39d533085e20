package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/saeidalz13/battleship-sim/api"
	"github.com/saeidalz13/battleship-sim/internal/config"
	"github.com/saeidalz13/battleship-sim/internal/console"
	"github.com/saeidalz13/battleship-sim/internal/logs"
	mb "github.com/saeidalz13/battleship-sim/models/battleship"
	mc "github.com/saeidalz13/battleship-sim/models/connection"
)

// mixes the seed into the second PCG word
const seedStream uint64 = 0x9e3779b97f4a7c15

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logs.New("battleship", cfg.Stage, cfg.Log)
	defer func() { _ = logger.Sync() }()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^seedStream))
	logger.Debug("rng seeded", zap.Uint64("seed", seed))

	gameManager, err := mb.NewBattleshipGameManager(cfg.GridSize, mb.PlacementOptions{
		MaxAttempts:      cfg.PlacementMaxAttempts,
		MaxRegenerations: cfg.BoardMaxRegenerations,
	}, logger)
	if err != nil {
		logger.Fatal("invalid game settings", zap.Error(err))
	}

	observers := mb.Observers{}
	if cfg.SpectatorPort != 0 {
		observers = append(observers, startSpectatorServer(cfg, logger))
	}

	switch cfg.Mode {
	case config.ModeSimulate:
		simulate(cfg, gameManager, rng, observers, logger)
	default:
		playInteractive(cfg, gameManager, rng, observers, logger)
	}
}

func startSpectatorServer(cfg config.Config, logger *zap.Logger) mb.Observer {
	sessionManager := mc.NewBattleshipSessionManager(logger)
	server := api.NewServer(sessionManager,
		api.WithPort(cfg.SpectatorPort),
		api.WithStage(cfg.Stage),
		api.WithLogger(logger),
	)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("spectator server stopped", zap.Error(err))
		}
	}()
	return api.NewSpectator(sessionManager, logger)
}

func playInteractive(cfg config.Config, gm mb.GameManager, rng mb.Rand, observers mb.Observers, logger *zap.Logger) {
	players := [2]mb.Player{
		mb.NewInteractivePlayer(os.Stdin, os.Stdout),
		mb.NewAutoPlayer(cfg.GridSize, rng, os.Stdout),
	}
	observers = append(mb.Observers{console.New(os.Stdout, [2]string{"Player", "Computer"}, true)}, observers...)

	game, err := gm.CreateGame(players, rng, mb.WithObserver(observers))
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}
	defer func() { _ = gm.TerminateGame(game.Uuid) }()

	if _, err := game.Play(); err != nil {
		if errors.Is(err, io.EOF) {
			logger.Info("input closed, leaving the game", zap.String("game", game.Uuid))
			return
		}
		logger.Error("game aborted", zap.String("game", game.Uuid), zap.Error(err))
		return
	}
	verifyCommitments(game, logger)
}

func simulate(cfg config.Config, gm mb.GameManager, rng mb.Rand, observers mb.Observers, logger *zap.Logger) {
	if cfg.Games == 1 {
		observers = append(mb.Observers{console.New(os.Stdout, [2]string{"Bot A", "Bot B"}, true)}, observers...)
	}

	for i := 0; i < cfg.Games; i++ {
		players := [2]mb.Player{
			mb.NewAutoPlayer(cfg.GridSize, rng, nil),
			mb.NewAutoPlayer(cfg.GridSize, rng, nil),
		}

		game, err := gm.CreateGame(players, rng, mb.WithObserver(observers))
		if err != nil {
			logger.Fatal("failed to create game", zap.Error(err))
		}

		winner, err := game.Play()
		if err != nil {
			logger.Fatal("game aborted", zap.String("game", game.Uuid), zap.Error(err))
		}
		verifyCommitments(game, logger)
		if cfg.Games > 1 {
			fmt.Printf("game %d (%s): side %s wins after %d shots\n", i+1, game.Uuid, winner, game.Moves())
		}

		if err := gm.TerminateGame(game.Uuid); err != nil {
			logger.Warn("failed to terminate game", zap.Error(err))
		}
	}

	results := gm.Results()
	fmt.Printf("Results over %d games: A %d - B %d\n", cfg.Games, results[mb.SideA], results[mb.SideB])
}

func verifyCommitments(game *mb.Game, logger *zap.Logger) {
	ok, err := game.VerifyCommitments()
	if err != nil || !ok {
		logger.Error("fleet commitment mismatch", zap.String("game", game.Uuid), zap.Error(err))
		return
	}
	logger.Info("fleet commitments verified", zap.String("game", game.Uuid))
}
