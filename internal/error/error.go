package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds                = errors.New("cell is out of game grid bound")
	ErrAlreadyTargeted            = errors.New("cell has already been targeted")
	ErrInvalidPlacement           = errors.New("invalid ship placement")
	ErrPlacementExhausted         = errors.New("fleet placement attempts exhausted")
	ErrBoardRegenerationExhausted = errors.New("board regeneration attempts exhausted")
	ErrGameOver                   = errors.New("game is already over")
	ErrGridSize                   = errors.New("invalid grid size")
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrCellAlreadyTargeted(x, y int) error {
	return fmt.Errorf("%w in previous rounds\tx: %d\ty: %d", ErrAlreadyTargeted, x, y)
}

func ErrShipPlacement(x, y, length int, reason string) error {
	return fmt.Errorf("%w\tx: %d\ty: %d\tlength: %d\t%s", ErrInvalidPlacement, x, y, length, reason)
}

func ErrFleetPlacement(attempts int) error {
	return fmt.Errorf("%w after %d attempts", ErrPlacementExhausted, attempts)
}

func ErrBoardRegeneration(regenerations int) error {
	return fmt.Errorf("%w after %d boards", ErrBoardRegenerationExhausted, regenerations)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameFinished(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameOver, gameUuid)
}

func ErrInvalidGridSize(size, lower, upper int) error {
	return fmt.Errorf("%w, must be between %d and %d, got: %d", ErrGridSize, lower, upper, size)
}

func ErrInvalidInputTokens(count int) error {
	return fmt.Errorf("expected 2 numbers separated by space, got %d tokens", count)
}

func ErrInvalidInputNumber(token string) error {
	return fmt.Errorf("not a non-negative number: %q", token)
}

func ErrBoardSizeMismatch(sizeA, sizeB int) error {
	return fmt.Errorf("boards of one game must have the same size\tA: %d\tB: %d", sizeA, sizeB)
}
