package types

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned when a game cannot be built from its configuration.
	ErrInvalidConfig = errors.New("invalid game configuration")

	// ErrBoardFull is returned when no free cell is left for food.
	ErrBoardFull = errors.New("board full")
)
