package core

import (
	"errors"
	"fmt"
)

// The public error taxonomy is two buckets: ErrIllegalMove (recoverable, the
// caller should re-query legal moves) and ErrInvalidPlayer (caller bug).
// The granular causes below all wrap ErrIllegalMove and match via errors.Is.
var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidPlayer = errors.New("invalid player id")

	ErrInvalidCoordinates = fmt.Errorf("%w: cell outside the board", ErrIllegalMove)
	ErrMoveToSelf         = fmt.Errorf("%w: source and destination are the same cell", ErrIllegalMove)
	ErrNotAdjacent        = fmt.Errorf("%w: cells are not adjacent", ErrIllegalMove)
	ErrEmptySource        = fmt.Errorf("%w: no tower on source cell", ErrIllegalMove)
	ErrNotOwned           = fmt.Errorf("%w: tower not controlled by player", ErrIllegalMove)
	ErrEmptyDestination   = fmt.Errorf("%w: no tower on destination cell", ErrIllegalMove)
	ErrStackTooTall       = fmt.Errorf("%w: merged tower would exceed the height limit", ErrIllegalMove)
)

// Errors returned by the sequential Engine wrapper, not by BoardState itself.
var (
	ErrGameOver  = errors.New("game is over")
	ErrOutOfTurn = errors.New("not this player's turn")
)
