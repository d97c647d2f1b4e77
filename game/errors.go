package game

import "errors"

var (
	ErrUnknownPiece  = errors.New("unknown piece")
	ErrUnknownMode   = errors.New("unknown mode")
	ErrInvalidLayout = errors.New("invalid layout")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over")
	ErrNoLegalMoves  = errors.New("no legal moves")
)
