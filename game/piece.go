package game

import (
	"fmt"
	"strings"
)

// Piece identifies the color occupying a cell. None marks an empty cell.
type Piece int

const (
	None Piece = iota
	White
	Black
	Yellow
	Blue
	Green
	Red
)

// Pieces lists every playable color in declaration order.
var Pieces = []Piece{White, Black, Yellow, Blue, Green, Red}

var pieceNames = map[Piece]string{
	None:   "none",
	White:  "white",
	Black:  "black",
	Yellow: "yellow",
	Blue:   "blue",
	Green:  "green",
	Red:    "red",
}

func (p Piece) String() string {
	if name, ok := pieceNames[p]; ok {
		return name
	}
	return fmt.Sprintf("piece(%d)", int(p))
}

// Opposite returns the color whose home corner faces p's home corner.
func (p Piece) Opposite() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	case Yellow:
		return Blue
	case Blue:
		return Yellow
	case Green:
		return Red
	case Red:
		return Green
	}
	return None
}

// ParsePiece maps a color name (case insensitive) to its Piece.
func ParsePiece(s string) (Piece, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range pieceNames {
		if p != None && n == name {
			return p, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownPiece, s)
}
