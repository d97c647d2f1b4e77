package game

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Move relocates one piece from Origin to Destination in a single turn, either by one step to a
// neighbour or by a chain of jumps.
type Move struct {
	Origin      VirtualPosition
	Destination VirtualPosition
	Piece       Piece
	chain       []VirtualPosition // origin, every landing cell, destination last
}

// NewMove builds a move. A nil or empty chain is treated as the direct path origin→destination.
func NewMove(origin, destination VirtualPosition, piece Piece, chain []VirtualPosition) Move {
	if len(chain) == 0 {
		chain = []VirtualPosition{origin, destination}
	}
	return Move{
		Origin:      origin,
		Destination: destination,
		Piece:       piece,
		chain:       slices.Clone(chain),
	}
}

// Chain returns the full path starting at the origin and ending at the destination.
func (m Move) Chain() []VirtualPosition {
	return slices.Clone(m.chain)
}

// Landings returns the cells the piece lands on, in order; the last one is the destination.
func (m Move) Landings() []VirtualPosition {
	if len(m.chain) < 2 {
		return nil
	}
	return slices.Clone(m.chain[1:])
}

// Hops is the number of steps or jumps in the move.
func (m Move) Hops() int {
	return len(m.chain) - 1
}

// Equal compares origin, destination and piece. Two chains reaching the same cell are the same
// move.
func (m Move) Equal(other Move) bool {
	return m.Piece == other.Piece &&
		m.Origin.Equal(other.Origin) &&
		m.Destination.Equal(other.Destination)
}

func (m Move) String() string {
	var b strings.Builder
	b.WriteString(m.Piece.String())
	b.WriteString(" ")
	for i, p := range m.chain {
		if i > 0 {
			b.WriteString(" -> ")
		}
		b.WriteString(p.Coordinates.String())
	}
	return b.String()
}
