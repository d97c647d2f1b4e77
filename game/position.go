package game

import "fmt"

// Coordinates is a cell address on the virtual grid.
type Coordinates struct {
	Row int
	Col int
}

func (c Coordinates) Add(d Coordinates) Coordinates {
	return Coordinates{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Coordinates) Scale(k int) Coordinates {
	return Coordinates{Row: c.Row * k, Col: c.Col * k}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// VirtualPosition is a board cell together with the piece occupying it when it was read.
// Identity is the coordinates only; the piece is payload.
type VirtualPosition struct {
	Coordinates
	Piece Piece
}

func NewVirtualPosition(row, col int, piece Piece) VirtualPosition {
	return VirtualPosition{Coordinates: Coordinates{Row: row, Col: col}, Piece: piece}
}

// Equal reports whether both positions address the same cell.
func (v VirtualPosition) Equal(other VirtualPosition) bool {
	return v.Coordinates == other.Coordinates
}
