package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// row returns n cells of a horizontal star-grid line starting at column 0.
func row(n int) []Coordinates {
	cells := make([]Coordinates, n)
	for i := range cells {
		cells[i] = Coordinates{Row: 0, Col: 2 * i}
	}
	return cells
}

func at(col int) Coordinates {
	return Coordinates{Row: 0, Col: col}
}

func twoPlayers() []Player {
	return []Player{NewPlayer(White, false, Normal), NewPlayer(Black, true, Normal)}
}

func newLineState(t *testing.T, cells int, white, black, whiteTarget, blackTarget []Coordinates) *State {
	t.Helper()
	layout := Layout{
		Name:       "line",
		Directions: StarDirections,
		Cells:      row(cells),
		Start:      map[Piece][]Coordinates{White: white, Black: black},
		Target:     map[Piece][]Coordinates{White: whiteTarget, Black: blackTarget},
	}
	s, err := NewState(twoPlayers(), layout)
	require.NoError(t, err)
	return s
}

func countByPiece(s *State) map[Piece]int {
	counts := map[Piece]int{}
	for _, p := range s.Occupied() {
		counts[p.Piece]++
	}
	return counts
}

func coords(positions []VirtualPosition) []Coordinates {
	out := make([]Coordinates, len(positions))
	for i, p := range positions {
		out[i] = p.Coordinates
	}
	return out
}

// newStarState places white and black on the 121-cell star, each aiming for the other's cells.
func newStarState(t *testing.T, white, black []Coordinates) *State {
	t.Helper()
	layout, err := StarLayout(4, 2)
	require.NoError(t, err)
	layout.Start = map[Piece][]Coordinates{White: white, Black: black}
	layout.Target = map[Piece][]Coordinates{White: black, Black: white}
	s, err := NewState(twoPlayers(), layout)
	require.NoError(t, err)
	return s
}
