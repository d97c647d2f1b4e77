package game

import "fmt"

// StarDirections are the six neighbour offsets of the star board, in enumeration order.
var StarDirections = []Coordinates{
	{Row: -2, Col: -1}, {Row: -2, Col: 1},
	{Row: 0, Col: -2}, {Row: 0, Col: 2},
	{Row: 2, Col: -1}, {Row: 2, Col: 1},
}

// SquareDirections are the eight neighbour offsets of the square board, in enumeration order.
var SquareDirections = []Coordinates{
	{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: -1},
	{Row: -1, Col: 0}, {Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1},
}

const (
	StandardStarSize   = 4
	StandardSquareSide = 10
	SquareZoneLength   = 4
)

// Shape selects one of the built-in board layouts.
type Shape int

const (
	Star Shape = iota
	Square
)

func (s Shape) String() string {
	switch s {
	case Star:
		return "star"
	case Square:
		return "square"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

func ParseShape(s string) (Shape, error) {
	switch s {
	case "star", "":
		return Star, nil
	case "square":
		return Square, nil
	}
	return Star, fmt.Errorf("%w: unknown shape %q", ErrInvalidLayout, s)
}

// Layout describes a board and its initial setup: which cells exist, how pieces move between
// them, where each color starts and which cells it must reach.
type Layout struct {
	Name       string
	Directions []Coordinates
	Cells      []Coordinates
	Start      map[Piece][]Coordinates
	Target     map[Piece][]Coordinates
}

// StarPieces returns the colors seated on a star board for the given number of players, in turn
// order.
func StarPieces(players int) ([]Piece, error) {
	switch players {
	case 2:
		return []Piece{White, Black}, nil
	case 4:
		return []Piece{White, Yellow, Black, Blue}, nil
	case 6:
		return []Piece{White, Yellow, Red, Black, Blue, Green}, nil
	}
	return nil, fmt.Errorf("%w: star board seats 2, 4 or 6 players, got %d", ErrInvalidLayout, players)
}

// SquarePieces returns the colors seated on a square board for the given number of players, in
// turn order.
func SquarePieces(players int) ([]Piece, error) {
	switch players {
	case 2:
		return []Piece{White, Black}, nil
	case 4:
		return []Piece{White, Yellow, Black, Blue}, nil
	}
	return nil, fmt.Errorf("%w: square board seats 2 or 4 players, got %d", ErrInvalidLayout, players)
}

// StarLayout builds the six-pointed star: a hexagon of side size+1 with a triangle of side size
// on each edge. Size 4 is the classic 121-cell board with ten pieces per color.
//
// Cells are addressed on a doubled grid: moving along a row changes the column by 2, moving
// diagonally changes the row by 2 and the column by 1.
func StarLayout(size, players int) (Layout, error) {
	if size < 1 {
		return Layout{}, fmt.Errorf("%w: star size must be positive, got %d", ErrInvalidLayout, size)
	}
	seated, err := StarPieces(players)
	if err != nil {
		return Layout{}, err
	}
	active := make(map[Piece]bool, len(seated))
	for _, p := range seated {
		active[p] = true
	}

	layout := Layout{
		Name:       fmt.Sprintf("star-%d", size),
		Directions: StarDirections,
		Start:      make(map[Piece][]Coordinates),
		Target:     make(map[Piece][]Coordinates),
	}
	for row := 0; row <= 8*size; row += 2 {
		z := row/2 - 2*size
		for col := 0; col <= 6*size; col++ {
			diff := col - 3*size // x - y
			if (diff-z)%2 != 0 {
				continue
			}
			x := (diff - z) / 2
			y := x - diff
			corner, ok := starCorner(x, y, z, size)
			if !ok {
				continue
			}
			c := Coordinates{Row: row, Col: col}
			layout.Cells = append(layout.Cells, c)
			if corner != None && active[corner] {
				layout.Start[corner] = append(layout.Start[corner], c)
				layout.Target[corner.Opposite()] = append(layout.Target[corner.Opposite()], c)
			}
		}
	}
	return layout, nil
}

// starCorner reports whether the cube coordinate lies on the star and, if it lies in one of the
// six triangles, whose home corner it is.
func starCorner(x, y, z, size int) (Piece, bool) {
	up := x >= -size && y >= -size && z >= -size
	down := x <= size && y <= size && z <= size
	if !up && !down {
		return None, false
	}
	switch {
	case x > size:
		return Black, true
	case x < -size:
		return White, true
	case y > size:
		return Yellow, true
	case y < -size:
		return Blue, true
	case z < -size:
		return Red, true
	case z > size:
		return Green, true
	}
	return None, true
}

// SquareLayout builds a side×side grid with triangular corners of the given zone length.
func SquareLayout(side, zone, players int) (Layout, error) {
	if zone < 1 || 2*zone > side {
		return Layout{}, fmt.Errorf("%w: zone %d does not fit a %dx%d board", ErrInvalidLayout, zone, side, side)
	}
	seated, err := SquarePieces(players)
	if err != nil {
		return Layout{}, err
	}
	active := make(map[Piece]bool, len(seated))
	for _, p := range seated {
		active[p] = true
	}

	layout := Layout{
		Name:       fmt.Sprintf("square-%d", side),
		Directions: SquareDirections,
		Start:      make(map[Piece][]Coordinates),
		Target:     make(map[Piece][]Coordinates),
	}
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			c := Coordinates{Row: row, Col: col}
			layout.Cells = append(layout.Cells, c)
			corner := squareCorner(row, col, side, zone)
			if corner != None && active[corner] {
				layout.Start[corner] = append(layout.Start[corner], c)
				layout.Target[corner.Opposite()] = append(layout.Target[corner.Opposite()], c)
			}
		}
	}
	return layout, nil
}

func squareCorner(row, col, side, zone int) Piece {
	switch {
	case row+col < zone:
		return White
	case row+col > 2*(side-1)-zone:
		return Black
	case col-row >= side-zone:
		return Blue
	case row-col >= side-zone:
		return Yellow
	}
	return None
}

// NewLayout builds one of the built-in layouts. Size is the star triangle side or the square
// grid side; zero selects the standard size.
func NewLayout(shape Shape, size, players int) (Layout, error) {
	switch shape {
	case Star:
		if size == 0 {
			size = StandardStarSize
		}
		return StarLayout(size, players)
	case Square:
		if size == 0 {
			size = StandardSquareSide
		}
		return SquareLayout(size, min(SquareZoneLength, size/2), players)
	}
	return Layout{}, fmt.Errorf("%w: unknown shape %v", ErrInvalidLayout, shape)
}
