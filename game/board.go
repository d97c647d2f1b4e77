package game

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Board is the static topology shared by every State of a game: cells, neighbour table,
// pairwise distances and the start/target zones of each color. It is never mutated after
// construction.
type Board struct {
	name        string
	directions  []Coordinates
	cells       []Coordinates
	index       map[Coordinates]int
	neighbors   [][]int // [cell][direction] -> cell, -1 when off the board
	distances   [][]int
	homes       map[Piece][]int
	targets     map[Piece][]int
	inTarget    map[Piece][]bool
	center      int
	maxDistance int
}

func newBoard(layout Layout) (*Board, error) {
	if len(layout.Directions) == 0 {
		return nil, fmt.Errorf("%w: no directions", ErrInvalidLayout)
	}
	for _, d := range layout.Directions {
		if d == (Coordinates{}) {
			return nil, fmt.Errorf("%w: zero direction", ErrInvalidLayout)
		}
	}
	if len(layout.Cells) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidLayout)
	}

	b := &Board{
		name:       layout.Name,
		directions: slices.Clone(layout.Directions),
		cells:      slices.Clone(layout.Cells),
		index:      make(map[Coordinates]int, len(layout.Cells)),
		homes:      make(map[Piece][]int),
		targets:    make(map[Piece][]int),
		inTarget:   make(map[Piece][]bool),
	}
	for i, c := range b.cells {
		if _, dup := b.index[c]; dup {
			return nil, fmt.Errorf("%w: duplicate cell %v", ErrInvalidLayout, c)
		}
		b.index[c] = i
	}

	b.neighbors = make([][]int, len(b.cells))
	for i, c := range b.cells {
		b.neighbors[i] = make([]int, len(b.directions))
		for d, dir := range b.directions {
			if j, ok := b.index[c.Add(dir)]; ok {
				b.neighbors[i][d] = j
			} else {
				b.neighbors[i][d] = -1
			}
		}
	}

	zone := func(kind string, piece Piece, cells []Coordinates) ([]int, error) {
		if piece == None {
			return nil, fmt.Errorf("%w: %s zone for piece none", ErrInvalidLayout, kind)
		}
		out := make([]int, 0, len(cells))
		for _, c := range cells {
			i, ok := b.index[c]
			if !ok {
				return nil, fmt.Errorf("%w: %s cell %v of %v is off the board", ErrInvalidLayout, kind, c, piece)
			}
			if slices.Contains(out, i) {
				return nil, fmt.Errorf("%w: %s cell %v of %v listed twice", ErrInvalidLayout, kind, c, piece)
			}
			out = append(out, i)
		}
		slices.Sort(out)
		return out, nil
	}
	for piece, cells := range layout.Start {
		idx, err := zone("start", piece, cells)
		if err != nil {
			return nil, err
		}
		b.homes[piece] = idx
	}
	for piece, cells := range layout.Target {
		idx, err := zone("target", piece, cells)
		if err != nil {
			return nil, err
		}
		b.targets[piece] = idx
		mask := make([]bool, len(b.cells))
		for _, i := range idx {
			mask[i] = true
		}
		b.inTarget[piece] = mask
	}

	b.distances = make([][]int, len(b.cells))
	for i := range b.cells {
		b.distances[i] = make([]int, len(b.cells))
	}
	for i, from := range b.cells {
		for j := i + 1; j < len(b.cells); j++ {
			d, ok := stepDistance(from, b.cells[j], b.directions)
			if !ok {
				return nil, fmt.Errorf("%w: cell %v cannot reach %v with the given directions", ErrInvalidLayout, from, b.cells[j])
			}
			b.distances[i][j] = d
			b.distances[j][i] = d
			b.maxDistance = max(b.maxDistance, d)
		}
	}
	b.center = b.findCenter()
	return b, nil
}

// stepDistance counts the steps needed to walk from a to b on the unbounded virtual grid,
// always taking the direction that gets closest to b. It ignores occupancy and board edges.
func stepDistance(a, b Coordinates, directions []Coordinates) (int, bool) {
	steps := 0
	for a != b {
		remaining := manhattan(a, b)
		next, best := a, remaining
		for _, d := range directions {
			if n := a.Add(d); manhattan(n, b) < best {
				next, best = n, manhattan(n, b)
			}
		}
		if best >= remaining {
			return 0, false
		}
		a = next
		steps++
	}
	return steps, true
}

func manhattan(a, b Coordinates) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// findCenter picks the cell closest to the centroid of all cells.
func (b *Board) findCenter() int {
	var rowSum, colSum float64
	for _, c := range b.cells {
		rowSum += float64(c.Row)
		colSum += float64(c.Col)
	}
	n := float64(len(b.cells))
	rowAvg, colAvg := rowSum/n, colSum/n

	center, best := 0, math.Inf(1)
	for i, c := range b.cells {
		d := math.Abs(float64(c.Row)-rowAvg) + math.Abs(float64(c.Col)-colAvg)
		if d < best {
			center, best = i, d
		}
	}
	return center
}

func (b *Board) Name() string { return b.name }

// Cells returns every cell in enumeration order.
func (b *Board) Cells() []Coordinates { return slices.Clone(b.cells) }

func (b *Board) Directions() []Coordinates { return slices.Clone(b.directions) }

func (b *Board) Size() int { return len(b.cells) }

func (b *Board) Contains(c Coordinates) bool {
	_, ok := b.index[c]
	return ok
}

// Distance is the straight-line step count between two cells in virtual space. It is a
// heuristic measure, not a path length around occupied cells.
func (b *Board) Distance(from, to Coordinates) int {
	i, okFrom := b.index[from]
	j, okTo := b.index[to]
	if okFrom && okTo {
		return b.distances[i][j]
	}
	d, _ := stepDistance(from, to, b.directions)
	return d
}

// MaxDistance is the largest distance between two cells of the board.
func (b *Board) MaxDistance() int { return b.maxDistance }

func (b *Board) Center() Coordinates { return b.cells[b.center] }

// Home returns the start cells of a color.
func (b *Board) Home(piece Piece) []Coordinates { return b.coordinates(b.homes[piece]) }

// Target returns the end zone a color must fill.
func (b *Board) Target(piece Piece) []Coordinates { return b.coordinates(b.targets[piece]) }

func (b *Board) InTarget(piece Piece, c Coordinates) bool {
	i, ok := b.index[c]
	return ok && b.inTarget[piece] != nil && b.inTarget[piece][i]
}

func (b *Board) coordinates(idx []int) []Coordinates {
	out := make([]Coordinates, len(idx))
	for k, i := range idx {
		out[k] = b.cells[i]
	}
	return out
}
