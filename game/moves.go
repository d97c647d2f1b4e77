package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// destinationTree holds every cell reachable from one origin in a single turn. Each destination
// remembers the cell it was first reached from, so the chain can be rebuilt.
type destinationTree struct {
	origin int
	order  []int       // destinations in discovery order
	parent map[int]int // destination -> previous cell of the first path found
	hop    map[int]int // jump landing -> previous landing
}

func (t *destinationTree) add(cell, from int) {
	t.order = append(t.order, cell)
	t.parent[cell] = from
}

func (t *destinationTree) contains(cell int) bool {
	_, ok := t.parent[cell]
	return ok
}

// chain walks back to the origin. Cells before the destination are always jump landings, even
// when a single step also reaches one of them.
func (t *destinationTree) chain(cell int) []int {
	path := []int{cell}
	for prev := t.parent[cell]; ; prev = t.hop[prev] {
		path = append(path, prev)
		if prev == t.origin {
			break
		}
	}
	slices.Reverse(path)
	return path
}

// reach explores single steps in direction order, then jump chains depth first. A cell is listed
// once, so the first path that discovers a destination is the one kept.
func (s *State) reach(origin int) *destinationTree {
	t := &destinationTree{origin: origin, parent: make(map[int]int), hop: make(map[int]int)}
	for _, n := range s.board.neighbors[origin] {
		if n >= 0 && s.occupant[n] == None && !t.contains(n) {
			t.add(n, origin)
		}
	}
	visited := map[int]bool{origin: true}
	s.jumps(origin, visited, t)
	return t
}

func (s *State) jumps(from int, visited map[int]bool, t *destinationTree) {
	for d, over := range s.board.neighbors[from] {
		if over < 0 || s.occupant[over] == None {
			continue
		}
		to := s.board.neighbors[over][d]
		if to < 0 || s.occupant[to] != None || visited[to] {
			continue
		}
		visited[to] = true
		t.hop[to] = from
		// Already a step destination: keep that move, but chains still continue from here
		if !t.contains(to) {
			t.add(to, from)
		}
		s.jumps(to, visited, t)
	}
}

func (s *State) moveFromTree(t *destinationTree, cell int) Move {
	piece := s.occupant[t.origin]
	path := t.chain(cell)
	chain := make([]VirtualPosition, len(path))
	for i, c := range path {
		chain[i] = s.position(c)
	}
	return NewMove(chain[0], chain[len(chain)-1], piece, chain)
}

// DestinationsFrom lists every cell the piece on origin can reach this turn, in generation
// order. An empty or off-board origin has no destinations.
func (s *State) DestinationsFrom(origin Coordinates) []VirtualPosition {
	i, ok := s.board.index[origin]
	if !ok || s.occupant[i] == None {
		return nil
	}
	return s.positions(s.reach(i).order)
}

// MoveTo resolves a destination reachable from origin into the concrete move, chain included.
func (s *State) MoveTo(origin, destination Coordinates) (Move, error) {
	i, ok := s.board.index[origin]
	if !ok || s.occupant[i] == None {
		return Move{}, fmt.Errorf("%w: no piece on %v", ErrIllegalMove, origin)
	}
	j, ok := s.board.index[destination]
	t := s.reach(i)
	if !ok || !t.contains(j) {
		return Move{}, fmt.Errorf("%w: %v is not reachable from %v", ErrIllegalMove, destination, origin)
	}
	return s.moveFromTree(t, j), nil
}

// Moves lists every legal move of a color: pieces in board order, then destinations in
// generation order.
func (s *State) Moves(piece Piece) []Move {
	var moves []Move
	for _, cell := range s.occupancy[piece] {
		t := s.reach(cell)
		for _, dest := range t.order {
			moves = append(moves, s.moveFromTree(t, dest))
		}
	}
	return moves
}

// LegalMoves lists the moves of the player whose turn it is.
func (s *State) LegalMoves() []Move {
	return s.Moves(s.CurrentPlayer().Piece)
}

// UpdateDestinations selects origin and caches its destinations for highlighting. Any previous
// selection is replaced.
func (s *State) UpdateDestinations(origin Coordinates) ([]VirtualPosition, error) {
	i, ok := s.board.index[origin]
	if !ok || s.occupant[i] == None {
		s.selection = nil
		return nil, fmt.Errorf("%w: no piece on %v", ErrIllegalMove, origin)
	}
	s.selection = s.reach(i)
	return s.positions(s.selection.order), nil
}

// Destinations returns the cached destinations of the current selection.
func (s *State) Destinations() []VirtualPosition {
	if s.selection == nil {
		return nil
	}
	return s.positions(s.selection.order)
}

func (s *State) IsDestination(c Coordinates) bool {
	if s.selection == nil {
		return false
	}
	i, ok := s.board.index[c]
	return ok && s.selection.contains(i)
}

// MoveChain resolves a highlighted destination back to the move that reaches it.
func (s *State) MoveChain(destination Coordinates) (Move, error) {
	if s.selection == nil {
		return Move{}, fmt.Errorf("%w: nothing selected", ErrIllegalMove)
	}
	i, ok := s.board.index[destination]
	if !ok || !s.selection.contains(i) {
		return Move{}, fmt.Errorf("%w: %v is not a destination", ErrIllegalMove, destination)
	}
	return s.moveFromTree(s.selection, i), nil
}

func (s *State) ClearDestinations() {
	s.selection = nil
}
