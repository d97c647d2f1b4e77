package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// State is a snapshot of a game. Apply returns a new State and leaves the receiver untouched, so
// a search may explore children freely. MovePiece, NextTurn and the destination cache mutate the
// receiver in place and are meant for the owner of the live game.
type State struct {
	board   *Board
	players []Player
	seat    map[Piece]int // piece -> index in players, fixed at construction
	current int

	occupancy map[Piece][]int // authoritative: sorted cell indices per color
	occupant  []Piece         // derived from occupancy by sync

	finished []bool // per seat, derived
	distance []int  // per seat, derived
	farthest []int  // per seat, derived: target cell farthest from the seat's pieces
	winner   int    // seat, -1 when unset

	selection *destinationTree
}

// NewGame seats the players on a built-in board. Size zero selects the standard size.
func NewGame(players []Player, shape Shape, size int) (*State, error) {
	layout, err := NewLayout(shape, size, len(players))
	if err != nil {
		return nil, err
	}
	return NewState(players, layout)
}

// NewState seats the players on the layout in turn order. Every player must have a start and a
// target zone of the same size, and no other color may start on the board.
func NewState(players []Player, layout Layout) (*State, error) {
	if len(players) == 0 || len(players) > len(Pieces) {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidLayout, len(players))
	}
	board, err := newBoard(layout)
	if err != nil {
		return nil, err
	}

	s := &State{
		board:     board,
		players:   slices.Clone(players),
		seat:      make(map[Piece]int, len(players)),
		occupancy: make(map[Piece][]int, len(players)),
		occupant:  make([]Piece, board.Size()),
		winner:    -1,
	}
	pieces := -1
	for i, p := range players {
		if p.Piece == None {
			return nil, fmt.Errorf("%w: player %d has no piece", ErrInvalidLayout, i)
		}
		if _, dup := s.seat[p.Piece]; dup {
			return nil, fmt.Errorf("%w: %v seated twice", ErrInvalidLayout, p.Piece)
		}
		s.seat[p.Piece] = i

		home, target := board.homes[p.Piece], board.targets[p.Piece]
		if len(home) == 0 {
			return nil, fmt.Errorf("%w: %v has no start cells", ErrInvalidLayout, p.Piece)
		}
		if len(target) == 0 {
			return nil, fmt.Errorf("%w: %v has no target cells", ErrInvalidLayout, p.Piece)
		}
		if pieces >= 0 && len(home) != pieces {
			return nil, fmt.Errorf("%w: %v starts with %d pieces, expected %d", ErrInvalidLayout, p.Piece, len(home), pieces)
		}
		pieces = len(home)
		if len(target) < pieces {
			return nil, fmt.Errorf("%w: %v target holds %d cells for %d pieces", ErrInvalidLayout, p.Piece, len(target), pieces)
		}
		s.occupancy[p.Piece] = slices.Clone(home)
	}
	for piece := range board.homes {
		if _, ok := s.seat[piece]; !ok {
			return nil, fmt.Errorf("%w: %v has start cells but no player", ErrInvalidLayout, piece)
		}
	}
	for _, p := range players {
		for _, i := range s.occupancy[p.Piece] {
			if s.occupant[i] != None {
				return nil, fmt.Errorf("%w: %v and %v both start on %v", ErrInvalidLayout, s.occupant[i], p.Piece, board.cells[i])
			}
			s.occupant[i] = p.Piece
		}
	}
	s.refresh()
	return s, nil
}

// Copy returns an independent snapshot. The destination cache is not carried over.
func (s *State) Copy() *State {
	c := &State{
		board:     s.board,
		players:   slices.Clone(s.players),
		seat:      s.seat,
		current:   s.current,
		occupancy: make(map[Piece][]int, len(s.occupancy)),
		occupant:  slices.Clone(s.occupant),
		finished:  slices.Clone(s.finished),
		distance:  slices.Clone(s.distance),
		farthest:  slices.Clone(s.farthest),
		winner:    s.winner,
	}
	for piece, cells := range s.occupancy {
		c.occupancy[piece] = slices.Clone(cells)
	}
	return c
}

// Apply returns a copy of the state with the move played. The turn is not advanced.
func (s *State) Apply(m Move) (*State, error) {
	next := s.Copy()
	if err := next.MovePiece(m); err != nil {
		return nil, err
	}
	return next, nil
}

// MovePiece relocates a piece in place. The move must come from move generation on this state;
// anything else that does not describe a well-formed step or jump chain is rejected with
// ErrIllegalMove. The turn is not advanced.
func (s *State) MovePiece(m Move) error {
	from, to, err := s.checkMove(m)
	if err != nil {
		return err
	}
	s.relocate(m.Piece, from, to)
	return nil
}

func (s *State) checkMove(m Move) (int, int, error) {
	from, ok := s.board.index[m.Origin.Coordinates]
	if !ok {
		return 0, 0, fmt.Errorf("%w: origin %v is off the board", ErrIllegalMove, m.Origin.Coordinates)
	}
	to, ok := s.board.index[m.Destination.Coordinates]
	if !ok {
		return 0, 0, fmt.Errorf("%w: destination %v is off the board", ErrIllegalMove, m.Destination.Coordinates)
	}
	if _, seated := s.seat[m.Piece]; !seated {
		return 0, 0, fmt.Errorf("%w: %v is not in play", ErrIllegalMove, m.Piece)
	}
	if s.occupant[from] != m.Piece {
		return 0, 0, fmt.Errorf("%w: %v is not on %v", ErrIllegalMove, m.Piece, m.Origin.Coordinates)
	}
	if s.occupant[to] != None {
		return 0, 0, fmt.Errorf("%w: %v is occupied", ErrIllegalMove, m.Destination.Coordinates)
	}

	chain := m.chain
	if len(chain) < 2 || !chain[0].Equal(m.Origin) || !chain[len(chain)-1].Equal(m.Destination) {
		return 0, 0, fmt.Errorf("%w: chain does not run from origin to destination", ErrIllegalMove)
	}
	if len(chain) == 2 && s.isStep(from, to) {
		return from, to, nil
	}
	seen := map[int]bool{from: true}
	at := from
	for _, p := range chain[1:] {
		next, ok := s.board.index[p.Coordinates]
		if !ok || seen[next] || !s.isJump(at, next) {
			return 0, 0, fmt.Errorf("%w: %v -> %v is not a jump", ErrIllegalMove, s.board.cells[at], p.Coordinates)
		}
		seen[next] = true
		at = next
	}
	return from, to, nil
}

func (s *State) isStep(from, to int) bool {
	return slices.Contains(s.board.neighbors[from], to)
}

func (s *State) isJump(from, to int) bool {
	if s.occupant[to] != None {
		return false
	}
	for d, over := range s.board.neighbors[from] {
		if over >= 0 && s.occupant[over] != None && s.board.neighbors[over][d] == to {
			return true
		}
	}
	return false
}

// relocate is the single mutation site of the board: occupancy first, then the derived views.
func (s *State) relocate(piece Piece, from, to int) {
	cells := s.occupancy[piece]
	if i, found := slices.BinarySearch(cells, from); found {
		cells = slices.Delete(cells, i, i+1)
	} else {
		panic(fmt.Sprintf("occupancy of %v lost cell %v", piece, s.board.cells[from]))
	}
	i, _ := slices.BinarySearch(cells, to)
	s.occupancy[piece] = slices.Insert(cells, i, to)

	s.occupant[from] = None
	s.occupant[to] = piece
	s.selection = nil
	s.refresh()
}

// refresh recomputes every value derived from occupancy.
func (s *State) refresh() {
	n := len(s.players)
	s.finished = make([]bool, n)
	s.distance = make([]int, n)
	s.farthest = make([]int, n)
	s.winner = -1
	for i, p := range s.players {
		s.finished[i] = s.wins(p.Piece)
		if s.finished[i] && s.winner < 0 {
			s.winner = i
		}
	}
	for i, p := range s.players {
		total := 0
		for _, cell := range s.occupancy[p.Piece] {
			total += s.distanceToFreeEndZone(p.Piece, cell)
		}
		if s.finished[i] {
			total = 0
		}
		s.distance[i] = total

		best, farthest := -1, s.board.targets[p.Piece][0]
		for _, cell := range s.occupancy[p.Piece] {
			for _, t := range s.board.targets[p.Piece] {
				if d := s.board.distances[cell][t]; d > best {
					best, farthest = d, t
				}
			}
		}
		s.farthest[i] = farthest
	}
}

// wins reports whether every piece of the color sits in its target zone, or the target zone is
// full and holds at least one piece of the color.
func (s *State) wins(piece Piece) bool {
	mask := s.board.inTarget[piece]
	all := true
	for _, cell := range s.occupancy[piece] {
		if !mask[cell] {
			all = false
			break
		}
	}
	if all {
		return true
	}
	own := false
	for _, t := range s.board.targets[piece] {
		switch s.occupant[t] {
		case None:
			return false
		case piece:
			own = true
		}
	}
	return own
}

func (s *State) distanceToFreeEndZone(piece Piece, cell int) int {
	mask := s.board.inTarget[piece]
	if mask == nil {
		return 0
	}
	if mask[cell] {
		return 0
	}
	best, fallback := -1, -1
	for _, t := range s.board.targets[piece] {
		d := s.board.distances[cell][t]
		if fallback < 0 || d < fallback {
			fallback = d
		}
		occ := s.occupant[t]
		if occ == piece {
			continue
		}
		if seat, ok := s.seat[occ]; ok && s.finished != nil && s.finished[seat] {
			continue
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return fallback
	}
	return best
}
