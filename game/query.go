package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

func (s *State) Board() *Board { return s.board }

// Players returns the players in turn order.
func (s *State) Players() []Player { return slices.Clone(s.players) }

func (s *State) CurrentPlayer() Player { return s.players[s.current] }

func (s *State) CurrentIndex() int { return s.current }

// NextPlayer returns the player who moves after the current one, without changing the turn.
func (s *State) NextPlayer() Player {
	return s.players[(s.current+1)%len(s.players)]
}

// NextTurn hands the turn to the next player in seating order. Nobody is skipped.
func (s *State) NextTurn() {
	s.current = (s.current + 1) % len(s.players)
	s.selection = nil
}

// PlayerOf returns the player owning a color.
func (s *State) PlayerOf(piece Piece) (Player, bool) {
	i, ok := s.seat[piece]
	if !ok {
		return Player{}, false
	}
	return s.players[i], true
}

// Configure changes whether a color is computer controlled and at which difficulty.
func (s *State) Configure(piece Piece, ai bool, mode Mode) error {
	i, ok := s.seat[piece]
	if !ok {
		return fmt.Errorf("%w: %v is not seated", ErrUnknownPiece, piece)
	}
	s.players[i].AI = ai
	s.players[i].Mode = mode
	return nil
}

func (s *State) position(cell int) VirtualPosition {
	return VirtualPosition{Coordinates: s.board.cells[cell], Piece: s.occupant[cell]}
}

func (s *State) positions(cells []int) []VirtualPosition {
	out := make([]VirtualPosition, len(cells))
	for i, c := range cells {
		out[i] = s.position(c)
	}
	return out
}

// Positions returns the cells occupied by a color in board order. For None it returns the
// empty cells.
func (s *State) Positions(piece Piece) []VirtualPosition {
	if piece != None {
		return s.positions(s.occupancy[piece])
	}
	var empty []int
	for i, occ := range s.occupant {
		if occ == None {
			empty = append(empty, i)
		}
	}
	return s.positions(empty)
}

// Occupied returns every occupied cell in board order.
func (s *State) Occupied() []VirtualPosition {
	var cells []int
	for i, occ := range s.occupant {
		if occ != None {
			cells = append(cells, i)
		}
	}
	return s.positions(cells)
}

// PieceAt returns the occupant of a cell, None when empty or off the board.
func (s *State) PieceAt(c Coordinates) Piece {
	i, ok := s.board.index[c]
	if !ok {
		return None
	}
	return s.occupant[i]
}

// Position returns the cell at c with its current occupant.
func (s *State) Position(c Coordinates) (VirtualPosition, bool) {
	i, ok := s.board.index[c]
	if !ok {
		return VirtualPosition{}, false
	}
	return s.position(i), true
}

// NumPieces is the number of pieces each color plays with.
func (s *State) NumPieces() int {
	return len(s.occupancy[s.players[0].Piece])
}

func (s *State) MaxDistance() int { return s.board.maxDistance }

func (s *State) Center() VirtualPosition { return s.position(s.board.center) }

func (s *State) Distance(a, b Coordinates) int { return s.board.Distance(a, b) }

// EndZone returns the target cells of a color with their occupants.
func (s *State) EndZone(piece Piece) []VirtualPosition {
	return s.positions(s.board.targets[piece])
}

func (s *State) InEndZone(piece Piece, c Coordinates) bool {
	return s.board.InTarget(piece, c)
}

// OtherPiecesInEndZone counts the pieces in a color's end zone that are not except. An end zone
// filling up with anyone but the mover is crowded for the mover.
func (s *State) OtherPiecesInEndZone(zone, except Piece) int {
	n := 0
	for _, t := range s.board.targets[zone] {
		if occ := s.occupant[t]; occ != None && occ != except {
			n++
		}
	}
	return n
}

// DistanceToFreeEndZone is 0 when c is already in the color's end zone, otherwise the distance
// to the nearest target cell that is neither held by the color itself nor by a player who has
// already finished.
func (s *State) DistanceToFreeEndZone(piece Piece, c Coordinates) int {
	i, ok := s.board.index[c]
	if !ok {
		best := -1
		for _, t := range s.board.targets[piece] {
			if d := s.board.Distance(c, s.board.cells[t]); best < 0 || d < best {
				best = d
			}
		}
		return max(best, 0)
	}
	return s.distanceToFreeEndZone(piece, i)
}

// PlayerDistance is the total distance a player's pieces still have to cover.
func (s *State) PlayerDistance(p Player) int {
	i, ok := s.seat[p.Piece]
	if !ok {
		return 0
	}
	return s.distance[i]
}

// LeadingOpponent returns the opponent of p with the least distance left; the first one in turn
// order on ties.
func (s *State) LeadingOpponent(p Player) (Player, bool) {
	lead, found := Player{}, false
	best := 0
	for i, other := range s.players {
		if other.Piece == p.Piece {
			continue
		}
		if !found || s.distance[i] < best {
			lead, best, found = other, s.distance[i], true
		}
	}
	return lead, found
}

// FarthestPosition returns the target cell farthest from any of the player's pieces.
func (s *State) FarthestPosition(p Player) VirtualPosition {
	i, ok := s.seat[p.Piece]
	if !ok {
		return VirtualPosition{}
	}
	return s.position(s.farthest[i])
}

// IsWinner reports whether p has completed its end zone.
func (s *State) IsWinner(p Player) bool {
	i, ok := s.seat[p.Piece]
	return ok && s.finished[i]
}

// Winner returns the first player in turn order who has won.
func (s *State) Winner() (Player, bool) {
	if s.winner < 0 {
		return Player{}, false
	}
	return s.players[s.winner], true
}

// GameOver reports whether somebody has won.
func (s *State) GameOver() bool { return s.winner >= 0 }
