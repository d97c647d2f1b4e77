package searcher

import (
	"chinesecheckers/game"

	"golang.org/x/exp/slices"
)

// progress is how much closer to a free end-zone cell the move brings the piece; negative when
// the move gets closer.
func progress(state *game.State, m game.Move) int {
	return state.DistanceToFreeEndZone(m.Piece, m.Destination.Coordinates) -
		state.DistanceToFreeEndZone(m.Piece, m.Origin.Coordinates)
}

func crowded(state *game.State, zone, mover game.Piece) bool {
	return state.OtherPiecesInEndZone(zone, mover) >= state.NumPieces()/CrowdedZoneRatio
}

// intoCrowdedZone reports whether the move enters an opponent's end zone that is already crowded.
func intoCrowdedZone(state *game.State, m game.Move) bool {
	for _, p := range state.Players() {
		if p.Piece == m.Piece || !crowded(state, p.Piece, m.Piece) {
			continue
		}
		if state.InEndZone(p.Piece, m.Destination.Coordinates) && !state.InEndZone(p.Piece, m.Origin.Coordinates) {
			return true
		}
	}
	return false
}

// blockingPositions lists the mover's pieces that sit in a crowded opponent end zone, deepest first.
func blockingPositions(state *game.State, mover game.Piece) []game.VirtualPosition {
	var blocking []game.VirtualPosition
	for _, pos := range state.Positions(mover) {
		for _, p := range state.Players() {
			if p.Piece != mover && state.InEndZone(p.Piece, pos.Coordinates) && crowded(state, p.Piece, mover) {
				blocking = append(blocking, pos)
				break
			}
		}
	}
	center := state.Center().Coordinates
	slices.SortStableFunc(blocking, func(a, b game.VirtualPosition) int {
		return state.Distance(b.Coordinates, center) - state.Distance(a.Coordinates, center)
	})
	return blocking
}

// blockingMoves returns the forward moves of the first blocking piece that has any.
func blockingMoves(state *game.State, moves []game.Move) []game.Move {
	if len(moves) == 0 {
		return nil
	}
	for _, pos := range blockingPositions(state, moves[0].Piece) {
		var picked []game.Move
		for _, m := range moves {
			if m.Origin.Equal(pos) && progress(state, m) < 0 {
				picked = append(picked, m)
			}
			if len(picked) == BlockingWidth {
				break
			}
		}
		if len(picked) > 0 {
			return picked
		}
	}
	return nil
}

type rankKey [4]int

func (k rankKey) compare(o rankKey) int {
	for i := range k {
		if k[i] != o[i] {
			if k[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// edge prefers destinations deep in the mover's own end zone and shallow in an opponent's.
func edge(state *game.State, m game.Move) int {
	dest := m.Destination.Coordinates
	d := state.Distance(dest, state.Center().Coordinates)
	if state.InEndZone(m.Piece, dest) {
		return -d
	}
	for _, p := range state.Players() {
		if p.Piece != m.Piece && state.InEndZone(p.Piece, dest) {
			return d
		}
	}
	return 0
}

// rank orders moves by distance gained, then by how close the origin is to the farthest target
// cell (mid game) or to home (early game), then by how deep the destination lands, then by edge.
func rank(state *game.State, moves []game.Move, midGame bool) []game.Move {
	if len(moves) == 0 {
		return nil
	}
	mover, _ := state.PlayerOf(moves[0].Piece)
	farthest := state.FarthestPosition(mover).Coordinates
	sign := -1
	if midGame {
		sign = 1
	}

	type ranked struct {
		move game.Move
		key  rankKey
	}
	var keyed []ranked
	for _, m := range moves {
		if intoCrowdedZone(state, m) {
			continue
		}
		keyed = append(keyed, ranked{move: m, key: rankKey{
			progress(state, m),
			sign * state.Distance(m.Origin.Coordinates, farthest),
			state.Distance(m.Destination.Coordinates, farthest),
			edge(state, m),
		}})
	}
	slices.SortStableFunc(keyed, func(a, b ranked) int {
		return a.key.compare(b.key)
	})
	out := make([]game.Move, len(keyed))
	for i, k := range keyed {
		out[i] = k.move
	}
	return out
}

// candidates picks the moves explored from a node. When the filter of the mode leaves nothing,
// every legal move is a candidate.
func (s *search) candidates(state *game.State, mover game.Piece, root bool) []game.Move {
	moves := state.Moves(mover)
	if root {
		if blocking := blockingMoves(state, moves); len(blocking) > 0 {
			return blocking
		}
	}

	var picked []game.Move
	switch s.settings.Ordering {
	case Forward:
		for _, m := range moves {
			if progress(state, m) < 0 {
				picked = append(picked, m)
			}
		}
	case NotBackward:
		for _, m := range moves {
			if progress(state, m) <= 0 {
				picked = append(picked, m)
			}
		}
	case Ranked:
		picked = rank(state, moves, s.midGame)
	default:
		panic("unexpected ordering")
	}
	if len(picked) == 0 {
		return moves
	}
	if len(picked) > s.settings.Width {
		picked = picked[:s.settings.Width]
	}
	return picked
}
