package searcher

import (
	"fmt"

	"chinesecheckers/game"
)

// Ordering selects how candidate moves are picked at every node of the tree.
type Ordering int

const (
	// Forward keeps moves that get closer to a free end-zone cell, in generation order.
	Forward Ordering = iota
	// NotBackward keeps moves that do not get farther from a free end-zone cell.
	NotBackward
	// Ranked sorts moves by distance gained and position, skipping moves into crowded end zones.
	Ranked
)

// Settings is the search configuration of one difficulty mode.
type Settings struct {
	Depth    int
	Width    int // candidate moves kept per node
	Ordering Ordering
	SelfOnly bool // opponents' replies are not explored
}

var modes = map[game.Mode]Settings{
	game.Easy:    {Depth: 1, Width: 4, Ordering: Forward},
	game.Normal:  {Depth: 2, Width: 2, Ordering: Ranked},
	game.Hard:    {Depth: 3, Width: 8, Ordering: Ranked},
	game.Endgame: {Depth: 3, Width: 12, Ordering: NotBackward, SelfOnly: true},
}

const (
	EndgameDistance  = 4 // every piece this close to the farthest target cell switches to Endgame
	MidgameDistance  = 5 // every piece this close to a free target cell counts as mid game
	CrowdedZoneRatio = 2 // a zone holding pieces/ratio others is crowded
	BlockingWidth    = 3
)

// ModeSettings returns the search configuration of a mode.
func ModeSettings(mode game.Mode) (Settings, error) {
	s, ok := modes[mode]
	if !ok {
		return Settings{}, fmt.Errorf("%w: %v", game.ErrUnknownMode, mode)
	}
	return s, nil
}

// EffectiveMode is the mode actually searched for the current player: Endgame once every piece is
// within EndgameDistance of the player's farthest target cell, the requested mode otherwise.
func EffectiveMode(state *game.State, mode game.Mode) game.Mode {
	player := state.CurrentPlayer()
	farthest := state.FarthestPosition(player).Coordinates
	for _, p := range state.Positions(player.Piece) {
		if state.Distance(p.Coordinates, farthest) > EndgameDistance {
			return mode
		}
	}
	return game.Endgame
}

func isMidGame(state *game.State, player game.Player) bool {
	for _, p := range state.Positions(player.Piece) {
		if state.DistanceToFreeEndZone(player.Piece, p.Coordinates) > MidgameDistance {
			return false
		}
	}
	return true
}
