package game

import (
	"fmt"
	"strings"
)

// Mode is the difficulty tier of a computer player.
type Mode int

const (
	Easy Mode = iota
	Normal
	Hard
	Endgame
)

var modeNames = []string{"easy", "normal", "hard", "endgame"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Player is a seat at the table. The piece is fixed for the whole game, AI and Mode may be
// reconfigured between turns.
type Player struct {
	Piece Piece
	AI    bool
	Mode  Mode
}

func NewPlayer(piece Piece, ai bool, mode Mode) Player {
	return Player{Piece: piece, AI: ai, Mode: mode}
}

func (p Player) String() string {
	return p.Piece.String()
}
