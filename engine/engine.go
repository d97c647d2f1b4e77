package engine

import (
	"errors"

	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
	"chinesecheckers/searcher"
)

const MaxTurns = 1000

var ErrNoAgent = errors.New("no agent for player")

// Agent chooses moves for a computer player.
type Agent interface {
	// FindMove returns the move of the state's current player.
	FindMove(state *game.State) (game.Move, metrics.SearchMetric, error)
}

// MinimaxAgent plays at the difficulty configured on the current player.
type MinimaxAgent struct {
	Searcher *searcher.Minimax
}

func NewMinimaxAgent(options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{Searcher: searcher.NewMinimax(options...)}
}

func (a *MinimaxAgent) FindMove(state *game.State) (game.Move, metrics.SearchMetric, error) {
	return a.Searcher.Decide(state, state.CurrentPlayer().Mode)
}
