package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Update is one played move and the state right after it.
type Update struct {
	Move  game.Move
	State *game.State
}

// UpdateGetter returns the oldest update not yet read. It never blocks; ok is false when there
// is nothing new.
type UpdateGetter func() (u Update, ok bool)

type Option func(e *Engine)

// WithAgent lets agent play for piece, replacing any default agent.
func WithAgent(piece game.Piece, agent Agent) Option {
	return func(e *Engine) {
		if agent != nil {
			e.agents[piece] = agent
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine drives one local game. Moves come either from Play, for human players, or from the
// agents of AI players in Run.
type Engine struct {
	ID       uuid.UUID
	state    *game.State
	agents   map[game.Piece]Agent
	maxTurns int
	turns    int
	gameOver bool

	mu      sync.Mutex
	updates []Update
}

// New starts a game from state. AI players without an explicit agent get a MinimaxAgent.
func New(state *game.State, options ...Option) *Engine {
	e := &Engine{
		ID:       uuid.New(),
		state:    state.Copy(),
		agents:   make(map[game.Piece]Agent),
		maxTurns: MaxTurns,
		gameOver: state.GameOver(),
	}
	for _, option := range options {
		option(e)
	}
	for _, p := range state.Players() {
		if _, ok := e.agents[p.Piece]; !ok && p.AI {
			e.agents[p.Piece] = NewMinimaxAgent()
		}
	}
	return e
}

// Init returns a copy of the current state and a getter for the moves played from now on.
func (e *Engine) Init() (*game.State, UpdateGetter) {
	return e.State(), func() (Update, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if len(e.updates) == 0 {
			return Update{}, false
		}
		u := e.updates[0]
		e.updates = e.updates[1:]
		return Update{Move: u.Move, State: u.State.Copy()}, true
	}
}

// State returns a copy of the current state.
func (e *Engine) State() *game.State {
	return e.state.Copy()
}

func (e *Engine) GameOver() bool {
	return e.gameOver
}

func (e *Engine) Turns() int {
	return e.turns
}

// Play applies a move of the current player and hands the turn on, unless the move wins the
// game. The move must be one of the current legal moves; only origin, destination and piece are
// compared, the chain is taken from move generation.
func (e *Engine) Play(move game.Move) error {
	if e.gameOver {
		return game.ErrGameOver
	}

	legalMoves := e.state.LegalMoves()
	if len(legalMoves) == 0 {
		return fmt.Errorf("%w: %v has no legal moves", game.ErrIllegalMove, e.state.CurrentPlayer())
	}
	var legal *game.Move
	for i := range legalMoves {
		if legalMoves[i].Equal(move) {
			legal = &legalMoves[i]
			break
		}
	}
	if legal == nil {
		return fmt.Errorf("%w: %v", game.ErrIllegalMove, move)
	}

	newState, err := e.state.Apply(*legal)
	if err != nil {
		return fmt.Errorf("failed to apply %v: %w", legal, err)
	}
	e.turns++
	if winner, ok := newState.Winner(); ok {
		e.gameOver = true
		log.Info().Msgf("game %s: %v wins after %d turns", e.ID, winner, e.turns)
	} else {
		newState.NextTurn()
	}
	e.state = newState
	e.push(Update{Move: *legal, State: newState.Copy()})
	return nil
}

// Pass skips the current player. It is only allowed when that player has no legal move.
func (e *Engine) Pass() error {
	if e.gameOver {
		return game.ErrGameOver
	}
	if len(e.state.LegalMoves()) > 0 {
		return fmt.Errorf("%w: %v cannot pass with moves available", game.ErrIllegalMove, e.state.CurrentPlayer())
	}
	log.Debug().Msgf("game %s: %v passes", e.ID, e.state.CurrentPlayer())
	e.turns++
	e.state = e.state.Copy()
	e.state.NextTurn()
	return nil
}

func (e *Engine) push(u Update) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updates = append(e.updates, u)
}

// Run lets the agents play until somebody wins or the turn cap is reached. The winner is
// game.None when the game was stopped.
func (e *Engine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		GameID:         e.ID.String(),
		StartingPlayer: e.state.CurrentPlayer().Piece,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %s: %v is starting", e.ID, e.state.CurrentPlayer())

	for !e.gameOver && e.turns < e.maxTurns {
		current := e.state.CurrentPlayer()
		agent, ok := e.agents[current.Piece]
		if !ok {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%w: %v", ErrNoAgent, current)
		}

		move, searchMetric, err := agent.FindMove(e.State())
		if errors.Is(err, game.ErrNoLegalMoves) {
			if err := e.Pass(); err != nil {
				return game.None, gameMetric, moveMetrics, err
			}
			continue
		}
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%v failed to find a move: %w", current, err)
		}

		err = e.Play(move)
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%v played an invalid move: %w", current, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.turns,
			Player:       current.Piece,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("game %s turn %d: %v", e.ID, e.turns, move)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner, ok := e.state.Winner(); ok {
		gameMetric.Winner = winner.Piece
	} else {
		log.Info().Msgf("game %s: stopped after %d turns without a winner", e.ID, e.turns)
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
