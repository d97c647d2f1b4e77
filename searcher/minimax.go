package searcher

import (
	"math"
	"sync"

	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax picks moves with a depth-limited paranoid search: the player to move at the root
// maximizes the distance its leading opponent still has to cover minus its own, every other
// player minimizes it.
type Minimax struct {
	goroutines int
	pruning    bool
	metrics    metrics.Collector
}

// WithGoroutines evaluates the root moves on that many goroutines. The chosen move does not
// depend on it.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithoutPruning disables alpha-beta pruning.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		goroutines: 1,
		pruning:    true,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// DecideMove returns the best move of the current player. It fails with game.ErrGameOver once
// somebody has won and with game.ErrNoLegalMoves when the player cannot move.
func DecideMove(state *game.State, mode game.Mode) (game.Move, error) {
	return NewMinimax().DecideMove(state, mode)
}

func (m *Minimax) DecideMove(state *game.State, mode game.Mode) (game.Move, error) {
	move, _, err := m.Decide(state, mode)
	return move, err
}

// Decide is DecideMove that also reports search metrics. Metrics are zero unless WithMetrics
// was given.
func (m *Minimax) Decide(state *game.State, mode game.Mode) (game.Move, metrics.SearchMetric, error) {
	if state.GameOver() {
		return game.Move{}, metrics.SearchMetric{}, game.ErrGameOver
	}
	s, err := m.newSearch(state, mode)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}

	moves := s.candidates(state, s.root.Piece, true)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, game.ErrNoLegalMoves
	}
	m.metrics.Start(s.mode, s.settings.Depth, m.goroutines)
	m.metrics.SetCandidates(len(moves))

	var values []int
	if m.goroutines > 1 && len(moves) > 1 {
		values = s.evaluateParallel(state, moves, m.goroutines)
	} else {
		values = s.evaluateSequential(state, moves)
	}

	// Ties keep the first move in generation order
	best := 0
	for i := range values {
		if values[i] > values[best] {
			best = i
		}
	}
	metric := m.metrics.Complete()

	log.Debug().Msgf("%v (%v, depth %d) chose %v with score %d out of %d candidates",
		s.root, s.mode, s.settings.Depth, moves[best], values[best], len(moves))
	return moves[best], metric, nil
}

type search struct {
	root     game.Player
	opponent game.Player
	solo     bool // no opponent to measure against
	mode     game.Mode
	settings Settings
	midGame  bool
	win      int // saturating score of a won position before the depth bonus
	pruning  bool
	metrics  metrics.Collector
}

func (m *Minimax) newSearch(state *game.State, mode game.Mode) (*search, error) {
	if _, err := ModeSettings(mode); err != nil {
		return nil, err
	}
	mode = EffectiveMode(state, mode)
	settings, err := ModeSettings(mode)
	if err != nil {
		return nil, err
	}

	root := state.CurrentPlayer()
	opponent, ok := state.LeadingOpponent(root)
	return &search{
		root:     root,
		opponent: opponent,
		solo:     !ok,
		mode:     mode,
		settings: settings,
		midGame:  isMidGame(state, root),
		win:      state.MaxDistance() * state.NumPieces() * len(state.Players()),
		pruning:  m.pruning,
		metrics:  m.metrics,
	}, nil
}

func (s *search) evaluateSequential(state *game.State, moves []game.Move) []int {
	values := make([]int, len(moves))
	alpha := math.MinInt
	for i, move := range moves {
		values[i] = s.alphaBeta(s.child(state, move), s.settings.Depth-1, alpha, math.MaxInt)
		if s.pruning && values[i] > alpha {
			alpha = values[i]
		}
	}
	return values
}

// evaluateParallel searches every root move with a full window so each value is exact and the
// pick matches the sequential search.
func (s *search) evaluateParallel(state *game.State, moves []game.Move, goroutines int) []int {
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	values := make([]int, len(moves))
	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, len(moves)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				values[idx] = s.alphaBeta(s.child(state, moves[idx]), s.settings.Depth-1, math.MinInt, math.MaxInt)
			}
		}()
	}

	wg.Wait()
	return values
}

func (s *search) child(state *game.State, move game.Move) *game.State {
	next, err := state.Apply(move)
	if err != nil {
		panic("generated move rejected: " + err.Error())
	}
	if !s.settings.SelfOnly {
		next.NextTurn()
	}
	return next
}

func (s *search) alphaBeta(state *game.State, depth, alpha, beta int) int {
	s.metrics.AddNode()
	if state.IsWinner(s.root) {
		return s.win + depth
	}
	if state.GameOver() {
		return -(s.win + depth)
	}
	if depth == 0 {
		s.metrics.AddLeaf()
		return s.evaluate(state)
	}

	mover := state.CurrentPlayer()
	moves := s.candidates(state, mover.Piece, false)
	if len(moves) == 0 {
		if s.settings.SelfOnly {
			s.metrics.AddLeaf()
			return s.evaluate(state)
		}
		// Blocked players pass
		next := state.Copy()
		next.NextTurn()
		return s.alphaBeta(next, depth-1, alpha, beta)
	}

	maximizing := mover.Piece == s.root.Piece
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, move := range moves {
		value := s.alphaBeta(s.child(state, move), depth-1, alpha, beta)
		if maximizing {
			best = max(best, value)
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			beta = min(beta, best)
		}
		if s.pruning && alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}
	return best
}

// evaluate scores a position for the root player: how far the leading opponent is behind it.
func (s *search) evaluate(state *game.State) int {
	own := state.PlayerDistance(s.root)
	if s.solo {
		return -own
	}
	return state.PlayerDistance(s.opponent) - own
}
