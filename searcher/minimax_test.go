package searcher

import (
	"testing"

	"chinesecheckers/game"

	"github.com/stretchr/testify/require"
)

var searchModes = []game.Mode{game.Easy, game.Normal, game.Hard, game.Endgame}

func twoPlayers() []game.Player {
	return []game.Player{
		game.NewPlayer(game.White, true, game.Normal),
		game.NewPlayer(game.Black, true, game.Normal),
	}
}

func line(cells int) []game.Coordinates {
	out := make([]game.Coordinates, cells)
	for i := range out {
		out[i] = game.Coordinates{Row: 0, Col: 2 * i}
	}
	return out
}

func at(col int) game.Coordinates {
	return game.Coordinates{Row: 0, Col: col}
}

func newLineState(t *testing.T, cells int, white, black, whiteTarget, blackTarget []game.Coordinates) *game.State {
	t.Helper()
	s, err := game.NewState(twoPlayers(), game.Layout{
		Name:       "line",
		Directions: game.StarDirections,
		Cells:      line(cells),
		Start:      map[game.Piece][]game.Coordinates{game.White: white, game.Black: black},
		Target:     map[game.Piece][]game.Coordinates{game.White: whiteTarget, game.Black: blackTarget},
	})
	require.NoError(t, err)
	return s
}

// midgame plays a few Normal plies from the opening so the position is no longer symmetric.
func midgame(t *testing.T, players int, plies int) *game.State {
	t.Helper()
	var seats []game.Player
	pieces, err := game.StarPieces(players)
	require.NoError(t, err)
	for _, p := range pieces {
		seats = append(seats, game.NewPlayer(p, true, game.Normal))
	}
	s, err := game.NewGame(seats, game.Star, 0)
	require.NoError(t, err)
	for i := 0; i < plies; i++ {
		m, err := DecideMove(s, game.Normal)
		require.NoError(t, err)
		s, err = s.Apply(m)
		require.NoError(t, err)
		s.NextTurn()
	}
	return s
}

func TestDecideMove(t *testing.T) {
	t.Run("same state and mode give the same move", func(t *testing.T) {
		s := midgame(t, 2, 4)
		for _, mode := range searchModes {
			first, err := DecideMove(s, mode)
			require.NoError(t, err)
			second, err := DecideMove(s, mode)
			require.NoError(t, err)
			require.Equal(t, first, second, "mode %v", mode)
		}
	})

	t.Run("chosen move is legal for the current player", func(t *testing.T) {
		s := midgame(t, 4, 6)
		for _, mode := range searchModes {
			m, err := DecideMove(s, mode)
			require.NoError(t, err)
			require.Equal(t, s.CurrentPlayer().Piece, m.Piece)
			_, err = s.Apply(m)
			require.NoError(t, err, "mode %v", mode)
		}
	})

	t.Run("search leaves the state untouched", func(t *testing.T) {
		s := midgame(t, 2, 2)
		before := s.Occupied()
		current := s.CurrentPlayer()
		_, err := DecideMove(s, game.Hard)
		require.NoError(t, err)
		require.Equal(t, before, s.Occupied())
		require.Equal(t, current, s.CurrentPlayer())
	})

	t.Run("takes the winning move", func(t *testing.T) {
		s := newLineState(t, 5,
			[]game.Coordinates{at(4)}, []game.Coordinates{at(0)},
			[]game.Coordinates{at(6)}, []game.Coordinates{at(8)})
		for _, mode := range searchModes {
			m, err := DecideMove(s, mode)
			require.NoError(t, err)
			require.Equal(t, at(6), m.Destination.Coordinates, "mode %v", mode)
		}
	})

	t.Run("finished game", func(t *testing.T) {
		s := newLineState(t, 6,
			[]game.Coordinates{at(0), at(2)}, []game.Coordinates{at(8), at(10)},
			[]game.Coordinates{at(0), at(2)}, []game.Coordinates{at(4), at(6)})
		_, err := DecideMove(s, game.Normal)
		require.ErrorIs(t, err, game.ErrGameOver)
	})

	t.Run("no legal moves", func(t *testing.T) {
		s := newLineState(t, 2,
			[]game.Coordinates{at(0)}, []game.Coordinates{at(2)},
			[]game.Coordinates{at(2)}, []game.Coordinates{at(0)})
		_, err := DecideMove(s, game.Easy)
		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})

	t.Run("unknown mode", func(t *testing.T) {
		s := midgame(t, 2, 0)
		_, err := DecideMove(s, game.Mode(42))
		require.ErrorIs(t, err, game.ErrUnknownMode)
	})
}

func TestPruningAndParallelism(t *testing.T) {
	states := map[string]*game.State{
		"two players":  midgame(t, 2, 6),
		"four players": midgame(t, 4, 8),
		"six players":  midgame(t, 6, 6),
	}
	for name, s := range states {
		for _, mode := range searchModes {
			plain, err := NewMinimax(WithoutPruning()).DecideMove(s, mode)
			require.NoError(t, err)

			pruned, err := NewMinimax().DecideMove(s, mode)
			require.NoError(t, err)
			require.Equal(t, plain, pruned, "%s, mode %v: pruning changed the move", name, mode)

			parallel, err := NewMinimax(WithGoroutines(4)).DecideMove(s, mode)
			require.NoError(t, err)
			require.Equal(t, plain, parallel, "%s, mode %v: goroutines changed the move", name, mode)
		}
	}
}

func TestSearchMetrics(t *testing.T) {
	s := midgame(t, 2, 0)

	t.Run("collected with metrics", func(t *testing.T) {
		_, metric, err := NewMinimax(WithMetrics()).Decide(s, game.Hard)
		require.NoError(t, err)
		require.Equal(t, game.Hard, metric.Mode)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 1, metric.Goroutines)
		require.Equal(t, 8, metric.Candidates)
		require.Greater(t, metric.Nodes, metric.Candidates)
		require.Positive(t, metric.Leaves)
	})

	t.Run("pruning visits fewer nodes", func(t *testing.T) {
		_, pruned, err := NewMinimax(WithMetrics()).Decide(s, game.Hard)
		require.NoError(t, err)
		_, plain, err := NewMinimax(WithMetrics(), WithoutPruning()).Decide(s, game.Hard)
		require.NoError(t, err)
		require.Zero(t, plain.Cutoffs)
		require.LessOrEqual(t, pruned.Nodes, plain.Nodes)
	})

	t.Run("zero without metrics", func(t *testing.T) {
		_, metric, err := NewMinimax().Decide(s, game.Hard)
		require.NoError(t, err)
		require.Zero(t, metric.Nodes)
	})
}
