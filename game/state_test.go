package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTurns(t *testing.T) {
	players := []Player{
		NewPlayer(White, false, Easy), NewPlayer(Yellow, true, Hard),
		NewPlayer(Black, true, Normal), NewPlayer(Blue, true, Easy),
	}
	s, err := NewGame(players, Star, 0)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		require.Equal(t, players[i%4].Piece, s.CurrentPlayer().Piece)
		require.Equal(t, i%4, s.CurrentIndex())
		require.Equal(t, players[(i+1)%4].Piece, s.NextPlayer().Piece)
		s.NextTurn()
	}
}

func TestConfigure(t *testing.T) {
	s, err := NewGame(twoPlayers(), Star, 0)
	require.NoError(t, err)

	require.NoError(t, s.Configure(White, true, Hard))
	p, ok := s.PlayerOf(White)
	require.True(t, ok)
	require.True(t, p.AI)
	require.Equal(t, Hard, p.Mode)

	err = s.Configure(Green, true, Easy)
	require.ErrorIs(t, err, ErrUnknownPiece)
	require.ErrorContains(t, err, "green")
	_, ok = s.PlayerOf(Green)
	require.False(t, ok)
}

func TestCopyIsIndependent(t *testing.T) {
	s, err := NewGame(twoPlayers(), Star, 0)
	require.NoError(t, err)
	before := s.Occupied()
	distance := s.PlayerDistance(s.CurrentPlayer())

	m := s.LegalMoves()[0]
	next, err := s.Apply(m)
	require.NoError(t, err)
	next.NextTurn()
	require.NoError(t, next.Configure(White, true, Endgame))

	require.Equal(t, before, s.Occupied())
	require.Equal(t, distance, s.PlayerDistance(s.CurrentPlayer()))
	require.Equal(t, White, s.CurrentPlayer().Piece)
	require.False(t, s.CurrentPlayer().AI)
	require.Equal(t, m.Piece, s.PieceAt(m.Origin.Coordinates))
	require.Equal(t, None, s.PieceAt(m.Destination.Coordinates))
	require.Equal(t, Black, next.CurrentPlayer().Piece)
}

func TestWinner(t *testing.T) {
	t.Run("all pieces home", func(t *testing.T) {
		s := newLineState(t, 6,
			[]Coordinates{at(0), at(2)}, []Coordinates{at(8), at(10)},
			[]Coordinates{at(0), at(2)}, []Coordinates{at(4), at(6)})

		require.True(t, s.GameOver())
		w, ok := s.Winner()
		require.True(t, ok)
		require.Equal(t, White, w.Piece)
		require.True(t, s.IsWinner(w))
		require.Zero(t, s.PlayerDistance(w))

		m, err := s.MoveTo(at(2), at(4))
		require.NoError(t, err)
		next, err := s.Apply(m)
		require.NoError(t, err)
		require.False(t, next.GameOver())
		_, ok = next.Winner()
		require.False(t, ok)
		require.True(t, s.GameOver(), "parent keeps its winner")
	})

	t.Run("full end zone with an own piece wins", func(t *testing.T) {
		s := newLineState(t, 6,
			[]Coordinates{at(0), at(10)}, []Coordinates{at(2), at(8)},
			[]Coordinates{at(8), at(10)}, []Coordinates{at(0), at(4)})

		w, ok := s.Winner()
		require.True(t, ok)
		require.Equal(t, White, w.Piece)
		black, _ := s.PlayerOf(Black)
		require.False(t, s.IsWinner(black))

		require.Zero(t, s.PlayerDistance(w), "a winner has nothing left to cover")
		require.Positive(t, s.PlayerDistance(black))
		lead, ok := s.LeadingOpponent(black)
		require.True(t, ok)
		require.Equal(t, White, lead.Piece)
	})

	t.Run("full end zone without an own piece does not win", func(t *testing.T) {
		s := newLineState(t, 6,
			[]Coordinates{at(0), at(4)}, []Coordinates{at(8), at(10)},
			[]Coordinates{at(8), at(10)}, []Coordinates{at(0), at(2)})

		require.False(t, s.GameOver())
		require.Equal(t, 2, s.OtherPiecesInEndZone(White, None))
		require.Zero(t, s.OtherPiecesInEndZone(White, Black))
	})

	t.Run("first winner in turn order", func(t *testing.T) {
		s := newLineState(t, 6,
			[]Coordinates{at(0), at(2)}, []Coordinates{at(8), at(10)},
			[]Coordinates{at(0), at(2)}, []Coordinates{at(8), at(10)})

		w, ok := s.Winner()
		require.True(t, ok)
		require.Equal(t, White, w.Piece)
		black, _ := s.PlayerOf(Black)
		require.True(t, s.IsWinner(black))
	})
}

func TestDistanceToFreeEndZone(t *testing.T) {
	s := newLineState(t, 7,
		[]Coordinates{at(0), at(6)}, []Coordinates{at(2), at(12)},
		[]Coordinates{at(6), at(10), at(12)}, []Coordinates{at(4), at(8)})

	require.Zero(t, s.DistanceToFreeEndZone(White, at(6)))
	require.Equal(t, 5, s.DistanceToFreeEndZone(White, at(0)), "own piece on (0,6) is skipped")
	require.Equal(t, 5, s.PlayerDistance(NewPlayer(White, false, Easy)))
	require.True(t, s.InEndZone(White, at(12)))
	require.Len(t, s.EndZone(White), 3)
	require.Equal(t, 2, s.OtherPiecesInEndZone(White, None))
	require.Equal(t, 1, s.OtherPiecesInEndZone(White, White))

	t.Run("farthest target", func(t *testing.T) {
		white, _ := s.PlayerOf(White)
		require.Equal(t, at(12), s.FarthestPosition(white).Coordinates)
	})

	t.Run("leading opponent", func(t *testing.T) {
		white, _ := s.PlayerOf(White)
		lead, ok := s.LeadingOpponent(white)
		require.True(t, ok)
		require.Equal(t, Black, lead.Piece)
	})
}

func TestPositions(t *testing.T) {
	s, err := NewGame(twoPlayers(), Star, 0)
	require.NoError(t, err)

	require.Len(t, s.Positions(White), 10)
	require.Len(t, s.Positions(None), 101)
	for _, p := range s.Positions(Black) {
		require.Equal(t, Black, p.Piece)
		require.True(t, s.InEndZone(White, p.Coordinates))
	}
	pos, ok := s.Position(s.Center().Coordinates)
	require.True(t, ok)
	require.Equal(t, None, pos.Piece)
	_, ok = s.Position(Coordinates{Row: 1, Col: 1})
	require.False(t, ok)
}

func TestParse(t *testing.T) {
	p, err := ParsePiece(" Yellow ")
	require.NoError(t, err)
	require.Equal(t, Yellow, p)
	_, err = ParsePiece("purple")
	require.ErrorIs(t, err, ErrUnknownPiece)

	m, err := ParseMode("ENDGAME")
	require.NoError(t, err)
	require.Equal(t, Endgame, m)
	_, err = ParseMode("impossible")
	require.ErrorIs(t, err, ErrUnknownMode)

	shape, err := ParseShape("square")
	require.NoError(t, err)
	require.Equal(t, Square, shape)
}
