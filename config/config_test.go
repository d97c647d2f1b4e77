package config

import (
	"os"
	"path/filepath"
	"testing"

	"chinesecheckers/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const fourPlayers = `
board:
  shape: star
  size: 4
players:
  - piece: white
    mode: easy
  - piece: yellow
    ai: true
    mode: hard
  - piece: black
    ai: true
  - piece: blue
    ai: true
    mode: endgame
search:
  goroutines: 4
  pruning: false
engine:
  max_turns: 300
log:
  level: debug
`

func TestParse(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		c, err := Parse([]byte(fourPlayers))
		require.NoError(t, err)
		require.Equal(t, 4, c.Board.Size)
		require.Equal(t, 300, c.Engine.MaxTurns)
		require.Equal(t, 4, c.Search.Goroutines)
		require.False(t, c.Search.Pruning)
		require.Len(t, c.SearchOptions(), 2)

		players, err := c.GamePlayers()
		require.NoError(t, err)
		require.Equal(t, []game.Player{
			game.NewPlayer(game.White, false, game.Easy),
			game.NewPlayer(game.Yellow, true, game.Hard),
			game.NewPlayer(game.Black, true, game.Normal),
			game.NewPlayer(game.Blue, true, game.Endgame),
		}, players)

		level, err := c.LogLevel()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)

		s, err := c.NewState()
		require.NoError(t, err)
		require.Len(t, s.Players(), 4)
		require.Len(t, s.Occupied(), 40)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		c, err := Parse([]byte("engine:\n  max_turns: 50\n"))
		require.NoError(t, err)
		require.Equal(t, 50, c.Engine.MaxTurns)
		require.Equal(t, Default().Players, c.Players)
		require.Equal(t, "star", c.Board.Shape)
		require.True(t, c.Search.Pruning)
		require.Len(t, c.SearchOptions(), 1)
	})

	t.Run("empty file is the default", func(t *testing.T) {
		c, err := Parse(nil)
		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	t.Run("unknown piece", func(t *testing.T) {
		_, err := Parse([]byte("players:\n  - piece: purple\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorIs(t, err, game.ErrUnknownPiece)
		require.ErrorContains(t, err, "players[0].piece")
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Parse([]byte("players:\n  - piece: white\n    mode: insane\n"))
		require.ErrorIs(t, err, game.ErrUnknownMode)
	})

	t.Run("unknown shape", func(t *testing.T) {
		_, err := Parse([]byte("board:\n  shape: hexagon\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorContains(t, err, "board.shape")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := Parse([]byte("log:\n  level: loud\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("negative values", func(t *testing.T) {
		_, err := Parse([]byte("board:\n  size: -1\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
		_, err = Parse([]byte("search:\n  goroutines: -2\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("players: [\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("seats that do not fit the board", func(t *testing.T) {
		c, err := Parse([]byte("players:\n  - piece: white\n  - piece: black\n  - piece: red\n"))
		require.NoError(t, err)
		_, err = c.NewState()
		require.ErrorIs(t, err, game.ErrInvalidLayout)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fourPlayers), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Players, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
