// Package config loads the YAML description of a game: board, seats, search and logging.
package config

import (
	"errors"
	"fmt"
	"os"

	"chinesecheckers/game"
	"chinesecheckers/searcher"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type GameConfig struct {
	Board   BoardConfig    `yaml:"board"`
	Players []PlayerConfig `yaml:"players"`
	Search  SearchConfig   `yaml:"search"`
	Engine  EngineConfig   `yaml:"engine"`
	Log     LogConfig      `yaml:"log"`
}

type BoardConfig struct {
	Shape string `yaml:"shape"` // star or square
	Size  int    `yaml:"size"`  // zero selects the standard board
}

type PlayerConfig struct {
	Piece string `yaml:"piece"`
	AI    bool   `yaml:"ai"`
	Mode  string `yaml:"mode"`
}

type SearchConfig struct {
	Goroutines int  `yaml:"goroutines"`
	Pruning    bool `yaml:"pruning"`
}

type EngineConfig struct {
	MaxTurns int `yaml:"max_turns"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default is two computer players on the standard star.
func Default() GameConfig {
	return GameConfig{
		Board: BoardConfig{Shape: game.Star.String()},
		Players: []PlayerConfig{
			{Piece: game.White.String(), AI: true, Mode: game.Normal.String()},
			{Piece: game.Black.String(), AI: true, Mode: game.Normal.String()},
		},
		Search: SearchConfig{Goroutines: 1, Pruning: true},
		Engine: EngineConfig{MaxTurns: 1000},
		Log:    LogConfig{Level: zerolog.LevelInfoValue},
	}
}

// Load reads a config file. Fields missing from the file keep their defaults.
func Load(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (GameConfig, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return GameConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return GameConfig{}, err
	}
	return c, nil
}

// Validate checks every field on its own. Whether the seats fit the board is only known once
// the state is built.
func (c GameConfig) Validate() error {
	if _, err := game.ParseShape(c.Board.Shape); err != nil {
		return fmt.Errorf("%w: board.shape: %w", ErrInvalidConfig, err)
	}
	if c.Board.Size < 0 {
		return fmt.Errorf("%w: board.size must not be negative", ErrInvalidConfig)
	}
	if _, err := c.GamePlayers(); err != nil {
		return err
	}
	if c.Search.Goroutines < 0 {
		return fmt.Errorf("%w: search.goroutines must not be negative", ErrInvalidConfig)
	}
	if c.Engine.MaxTurns < 0 {
		return fmt.Errorf("%w: engine.max_turns must not be negative", ErrInvalidConfig)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// GamePlayers converts the seats in turn order.
func (c GameConfig) GamePlayers() ([]game.Player, error) {
	if len(c.Players) == 0 {
		return nil, fmt.Errorf("%w: players: none configured", ErrInvalidConfig)
	}
	players := make([]game.Player, len(c.Players))
	for i, p := range c.Players {
		piece, err := game.ParsePiece(p.Piece)
		if err != nil {
			return nil, fmt.Errorf("%w: players[%d].piece: %w", ErrInvalidConfig, i, err)
		}
		mode := game.Normal
		if p.Mode != "" {
			mode, err = game.ParseMode(p.Mode)
			if err != nil {
				return nil, fmt.Errorf("%w: players[%d].mode: %w", ErrInvalidConfig, i, err)
			}
		}
		players[i] = game.NewPlayer(piece, p.AI, mode)
	}
	return players, nil
}

// NewState builds the initial state described by the config.
func (c GameConfig) NewState() (*game.State, error) {
	shape, err := game.ParseShape(c.Board.Shape)
	if err != nil {
		return nil, fmt.Errorf("%w: board.shape: %w", ErrInvalidConfig, err)
	}
	players, err := c.GamePlayers()
	if err != nil {
		return nil, err
	}
	return game.NewGame(players, shape, c.Board.Size)
}

func (c GameConfig) SearchOptions() []searcher.Option {
	options := []searcher.Option{searcher.WithGoroutines(c.Search.Goroutines)}
	if !c.Search.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return options
}

func (c GameConfig) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	return level, nil
}
