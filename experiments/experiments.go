package experiments

import (
	"fmt"

	"chinesecheckers/engine"
	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
	"chinesecheckers/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const NumGames = 10 // Per match up

// Options sets where and on what board an experiment runs.
type Options struct {
	Dir      string // root directory of the CSV output
	Games    int    // per match up
	Shape    game.Shape
	Size     int // zero selects the standard board
	MaxTurns int
	Parallel int // games played at once
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "experiments"
	}
	if o.Games <= 0 {
		o.Games = NumGames
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = engine.MaxTurns
	}
	if o.Parallel <= 0 {
		o.Parallel = 1
	}
	return o
}

var modeConfigs = []metrics.AgentConfig{
	{ID: 1, Mode: game.Easy, Goroutines: 1},
	{ID: 2, Mode: game.Normal, Goroutines: 1},
	{ID: 3, Mode: game.Hard, Goroutines: 1},
}

// RunModeMatchups pairs every difficulty against every other one and returns the directory the
// results were written to.
func RunModeMatchups(opts Options) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for i := range modeConfigs {
		for j := i + 1; j < len(modeConfigs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{modeConfigs[i], modeConfigs[j]})
		}
	}
	return runExperiment("mode_matchups", opts.withDefaults(), modeConfigs, matchUps)
}

func runExperiment(name string, opts Options, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Create the output first so a bad directory fails before any game is played
	writer, err := metrics.NewWriter(opts.Dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	type result struct {
		config1, config2 metrics.AgentConfig
		game             metrics.GameMetric
		moves            []metrics.MoveMetric
	}
	results := make([]result, len(matchUps)*opts.Games)

	log.Info().Msgf("starting %s experiment...", name)

	var g errgroup.Group
	g.SetLimit(opts.Parallel)
	for mi, matchup := range matchUps {
		log.Info().Msgf("scheduling matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < opts.Games; i++ {
			// Alternate the starting agent
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}
			slot := mi*opts.Games + i
			g.Go(func() error {
				gameMetric, moveMetrics, err := runGame(opts, config1, config2)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[slot] = result{config1: config1, config2: config2, game: gameMetric, moves: moveMetrics}
				log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(matchUps), i+1, gameMetric.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	// Records keep the schedule order whatever order the games finished in
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for i, r := range results {
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     r.config1.ID,
			Agent2:     r.config2.ID,
			GameMetric: r.game,
		})
		for _, mm := range r.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays config1 as white against config2 as black.
func runGame(opts Options, config1, config2 metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	players := []game.Player{
		game.NewPlayer(game.White, true, config1.Mode),
		game.NewPlayer(game.Black, true, config2.Mode),
	}
	state, err := game.NewGame(players, opts.Shape, opts.Size)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	e := engine.New(state,
		engine.WithAgent(game.White, createAgent(config1)),
		engine.WithAgent(game.Black, createAgent(config2)),
		engine.WithMaxTurns(opts.MaxTurns),
	)

	_, gameMetric, moveMetrics, err := e.Run()
	return gameMetric, moveMetrics, err
}

func createAgent(config metrics.AgentConfig) *engine.MinimaxAgent {
	options := []searcher.Option{searcher.WithMetrics()}

	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.NoPruning {
		options = append(options, searcher.WithoutPruning())
	}
	return engine.NewMinimaxAgent(options...)
}
