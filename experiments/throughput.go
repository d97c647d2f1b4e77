package experiments

import (
	"chinesecheckers/experiments/metrics"
	"chinesecheckers/game"
)

var throughputConfigs = []metrics.AgentConfig{
	{ID: 1, Mode: game.Hard, Goroutines: 1, NoPruning: true},
	{ID: 2, Mode: game.Hard, Goroutines: 1},
	{ID: 3, Mode: game.Hard, Goroutines: 2},
	{ID: 4, Mode: game.Hard, Goroutines: 4},
	{ID: 5, Mode: game.Hard, Goroutines: 8},
}

// RunThroughputExperiment measures search time per move for pruning and root parallelism. Every
// agent plays the same difficulty, so each game follows the same moves and only the timings and
// node counts differ.
func RunThroughputExperiment(opts Options) (string, error) {
	// Same config for both players in each game
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range throughputConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return runExperiment("throughput", opts.withDefaults(), throughputConfigs, matchUps)
}
