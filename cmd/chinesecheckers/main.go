// Command chinesecheckers plays a headless game between computer players, or runs one of the
// search experiments, and prints the final board.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"chinesecheckers/config"
	"chinesecheckers/engine"
	"chinesecheckers/experiments"
	"chinesecheckers/game"
	"chinesecheckers/theme"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("chinesecheckers failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("chinesecheckers", flag.ContinueOnError)
	configPath := flags.String("config", "", "YAML game config")
	experiment := flags.String("experiment", "", "Experiment to run instead of a game: modes or throughput")
	out := flags.String("out", "experiments", "Directory of experiment results")
	games := flags.Int("games", experiments.NumGames, "Games per experiment matchup")
	parallel := flags.Int("parallel", 1, "Experiment games played at once")
	shape := flags.String("shape", "", "Board shape: star or square")
	size := flags.Int("size", 0, "Board size, 0 for the standard board")
	mode := flags.String("mode", "", "Difficulty of every computer player")
	goroutines := flags.Int("goroutines", 0, "Goroutines evaluating root moves")
	maxTurns := flags.Int("max-turns", 0, "Turn cap")
	level := flags.String("log", "", "Log level")
	themeName := flags.String("theme", "letters", "Board symbols: letters or classic")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}

	// Flags given on the command line override the file
	var overrideErr error
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			cfg.Board.Shape = *shape
		case "size":
			cfg.Board.Size = *size
		case "goroutines":
			cfg.Search.Goroutines = *goroutines
		case "max-turns":
			cfg.Engine.MaxTurns = *maxTurns
		case "log":
			cfg.Log.Level = *level
		case "mode":
			if _, err := game.ParseMode(*mode); err != nil {
				overrideErr = err
			}
			for i := range cfg.Players {
				cfg.Players[i].Mode = *mode
			}
		}
	})
	if overrideErr != nil {
		return overrideErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logLevel, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *experiment != "" {
		shape, err := game.ParseShape(cfg.Board.Shape)
		if err != nil {
			return err
		}
		opts := experiments.Options{
			Dir:      *out,
			Games:    *games,
			Shape:    shape,
			Size:     cfg.Board.Size,
			MaxTurns: cfg.Engine.MaxTurns,
			Parallel: *parallel,
		}
		var dir string
		switch *experiment {
		case "modes":
			dir, err = experiments.RunModeMatchups(opts)
		case "throughput":
			dir, err = experiments.RunThroughputExperiment(opts)
		default:
			return fmt.Errorf("unknown experiment %q", *experiment)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "results written to %s\n", dir)
		return nil
	}

	return playGame(cfg, theme.ByName(*themeName), stdout)
}

func playGame(cfg config.GameConfig, th theme.Theme, stdout io.Writer) error {
	state, err := cfg.NewState()
	if err != nil {
		return err
	}

	options := []engine.Option{engine.WithMaxTurns(cfg.Engine.MaxTurns)}
	for _, p := range state.Players() {
		if !p.AI {
			return fmt.Errorf("%w: %v is human, headless games need computer players only", engine.ErrNoAgent, p)
		}
		options = append(options, engine.WithAgent(p.Piece, engine.NewMinimaxAgent(cfg.SearchOptions()...)))
	}
	e := engine.New(state, options...)

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	final := e.State()
	fmt.Fprint(stdout, theme.Render(final, th, nil))
	fmt.Fprintln(stdout, theme.Legend(final, th))
	if winner == game.None {
		fmt.Fprintf(stdout, "no winner after %d turns\n", e.Turns())
	} else {
		fmt.Fprintf(stdout, "%v wins after %d turns in %v\n", winner, e.Turns(), gameMetric.Duration.Round(time.Millisecond))
	}
	return nil
}
