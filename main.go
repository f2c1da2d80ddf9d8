package main

import (
	"os"
	"time"

	"quixo/agent"
	"quixo/config"
	"quixo/engine"
	"quixo/experiments"
	"quixo/game"
	"quixo/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	var cfg config.Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	seed := cfg.Seed
	if seed == 0 {
		seed = agent.RandomSeed()
	}
	log.Info().Uint64("seed", seed).Msg("starting")

	engineOptions := []engine.Option{engine.WithMaxTurns(cfg.MaxTurns), engine.WithMaxAttempts(cfg.MaxAttempts)}
	evaluationOptions := []experiments.Option{
		experiments.WithGames(cfg.EvaluationGames),
		experiments.WithBoardSize(cfg.BoardSize),
		experiments.WithEngineOptions(engineOptions...),
	}

	runMinMaxExperiment(cfg, seed, evaluationOptions)
	runQLearningExperiment(cfg, seed, engineOptions, evaluationOptions)
}

func runMinMaxExperiment(cfg config.Config, seed uint64, options []experiments.Option) {
	searchOptions := []searcher.Option{searcher.WithDuration(cfg.SearchDuration)}
	if cfg.LevelCompletion {
		searchOptions = append(searchOptions, searcher.WithLevelCompletion())
	}
	minmax := experiments.Contender{Name: "minmax", Agent: agent.NewMinMaxAgent(game.ScoreConsiderOpponent, searchOptions...)}
	random := experiments.Contender{Name: "random", Agent: agent.NewRandomAgent(seed + 1)}

	result, err := experiments.EvaluateStrategies(minmax, random, false, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("minmax evaluation failed")
	}
	report(cfg, "minmax_vs_random", result)
}

func runQLearningExperiment(cfg config.Config, seed uint64, engineOptions []engine.Option, options []experiments.Option) {
	q := agent.NewQLearningAgent(
		agent.WithLearningRate(cfg.LearningRate),
		agent.WithDiscountRate(cfg.DiscountRate),
		agent.WithExplorationRate(cfg.ExplorationRate),
		agent.WithSeed(seed+2),
	)

	lastLogged := time.Now()
	trainReport, err := q.Train(cfg.TablePath, cfg.TrainingGames, agent.NewRandomAgent(seed+3),
		agent.WithBoardSize(cfg.BoardSize),
		agent.WithCheckpointEvery(cfg.CheckpointEvery),
		agent.WithEngineOptions(engineOptions...),
		agent.WithProgress(func(p agent.Progress) {
			if time.Since(lastLogged) < 10*time.Second && p.Game != p.Total {
				return
			}
			lastLogged = time.Now()
			log.Info().Msgf("training game %d of %d", p.Game, p.Total)
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("q-learning training failed")
	}
	log.Info().Msgf("q-table ready with %d states (loaded: %t, games: %d)", trainReport.States, trainReport.Loaded, trainReport.Games)

	qlearning := experiments.Contender{Name: "qlearning", Agent: q}
	random := experiments.Contender{Name: "random", Agent: agent.NewRandomAgent(seed + 4)}

	result, err := experiments.EvaluateStrategies(qlearning, random, false, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("q-learning evaluation failed")
	}
	report(cfg, "qlearning_vs_random", result)
}

func report(cfg config.Config, name string, result experiments.Result) {
	log.Info().Msgf("win rate of %s: %.0f%% (%d wins, %d losses, %d draws over %d games)",
		result.First, 100*result.WinRate, result.FirstWins, result.SecondWins, result.Draws, result.Summary.Games)

	dir, err := experiments.Report(cfg.ReportDir, name, result)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store report")
	}
	log.Info().Str("dir", dir).Msg("stored report")
}
