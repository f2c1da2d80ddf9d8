package experiments

import (
	"fmt"
	"math"
	"time"

	"quixo/engine"
	"quixo/experiments/metrics"
	"quixo/game"
	"quixo/meta"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Contender is a named agent taking part in an evaluation.
type Contender struct {
	Name  string
	Agent game.Agent
}

type Result struct {
	metrics.Summary
	Records []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

type config struct {
	games         int
	size          int
	engineOptions []engine.Option
}

type Option func(*config)

// WithGames overrides the number of games; odd numbers are rounded down.
func WithGames(games int) Option {
	return func(c *config) {
		if games < 2 {
			panic("need at least two games")
		}
		c.games = games
	}
}

func WithBoardSize(size int) Option {
	return func(c *config) {
		c.size = size
	}
}

func WithEngineOptions(options ...engine.Option) Option {
	return func(c *config) {
		c.engineOptions = append(c.engineOptions, options...)
	}
}

// EvaluateStrategies plays first against second, each starting half of the
// games. Two deterministic agents only need one game per starting side.
func EvaluateStrategies(first, second Contender, deterministicOnly bool, options ...Option) (Result, error) {
	cfg := config{games: meta.EVALUATION_GAMES, size: meta.BOARD_SIZE}
	if deterministicOnly {
		cfg.games = 2
	}
	for _, option := range options {
		option(&cfg)
	}
	half := cfg.games / 2

	result := Result{Summary: metrics.Summary{First: first.Name, Second: second.Name}}

	log.Info().Msgf("starting evaluation of %s against %s over %d games...", first.Name, second.Name, 2*half)

	for _, firstStarts := range []bool{true, false} {
		players := []Contender{first, second}
		firstAs := game.Player0
		if !firstStarts {
			players = []Contender{second, first}
			firstAs = game.Player1
		}

		for i := 0; i < half; i++ {
			e := engine.LocalEngine([]game.Agent{players[0].Agent, players[1].Agent}, cfg.size, cfg.engineOptions...)
			winner, gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return result, fmt.Errorf("game %d: %w", len(result.Records)+1, err)
			}

			id := len(result.Records) + 1
			result.Records = append(result.Records, metrics.GameRecord{
				ID:         id,
				Agent0:     players[0].Name,
				Agent1:     players[1].Name,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
			}
			tally(&result.Summary, firstAs, winner)

			log.Debug().Msgf("completed game %d of %d with winner: %d", id, 2*half, winner)
		}
	}

	summarize(&result)
	log.Info().
		Str("first", first.Name).
		Str("second", second.Name).
		Int("first_wins", result.FirstWins).
		Int("second_wins", result.SecondWins).
		Int("draws", result.Draws).
		Msg("completed evaluation")
	return result, nil
}

func tally(summary *metrics.Summary, firstAs, winner game.Player) {
	summary.Games++
	switch winner {
	case game.NoPlayer:
		summary.Draws++
	case firstAs:
		summary.FirstWins++
	default:
		summary.SecondWins++
	}
}

func summarize(result *Result) {
	if len(result.Records) == 0 {
		return
	}
	result.WinRate = float64(result.FirstWins) / float64(result.Games)

	lengths := lo.Map(result.Records, func(r metrics.GameRecord, _ int) float64 {
		return float64(r.TotalMoves)
	})
	mean, std := stat.MeanStdDev(lengths, nil)
	if math.IsNaN(std) {
		std = 0
	}
	result.MeanMoves, result.StdMoves = mean, std

	total := lo.SumBy(result.Records, func(r metrics.GameRecord) time.Duration {
		return r.Duration
	})
	result.MeanTime = (total / time.Duration(len(result.Records))).String()
}

// Report writes the games, moves and summary of result under root/name.
func Report(root, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(result.Records); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteSummary(result.Summary); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msg("stored summary")
	return writer.Dir(), nil
}
