package agent

import (
	"errors"
	"fmt"
	"time"

	"quixo/engine"
	"quixo/game"
	"quixo/meta"
	"quixo/qtable"
	"quixo/searcher"

	"github.com/rs/zerolog/log"
)

// Progress describes one finished training game.
type Progress struct {
	Game         int // 1-based, across both halves
	Total        int
	AsFirstMover bool
	Winner       game.Player
}

type TrainReport struct {
	Loaded      bool // the table came from disk and no game was played
	Games       int
	Wins        int
	Losses      int
	Draws       int
	Checkpoints int
	States      int
	Duration    time.Duration
}

type trainConfig struct {
	checkpointEvery int
	size            int
	progress        func(Progress)
	engineOptions   []engine.Option
}

type TrainOption func(*trainConfig)

func WithCheckpointEvery(games int) TrainOption {
	return func(c *trainConfig) {
		if games < 1 {
			panic("checkpoint interval must be positive")
		}
		c.checkpointEvery = games
	}
}

func WithProgress(fn func(Progress)) TrainOption {
	return func(c *trainConfig) {
		c.progress = fn
	}
}

func WithBoardSize(size int) TrainOption {
	return func(c *trainConfig) {
		c.size = size
	}
}

func WithEngineOptions(options ...engine.Option) TrainOption {
	return func(c *trainConfig) {
		c.engineOptions = append(c.engineOptions, options...)
	}
}

// Train fills the Q-table by playing games against opponent, half of them
// moving first, checkpointing the table to path along the way. If path
// already holds a table it is loaded instead and no game is played.
// After training the exploration rate drops tenfold and the agent is frozen.
func (a *QLearningAgent) Train(path string, games int, opponent game.Agent, options ...TrainOption) (TrainReport, error) {
	cfg := trainConfig{
		checkpointEvery: meta.CHECKPOINT_EVERY,
		size:            meta.BOARD_SIZE,
	}
	for _, option := range options {
		option(&cfg)
	}

	if qtable.Exists(path) {
		table, err := qtable.Load(path)
		if err != nil {
			return TrainReport{}, fmt.Errorf("failed to load q-table: %w", err)
		}
		a.table = table
		log.Info().Str("path", path).Int("states", table.Len()).Msg("loaded q-table, skipping training")
		return TrainReport{Loaded: true, States: table.Len()}, nil
	}
	if opponent == nil {
		return TrainReport{}, errors.New("training needs an opponent")
	}

	start := time.Now()
	report := TrainReport{}
	checkpoint := func() error {
		if err := qtable.Save(path, a.table); err != nil {
			return fmt.Errorf("failed to checkpoint q-table: %w", err)
		}
		report.Checkpoints++
		return nil
	}

	a.learning = true
	half := games / 2
	log.Info().Msgf("training on %d games against %T...", 2*half, opponent)

	for _, first := range []bool{true, false} {
		me := game.Player0
		agents := []game.Agent{a, opponent}
		if !first {
			me = game.Player1
			agents = []game.Agent{opponent, a}
		}

		for i := 0; i < half; i++ {
			if i%cfg.checkpointEvery == 0 {
				if err := checkpoint(); err != nil {
					return report, err
				}
			}

			e := engine.LocalEngine(agents, cfg.size, cfg.engineOptions...)
			winner, _, _, err := e.Run()
			if err != nil {
				if !errors.Is(err, searcher.ErrNoLegalMove) {
					return report, fmt.Errorf("training game %d: %w", report.Games+1, err)
				}
				log.Warn().Err(err).Msgf("training game %d ended without a legal move", report.Games+1)
				winner = game.NoPlayer
			}

			report.Games++
			switch winner {
			case me:
				report.Wins++
			case game.NoPlayer:
				report.Draws++
			default:
				report.Losses++
			}
			if cfg.progress != nil {
				cfg.progress(Progress{Game: report.Games, Total: 2 * half, AsFirstMover: first, Winner: winner})
			}
		}
	}

	if err := checkpoint(); err != nil {
		return report, err
	}

	a.epsilon /= 10
	a.learning = false

	report.States = a.table.Len()
	report.Duration = time.Since(start)
	log.Info().
		Int("games", report.Games).
		Int("wins", report.Wins).
		Int("states", report.States).
		Dur("duration", report.Duration).
		Msg("training complete")
	return report, nil
}
