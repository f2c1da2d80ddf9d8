package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"quixo/meta"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel        string
	BoardSize       int
	SearchDuration  time.Duration
	LevelCompletion bool
	MaxTurns        int
	MaxAttempts     int
	LearningRate    float64
	DiscountRate    float64
	ExplorationRate float64
	TrainingGames   int
	CheckpointEvery int
	TablePath       string
	EvaluationGames int
	Seed            uint64 // 0 draws a random seed
	ReportDir       string
}

// Load reads flags from args, then QUIXO_* environment variables, then the
// optional YAML file named by --config. Flags win over the environment, which
// wins over the file.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("quixo", pflag.ContinueOnError)
	fs.String("config", "", "optional YAML config file")
	fs.String("log-level", "info", "zerolog level: debug, info, warn, error")
	fs.Int("board-size", meta.BOARD_SIZE, "side of the board")
	fs.Duration("search-duration", meta.SEARCH_DURATION, "time budget of one minimax tree expansion")
	fs.Bool("level-completion", false, "finish a half-explored tree level past the deadline")
	fs.Int("max-turns", meta.MAX_TURNS, "turns after which a game is a draw")
	fs.Int("max-attempts", meta.MAX_ATTEMPTS, "illegal actions tolerated per turn")
	fs.Float64("learning-rate", meta.LEARNING_RATE, "q-learning alpha")
	fs.Float64("discount-rate", meta.DISCOUNT_RATE, "q-learning gamma")
	fs.Float64("exploration-rate", meta.EXPLORATION_RATE, "q-learning epsilon")
	fs.Int("training-games", meta.TRAINING_GAMES, "games played to train the q-table")
	fs.Int("checkpoint-every", meta.CHECKPOINT_EVERY, "training games between q-table checkpoints")
	fs.String("table-path", "q_table.parquet", "where the q-table is saved and loaded")
	fs.Int("evaluation-games", meta.EVALUATION_GAMES, "games played when evaluating random strategies")
	fs.Uint64("seed", 0, "random seed, 0 for a random one")
	fs.String("report-dir", "experiments", "directory receiving evaluation reports")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("quixo")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	c.LogLevel = v.GetString("log-level")
	c.BoardSize = v.GetInt("board-size")
	c.SearchDuration = v.GetDuration("search-duration")
	c.LevelCompletion = v.GetBool("level-completion")
	c.MaxTurns = v.GetInt("max-turns")
	c.MaxAttempts = v.GetInt("max-attempts")
	c.LearningRate = v.GetFloat64("learning-rate")
	c.DiscountRate = v.GetFloat64("discount-rate")
	c.ExplorationRate = v.GetFloat64("exploration-rate")
	c.TrainingGames = v.GetInt("training-games")
	c.CheckpointEvery = v.GetInt("checkpoint-every")
	c.TablePath = v.GetString("table-path")
	c.EvaluationGames = v.GetInt("evaluation-games")
	c.Seed = v.GetUint64("seed")
	c.ReportDir = v.GetString("report-dir")

	return c.validate()
}

func (c *Config) validate() error {
	var errs []error
	if c.BoardSize < 2 {
		errs = append(errs, fmt.Errorf("board size %d is below 2", c.BoardSize))
	}
	if c.SearchDuration <= 0 {
		errs = append(errs, fmt.Errorf("search duration %s is not positive", c.SearchDuration))
	}
	if c.MaxTurns < 1 || c.MaxAttempts < 1 {
		errs = append(errs, errors.New("max turns and max attempts must be positive"))
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		errs = append(errs, fmt.Errorf("learning rate %v is outside (0, 1]", c.LearningRate))
	}
	if c.DiscountRate < 0 || c.DiscountRate > 1 {
		errs = append(errs, fmt.Errorf("discount rate %v is outside [0, 1]", c.DiscountRate))
	}
	if c.ExplorationRate < 0 || c.ExplorationRate > 1 {
		errs = append(errs, fmt.Errorf("exploration rate %v is outside [0, 1]", c.ExplorationRate))
	}
	if c.TrainingGames < 0 || c.CheckpointEvery < 1 {
		errs = append(errs, errors.New("training games must not be negative and checkpoints must be positive"))
	}
	if c.EvaluationGames < 2 {
		errs = append(errs, fmt.Errorf("evaluation games %d is below 2", c.EvaluationGames))
	}
	if c.TablePath == "" {
		errs = append(errs, errors.New("table path is empty"))
	}
	return errors.Join(errs...)
}
