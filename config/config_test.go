package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"quixo/meta"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load(nil))
	is.Equal(c.BoardSize, meta.BOARD_SIZE)
	is.Equal(c.SearchDuration, meta.SEARCH_DURATION)
	is.Equal(c.LearningRate, meta.LEARNING_RATE)
	is.Equal(c.TrainingGames, meta.TRAINING_GAMES)
	is.Equal(c.TablePath, "q_table.parquet")
	is.Equal(c.Seed, uint64(0))
	is.True(!c.LevelCompletion)
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load([]string{"--search-duration=50ms", "--training-games", "10", "--level-completion", "--seed=42"}))
	is.Equal(c.SearchDuration, 50*time.Millisecond)
	is.Equal(c.TrainingGames, 10)
	is.True(c.LevelCompletion)
	is.Equal(c.Seed, uint64(42))
}

func TestEnvAndFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "quixo.yaml")
	is.NoErr(os.WriteFile(path, []byte("exploration-rate: 0.3\ntable-path: from-file.parquet\n"), 0o644))
	t.Setenv("QUIXO_TABLE_PATH", "from-env.parquet")

	var c Config
	is.NoErr(c.Load([]string{"--config", path}))
	is.Equal(c.ExplorationRate, 0.3)             // file
	is.Equal(c.TablePath, "from-env.parquet")    // env beats file
	is.Equal(c.DiscountRate, meta.DISCOUNT_RATE) // default

	is.NoErr(c.Load([]string{"--config", path, "--table-path", "from-flag.parquet"}))
	is.Equal(c.TablePath, "from-flag.parquet") // flag beats env
}

func TestInvalid(t *testing.T) {
	is := is.New(t)
	var c Config
	is.True(c.Load([]string{"--board-size=1"}) != nil)
	is.True(c.Load([]string{"--learning-rate=0"}) != nil)
	is.True(c.Load([]string{"--evaluation-games=1"}) != nil)
	is.True(c.Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}) != nil)
	is.True(c.Load([]string{"--no-such-flag"}) != nil)
}
