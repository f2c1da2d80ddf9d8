package metrics

import "time"

type MoveMetric struct {
	Step     int
	Player   int // Player ID
	Action   string
	Attempts int // proposals needed to get a legal action
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, -1 for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent0 string // agent playing Player 0
	Agent1 string // agent playing Player 1
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Summary is the outcome of a series of games between two agents.
type Summary struct {
	First      string  `yaml:"first"`
	Second     string  `yaml:"second"`
	Games      int     `yaml:"games"`
	FirstWins  int     `yaml:"first_wins"`
	SecondWins int     `yaml:"second_wins"`
	Draws      int     `yaml:"draws"`
	WinRate    float64 `yaml:"win_rate"` // of First
	MeanMoves  float64 `yaml:"mean_moves"`
	StdMoves   float64 `yaml:"std_moves"`
	MeanTime   string  `yaml:"mean_game_time"`
}
