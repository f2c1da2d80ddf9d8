package engine

import (
	"errors"

	"quixo/experiments/metrics"
	"quixo/game"
)

// ErrTooManyAttempts is returned when an agent keeps proposing illegal actions.
var ErrTooManyAttempts = errors.New("too many illegal actions")

type Runner interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
