package engine

import (
	"errors"
	"fmt"
	"time"

	"quixo/experiments/metrics"
	"quixo/game"
	"quixo/meta"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Game   *game.Game
	Agents []game.Agent

	maxTurns    int
	maxAttempts int
}

type Option func(*Engine)

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns < 1 {
			panic("max turns must be positive")
		}
		e.maxTurns = turns
	}
}

func WithMaxAttempts(attempts int) Option {
	return func(e *Engine) {
		if attempts < 1 {
			panic("max attempts must be positive")
		}
		e.maxAttempts = attempts
	}
}

// LocalEngine sets up a game on an empty board. agents[0] plays Player 0 and
// moves first.
func LocalEngine(agents []game.Agent, size int, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	eng := &Engine{
		Game:        game.NewGame(size),
		Agents:      agents,
		maxTurns:    meta.MAX_TURNS,
		maxAttempts: meta.MAX_ATTEMPTS,
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Run executes the entire game loop until a winner is found or the turn
// limit makes it a draw. An agent error ends the game.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Game.CurrentPlayer()),
		Winner:         int(game.NoPlayer),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	finish := func() metrics.GameMetric {
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(moveMetrics)
		return gameMetric
	}

	winner := game.NoPlayer
	for turn := 1; winner == game.NoPlayer && turn <= e.maxTurns; turn++ {
		player := e.Game.CurrentPlayer()

		start := time.Now()
		action, attempts, err := e.play(player)
		if err != nil {
			return game.NoPlayer, finish(), moveMetrics, fmt.Errorf("turn %d, player %d: %w", turn, player, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     turn,
			Player:   int(player),
			Action:   action.String(),
			Attempts: attempts,
			Duration: time.Since(start),
		})

		winner = e.Game.Winner(player)
		e.Game.Next()
	}

	gameMetric.Winner = int(winner)
	if winner == game.NoPlayer {
		log.Debug().Msgf("stopped after %d turns without a winner", e.maxTurns)
	} else {
		log.Debug().Msgf("game ended after %d turns with winner: %d", len(moveMetrics), winner)
	}
	return winner, finish(), moveMetrics, nil
}

// play asks the agent of player for actions until one is legal.
func (e *Engine) play(player game.Player) (game.Action, int, error) {
	agent := e.Agents[player]
	for attempts := 1; attempts <= e.maxAttempts; attempts++ {
		action, err := agent.MakeMove(e.Game)
		if err != nil {
			return game.Action{}, attempts, err
		}
		err = e.Game.Move(action, player)
		if err == nil {
			return action, attempts, nil
		}
		if !errors.Is(err, game.ErrIllegalMove) {
			return game.Action{}, attempts, err
		}
	}
	return game.Action{}, e.maxAttempts, fmt.Errorf("%w: %d in a row", ErrTooManyAttempts, e.maxAttempts)
}
