package agent

import (
	"testing"
	"time"

	"quixo/engine"
	"quixo/game"
	"quixo/searcher"

	"github.com/stretchr/testify/require"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newMinMax(budget time.Duration) *MinMaxAgent {
	clock := &stepClock{}
	return NewMinMaxAgent(game.ScoreConsiderOpponent,
		searcher.WithDuration(budget), searcher.WithClock(clock.now), searcher.WithMetrics())
}

func TestMinMaxAgent(t *testing.T) {
	b := game.NewBoard(5)
	for c := 0; c < 4; c++ {
		b.Set(game.Position{Row: 1, Col: c}, game.Cell(game.Player0))
	}
	winning := game.Action{From: game.Coord{X: 4, Y: 1}, Slide: game.Left}

	t.Run("taking an immediate win", func(t *testing.T) {
		action, err := newMinMax(time.Millisecond).MakeMove(game.NewGameFromBoard(b, game.Player0))
		require.NoError(t, err)
		require.Equal(t, winning, action)
	})

	t.Run("taking an immediate win with a deeper tree", func(t *testing.T) {
		agent := newMinMax(45 * time.Millisecond)
		action, err := agent.MakeMove(game.NewGameFromBoard(b, game.Player0))

		require.NoError(t, err)
		require.Equal(t, winning, action)
		require.Equal(t, 2, agent.Metrics().MaxDepth)
	})

	t.Run("no time to expand the root", func(t *testing.T) {
		_, err := newMinMax(time.Nanosecond).MakeMove(game.NewGame(5))
		require.ErrorIs(t, err, searcher.ErrNoMoveComputed)
	})

	t.Run("playing a game", func(t *testing.T) {
		e := engine.LocalEngine([]game.Agent{newMinMax(time.Millisecond), NewRandomAgent(4)}, 5, engine.WithMaxTurns(40))

		_, _, moves, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, moves)
		for _, m := range moves {
			if m.Player == int(game.Player0) {
				require.Equal(t, 1, m.Attempts, "Minimax should only propose legal actions")
			}
		}
	})
}

func TestMinMaxAgentPanicsWithoutEvaluation(t *testing.T) {
	require.Panics(t, func() { NewMinMaxAgent(nil) })
}
