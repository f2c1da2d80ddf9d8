package engine

import (
	"errors"
	"testing"

	"quixo/game"
	"quixo/searcher"

	"github.com/stretchr/testify/require"
)

// scripted replays its actions and then repeats the last one.
type scripted struct {
	actions []game.Action
	calls   int
}

func (s *scripted) MakeMove(view game.View) (game.Action, error) {
	i := min(s.calls, len(s.actions)-1)
	s.calls++
	return s.actions[i], nil
}

// firstLegal always plays the first successor.
type firstLegal struct{}

func (firstLegal) MakeMove(view game.View) (game.Action, error) {
	successors := searcher.Successors(view.CurrentPlayer(), view.Board())
	if len(successors) == 0 {
		return game.Action{}, searcher.ErrNoLegalMove
	}
	return successors[0].Action, nil
}

type failing struct{ err error }

func (f failing) MakeMove(view game.View) (game.Action, error) {
	return game.Action{}, f.err
}

var center = game.Action{From: game.Coord{X: 2, Y: 2}, Slide: game.Top}

func TestLocalEngine(t *testing.T) {
	t.Run("panicking without two agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine([]game.Agent{firstLegal{}}, 5) })
	})

	t.Run("winning move ends the game", func(t *testing.T) {
		b := game.NewBoard(5)
		for c := 0; c < 4; c++ {
			b.Set(game.Position{Row: 1, Col: c}, game.Cell(game.Player0))
		}
		winning := game.Action{From: game.Coord{X: 4, Y: 1}, Slide: game.Left}
		e := LocalEngine([]game.Agent{&scripted{actions: []game.Action{winning}}, firstLegal{}}, 5)
		e.Game = game.NewGameFromBoard(b, game.Player0)

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Player0, winner)
		require.Equal(t, 0, gameMetric.Winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, winning.String(), moveMetrics[0].Action)
	})

	t.Run("completing the opponent's line loses", func(t *testing.T) {
		b := game.NewBoard(5)
		for c := 1; c < 5; c++ {
			b.Set(game.Position{Row: 2, Col: c}, game.Cell(game.Player1))
		}
		b.Set(game.Position{Row: 1, Col: 0}, game.Cell(game.Player1))
		// pushing column 0 down moves (1,0) into the gap of row 2
		push := game.Action{From: game.Coord{X: 0, Y: 4}, Slide: game.Top}
		e := LocalEngine([]game.Agent{&scripted{actions: []game.Action{push}}, firstLegal{}}, 5)
		e.Game = game.NewGameFromBoard(b, game.Player0)

		winner, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Player1, winner, "Opponent should win when the mover completes their line")
		require.Len(t, moveMetrics, 1)
	})

	t.Run("retrying illegal actions", func(t *testing.T) {
		legal := game.Action{From: game.Coord{X: 0, Y: 0}, Slide: game.Bottom}
		agent := &scripted{actions: []game.Action{center, center, legal}}
		e := LocalEngine([]game.Agent{agent, firstLegal{}}, 5, WithMaxTurns(1))

		winner, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NoPlayer, winner)
		require.Equal(t, 3, moveMetrics[0].Attempts)
		require.Equal(t, game.Cell(game.Player0), e.Game.Board().At(game.Position{Row: 4, Col: 0}))
	})

	t.Run("giving up after too many illegal actions", func(t *testing.T) {
		e := LocalEngine([]game.Agent{&scripted{actions: []game.Action{center}}, firstLegal{}}, 5, WithMaxAttempts(3))

		_, _, _, err := e.Run()
		require.ErrorIs(t, err, ErrTooManyAttempts)
	})

	t.Run("draw at the turn limit", func(t *testing.T) {
		e := LocalEngine([]game.Agent{firstLegal{}, firstLegal{}}, 5, WithMaxTurns(4))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NoPlayer, winner, "Four turns cannot complete a line")
		require.Equal(t, -1, gameMetric.Winner)
		require.Len(t, moveMetrics, 4)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.Equal(t, i%2, m.Player, "Players should alternate starting with Player 0")
		}
	})

	t.Run("aborting on agent errors", func(t *testing.T) {
		boom := errors.New("boom")
		e := LocalEngine([]game.Agent{failing{err: boom}, firstLegal{}}, 5)

		_, _, moveMetrics, err := e.Run()
		require.ErrorIs(t, err, boom)
		require.Empty(t, moveMetrics)
	})
}
