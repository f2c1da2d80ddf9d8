package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameMove(t *testing.T) {
	t.Run("swapping column-major coordinates to rows and columns", func(t *testing.T) {
		g := NewGame(5)

		// x=4, y=0 is the top-right corner.
		err := g.Move(Action{From: Coord{X: 4, Y: 0}, Slide: Left}, Player0)
		require.NoError(t, err)

		b := g.Board()
		require.Equal(t, O, b.At(Position{Row: 0, Col: 0}), "Cube should be pushed to the left edge")
		require.Equal(t, Empty, b.At(Position{Row: 0, Col: 4}))
	})

	t.Run("rejecting inner cells", func(t *testing.T) {
		g := NewGame(5)
		err := g.Move(Action{From: Coord{X: 2, Y: 2}, Slide: Left}, Player0)
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejecting the opponent's cubes", func(t *testing.T) {
		b := NewBoard(5)
		b.Set(Position{0, 2}, X)
		g := NewGameFromBoard(b, Player0)

		err := g.Move(Action{From: Coord{X: 2, Y: 0}, Slide: Bottom}, Player0)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.True(t, b.Equal(g.Board()), "Board should be left untouched")
	})

	t.Run("rejecting slides towards the cell's own edge", func(t *testing.T) {
		g := NewGame(5)
		err := g.Move(Action{From: Coord{X: 2, Y: 0}, Slide: Top}, Player1)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.ErrorIs(t, err, ErrIllegalSlide)
		require.True(t, NewBoard(5).Equal(g.Board()), "Board should be left untouched")
	})
}

func TestGameWinner(t *testing.T) {
	t.Run("mover completes a line", func(t *testing.T) {
		b := NewBoard(5)
		for c := 0; c < 5; c++ {
			b.Set(Position{2, c}, O)
		}
		g := NewGameFromBoard(b, Player0)
		require.Equal(t, Player0, g.Winner(Player0))
	})

	t.Run("completing the opponent's line loses", func(t *testing.T) {
		b := NewBoard(5)
		for c := 0; c < 5; c++ {
			b.Set(Position{2, c}, O)
			b.Set(Position{4, c}, X)
		}
		g := NewGameFromBoard(b, Player0)
		require.Equal(t, Player1, g.Winner(Player0))
	})

	t.Run("no line", func(t *testing.T) {
		g := NewGame(5)
		require.Equal(t, NoPlayer, g.Winner(Player1))
	})
}

func TestGameNext(t *testing.T) {
	g := NewGame(5)
	require.Equal(t, Player0, g.CurrentPlayer())
	g.Next()
	require.Equal(t, Player1, g.CurrentPlayer())
}
