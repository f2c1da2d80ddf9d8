package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		b := NewBoard(5)
		require.Equal(t, 5, Score(Player0, b))
		require.Equal(t, 5, Score(Player1, b))
	})

	t.Run("counts the best line", func(t *testing.T) {
		b := mustBoard(t, [][]Cell{
			{O, O, E, E, E},
			{E, O, E, E, E},
			{E, E, O, E, X},
			{E, E, E, E, X},
			{E, E, E, E, X},
		})
		require.Equal(t, 2, Score(Player0, b), "Main diagonal holds 3 marks")
		require.Equal(t, 2, Score(Player1, b), "Last column holds 3 marks")
	})

	t.Run("zero iff a complete line", func(t *testing.T) {
		b := NewBoard(5)
		for r := 0; r < 5; r++ {
			b.Set(Position{r, 2}, X)
		}
		require.Equal(t, 0, Score(Player1, b))
		require.True(t, b.HasLine(Player1))

		b.Set(Position{4, 2}, O)
		require.Equal(t, 1, Score(Player1, b))
	})

	t.Run("stays within [0, N]", func(t *testing.T) {
		b := NewBoard(5)
		for i, pos := range Periphery(5) {
			b.Set(pos, Cell(i%2))
			for _, p := range []Player{Player0, Player1} {
				s := Score(p, b)
				require.GreaterOrEqual(t, s, 0)
				require.LessOrEqual(t, s, 5)
			}
		}
	})
}

func TestScoreConsiderOpponent(t *testing.T) {
	b := mustBoard(t, [][]Cell{
		{O, O, O, E, E},
		{E, E, E, E, E},
		{X, E, E, E, E},
		{E, E, E, E, E},
		{E, E, E, E, E},
	})

	// Player0 misses 2, Player1 holds at most 1 in a line.
	require.Equal(t, 2+1, ScoreConsiderOpponent(Player0, b))
	// Player1 misses 4, Player0 holds 3 in a line.
	require.Equal(t, 4+3, ScoreConsiderOpponent(Player1, b))
}
