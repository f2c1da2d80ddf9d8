package agent

import (
	"fmt"

	"quixo/game"
	"quixo/searcher"

	"github.com/rs/zerolog/log"
)

// MinMaxAgent builds a time-bounded game tree every turn and plays the
// minimax-best root action.
type MinMaxAgent struct {
	builder  *searcher.Builder
	evaluate game.Evaluate
}

func NewMinMaxAgent(evaluate game.Evaluate, options ...searcher.Option) *MinMaxAgent {
	if evaluate == nil {
		panic("minmax agent needs an evaluation function")
	}
	return &MinMaxAgent{
		builder:  searcher.NewBuilder(options...),
		evaluate: evaluate,
	}
}

func (m *MinMaxAgent) MakeMove(view game.View) (game.Action, error) {
	player := view.CurrentPlayer()
	board := view.Board()
	tree := m.builder.Build(player, board)

	action, score, err := searcher.Decide(tree, player, m.evaluate)
	if err != nil {
		return game.Action{}, fmt.Errorf("minmax: %w", err)
	}

	log.Debug().
		Int("player", int(player)).
		Uint64("board", board.Hash()).
		Int("nodes", tree.Len()).
		Int("depth", tree.MaxDepth()).
		Int("score", score).
		Stringer("action", action).
		Msg("minmax-move")
	return action, nil
}

// Metrics returns the metrics of the last search, if enabled with searcher.WithMetrics.
func (m *MinMaxAgent) Metrics() searcher.SearchMetrics {
	return m.builder.Metrics()
}
