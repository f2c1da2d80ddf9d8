package searcher

import (
	"fmt"

	"quixo/game"
)

// Scores holds leaf valuations next to, not inside, the tree.
type Scores map[NodeID]int

// ScoreLeaves evaluates every childless node from player's perspective: won
// boards, boards cut off by the deadline and boards without successors alike.
func ScoreLeaves(tree *Tree, player game.Player, evaluate game.Evaluate) Scores {
	leaves := tree.Leaves()
	scores := make(Scores, len(leaves))
	for _, id := range leaves {
		scores[id] = evaluate(player, tree.Board(id))
	}
	return scores
}

// Minimax propagates leaf scores to the root, alternating between maximizing
// and minimizing levels, and returns the root action with the best value. The
// first child holding the extreme value wins ties.
func Minimax(tree *Tree, scores Scores, computeMax bool) (game.Action, int, error) {
	switch tree.State(Root) {
	case Unexpanded:
		return game.Action{}, 0, ErrNoMoveComputed
	case Terminal:
		return game.Action{}, 0, fmt.Errorf("%w: won by player %d", ErrGameOver, tree.Winner(Root))
	}
	if tree.IsLeaf(Root) {
		return game.Action{}, 0, ErrNoLegalMove
	}

	actions, _ := tree.Children(Root)
	best, v, err := minimax(tree, scores, Root, computeMax)
	if err != nil {
		return game.Action{}, 0, err
	}
	return actions[best], v, nil
}

func minimax(tree *Tree, scores Scores, id NodeID, computeMax bool) (int, int, error) {
	if tree.IsLeaf(id) {
		score, ok := scores[id]
		if !ok {
			return -1, 0, fmt.Errorf("%w: node %d (%s)", ErrUnscoredLeaf, id, tree.State(id))
		}
		return -1, score, nil
	}

	_, children := tree.Children(id)
	best, bestValue := -1, 0
	for i, child := range children {
		_, v, err := minimax(tree, scores, child, !computeMax)
		if err != nil {
			return -1, 0, err
		}
		if best == -1 || (computeMax && v > bestValue) || (!computeMax && v < bestValue) {
			best, bestValue = i, v
		}
	}
	return best, bestValue, nil
}

// Decide scores the leaves of tree for player and runs Minimax from a
// minimizing root.
func Decide(tree *Tree, player game.Player, evaluate game.Evaluate) (game.Action, int, error) {
	return Minimax(tree, ScoreLeaves(tree, player, evaluate), false)
}
