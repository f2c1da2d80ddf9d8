package searcher

import "errors"

var (
	// ErrNoMoveComputed means the deadline expired before the root was expanded.
	ErrNoMoveComputed = errors.New("no move computed")
	// ErrGameOver means the root board already has a winner.
	ErrGameOver = errors.New("game is already over")
	// ErrNoLegalMove means the acting player has no playable cube.
	ErrNoLegalMove = errors.New("no legal move")
	// ErrUnscoredLeaf means minimax reached a leaf without a score.
	ErrUnscoredLeaf = errors.New("unscored leaf")
)
