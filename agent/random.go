package agent

import (
	"quixo/game"

	"golang.org/x/exp/rand"
)

// RandomAgent proposes a uniformly random position and direction, legal or
// not, leaving the engine to reject and ask again.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: newRand(seed)}
}

func (r *RandomAgent) MakeMove(view game.View) (game.Action, error) {
	n := view.Board().Size()
	return game.Action{
		From:  game.Coord{X: r.rng.Intn(n), Y: r.rng.Intn(n)},
		Slide: game.Directions[r.rng.Intn(len(game.Directions))],
	}, nil
}
