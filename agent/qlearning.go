package agent

import (
	"quixo/game"
	"quixo/meta"
	"quixo/qtable"
	"quixo/searcher"

	"golang.org/x/exp/rand"
)

// QLearningAgent plays ε-greedy over a Q-table. While learning it scores
// every legal action of the state it is asked about before choosing.
type QLearningAgent struct {
	table    *qtable.Table
	alpha    float64 // learning rate
	gamma    float64 // discount rate
	epsilon  float64 // exploration rate
	learning bool
	rng      *rand.Rand
}

type QOption func(*QLearningAgent)

func WithLearningRate(alpha float64) QOption {
	return func(a *QLearningAgent) {
		if alpha <= 0 || alpha > 1 {
			panic("learning rate must be in (0, 1]")
		}
		a.alpha = alpha
	}
}

func WithDiscountRate(gamma float64) QOption {
	return func(a *QLearningAgent) {
		if gamma < 0 || gamma > 1 {
			panic("discount rate must be in [0, 1]")
		}
		a.gamma = gamma
	}
}

func WithExplorationRate(epsilon float64) QOption {
	return func(a *QLearningAgent) {
		if epsilon < 0 || epsilon > 1 {
			panic("exploration rate must be in [0, 1]")
		}
		a.epsilon = epsilon
	}
}

func WithSeed(seed uint64) QOption {
	return func(a *QLearningAgent) {
		a.rng = newRand(seed)
	}
}

func WithTable(table *qtable.Table) QOption {
	return func(a *QLearningAgent) {
		a.table = table
	}
}

// NewQLearningAgent starts frozen with an empty table; Train switches it to learning.
func NewQLearningAgent(options ...QOption) *QLearningAgent {
	a := &QLearningAgent{
		table:   qtable.New(),
		alpha:   meta.LEARNING_RATE,
		gamma:   meta.DISCOUNT_RATE,
		epsilon: meta.EXPLORATION_RATE,
	}
	for _, option := range options {
		option(a)
	}
	if a.rng == nil {
		a.rng = newRand(RandomSeed())
	}
	return a
}

func (a *QLearningAgent) Table() *qtable.Table {
	return a.table
}

func (a *QLearningAgent) ExplorationRate() float64 {
	return a.epsilon
}

func (a *QLearningAgent) Learning() bool {
	return a.learning
}

func (a *QLearningAgent) SetLearning(learning bool) {
	a.learning = learning
}

func (a *QLearningAgent) MakeMove(view game.View) (game.Action, error) {
	player := view.CurrentPlayer()
	board := view.Board()
	key := qtable.NewKey(board, player)

	if a.learning {
		values := a.table.Ensure(key)
		a.learn(values, player, board)
		return a.choose(values)
	}

	if values, ok := a.table.Lookup(key); ok && values.Len() > 0 {
		return a.choose(values)
	}
	return a.randomLegal(player, board)
}

// learn updates the value of every legal action of the state with its
// immediate reward and the best known value of the state it leads to.
func (a *QLearningAgent) learn(values *qtable.Values, player game.Player, board *game.Board) {
	for _, s := range searcher.Successors(player, board) {
		a.update(values, s.Action, reward(player, s.Board), qtable.NewKey(s.Board, player))
	}
}

func (a *QLearningAgent) update(values *qtable.Values, action game.Action, reward float64, next qtable.Key) {
	current := values.GetOrZero(action)
	target := reward
	if nextValues, ok := a.table.Lookup(next); ok {
		if best, ok := nextValues.Max(); ok {
			target += a.gamma * best
		}
	}
	values.Add(action, a.alpha*(target-current))
}

// reward favours boards close to a line for player, with a bonus for winning.
func reward(player game.Player, board *game.Board) float64 {
	r := float64(board.Size() - game.ScoreConsiderOpponent(player, board))
	if board.WinnerAfter(player) == player {
		r += meta.WIN_BONUS
	}
	return r
}

func (a *QLearningAgent) choose(values *qtable.Values) (game.Action, error) {
	if values.Len() == 0 {
		return game.Action{}, searcher.ErrNoLegalMove
	}
	if a.rng.Float64() < a.epsilon {
		actions := values.Actions()
		return actions[a.rng.Intn(len(actions))], nil
	}
	best, _ := values.Best()
	return best, nil
}

func (a *QLearningAgent) randomLegal(player game.Player, board *game.Board) (game.Action, error) {
	successors := searcher.Successors(player, board)
	if len(successors) == 0 {
		return game.Action{}, searcher.ErrNoLegalMove
	}
	return successors[a.rng.Intn(len(successors))].Action, nil
}
