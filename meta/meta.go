// meta/meta.go
package meta

import "time"

// BOARD_SIZE defines the side of the Quixo board.
const BOARD_SIZE = 5

// SEARCH_DURATION defines the time budget of one minimax tree expansion.
const SEARCH_DURATION = 500 * time.Millisecond

// MAX_TURNS defines the number of turns after which a match is a draw.
const MAX_TURNS = 500

// MAX_ATTEMPTS defines how many illegal moves an agent may propose per turn.
const MAX_ATTEMPTS = 1000

// Q-learning hyperparameters.
const (
	LEARNING_RATE    = 0.1
	DISCOUNT_RATE    = 0.5
	EXPLORATION_RATE = 0.1
)

// WIN_BONUS defines the reward added when a move completes a line.
const WIN_BONUS = 10.0

// TRAINING_GAMES defines the default number of training games.
const TRAINING_GAMES = 100_000

// CHECKPOINT_EVERY defines how many training games pass between checkpoints.
const CHECKPOINT_EVERY = 50_000

// EVALUATION_GAMES defines the games played to compare non-deterministic strategies.
const EVALUATION_GAMES = 100
