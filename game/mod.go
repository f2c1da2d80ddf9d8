package game

import "errors"

// Player identifies one of the two players. NoPlayer means nobody.
type Player int

const (
	NoPlayer Player = -1
	Player0  Player = 0
	Player1  Player = 1
)

func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) Valid() bool {
	return p == Player0 || p == Player1
}

// Cell is the content of a board square: Empty or the id of the owning player.
type Cell int8

const Empty Cell = -1

func (c Cell) Owner() Player {
	if c == Empty {
		return NoPlayer
	}
	return Player(c)
}

var (
	ErrMalformedBoard = errors.New("malformed board")
	ErrIllegalSlide   = errors.New("illegal slide")
	ErrIllegalMove    = errors.New("illegal move")
)

// View is the read-only game state an agent decides on.
type View interface {
	Board() *Board
	CurrentPlayer() Player
}

// Agent picks one action for the current player of the viewed game.
type Agent interface {
	MakeMove(view View) (Action, error)
}

// Evaluate scores a board from the player's perspective. Lower is closer to winning.
type Evaluate func(player Player, board *Board) int
