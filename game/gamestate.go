package game

import "fmt"

// Game is the dynamic state of a match: the board and whose turn it is.
type Game struct {
	board   *Board
	current Player
}

// NewGame initializes an empty n×n game with Player0 to move.
func NewGame(n int) *Game {
	return &Game{
		board:   NewBoard(n),
		current: Player0,
	}
}

// NewGameFromBoard starts a game from an existing position.
func NewGameFromBoard(board *Board, current Player) *Game {
	return &Game{board: board.Clone(), current: current}
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

func (g *Game) CurrentPlayer() Player {
	return g.current
}

// Next hands the turn to the other player.
func (g *Game) Next() {
	g.current = g.current.Opponent()
}

// Move claims the cube at action.From for player and slides it. The board is
// left untouched when the move is illegal.
func (g *Game) Move(action Action, player Player) error {
	if !player.Valid() {
		return fmt.Errorf("%w: unknown player %d", ErrIllegalMove, player)
	}
	pos := action.From.Position()
	if !g.board.OnPeriphery(pos) {
		return fmt.Errorf("%w: (%d,%d) is not on the periphery", ErrIllegalMove, action.From.X, action.From.Y)
	}
	if owner := g.board.At(pos).Owner(); owner != NoPlayer && owner != player {
		return fmt.Errorf("%w: (%d,%d) belongs to player %d", ErrIllegalMove, action.From.X, action.From.Y, owner)
	}

	next := g.board.Clone()
	next.Set(pos, Cell(player))
	if err := next.Slide(pos, action.Slide); err != nil {
		return fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	g.board = next
	return nil
}

// Winner decides the match after mover played: completing a line for the
// opponent hands them the win even if the mover completed one too.
func (g *Game) Winner(mover Player) Player {
	return g.board.WinnerAfter(mover)
}
