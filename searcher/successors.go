package searcher

import (
	"quixo/game"
)

// Successor is one ply: the action played and the board it leads to.
type Successor struct {
	Action game.Action
	Board  *game.Board
}

// Successors enumerates every (action, board) pair player can reach in one
// ply, walking the periphery in order and each cell's slides in order. Boards
// reached by different actions are not merged.
func Successors(player game.Player, board *game.Board) []Successor {
	var successors []Successor
	for _, pos := range game.Periphery(board.Size()) {
		if owner := board.At(pos).Owner(); owner != game.NoPlayer && owner != player {
			continue
		}
		for _, slide := range board.AcceptableSlides(pos) {
			next := board.Clone()
			next.Set(pos, game.Cell(player))
			if err := next.Slide(pos, slide); err != nil {
				panic(err) // AcceptableSlides only lists legal slides
			}
			// Actions carry column-major coordinates
			successors = append(successors, Successor{
				Action: game.Action{From: pos.Coord(), Slide: slide},
				Board:  next,
			})
		}
	}
	return successors
}
