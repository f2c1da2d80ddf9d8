package game

// Score is the number of marks player still misses to complete its best line:
// N minus the most marks player holds in a single row, column or diagonal.
// It ranges over [0, N] and is 0 only on a board where player owns a line.
func Score(player Player, board *Board) int {
	n := board.Size()
	score := n
	for _, line := range board.Lines() {
		count := 0
		for _, cell := range line {
			if cell == Cell(player) {
				count++
			}
		}
		score = min(score, n-count)
	}
	return score
}

// ScoreConsiderOpponent adds the opponent's best line count to Score, so a
// board is better the closer player is to a line and the further the opponent is.
func ScoreConsiderOpponent(player Player, board *Board) int {
	return Score(player, board) + (board.Size() - Score(player.Opponent(), board))
}
