package game

import "fmt"

// Direction is the edge a claimed cube is pushed to.
type Direction int

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

var Directions = []Direction{Top, Bottom, Left, Right}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Position indexes the board row-major.
type Position struct {
	Row int
	Col int
}

func (p Position) Coord() Coord {
	return Coord{X: p.Col, Y: p.Row}
}

// Coord is the column-major (x, y) form positions take in an Action.
type Coord struct {
	X int
	Y int
}

func (c Coord) Position() Position {
	return Position{Row: c.Y, Col: c.X}
}

// Action represents a move in the game: claim the cube at From and slide it.
type Action struct {
	From  Coord
	Slide Direction
}

func (a Action) String() string {
	return fmt.Sprintf("(%d,%d) %s", a.From.X, a.From.Y, a.Slide)
}
