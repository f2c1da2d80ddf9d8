package game

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// Board is an N×N grid of cells stored row-major.
type Board struct {
	n     int
	cells []Cell
}

// NewBoard returns an empty n×n board.
func NewBoard(n int) *Board {
	if n < 2 {
		panic(fmt.Sprintf("board size must be at least 2, got %d", n))
	}
	cells := make([]Cell, n*n)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{n: n, cells: cells}
}

// NewBoardFromMatrix builds a board from a raw matrix, rejecting non-square
// shapes and values outside {Empty, Player0, Player1}.
func NewBoardFromMatrix(matrix [][]Cell) (*Board, error) {
	n := len(matrix)
	if n < 2 {
		return nil, fmt.Errorf("%w: %d rows", ErrMalformedBoard, n)
	}
	b := &Board{n: n, cells: make([]Cell, 0, n*n)}
	for r, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), n)
		}
		for c, cell := range row {
			if cell != Empty && cell != Cell(Player0) && cell != Cell(Player1) {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrMalformedBoard, r, c, cell)
			}
			b.cells = append(b.cells, cell)
		}
	}
	return b, nil
}

func (b *Board) Size() int {
	return b.n
}

func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{n: b.n, cells: cells}
}

func (b *Board) inside(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.n && pos.Col >= 0 && pos.Col < b.n
}

func (b *Board) At(pos Position) Cell {
	return b.cells[pos.Row*b.n+pos.Col]
}

func (b *Board) Set(pos Position, cell Cell) {
	b.cells[pos.Row*b.n+pos.Col] = cell
}

// OnPeriphery reports whether pos is a border cell.
func (b *Board) OnPeriphery(pos Position) bool {
	if !b.inside(pos) {
		return false
	}
	last := b.n - 1
	return pos.Row == 0 || pos.Row == last || pos.Col == 0 || pos.Col == last
}

// AcceptableSlides lists the directions a cube taken from pos may be pushed
// to: every edge except the ones pos already sits on.
func (b *Board) AcceptableSlides(pos Position) []Direction {
	if !b.OnPeriphery(pos) {
		return nil
	}
	last := b.n - 1
	slides := make([]Direction, 0, 3)
	for _, d := range Directions {
		switch {
		case d == Top && pos.Row == 0,
			d == Bottom && pos.Row == last,
			d == Left && pos.Col == 0,
			d == Right && pos.Col == last:
			continue
		}
		slides = append(slides, d)
	}
	return slides
}

func (b *Board) acceptable(pos Position, dir Direction) bool {
	for _, d := range b.AcceptableSlides(pos) {
		if d == dir {
			return true
		}
	}
	return false
}

// Slide pushes the cube at pos to the dir edge, shifting the cubes in between
// one step back towards pos.
func (b *Board) Slide(pos Position, dir Direction) error {
	if !b.acceptable(pos, dir) {
		return fmt.Errorf("%w: %s from (%d,%d)", ErrIllegalSlide, dir, pos.Row, pos.Col)
	}
	piece := b.At(pos)
	r, c := pos.Row, pos.Col
	switch dir {
	case Left:
		for i := c; i > 0; i-- {
			b.Set(Position{r, i}, b.At(Position{r, i - 1}))
		}
		b.Set(Position{r, 0}, piece)
	case Right:
		for i := c; i < b.n-1; i++ {
			b.Set(Position{r, i}, b.At(Position{r, i + 1}))
		}
		b.Set(Position{r, b.n - 1}, piece)
	case Top:
		for i := r; i > 0; i-- {
			b.Set(Position{i, c}, b.At(Position{i - 1, c}))
		}
		b.Set(Position{0, c}, piece)
	case Bottom:
		for i := r; i < b.n-1; i++ {
			b.Set(Position{i, c}, b.At(Position{i + 1, c}))
		}
		b.Set(Position{b.n - 1, c}, piece)
	}
	return nil
}

func (b *Board) Row(r int) []Cell {
	row := make([]Cell, b.n)
	copy(row, b.cells[r*b.n:(r+1)*b.n])
	return row
}

func (b *Board) Column(c int) []Cell {
	col := make([]Cell, b.n)
	for r := 0; r < b.n; r++ {
		col[r] = b.cells[r*b.n+c]
	}
	return col
}

func (b *Board) Diagonal() []Cell {
	diag := make([]Cell, b.n)
	for i := 0; i < b.n; i++ {
		diag[i] = b.cells[i*b.n+i]
	}
	return diag
}

func (b *Board) AntiDiagonal() []Cell {
	diag := make([]Cell, b.n)
	for i := 0; i < b.n; i++ {
		diag[i] = b.cells[i*b.n+b.n-1-i]
	}
	return diag
}

// Lines returns every row, then every column, then both diagonals.
func (b *Board) Lines() [][]Cell {
	lines := make([][]Cell, 0, 2*b.n+2)
	for r := 0; r < b.n; r++ {
		lines = append(lines, b.Row(r))
	}
	for c := 0; c < b.n; c++ {
		lines = append(lines, b.Column(c))
	}
	return append(lines, b.Diagonal(), b.AntiDiagonal())
}

func lineOwner(line []Cell) Player {
	first := line[0]
	if first == Empty {
		return NoPlayer
	}
	for _, cell := range line[1:] {
		if cell != first {
			return NoPlayer
		}
	}
	return first.Owner()
}

// HasLine reports whether player owns every cell of some line.
func (b *Board) HasLine(player Player) bool {
	for _, line := range b.Lines() {
		if lineOwner(line) == player {
			return true
		}
	}
	return false
}

// WinnerAfter decides the board right after mover played: a line for the
// opponent wins for the opponent even if mover owns one too.
func (b *Board) WinnerAfter(mover Player) Player {
	if b.HasLine(mover.Opponent()) {
		return mover.Opponent()
	}
	if b.HasLine(mover) {
		return mover
	}
	return NoPlayer
}

// Winner returns the owner of the first complete line, or NoPlayer.
func (b *Board) Winner() Player {
	for _, line := range b.Lines() {
		if owner := lineOwner(line); owner != NoPlayer {
			return owner
		}
	}
	return NoPlayer
}

func (b *Board) Matrix() [][]Cell {
	m := make([][]Cell, b.n)
	for r := range m {
		m[r] = b.Row(r)
	}
	return m
}

// Key serializes the board into a stable string, one byte per cell.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for _, cell := range b.cells {
		sb.WriteByte(cellSymbol(cell))
	}
	return sb.String()
}

// BoardFromKey is the inverse of Key.
func BoardFromKey(key string) (*Board, error) {
	n := 0
	for n*n < len(key) {
		n++
	}
	if n*n != len(key) || n < 2 {
		return nil, fmt.Errorf("%w: key of length %d is not square", ErrMalformedBoard, len(key))
	}
	b := &Board{n: n, cells: make([]Cell, len(key))}
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.':
			b.cells[i] = Empty
		case '0':
			b.cells[i] = Cell(Player0)
		case '1':
			b.cells[i] = Cell(Player1)
		default:
			return nil, fmt.Errorf("%w: unknown symbol %q", ErrMalformedBoard, key[i])
		}
	}
	return b, nil
}

func (b *Board) Hash() uint64 {
	return xxhash.Sum64String(b.Key())
}

func (b *Board) Equal(other *Board) bool {
	return b.n == other.n && b.Key() == other.Key()
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cellSymbol(b.At(Position{r, c})))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellSymbol(cell Cell) byte {
	switch cell {
	case Cell(Player0):
		return '0'
	case Cell(Player1):
		return '1'
	}
	return '.'
}

// Periphery returns the border positions of an n×n board clockwise from the
// top-left corner.
func Periphery(n int) []Position {
	if n < 2 {
		return nil
	}
	last := n - 1
	positions := make([]Position, 0, 4*last)
	for c := 0; c < last; c++ {
		positions = append(positions, Position{0, c})
	}
	for r := 0; r < last; r++ {
		positions = append(positions, Position{r, last})
	}
	for c := last; c > 0; c-- {
		positions = append(positions, Position{last, c})
	}
	for r := last; r > 0; r-- {
		positions = append(positions, Position{r, 0})
	}
	return positions
}
