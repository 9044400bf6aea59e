package engine

import (
	"errors"
)

// ErrEmptyPath is returned by Next when the board has no path to follow
var ErrEmptyPath = errors.New("board path is empty")

// Board owns the cell grid, the start cell and the circular path derived from it
type Board struct {
	cells [][]CellKind
	start Coordinate
	path  []Coordinate
	head  int
}

// NewBoard builds a board from a parsed level using the given path strategy.
// A nil strategy means ReachabilityStrategy.
//
// If the strategy fails with ErrNoCircularPath the board is still returned,
// holding the partial path, alongside the error. Any other error yields a nil board.
func NewBoard(level *Level, strategy PathStrategy) (*Board, error) {
	if strategy == nil {
		strategy = ReachabilityStrategy{}
	}

	path, err := strategy.BuildPath(level.Cells, level.Start)
	if err != nil && !errors.Is(err, ErrNoCircularPath) {
		return nil, err
	}

	board := &Board{
		cells: level.Cells,
		start: level.Start,
		path:  path,
	}
	return board, err
}

// Cell returns the kind of the cell at c. ok is false when c is out of bounds.
func (b *Board) Cell(c Coordinate) (kind CellKind, ok bool) {
	if !b.InBounds(c) {
		return Empty, false
	}
	return b.cells[c.Row][c.Col], true
}

// InBounds reports whether c lies inside the grid, honouring ragged rows
func (b *Board) InBounds(c Coordinate) bool {
	if c.Row < 0 || c.Row >= len(b.cells) {
		return false
	}
	return c.Col >= 0 && c.Col < len(b.cells[c.Row])
}

// Walkable reports whether c is inside the grid and not Invisible
func (b *Board) Walkable(c Coordinate) bool {
	return isWalkable(b.cells, c)
}

// Rows returns the number of grid rows
func (b *Board) Rows() int {
	return len(b.cells)
}

// Cols returns the width of the first row. Rows may differ; use RowLen per row.
func (b *Board) Cols() int {
	if len(b.cells) == 0 {
		return 0
	}
	return len(b.cells[0])
}

// RowLen returns the length of row r, or 0 when r is out of range
func (b *Board) RowLen(r int) int {
	if r < 0 || r >= len(b.cells) {
		return 0
	}
	return len(b.cells[r])
}

// Start returns the start coordinate recorded by the level
func (b *Board) Start() Coordinate {
	return b.start
}

// PathLen returns the number of cells on the path
func (b *Board) PathLen() int {
	return len(b.path)
}

// Path returns a copy of the path in its current rotation: the first element
// is what Next returns on its next call.
func (b *Board) Path() []Coordinate {
	out := make([]Coordinate, 0, len(b.path))
	out = append(out, b.path[b.head:]...)
	out = append(out, b.path[:b.head]...)
	return out
}

// Next returns the front of the path and rotates it to the back
func (b *Board) Next() (Coordinate, error) {
	if len(b.path) == 0 {
		return Coordinate{}, ErrEmptyPath
	}
	next := b.path[b.head]
	b.head = (b.head + 1) % len(b.path)
	return next, nil
}
