package engine

import "fmt"

// CellKind represents the type of a board cell
type CellKind int

const (
	Empty CellKind = iota
	Path
	Invisible
	WinCoin
	LostCoin
	Star
	PlayerMarker
)

// Rule constants
const (
	WinCoinReward   = 10
	LostCoinPenalty = 5
	StarReward      = 1

	MinRoll      = 1
	MaxRoll      = 9
	DefaultTicks = 10
)

// String returns the lower-case name of the cell kind
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Path:
		return "path"
	case Invisible:
		return "invisible"
	case WinCoin:
		return "win_coin"
	case LostCoin:
		return "lost_coin"
	case Star:
		return "star"
	case PlayerMarker:
		return "player"
	default:
		return fmt.Sprintf("cell(%d)", int(k))
	}
}

// Walkable reports whether a player may stand on a cell of this kind.
// Only Invisible cells are impassable.
func (k CellKind) Walkable() bool {
	return k != Invisible
}

// Coordinate represents a row/column position on the board
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the coordinate as "(row, col)"
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Add returns the coordinate shifted by the given offset
func (c Coordinate) Add(o Offset) Coordinate {
	return Coordinate{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// Offset is a single-step displacement on the grid
type Offset struct {
	DRow, DCol int
}

// Neighbourhoods used by path construction and random walks.
var (
	// searchOrder is the breadth-first neighbour order: N, S, W, E, NW, NE, SW, SE.
	searchOrder = []Offset{
		{-1, 0},
		{1, 0},
		{0, -1},
		{0, 1},
		{-1, -1},
		{-1, 1},
		{1, -1},
		{1, 1},
	}

	// clockwise starts north and turns right.
	clockwise = []Offset{
		{-1, 0},  // North
		{-1, 1},  // North-East
		{0, 1},   // East
		{1, 1},   // South-East
		{1, 0},   // South
		{1, -1},  // South-West
		{0, -1},  // West
		{-1, -1}, // North-West
	}

	// Orthogonal is the 4-directional neighbourhood used by random walks.
	Orthogonal = []Offset{
		{-1, 0}, // up
		{1, 0},  // down
		{0, -1}, // left
		{0, 1},  // right
	}
)

// Effect describes what landing on a cell did to a player
type Effect struct {
	Kind       CellKind
	CoinsDelta int
	StarsDelta int
}

// None reports whether the effect changed nothing
func (e Effect) None() bool {
	return e.CoinsDelta == 0 && e.StarsDelta == 0
}

// String renders the effect for narration, e.g. "+10 coins"
func (e Effect) String() string {
	switch {
	case e.CoinsDelta > 0:
		return fmt.Sprintf("+%d coins", e.CoinsDelta)
	case e.CoinsDelta < 0:
		return fmt.Sprintf("%d coins", e.CoinsDelta)
	case e.StarsDelta > 0:
		return fmt.Sprintf("+%d star", e.StarsDelta)
	}
	return ""
}
