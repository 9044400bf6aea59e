package engine

import (
	"errors"
	"fmt"
)

var (
	ErrNoCircularPath  = errors.New("no circular path")
	ErrInvalidStart    = errors.New("start cell is not walkable")
	ErrUnknownStrategy = errors.New("unknown path strategy")
)

// Strategy names accepted by StrategyByName
const (
	StrategyReachability = "reachability"
	StrategyBoundary     = "boundary"
)

// PathStrategy derives the circular path players follow from a start cell
type PathStrategy interface {
	BuildPath(cells [][]CellKind, start Coordinate) ([]Coordinate, error)
}

// StrategyByName returns the path strategy registered under name
func StrategyByName(name string) (PathStrategy, error) {
	switch name {
	case StrategyReachability, "":
		return ReachabilityStrategy{}, nil
	case StrategyBoundary:
		return BoundaryWalkStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// ReachabilityStrategy enumerates every walkable cell reachable from the
// start with an 8-directional breadth-first search. The path is the
// discovery order, start first. The board does not need to form a loop.
type ReachabilityStrategy struct{}

func (ReachabilityStrategy) String() string { return StrategyReachability }

// BuildPath implements PathStrategy
func (ReachabilityStrategy) BuildPath(cells [][]CellKind, start Coordinate) ([]Coordinate, error) {
	if !isWalkable(cells, start) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStart, start)
	}

	path := []Coordinate{start}
	seen := map[Coordinate]bool{start: true}
	queue := []Coordinate{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, off := range searchOrder {
			next := current.Add(off)
			if seen[next] || !isWalkable(cells, next) {
				continue
			}
			seen[next] = true
			path = append(path, next)
			queue = append(queue, next)
		}
	}

	return path, nil
}

// BoundaryWalkStrategy follows a one-cell-wide loop by trying the eight
// neighbours in clockwise order from north, never stepping back onto the
// previous cell or a cell already on the path. It stops when it gets back to
// the start. Branching layouts are not supported.
type BoundaryWalkStrategy struct{}

func (BoundaryWalkStrategy) String() string { return StrategyBoundary }

// BuildPath implements PathStrategy. When the walk gets stuck it returns the
// partial path together with ErrNoCircularPath.
func (BoundaryWalkStrategy) BuildPath(cells [][]CellKind, start Coordinate) ([]Coordinate, error) {
	if !isWalkable(cells, start) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStart, start)
	}

	path := []Coordinate{start}
	onPath := map[Coordinate]bool{start: true}
	current, prev := start, start

	for {
		var (
			next  Coordinate
			found bool
		)

		for _, off := range clockwise {
			candidate := current.Add(off)
			if candidate == prev || !isWalkable(cells, candidate) {
				continue
			}
			if candidate == start {
				// A loop needs at least three cells
				if len(path) >= 3 {
					return path, nil
				}
				continue
			}
			if onPath[candidate] {
				continue
			}
			next, found = candidate, true
			break
		}

		if !found {
			return path, fmt.Errorf("%w: stuck at %s after %d cells", ErrNoCircularPath, current, len(path))
		}

		path = append(path, next)
		onPath[next] = true
		prev, current = current, next
	}
}

// isWalkable checks bounds against the row's own length, then the cell kind
func isWalkable(cells [][]CellKind, c Coordinate) bool {
	if c.Row < 0 || c.Row >= len(cells) {
		return false
	}
	if c.Col < 0 || c.Col >= len(cells[c.Row]) {
		return false
	}
	return cells[c.Row][c.Col].Walkable()
}
