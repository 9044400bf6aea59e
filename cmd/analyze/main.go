// Command analyze prints quick, human-readable heuristics about level files.
// It summarizes dimensions, counts of special cells, the start position and
// the length of the path each strategy builds, and highlights walkable cells
// the game can never reach from the start.
//
// With no arguments every *.txt file in the levels directory is analyzed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wricardo/party-board-game/game/engine"
)

// maxListed caps how many unreachable cells are printed per level
const maxListed = 5

// countedKinds are the cell kinds a level file can contain, in report order
var countedKinds = []engine.CellKind{
	engine.Path,
	engine.Invisible,
	engine.WinCoin,
	engine.LostCoin,
	engine.Star,
}

func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		matches, err := filepath.Glob(filepath.Join("levels", "*.txt"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing levels: %v\n", err)
			os.Exit(1)
		}
		files = matches
	}

	if len(files) == 0 {
		fmt.Println("No level files found")
		return
	}

	failed := 0
	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		if err := analyzeLevel(file, os.Stdout); err != nil {
			fmt.Printf("❌ %v\n", err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// analyzeLevel loads a level file and writes its report to out.
// Load errors are returned; a boundary walk that cannot close is reported, not returned.
func analyzeLevel(path string, out io.Writer) error {
	level, err := engine.LoadLevel(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Dimensions: %d rows x %d cols\n", len(level.Cells), maxWidth(level.Cells))
	fmt.Fprintf(out, "Start: %s\n", level.Start)
	for _, kind := range countedKinds {
		fmt.Fprintf(out, "  %-10s '%c': %d\n", kind, engine.CellChar(kind), engine.CountCells(level.Cells, kind))
	}
	fmt.Fprintf(out, "Walkable cells: %d\n", engine.CountWalkable(level.Cells))

	reach, err := engine.NewBoard(level, engine.ReachabilityStrategy{})
	if err != nil {
		return fmt.Errorf("reachability path: %w", err)
	}
	fmt.Fprintf(out, "Reachability path: %d cells\n", reach.PathLen())

	loop, err := engine.NewBoard(level, engine.BoundaryWalkStrategy{})
	switch {
	case errors.Is(err, engine.ErrNoCircularPath):
		fmt.Fprintf(out, "⚠️  Boundary walk: no closed loop (stopped after %d cells)\n", loop.PathLen())
	case err != nil:
		return fmt.Errorf("boundary walk: %w", err)
	default:
		fmt.Fprintf(out, "Boundary walk: closed loop of %d cells\n", loop.PathLen())
	}

	unreachable := engine.UnreachableCells(level.Cells, reach.Path())
	if len(unreachable) == 0 {
		fmt.Fprintf(out, "✅ All walkable cells are reachable from the start\n")
		return nil
	}

	fmt.Fprintf(out, "⚠️  WARNING: %d walkable cells are unreachable from the start!\n", len(unreachable))
	for i, c := range unreachable {
		if i == maxListed {
			fmt.Fprintf(out, "   ... and %d more\n", len(unreachable)-maxListed)
			break
		}
		fmt.Fprintf(out, "   Unreachable: %s - '%c'\n", c, engine.CellChar(level.Cells[c.Row][c.Col]))
	}
	return nil
}

func maxWidth(cells [][]engine.CellKind) int {
	width := 0
	for _, row := range cells {
		width = max(width, len(row))
	}
	return width
}
