// Package engine provides the board model for the party board game.
//
// The engine package implements:
//   - Level parsing from text maps into a grid of cell kinds
//   - Circular path construction from the start cell
//   - The round-robin path cursor that forced movement follows
//   - Single-step orthogonal moves used by the random-walk variant
//   - Player records with saturating coin and star counters
//
// Level Format:
//
// One line per grid row, one character per cell:
//
//	#  path          .  invisible (impassable)
//	+  win coin      -  lost coin
//	*  star          &  start (a path cell)
//
// Rows may differ in length. A level must contain exactly one start marker.
//
// Path Strategies:
//
// ReachabilityStrategy collects every walkable cell reachable from the start
// with an 8-directional breadth-first search. BoundaryWalkStrategy traces a
// one-cell-wide loop clockwise and reports ErrNoCircularPath when the loop
// cannot be closed.
//
// Usage:
//
//	level, err := engine.LoadLevel("levels/classic.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	board, err := engine.NewBoard(level, engine.ReachabilityStrategy{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	pos, err := board.Next()
package engine
