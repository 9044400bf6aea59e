// Package session implements the turn controller for the party board game.
//
// A Session owns one run: the board, the two players and a three-phase state
// machine. Each Tick runs process (read operator input), update (advance the
// state or play a turn) and render (print the board and player status):
//
//	undefined --tick--> welcome --tick--> playing --tick--> playing ...
//
// Run plays a fixed number of ticks and returns. There is no win or lose
// condition; StateGameOver is declared but never entered.
//
// Movement:
//
// With MovementPath the active player advances the board's shared path
// cursor once per rolled step. With MovementWalk the player takes random
// orthogonal steps from their own position; blocked steps are skipped and
// not re-drawn.
//
// Randomness:
//
// The random source is seeded once per session (WithSeed), so a fixed seed
// reproduces the whole run. Without a seed the wall clock is used.
//
// Usage:
//
//	s, err := session.New(board, console.NewReader(os.Stdin, os.Stdout), render.New(os.Stdout, nil),
//		session.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := s.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package session
