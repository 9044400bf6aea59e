package engine

// Direction names for the orthogonal neighbourhood, in Orthogonal order
const (
	Up    = "up"
	Down  = "down"
	Left  = "left"
	Right = "right"
)

var directionNames = []string{Up, Down, Left, Right}

// Roller is the randomness a random walk draws from. *rand.Rand satisfies it.
type Roller interface {
	IntN(n int) int
}

// OffsetFor returns the grid offset for a direction name
func OffsetFor(direction string) (Offset, bool) {
	for i, name := range directionNames {
		if name == direction {
			return Orthogonal[i], true
		}
	}
	return Offset{}, false
}

// CanMoveTo checks if a player can stand on c
func (b *Board) CanMoveTo(c Coordinate) bool {
	return b.Walkable(c)
}

// Move attempts a single orthogonal step from `from` in the given direction.
// It returns the target and whether the step is allowed.
func (b *Board) Move(from Coordinate, direction string) (Coordinate, bool) {
	off, ok := OffsetFor(direction)
	if !ok {
		return from, false
	}

	target := from.Add(off)
	if !b.CanMoveTo(target) {
		return target, false
	}
	return target, true
}

// RandomStep draws exactly one direction from rng and tries to move there.
// A blocked step is not re-drawn: ok is false and the caller stays put.
func (b *Board) RandomStep(from Coordinate, rng Roller) (target Coordinate, direction string, ok bool) {
	direction = directionNames[rng.IntN(len(directionNames))]
	target, ok = b.Move(from, direction)
	return target, direction, ok
}

// PossibleMoves returns every direction that leads to a walkable cell
func (b *Board) PossibleMoves(from Coordinate) []string {
	var possible []string
	for _, dir := range directionNames {
		if _, ok := b.Move(from, dir); ok {
			possible = append(possible, dir)
		}
	}
	return possible
}
