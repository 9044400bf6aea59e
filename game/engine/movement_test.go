package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRoller returns its values in order, then repeats the last one
type fixedRoller struct {
	values []int
	calls  int
}

func (r *fixedRoller) IntN(n int) int {
	v := r.values[min(r.calls, len(r.values)-1)]
	r.calls++
	return v % n
}

func TestBoard_Move(t *testing.T) {
	board, err := NewBoard(mustParse(t, ringLayout), nil)
	require.NoError(t, err)

	tests := []struct {
		name      string
		from      Coordinate
		direction string
		expected  Coordinate
		ok        bool
	}{
		{"right along top", Coordinate{0, 0}, Right, Coordinate{0, 1}, true},
		{"down along left", Coordinate{0, 0}, Down, Coordinate{1, 0}, true},
		{"into invisible", Coordinate{0, 1}, Down, Coordinate{1, 1}, false},
		{"off the top", Coordinate{0, 1}, Up, Coordinate{-1, 1}, false},
		{"off the right", Coordinate{0, 2}, Right, Coordinate{0, 3}, false},
		{"unknown direction", Coordinate{0, 0}, "north", Coordinate{0, 0}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := board.Move(test.from, test.direction)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestBoard_RandomStep(t *testing.T) {
	board, err := NewBoard(mustParse(t, ringLayout), nil)
	require.NoError(t, err)

	// 3 = right, 0 = up: one draw per call, blocked draws are not retried
	roller := &fixedRoller{values: []int{3, 0}}

	target, dir, ok := board.RandomStep(Coordinate{0, 0}, roller)
	assert.True(t, ok)
	assert.Equal(t, Right, dir)
	assert.Equal(t, Coordinate{0, 1}, target)

	_, dir, ok = board.RandomStep(Coordinate{0, 1}, roller)
	assert.False(t, ok)
	assert.Equal(t, Up, dir)
	assert.Equal(t, 2, roller.calls)
}

func TestBoard_PossibleMoves(t *testing.T) {
	board, err := NewBoard(mustParse(t, ringLayout), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{Down, Right}, board.PossibleMoves(Coordinate{0, 0}))
	assert.Equal(t, []string{Up, Down}, board.PossibleMoves(Coordinate{1, 2}))
}

func TestOffsetFor(t *testing.T) {
	off, ok := OffsetFor(Left)
	assert.True(t, ok)
	assert.Equal(t, Offset{DRow: 0, DCol: -1}, off)

	_, ok = OffsetFor("diagonal")
	assert.False(t, ok)
}
