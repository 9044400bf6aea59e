package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountCells(t *testing.T) {
	cells := mustParse(t, "&+*\n.-+\n..").Cells

	assert.Equal(t, 2, CountCells(cells, WinCoin))
	assert.Equal(t, 1, CountCells(cells, Star))
	assert.Equal(t, 3, CountCells(cells, Invisible))
	assert.Equal(t, 5, CountWalkable(cells))
}

func TestUnreachableCells_AllReached(t *testing.T) {
	level := mustParse(t, ringLayout)
	path, err := ReachabilityStrategy{}.BuildPath(level.Cells, level.Start)
	assert.NoError(t, err)
	assert.Empty(t, UnreachableCells(level.Cells, path))
}
