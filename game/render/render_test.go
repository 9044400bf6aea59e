package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/party-board-game/game/engine"
)

func newTestBoard(t *testing.T, layout string) *engine.Board {
	t.Helper()
	level, err := engine.ParseLevel(strings.NewReader(layout))
	require.NoError(t, err)
	board, err := engine.NewBoard(level, nil)
	require.NoError(t, err)
	return board
}

func TestRenderer_Board(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ASCIITheme())

	board := newTestBoard(t, "&+-\n.*\n#")
	r.Board(board, engine.Coordinate{Row: 0, Col: 1})

	expected := "\nBoard:\n" +
		"# @ - \n" +
		"  * \n" +
		"# \n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderer_BoardEmoji(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, nil)

	board := newTestBoard(t, "&+")
	r.Board(board, engine.Coordinate{Row: 0, Col: 0})

	assert.Contains(t, buf.String(), "👾🟢\n")
}

func TestRenderer_Players(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ASCIITheme())

	alice := engine.NewPlayer("Alice", engine.Coordinate{})
	alice.AddCoins(10)
	bob := engine.NewPlayer("Bob", engine.Coordinate{Row: 0, Col: 3})
	bob.AddStars(2)

	r.Players([]*engine.Player{alice, bob})

	out := buf.String()
	assert.Contains(t, out, "Alice 👤 -> Coins: 10 | Stars: 0 | Position: (0, 0)\n")
	assert.Contains(t, out, "Bob 👤 -> Coins: 0 | Stars: 2 | Position: (0, 3)\n")
	assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Bob"))
}

func TestRenderer_Welcome(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, nil).Welcome()
	assert.Equal(t, Banner+"\n", buf.String())
}
