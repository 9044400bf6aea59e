package render

import (
	"fmt"
	"io"
	"os"

	"github.com/wricardo/party-board-game/game/engine"
)

// Banner is printed when the game enters the welcome state
const Banner = "WELCOME!!!"

// Renderer writes the textual board dump and narration to a writer
type Renderer struct {
	out   io.Writer
	theme Theme
}

// New creates a renderer. A nil writer means stdout, a nil theme means EmojiTheme.
func New(out io.Writer, theme Theme) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	if theme == nil {
		theme = EmojiTheme()
	}
	return &Renderer{out: out, theme: theme}
}

// Theme returns the glyph theme in use
func (r *Renderer) Theme() Theme {
	return r.theme
}

// Welcome prints the welcome banner
func (r *Renderer) Welcome() {
	r.Println(Banner)
}

// Board prints the grid, one line per row. The cell at marker is drawn with
// the player glyph.
func (r *Renderer) Board(b *engine.Board, marker engine.Coordinate) {
	r.Println()
	r.Println("Board:")
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.RowLen(row); col++ {
			pos := engine.Coordinate{Row: row, Col: col}
			kind, _ := b.Cell(pos)
			if pos == marker {
				kind = engine.PlayerMarker
			}
			r.Print(r.theme.Glyph(kind))
		}
		r.Println()
	}
}

// Players prints one status line per player
func (r *Renderer) Players(players []*engine.Player) {
	r.Println()
	r.Println("Players:")
	for _, p := range players {
		r.Println(p.String())
	}
	r.Println()
}

// Print writes its operands with fmt.Fprint
func (r *Renderer) Print(a ...any) {
	_, _ = fmt.Fprint(r.out, a...)
}

// Println writes its operands with fmt.Fprintln
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes a formatted narration line fragment
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}
