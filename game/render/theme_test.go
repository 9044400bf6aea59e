package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/party-board-game/game/engine"
)

func TestBuiltinThemesCoverEveryKind(t *testing.T) {
	for _, theme := range []Theme{EmojiTheme(), ASCIITheme()} {
		for kind := engine.Empty; kind <= engine.PlayerMarker; kind++ {
			assert.NotEqual(t, "??", theme.Glyph(kind), "missing glyph for %s", kind)
		}
	}
}

func TestThemeByName(t *testing.T) {
	theme, err := ThemeByName("ascii")
	require.NoError(t, err)
	assert.Equal(t, "# ", theme.Glyph(engine.Path))

	theme, err = ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, "🔵", theme.Glyph(engine.Path))

	_, err = ThemeByName("neon")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.ini")
	content := `base = ascii

[glyphs]
player    = P
invisible = ".."
star      = ★★
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, "P ", theme.Glyph(engine.PlayerMarker))
	assert.Equal(t, "..", theme.Glyph(engine.Invisible))
	assert.Equal(t, "★★", theme.Glyph(engine.Star))
	assert.Equal(t, "# ", theme.Glyph(engine.Path), "unset keys come from the base theme")
}

func TestResolveTheme(t *testing.T) {
	theme, err := ResolveTheme("ascii")
	require.NoError(t, err)
	assert.Equal(t, ASCIITheme(), theme)

	_, err = ResolveTheme(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestLoadTheme_BadBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.ini")
	require.NoError(t, os.WriteFile(path, []byte("base = neon\n"), 0644))

	_, err := LoadTheme(path)
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestNormalizeGlyph(t *testing.T) {
	assert.Equal(t, "  ", normalizeGlyph(""))
	assert.Equal(t, "x ", normalizeGlyph("x"))
	assert.Equal(t, "xy", normalizeGlyph("xy"))
	assert.Equal(t, "🔵", normalizeGlyph("🔵"))
}

func TestLoadTheme_Shipped(t *testing.T) {
	theme, err := LoadTheme(filepath.Join("..", "..", "themes", "blocks.ini"))
	require.NoError(t, err)

	assert.Equal(t, "██", theme.Glyph(engine.Path))
	assert.Equal(t, "$$", theme.Glyph(engine.WinCoin))
	assert.Equal(t, ASCIITheme().Glyph(engine.Empty), theme.Glyph(engine.Empty), "unset keys come from the base theme")
	assert.Equal(t, "o ", theme.Glyph(engine.Empty))
}
