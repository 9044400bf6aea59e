package render

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/wricardo/party-board-game/game/engine"
	"gopkg.in/ini.v1"
)

// Built-in theme names
const (
	ThemeEmoji = "emoji"
	ThemeASCII = "ascii"
)

var ErrUnknownTheme = errors.New("unknown theme")

// glyphSection is the INI section holding per-kind glyph overrides
const glyphSection = "glyphs"

// Theme maps each cell kind to a two-column glyph
type Theme map[engine.CellKind]string

// EmojiTheme returns the default emoji glyphs
func EmojiTheme() Theme {
	return Theme{
		engine.Empty:        "⚪",
		engine.Path:         "🔵",
		engine.Invisible:    "  ",
		engine.WinCoin:      "🟢",
		engine.LostCoin:     "🔴",
		engine.Star:         "⭐",
		engine.PlayerMarker: "👾",
	}
}

// ASCIITheme returns plain ASCII glyphs for terminals without emoji
func ASCIITheme() Theme {
	return Theme{
		engine.Empty:        "o ",
		engine.Path:         "# ",
		engine.Invisible:    "  ",
		engine.WinCoin:      "+ ",
		engine.LostCoin:     "- ",
		engine.Star:         "* ",
		engine.PlayerMarker: "@ ",
	}
}

// Glyph returns the glyph for kind, or "??" when the theme lacks it
func (t Theme) Glyph(kind engine.CellKind) string {
	if g, ok := t[kind]; ok {
		return g
	}
	return "??"
}

// ThemeByName returns a built-in theme
func ThemeByName(name string) (Theme, error) {
	switch name {
	case ThemeEmoji, "":
		return EmojiTheme(), nil
	case ThemeASCII:
		return ASCIITheme(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// ResolveTheme returns the built-in theme called name, or loads name as an
// INI theme file when it is not a built-in.
func ResolveTheme(name string) (Theme, error) {
	if theme, err := ThemeByName(name); err == nil {
		return theme, nil
	}
	return LoadTheme(name)
}

// LoadTheme reads an INI theme file. The optional top-level key "base" picks
// the built-in theme to start from; keys in the [glyphs] section, named after
// cell kinds (path, invisible, win_coin, lost_coin, star, player, empty),
// override single glyphs. Quote values that need spaces.
func LoadTheme(path string) (Theme, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme %s: %w", path, err)
	}

	theme, err := ThemeByName(cfg.Section(ini.DefaultSection).Key("base").String())
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}

	sec := cfg.Section(glyphSection)
	for kind := engine.Empty; kind <= engine.PlayerMarker; kind++ {
		if !sec.HasKey(kind.String()) {
			continue
		}
		theme[kind] = normalizeGlyph(sec.Key(kind.String()).String())
	}

	return theme, nil
}

// normalizeGlyph pads single ASCII characters so every cell spans two columns
func normalizeGlyph(g string) string {
	switch {
	case g == "":
		return "  "
	case len(g) == 1 && utf8.RuneCountInString(g) == 1:
		return g + " "
	}
	return g
}
