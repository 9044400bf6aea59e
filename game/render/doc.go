// Package render draws the board and player status as plain text.
//
// Every cell is drawn as a two-column glyph from a Theme. The emoji theme is
// the default; the ascii theme and INI theme files are alternatives:
//
//	base = ascii
//
//	[glyphs]
//	player    = P
//	invisible = ".."
package render
