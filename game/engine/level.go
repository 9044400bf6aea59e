package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrLevelFile = errors.New("cannot open level file")
	ErrNoStart   = errors.New("level has no start marker '&'")
)

// UnmappedCharacterError reports a level character outside the known set
type UnmappedCharacterError struct {
	Char rune
	Row  int
	Col  int
}

func (e *UnmappedCharacterError) Error() string {
	return fmt.Sprintf("unmapped character %q at row %d, col %d", e.Char, e.Row, e.Col)
}

// MultipleStartError reports a level with more than one start marker
type MultipleStartError struct {
	First  Coordinate
	Second Coordinate
}

func (e *MultipleStartError) Error() string {
	return fmt.Sprintf("level has more than one start marker: %s and %s", e.First, e.Second)
}

// StartMarker is the level character for the start cell
const StartMarker = '&'

// charToCell maps level characters to cell kinds. The start marker is a path cell.
var charToCell = map[rune]CellKind{
	'#':         Path,
	'.':         Invisible,
	'+':         WinCoin,
	'-':         LostCoin,
	'*':         Star,
	StartMarker: Path,
}

// Level is a parsed level file
type Level struct {
	Cells [][]CellKind
	Start Coordinate
}

// LoadLevel reads and parses a level file
func LoadLevel(filename string) (*Level, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrLevelFile, filename, err)
	}
	defer f.Close()

	level, err := ParseLevel(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return level, nil
}

// ParseLevel parses a level from r, one grid row per line.
// Rows may differ in length. Exactly one start marker is required.
// Rows longer than bufio.MaxScanTokenSize bytes fail with bufio.ErrTooLong.
func ParseLevel(r io.Reader) (*Level, error) {
	var (
		cells    [][]CellKind
		start    Coordinate
		hasStart bool
	)

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := []rune(scanner.Text())
		rowCells := make([]CellKind, 0, len(line))

		for col, ch := range line {
			kind, ok := charToCell[ch]
			if !ok {
				return nil, &UnmappedCharacterError{Char: ch, Row: row, Col: col}
			}
			if ch == StartMarker {
				pos := Coordinate{Row: row, Col: col}
				if hasStart {
					return nil, &MultipleStartError{First: start, Second: pos}
				}
				start = pos
				hasStart = true
			}
			rowCells = append(rowCells, kind)
		}

		cells = append(cells, rowCells)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	if !hasStart {
		return nil, ErrNoStart
	}

	return &Level{Cells: cells, Start: start}, nil
}

// CellChar returns the level character for a cell kind, or 0 if it has none
func CellChar(kind CellKind) rune {
	switch kind {
	case Path:
		return '#'
	case Invisible:
		return '.'
	case WinCoin:
		return '+'
	case LostCoin:
		return '-'
	case Star:
		return '*'
	}
	return 0
}
