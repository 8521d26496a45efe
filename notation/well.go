package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nelhage/tetrician/tetris"
)

var (
	ErrEmpty             = errors.New("empty well")
	ErrBadWalls          = errors.New("row must be enclosed in |walls|")
	ErrInconsistentWidth = errors.New("inconsistent row width")
	ErrWidthTooLarge     = errors.New("well too wide")
	ErrWidthTooSmall     = errors.New("well too narrow")
	ErrHeightTooLarge    = errors.New("well too tall")
	ErrHeightTooSmall    = errors.New("well too short")
)

// ParseError reports a malformed text well. Kind is one of the Err*
// sentinels and can be matched with errors.Is.
type ParseError struct {
	Line int
	Kind error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse well: %v", e.Kind)
	}
	return fmt.Sprintf("parse well: line %d: %v", e.Line, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// ParseWell parses a well drawn as text, top row first:
//
//	|          |
//	|  #    ## |
//	|##########|
//	+----------+
//
// Spaces are empty cells; any other glyph is a block. Blank lines and
// a closing `+---+` floor are ignored.
func ParseWell(text string) (*tetris.Well, error) {
	var rows []tetris.Line
	width := -1
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" || isFloor(line) {
			continue
		}
		row, w, err := parseRow(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Kind: err}
		}
		if width >= 0 && w != width {
			return nil, &ParseError{Line: i + 1, Kind: ErrInconsistentWidth}
		}
		width = w
		rows = append(rows, row)
		if len(rows) > tetris.MaxHeight {
			return nil, &ParseError{Line: i + 1, Kind: ErrHeightTooLarge}
		}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Kind: ErrEmpty}
	}
	if width < tetris.MinWidth {
		return nil, &ParseError{Kind: ErrWidthTooSmall}
	}
	if len(rows) < tetris.MinHeight {
		return nil, &ParseError{Kind: ErrHeightTooSmall}
	}
	w := tetris.NewWell(width, len(rows))
	for i, row := range rows {
		w.SetLine(len(rows)-1-i, row)
	}
	return w, nil
}

func isFloor(line string) bool {
	return len(line) >= 2 && line[0] == '+' && line[len(line)-1] == '+' &&
		strings.Trim(line[1:len(line)-1], "-") == ""
}

func parseRow(line string) (tetris.Line, int, error) {
	cells := []rune(line)
	if len(cells) < 3 || cells[0] != '|' || cells[len(cells)-1] != '|' {
		return 0, 0, ErrBadWalls
	}
	cells = cells[1 : len(cells)-1]
	if len(cells) > tetris.MaxWidth {
		return 0, 0, ErrWidthTooLarge
	}
	var row tetris.Line
	for x, c := range cells {
		if c == '|' {
			return 0, 0, ErrBadWalls
		}
		if c != ' ' {
			row |= 1 << uint(x)
		}
	}
	return row, len(cells), nil
}

// FormatWell renders a well in the format accepted by ParseWell.
func FormatWell(w *tetris.Well) string {
	var b strings.Builder
	for y := w.Height() - 1; y >= 0; y-- {
		b.WriteByte('|')
		line := w.Line(y)
		for x := 0; x < w.Width(); x++ {
			if line&(1<<uint(x)) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteByte('+')
	b.WriteString(strings.Repeat("-", w.Width()))
	b.WriteString("+\n")
	return b.String()
}

// FormatScene renders a scene, drawing pieces by letter, the ghost
// as `.` and the active player in lower case.
func FormatScene(sc *tetris.Scene) string {
	var b strings.Builder
	for y := sc.Height - 1; y >= 0; y-- {
		b.WriteByte('|')
		for x := 0; x < sc.Width; x++ {
			t := sc.At(x, y)
			switch t.Kind {
			case tetris.TileBackground:
				b.WriteByte(' ')
			case tetris.TileGhost:
				b.WriteByte('.')
			case tetris.TilePlayer:
				b.WriteString(strings.ToLower(t.Piece.String()))
			case tetris.TileField:
				if t.Piece == tetris.NoPiece {
					b.WriteByte('#')
				} else {
					b.WriteString(t.Piece.String())
				}
			}
		}
		b.WriteString("|\n")
	}
	b.WriteByte('+')
	b.WriteString(strings.Repeat("-", sc.Width))
	b.WriteString("+\n")
	return b.String()
}
