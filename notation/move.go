package notation

import (
	"fmt"
	"strings"

	"github.com/nelhage/tetrician/tetris"
)

var actionLetters = map[tetris.Action]byte{
	tetris.MoveLeft:  'L',
	tetris.MoveRight: 'R',
	tetris.RotateCW:  'C',
	tetris.RotateCCW: 'W',
	tetris.SoftDrop:  'D',
	tetris.HardDrop:  'H',
}

var lettersAction map[byte]tetris.Action

func init() {
	lettersAction = make(map[byte]tetris.Action, len(actionLetters))
	for a, l := range actionLetters {
		lettersAction[l] = a
	}
}

func ParsePiece(s string) (tetris.Piece, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("OISZLJT", s[0]&^0x20); i >= 0 {
			return tetris.Piece(i), nil
		}
	}
	return tetris.NoPiece, fmt.Errorf("bad piece: %q", s)
}

// ParseActions parses a sequence of action letters. Whitespace is
// ignored.
func ParseActions(s string) ([]tetris.Action, error) {
	var out []tetris.Action
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n':
			continue
		}
		a, ok := lettersAction[s[i]]
		if !ok {
			return nil, fmt.Errorf("bad action %q at offset %d", s[i], i)
		}
		out = append(out, a)
	}
	return out, nil
}

func FormatActions(as []tetris.Action) string {
	out := make([]byte, len(as))
	for i, a := range as {
		l, ok := actionLetters[a]
		if !ok {
			l = '?'
		}
		out[i] = l
	}
	return string(out)
}
