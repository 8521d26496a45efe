package tetris

import "fmt"

type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Rot is one of the four SRS rotation states.
type Rot uint8

const (
	Spawn Rot = iota
	Right
	Two
	Left
)

// RotFromUint8 maps any byte onto a rotation state.
func RotFromUint8(v uint8) Rot {
	return Rot(v & 3)
}

func (r Rot) CW() Rot {
	return (r + 1) & 3
}

func (r Rot) CCW() Rot {
	return (r + 3) & 3
}

func (r Rot) String() string {
	switch r {
	case Spawn:
		return "0"
	case Right:
		return "R"
	case Two:
		return "2"
	case Left:
		return "L"
	}
	return fmt.Sprintf("Rot(%d)", uint8(r))
}

type Piece uint8

const (
	O Piece = iota
	I
	S
	Z
	L
	J
	T

	NumPieces = 7
	NoPiece   = Piece(0xff)
)

// AllPieces lists every piece in identity order.
var AllPieces = [NumPieces]Piece{O, I, S, Z, L, J, T}

// PieceFromUint8 maps any byte onto a piece identity.
func PieceFromUint8(v uint8) Piece {
	return Piece(v % NumPieces)
}

func (p Piece) String() string {
	if p < NumPieces {
		return string("OISZLJT"[p])
	}
	if p == NoPiece {
		return "-"
	}
	return fmt.Sprintf("Piece(%d)", uint8(p))
}

// Sprite is the 4x4 occupancy of a piece in a single rotation. Row 0
// is the top row of the bounding box; bit c of a row is column c of
// the box.
type Sprite [4]uint8

func (p Piece) Sprite(r Rot) Sprite {
	return sprites[p][r&3]
}

// Cells returns the number of occupied cells in the sprite.
func (s Sprite) Cells() int {
	n := 0
	for _, row := range s {
		for ; row != 0; row &= row - 1 {
			n++
		}
	}
	return n
}

func sprite(rows ...string) Sprite {
	var s Sprite
	for y, row := range rows {
		for x, ch := range row {
			if ch == 'X' {
				s[y] |= 1 << uint(x)
			}
		}
	}
	return s
}

var sprites = [NumPieces][4]Sprite{
	O: {
		sprite("....", ".XX.", ".XX."),
		sprite("....", ".XX.", ".XX."),
		sprite("....", ".XX.", ".XX."),
		sprite("....", ".XX.", ".XX."),
	},
	I: {
		sprite("....", "XXXX"),
		sprite("..X.", "..X.", "..X.", "..X."),
		sprite("....", "....", "XXXX"),
		sprite(".X..", ".X..", ".X..", ".X.."),
	},
	S: {
		sprite(".XX", "XX."),
		sprite(".X.", ".XX", "..X"),
		sprite("...", ".XX", "XX."),
		sprite("X..", "XX.", ".X."),
	},
	Z: {
		sprite("XX.", ".XX"),
		sprite("..X", ".XX", ".X."),
		sprite("...", "XX.", ".XX"),
		sprite(".X.", "XX.", "X.."),
	},
	L: {
		sprite("..X", "XXX"),
		sprite(".X.", ".X.", ".XX"),
		sprite("...", "XXX", "X.."),
		sprite("XX.", ".X.", ".X."),
	},
	J: {
		sprite("X..", "XXX"),
		sprite(".XX", ".X.", ".X."),
		sprite("...", "XXX", "..X"),
		sprite(".X.", ".X.", "XX."),
	},
	T: {
		sprite(".X.", "XXX"),
		sprite(".X.", ".XX", ".X."),
		sprite("...", "XXX", ".X."),
		sprite(".X.", "XX.", ".X."),
	},
}
