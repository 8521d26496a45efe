package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotGroupLaw(t *testing.T) {
	for _, r := range []Rot{Spawn, Right, Two, Left} {
		assert.Equal(t, r, r.CW().CCW(), "cw.ccw %s", r)
		assert.Equal(t, r, r.CCW().CW(), "ccw.cw %s", r)
		assert.Equal(t, r, r.CW().CW().CW().CW(), "cw^4 %s", r)
	}
	assert.Equal(t, Right, Spawn.CW())
	assert.Equal(t, Left, Spawn.CCW())
}

func TestFromUint8(t *testing.T) {
	for v := 0; v < 256; v++ {
		assert.Less(t, uint8(PieceFromUint8(uint8(v))), uint8(NumPieces))
		assert.LessOrEqual(t, uint8(RotFromUint8(uint8(v))), uint8(Left))
	}
	assert.Equal(t, T, PieceFromUint8(6))
	assert.Equal(t, O, PieceFromUint8(7))
	assert.Equal(t, Two, RotFromUint8(6))
}

func TestSprites(t *testing.T) {
	for _, p := range AllPieces {
		for r := Spawn; r <= Left; r++ {
			s := p.Sprite(r)
			assert.Equal(t, 4, s.Cells(), "%s%s", p, r)
		}
	}
	assert.Equal(t, Sprite{0, 6, 6, 0}, O.Sprite(Spawn))
	assert.Equal(t, Sprite{0, 0xf, 0, 0}, I.Sprite(Spawn))
	assert.Equal(t, Sprite{2, 7, 0, 0}, T.Sprite(Spawn))
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "L", L.String())
	assert.Equal(t, "-", NoPiece.String())
	assert.Equal(t, "TR@3,4", Player{T, Right, Point{3, 4}}.String())
}
