package tetris

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// Hash returns a hash of the well's dimensions and contents.
func (w *Well) Hash() uint64 {
	var buf [2 + 2*MaxHeight]byte
	buf[0] = byte(w.width)
	buf[1] = byte(w.height)
	for i, l := range w.Lines() {
		binary.LittleEndian.PutUint16(buf[2+2*i:], l)
	}
	return xxhash.Sum64(buf[:2+2*w.height])
}
