package bitboard

import "math/bits"

func Popcount(x uint16) int {
	return bits.OnesCount16(x)
}

func TrailingZeros(x uint16) uint {
	return uint(bits.TrailingZeros16(x))
}
