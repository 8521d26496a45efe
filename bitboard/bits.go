package bitboard

// Constants holds the precomputed masks for a single row of a well
// `Width` columns wide. Bit x of a row is column x; column 0 is the
// leftmost column.
type Constants struct {
	Width uint
	Mask  uint16
}

func Precompute(width uint) Constants {
	var c Constants
	c.Width = width
	c.Mask = uint16(1<<width - 1)
	return c
}

// Flood grows `seed` left and right through the bits set in `within`
// until it stops changing. The result is the union of the contiguous
// runs of `within` that intersect `seed`.
func Flood(c *Constants, within uint16, seed uint16) uint16 {
	seed &= within
	for {
		next := Grow(c, within, seed)
		if next == seed {
			return next
		}
		seed = next
	}
}

func Grow(c *Constants, within uint16, seed uint16) uint16 {
	next := seed
	next |= (seed << 1) & c.Mask
	next |= seed >> 1
	return next & within
}

// Runs splits `bits` into its contiguous runs, appending each to
// `out`.
func Runs(c *Constants, bits uint16, out []uint16) []uint16 {
	bits &= c.Mask
	for bits != 0 {
		low := bits & -bits
		run := Flood(c, bits, low)
		out = append(out, run)
		bits &^= run
	}
	return out
}
