package tetris

// SRS wall kick offsets, indexed by the rotation the piece is
// rotating from. The first offset of every entry is the unkicked
// rotation. Rotating back undoes a kick: the counter-clockwise
// offsets out of r.CW() negate the clockwise offsets out of r.
var (
	kicksJLSTZCW = [4][5]Point{
		Spawn: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		Right: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		Two:   {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		Left:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	}
	kicksJLSTZCCW = [4][5]Point{
		Spawn: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		Right: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		Two:   {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		Left:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	}
	kicksICW = [4][5]Point{
		Spawn: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		Right: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		Two:   {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		Left:  {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	}
	kicksICCW = [4][5]Point{
		Spawn: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		Right: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		Two:   {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		Left:  {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	}
	kicksO = [5]Point{{0, 0}}
)

// Kicks returns the offsets to try, in order, when rotating `piece`
// out of rotation `from`.
func Kicks(piece Piece, from Rot, cw bool) []Point {
	switch {
	case piece == O:
		return kicksO[:1]
	case piece == I && cw:
		return kicksICW[from&3][:]
	case piece == I:
		return kicksICCW[from&3][:]
	case cw:
		return kicksJLSTZCW[from&3][:]
	default:
		return kicksJLSTZCCW[from&3][:]
	}
}

// KickCW rotates the player clockwise using the SRS kick table. If
// no kick fits, the player is returned unchanged.
func KickCW(w *Well, p Player) Player {
	return kick(w, p, p.RotateCW(), true)
}

func KickCCW(w *Well, p Player) Player {
	return kick(w, p, p.RotateCCW(), false)
}

func kick(w *Well, from, to Player, cw bool) Player {
	pt, ok := w.WallKick(to.Sprite(), Kicks(from.Piece, from.Rot, cw), to.Pt)
	if !ok {
		return from
	}
	to.Pt = pt
	return to
}
