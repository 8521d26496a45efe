package tetris

import "fmt"

// Player is the falling piece. Pt is the top-left corner of the
// piece's 4x4 bounding box: sprite row r covers well row Pt.Y-r and
// sprite column c covers well column Pt.X+c.
type Player struct {
	Piece Piece
	Rot   Rot
	Pt    Point
}

func (p Player) Sprite() Sprite {
	return p.Piece.Sprite(p.Rot)
}

func (p Player) MoveLeft() Player {
	p.Pt.X--
	return p
}

func (p Player) MoveRight() Player {
	p.Pt.X++
	return p
}

func (p Player) MoveDown() Player {
	p.Pt.Y--
	return p
}

// RotateCW rotates in place, without consulting any kick table.
func (p Player) RotateCW() Player {
	p.Rot = p.Rot.CW()
	return p
}

func (p Player) RotateCCW() Player {
	p.Rot = p.Rot.CCW()
	return p
}

func (p Player) String() string {
	return fmt.Sprintf("%s%s@%d,%d", p.Piece, p.Rot, p.Pt.X, p.Pt.Y)
}

// SpawnPoint is where new pieces enter a well of the given
// dimensions.
func SpawnPoint(piece Piece, width, height int) Point {
	pt := Point{width/2 - 2, height - 1}
	if piece == O || piece == I {
		pt.Y = height
	}
	return pt
}

// SpawnPlayer returns the freshly spawned player for `piece`.
func SpawnPlayer(w *Well, piece Piece) Player {
	return Player{Piece: piece, Rot: Spawn, Pt: SpawnPoint(piece, w.width, w.height)}
}
