package tetris

type TileKind uint8

const (
	TileBackground TileKind = iota
	TileField
	TileGhost
	TilePlayer
)

func (k TileKind) String() string {
	switch k {
	case TileBackground:
		return "background"
	case TileField:
		return "field"
	case TileGhost:
		return "ghost"
	case TilePlayer:
		return "player"
	}
	return "unknown"
}

type Tile struct {
	Kind  TileKind
	Piece Piece
}

// Scene is a snapshot of what every cell of a game looks like.
type Scene struct {
	Width, Height int
	// Tiles is row-major, bottom row first.
	Tiles []Tile
}

func (sc *Scene) At(x, y int) Tile {
	return sc.Tiles[y*sc.Width+x]
}

func (sc *Scene) set(x, y int, t Tile) {
	if x < 0 || x >= sc.Width || y < 0 || y >= sc.Height {
		return
	}
	sc.Tiles[y*sc.Width+x] = t
}

func (sc *Scene) draw(p Player, kind TileKind) {
	for r, row := range p.Sprite() {
		for c := 0; c < 4; c++ {
			if row&(1<<uint(c)) != 0 {
				sc.set(p.Pt.X+c, p.Pt.Y-r, Tile{kind, p.Piece})
			}
		}
	}
}

// Scene renders the field, the active player and its ghost.
func (s *State) Scene() *Scene {
	w := &s.well
	sc := &Scene{
		Width:  w.width,
		Height: w.height,
		Tiles:  make([]Tile, w.width*w.height),
	}
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			t := Tile{TileBackground, NoPiece}
			if w.rows[y]&(1<<uint(x)) != 0 {
				t = Tile{TileField, s.cells[y][x]}
			}
			sc.Tiles[y*w.width+x] = t
		}
	}
	if s.player != nil {
		ghost := *s.player
		ghost.Pt = w.TraceDown(ghost.Sprite(), ghost.Pt)
		sc.draw(ghost, TileGhost)
		sc.draw(*s.player, TilePlayer)
	}
	return sc
}
