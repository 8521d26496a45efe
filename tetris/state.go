package tetris

// State is a game in progress: a well and, between a spawn and the
// following lock, an active player.
type State struct {
	well   Well
	player *Player

	// cells records which piece was locked into each cell, for
	// scenes.
	cells [MaxHeight][MaxWidth]Piece
}

func NewState(width, height int) *State {
	return StateWithWell(NewWell(width, height))
}

// StateWithWell starts a game on a copy of an existing well.
func StateWithWell(w *Well) *State {
	s := &State{well: *w}
	for y := range s.cells {
		s.cells[y] = emptyCells
	}
	return s
}

var emptyCells = func() (row [MaxWidth]Piece) {
	for i := range row {
		row[i] = NoPiece
	}
	return row
}()

// Well returns the state's well. The caller must not modify it.
func (s *State) Well() *Well {
	return &s.well
}

// Player returns the active player, if any.
func (s *State) Player() (Player, bool) {
	if s.player == nil {
		return Player{}, false
	}
	return *s.player, true
}

func (s *State) SetPlayer(p Player) {
	s.player = &p
}

func (s *State) ClearPlayer() {
	s.player = nil
}

// Spawn installs a new player for `piece` at the top of the well. It
// returns true if the spawned piece already collides with the well,
// meaning the game is lost. The player is installed either way.
func (s *State) Spawn(piece Piece) bool {
	p := SpawnPlayer(&s.well, piece)
	s.player = &p
	return s.well.Test(p.Sprite(), p.Pt)
}

func (s *State) try(next Player) bool {
	if s.well.Test(next.Sprite(), next.Pt) {
		return false
	}
	*s.player = next
	return true
}

func (s *State) MoveLeft() bool {
	if s.player == nil {
		return false
	}
	return s.try(s.player.MoveLeft())
}

func (s *State) MoveRight() bool {
	if s.player == nil {
		return false
	}
	return s.try(s.player.MoveRight())
}

// RotateCW rotates the player using SRS wall kicks and reports
// whether the player changed.
func (s *State) RotateCW() bool {
	if s.player == nil {
		return false
	}
	next := KickCW(&s.well, *s.player)
	changed := next != *s.player
	*s.player = next
	return changed
}

func (s *State) RotateCCW() bool {
	if s.player == nil {
		return false
	}
	next := KickCCW(&s.well, *s.player)
	changed := next != *s.player
	*s.player = next
	return changed
}

// SoftDrop moves the player down one row. If it cannot move, the
// player is locked in place and SoftDrop returns false.
func (s *State) SoftDrop() bool {
	if s.player == nil {
		return false
	}
	if s.try(s.player.MoveDown()) {
		return true
	}
	s.Lock()
	return false
}

// Gravity is one tick of gravity; it behaves exactly like SoftDrop.
func (s *State) Gravity() bool {
	return s.SoftDrop()
}

// HardDrop drops the player to its resting place and locks it.
func (s *State) HardDrop() bool {
	if s.player == nil {
		return false
	}
	s.player.Pt = s.well.TraceDown(s.player.Sprite(), s.player.Pt)
	s.Lock()
	return true
}

// Lock etches the player into the well and clears it.
func (s *State) Lock() {
	if s.player == nil {
		return
	}
	p := *s.player
	s.player = nil
	sp := p.Sprite()
	s.well.Etch(sp, p.Pt)
	for r, row := range sp {
		y := p.Pt.Y - r
		if y < 0 || y >= s.well.height {
			continue
		}
		for c := 0; c < 4; c++ {
			x := p.Pt.X + c
			if row&(1<<uint(c)) != 0 && x >= 0 && x < s.well.width {
				s.cells[y][x] = p.Piece
			}
		}
	}
}

// ClearLines removes every full row. `cb`, if non-nil, is called with
// the index each removed row had before any rows were cleared.
func (s *State) ClearLines(cb func(row int)) int {
	cleared := 0
	for row := 0; row < s.well.height; {
		if !s.well.TestLine(row) {
			row++
			continue
		}
		if cb != nil {
			cb(row + cleared)
		}
		s.well.RemoveLine(row)
		copy(s.cells[row:s.well.height-1], s.cells[row+1:s.well.height])
		s.cells[s.well.height-1] = emptyCells
		cleared++
	}
	return cleared
}

// IsGameOver reports whether blocks have reached the top two rows.
func (s *State) IsGameOver() bool {
	h := s.well.height
	return s.well.rows[h-1]|s.well.rows[h-2] != 0
}

// Apply performs a single action and returns its result.
func (s *State) Apply(a Action) bool {
	switch a {
	case MoveLeft:
		return s.MoveLeft()
	case MoveRight:
		return s.MoveRight()
	case RotateCW:
		return s.RotateCW()
	case RotateCCW:
		return s.RotateCCW()
	case SoftDrop:
		return s.SoftDrop()
	case HardDrop:
		return s.HardDrop()
	}
	return false
}
