package tetris

import (
	"fmt"

	"github.com/nelhage/tetrician/bitboard"
)

const (
	MinWidth  = 4
	MaxWidth  = 16
	MinHeight = 4
	MaxHeight = 23
)

// Line is a single row of the well; bit x is column x.
type Line = uint16

// Well is the playing field. Row 0 is the bottom row. A Well is a
// plain value: copying it clones it.
type Well struct {
	width, height int
	c             bitboard.Constants
	rows          [MaxHeight]Line
}

// NewWell returns an empty well. It panics if the dimensions are out
// of range.
func NewWell(width, height int) *Well {
	if width < MinWidth || width > MaxWidth {
		panic(fmt.Sprintf("tetris: bad well width: %d", width))
	}
	if height < MinHeight || height > MaxHeight {
		panic(fmt.Sprintf("tetris: bad well height: %d", height))
	}
	return &Well{
		width:  width,
		height: height,
		c:      bitboard.Precompute(uint(width)),
	}
}

// WellFromData builds a well from rows given top-to-bottom, in
// reading order: the most significant of the `width` bits of each
// literal is the leftmost column.
func WellFromData(width int, rows []Line) *Well {
	w := NewWell(width, len(rows))
	for i, data := range rows {
		var line Line
		for x := 0; x < width; x++ {
			line = line<<1 | data&1
			data >>= 1
		}
		if data != 0 {
			panic(fmt.Sprintf("tetris: row %d has blocks outside the well", i))
		}
		w.rows[len(rows)-1-i] = line
	}
	return w
}

func (w *Well) Width() int  { return w.width }
func (w *Well) Height() int { return w.height }

func (w *Well) Clone() *Well {
	c := *w
	return &c
}

// LineMask returns a row with every column set.
func (w *Well) LineMask() Line {
	return w.c.Mask
}

func (w *Well) Line(row int) Line {
	return w.rows[row]
}

// Lines returns the rows of the well, bottom row first. The slice
// aliases the well.
func (w *Well) Lines() []Line {
	return w.rows[:w.height:w.height]
}

// SetLine replaces a row and returns its previous contents.
func (w *Well) SetLine(row int, line Line) Line {
	old := w.rows[row]
	w.rows[row] = line & w.c.Mask
	return old
}

// TestLine reports whether a row is completely filled.
func (w *Well) TestLine(row int) bool {
	return w.rows[row] == w.c.Mask
}

// RemoveLine deletes a row, shifting every row above it down by one,
// and returns the removed row.
func (w *Well) RemoveLine(row int) Line {
	removed := w.rows[row]
	copy(w.rows[row:w.height-1], w.rows[row+1:w.height])
	w.rows[w.height-1] = 0
	return removed
}

// InsertLine inserts a row, shifting it and every row above up by
// one. It returns the row pushed off the top of the well.
func (w *Well) InsertLine(row int, line Line) Line {
	top := w.rows[w.height-1]
	copy(w.rows[row+1:w.height], w.rows[row:w.height-1])
	w.rows[row] = line & w.c.Mask
	return top
}

func (w *Well) CountBlocks() int {
	n := 0
	for _, l := range w.Lines() {
		n += bitboard.Popcount(l)
	}
	return n
}

func (w *Well) IsEmpty() bool {
	for _, l := range w.Lines() {
		if l != 0 {
			return false
		}
	}
	return true
}

func render(row uint8, x int) Line {
	if x >= 0 {
		return Line(uint32(row) << uint(x))
	}
	return Line(row >> uint(-x))
}

// Test reports whether the sprite placed with its top-left corner at
// `pt` is illegal, either by leaving the well or by overlapping
// existing blocks. Placements entirely above the well are legal.
func (w *Well) Test(s Sprite, pt Point) bool {
	if pt.X <= -4 || pt.X >= w.width || pt.Y < 0 {
		return true
	}
	if pt.Y >= w.height+4 {
		return false
	}
	allowed := uint32(w.c.Mask)
	if pt.X >= 0 {
		allowed >>= uint(pt.X)
	} else {
		allowed <<= uint(-pt.X)
	}
	for r, row := range s {
		if row == 0 {
			continue
		}
		if uint32(row)&^allowed != 0 {
			return true
		}
		y := pt.Y - r
		if y < 0 {
			return true
		}
		if y < w.height && w.rows[y]&render(row, pt.X) != 0 {
			return true
		}
	}
	return false
}

// Etch writes the sprite into the well, clipped to the well's rows.
// The placement must already have been checked with Test; Etch
// does not validate it.
func (w *Well) Etch(s Sprite, pt Point) {
	for r, row := range s {
		y := pt.Y - r
		if y < 0 || y >= w.height {
			continue
		}
		w.rows[y] |= render(row, pt.X) & w.c.Mask
	}
}

// WallKick returns `pt` adjusted by the first of `kicks` that yields
// a legal placement.
func (w *Well) WallKick(s Sprite, kicks []Point, pt Point) (Point, bool) {
	for _, k := range kicks {
		next := pt.Add(k)
		if !w.Test(s, next) {
			return next, true
		}
	}
	return pt, false
}

// TraceDown drops the sprite from `pt` until it comes to rest.
func (w *Well) TraceDown(s Sprite, pt Point) Point {
	for {
		next := Point{pt.X, pt.Y - 1}
		if w.Test(s, next) {
			return pt
		}
		pt = next
	}
}

type floodSeed struct {
	y    int
	cell Line
}

// FloodFill fills every empty cell reachable from the top-center cell
// of the well, moving only through empty cells.
func (w *Well) FloodFill() {
	var runs [MaxWidth]Line
	stack := make([]floodSeed, 0, 2*MaxHeight)
	stack = append(stack, floodSeed{w.height - 1, 1 << uint(w.width/2)})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		span := bitboard.Flood(&w.c, ^w.rows[s.y]&w.c.Mask, s.cell)
		if span == 0 {
			continue
		}
		w.rows[s.y] |= span

		if s.y+1 < w.height && w.rows[s.y+1]&span != span {
			for _, r := range bitboard.Runs(&w.c, span&^w.rows[s.y+1], runs[:0]) {
				stack = append(stack, floodSeed{s.y + 1, r & -r})
			}
		}
		if s.y > 0 {
			for _, r := range bitboard.Runs(&w.c, span&^w.rows[s.y-1], runs[:0]) {
				stack = append(stack, floodSeed{s.y - 1, r & -r})
			}
		}
	}
}

// CountHoles returns the number of empty cells not reachable from the
// top of the well.
func (w *Well) CountHoles() int {
	flooded := *w
	flooded.FloodFill()
	return w.width*w.height - flooded.CountBlocks()
}
