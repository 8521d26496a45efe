package notation

import (
	"testing"

	"github.com/matryer/is"

	"github.com/nelhage/tetrician/tetris"
)

func TestParsePiece(t *testing.T) {
	is := is.New(t)
	for _, p := range tetris.AllPieces {
		got, err := ParsePiece(p.String())
		is.NoErr(err)
		is.Equal(got, p)
	}
	got, err := ParsePiece("t")
	is.NoErr(err)
	is.Equal(got, tetris.T)

	for _, bad := range []string{"", "X", "TT", "0"} {
		_, err := ParsePiece(bad)
		is.True(err != nil)
	}
}

func TestActions(t *testing.T) {
	is := is.New(t)
	as, err := ParseActions("CL LD H")
	is.NoErr(err)
	is.Equal(as, []tetris.Action{
		tetris.RotateCW, tetris.MoveLeft, tetris.MoveLeft, tetris.SoftDrop, tetris.HardDrop,
	})
	is.Equal(FormatActions(as), "CLLDH")

	_, err = ParseActions("LQ")
	is.True(err != nil)
	is.Equal(FormatActions(nil), "")
}
