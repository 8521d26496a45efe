package rpc

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nelhage/tetrician/notation"
	"github.com/nelhage/tetrician/tetris"
)

// Request asks for the best placement of Piece in Well. Well is in
// the text well format. Weights override the server's defaults by
// feature name. In "worst" mode Piece is ignored and the server picks
// the piece whose best placement scores lowest.
type Request struct {
	Well    string
	Piece   tetris.Piece
	Mode    string
	Weights map[string]float64
}

type Response struct {
	Found   bool
	Score   float64
	Piece   tetris.Piece
	Rot     tetris.Rot
	X, Y    int
	Actions []tetris.Action
	Visited int
}

func (r *Request) Struct() (*structpb.Struct, error) {
	m := map[string]any{
		"well":  r.Well,
		"piece": r.Piece.String(),
		"mode":  r.Mode,
	}
	if len(r.Weights) > 0 {
		ws := make(map[string]any, len(r.Weights))
		for k, v := range r.Weights {
			ws[k] = v
		}
		m["weights"] = ws
	}
	return structpb.NewStruct(m)
}

func (r *Response) Struct() (*structpb.Struct, error) {
	m := map[string]any{"found": r.Found}
	if r.Found {
		m["score"] = r.Score
		m["piece"] = r.Piece.String()
		m["rot"] = int(r.Rot)
		m["x"] = r.X
		m["y"] = r.Y
		m["actions"] = notation.FormatActions(r.Actions)
		m["visited"] = r.Visited
	}
	return structpb.NewStruct(m)
}

func decodeResponse(s *structpb.Struct) (*Response, error) {
	f := s.GetFields()
	r := &Response{Found: f["found"].GetBoolValue()}
	if !r.Found {
		return r, nil
	}
	p, err := notation.ParsePiece(f["piece"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("response piece: %w", err)
	}
	as, err := notation.ParseActions(f["actions"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("response actions: %w", err)
	}
	r.Score = f["score"].GetNumberValue()
	r.Piece = p
	r.Rot = tetris.RotFromUint8(uint8(f["rot"].GetNumberValue()))
	r.X = int(f["x"].GetNumberValue())
	r.Y = int(f["y"].GetNumberValue())
	r.Actions = as
	r.Visited = int(f["visited"].GetNumberValue())
	return r, nil
}
