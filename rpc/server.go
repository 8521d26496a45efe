package rpc

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/nelhage/tetrician/ai"
	"github.com/nelhage/tetrician/notation"
	"github.com/nelhage/tetrician/tetris"
)

// Server answers analysis requests. Every request builds its own
// state, so a Server is safe for concurrent use.
type Server struct {
	weights ai.Weights
	debug   int
	logger  zerolog.Logger
}

var _ AnalysisServer = (*Server)(nil)

func NewServer(ws ai.Weights, debug int) *Server {
	return &Server{
		weights: ws,
		debug:   debug,
		logger:  log.With().Str("component", "rpc").Logger(),
	}
}

func (s *Server) parse(req *structpb.Struct) (*tetris.Well, tetris.Piece, string, ai.Weights, error) {
	f := req.GetFields()
	ws := s.weights
	w, err := notation.ParseWell(f["well"].GetStringValue())
	if err != nil {
		return nil, 0, "", ws, status.Errorf(codes.InvalidArgument, "well: %v", err)
	}
	mode := f["mode"].GetStringValue()
	if mode == "" {
		mode = "reachable"
	}
	var piece tetris.Piece
	switch mode {
	case "best", "reachable":
		piece, err = notation.ParsePiece(f["piece"].GetStringValue())
		if err != nil {
			return nil, 0, "", ws, status.Errorf(codes.InvalidArgument, "piece: %v", err)
		}
	case "worst":
	default:
		return nil, 0, "", ws, status.Errorf(codes.InvalidArgument, "unknown mode: %q", mode)
	}
	if v := f["weights"].GetStructValue(); v != nil {
		m := make(map[string]float64, len(v.GetFields()))
		for k, x := range v.GetFields() {
			n, ok := x.GetKind().(*structpb.Value_NumberValue)
			if !ok {
				return nil, 0, "", ws, status.Errorf(codes.InvalidArgument, "weights: %q is not a number", k)
			}
			m[k] = n.NumberValue
		}
		if err := ws.Override(m); err != nil {
			return nil, 0, "", ws, status.Errorf(codes.InvalidArgument, "weights: %v", err)
		}
	}
	return w, piece, mode, ws, nil
}

func (s *Server) Analyze(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	w, piece, mode, ws, err := s.parse(req)
	if err != nil {
		return nil, err
	}
	cfg := ai.BotConfig{Weights: ws, Mode: ai.Grid, Debug: s.debug}
	switch mode {
	case "reachable":
		cfg.Mode = ai.Reachable
	case "worst":
		piece = ai.SearchWorstPiece(&ws, w)
	}

	resp := Response{Piece: piece}
	st := tetris.StateWithWell(w)
	if !st.Spawn(piece) {
		res := ai.NewBot(cfg).Plan(st)
		if res.Player != nil {
			resp.Found = true
			resp.Score = res.Score
			resp.Rot = res.Player.Rot
			resp.X, resp.Y = res.Player.Pt.X, res.Player.Pt.Y
			resp.Actions = res.Actions
			resp.Visited = res.Visited
		}
	}
	s.logger.Debug().
		Str("mode", mode).
		Str("piece", piece.String()).
		Bool("found", resp.Found).
		Float64("score", resp.Score).
		Msg("analyze")
	return resp.Struct()
}
