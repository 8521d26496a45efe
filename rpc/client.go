package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Dial connects to an analysis server without transport security.
func Dial(target string, opts ...grpc.DialOption) (*Client, *grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to %s: %w", target, err)
	}
	return NewClient(conn), conn, nil
}

// AnalyzeStruct invokes the raw RPC.
func (c *Client) AnalyzeStruct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, analyzeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Analyze(ctx context.Context, req *Request, opts ...grpc.CallOption) (*Response, error) {
	in, err := req.Struct()
	if err != nil {
		return nil, err
	}
	out, err := c.AnalyzeStruct(ctx, in, opts...)
	if err != nil {
		return nil, err
	}
	return decodeResponse(out)
}
