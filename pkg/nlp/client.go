// Package nlp provides the gRPC client for the Python NLP service, which
// owns the trained named-entity recognizer and text classifier artifacts.
package nlp

import (
	"context"
	"errors"
	"fmt"
	"time"

	nlpv1 "github.com/codeready-toolchain/mailguard/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ErrUnavailable indicates the NLP service could not be reached or failed the
// call. Callers must surface it as a dependency failure, never silently
// degrade to regex-only masking.
var ErrUnavailable = errors.New("nlp service unavailable")

// Entity is a named-entity span reported by the recognizer. Offsets are byte
// offsets into the request text, half-open: text[Start:End] is the literal.
type Entity struct {
	Start int
	End   int
	Label string
}

// Client wraps the gRPC connection to the NLP service.
type Client struct {
	conn    *grpc.ClientConn
	client  nlpv1.NLPServiceClient
	timeout time.Duration
}

// NewClient creates a new NLP client. timeout bounds each call; zero
// disables the per-call deadline.
// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call.
func NewClient(addr string, timeout time.Duration) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NLP service at %s: %w", addr, err)
	}
	return &Client{
		conn:    conn,
		client:  nlpv1.NewNLPServiceClient(conn),
		timeout: timeout,
	}, nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// Recognize returns the named-entity spans the model found in text.
// Labels are the model's own label set; filtering is the caller's concern.
func (c *Client) Recognize(ctx context.Context, text string) ([]Entity, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.client.Recognize(ctx, &nlpv1.RecognizeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("%w: recognize: %v", ErrUnavailable, err)
	}

	entities := make([]Entity, 0, len(resp.Entities))
	for _, e := range resp.Entities {
		entities = append(entities, Entity{
			Start: int(e.Start),
			End:   int(e.End),
			Label: e.Label,
		})
	}
	return entities, nil
}

// Classify returns the predicted category label for text.
func (c *Client) Classify(ctx context.Context, text string) (string, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.client.Classify(ctx, &nlpv1.ClassifyRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("%w: classify: %v", ErrUnavailable, err)
	}
	return resp.Label, nil
}

// Close releases the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
