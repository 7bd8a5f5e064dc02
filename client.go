package abimarshal

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
)

// Transport performs remote contract calls on encoded token lists.
// Implementations own the binary ABI encoding and any network concerns.
type Transport interface {
	// Query performs a read-only call and returns the decoded results.
	Query(ctx context.Context, method string, from common.Address, args []Token) ([]Token, error)

	// Send submits a state-changing call and returns its transaction hash.
	Send(ctx context.Context, method string, from common.Address, args []Token) (common.Hash, error)
}

// Client marshals host values for a single contract reachable through a
// Transport. A Client holds only immutable configuration and is safe for
// concurrent use.
type Client struct {
	transport  Transport
	encodeOpts []EncodeOption
	logger     log.Logger
}

// NewClient creates a Client bound to the given transport.
func NewClient(transport Transport, opts ...ClientOption) (*Client, error) {
	if transport == nil {
		return nil, ErrNoTransport
	}
	c := &Client{
		transport: transport,
		logger:    log.Root(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Query encodes params, performs a read-only call and decodes the results.
// An encode failure aborts before the transport is used; a decode failure
// returns no values.
func (c *Client) Query(ctx context.Context, method string, from common.Address, params []Value) ([]Value, error) {
	args, err := Encode(params, c.encodeOpts...)
	if err != nil {
		return nil, &CallError{Method: method, Stage: StageEncode, Err: err}
	}
	c.logger.Debug("Querying contract", "method", method, "from", from, "args", len(args))

	results, err := c.transport.Query(ctx, method, from, args)
	if err != nil {
		return nil, &CallError{Method: method, Stage: StageTransport, Err: err}
	}

	values, err := Decode(results)
	if err != nil {
		return nil, &CallError{Method: method, Stage: StageDecode, Err: err}
	}
	c.logger.Trace("Decoded query results", "method", method, "results", len(values))
	return values, nil
}

// QueryExact is like Query but fails with a StructuralMismatchError when the
// call does not return exactly want results.
func (c *Client) QueryExact(ctx context.Context, method string, from common.Address, params []Value, want int) ([]Value, error) {
	values, err := c.Query(ctx, method, from, params)
	if err != nil {
		return nil, err
	}
	if len(values) != want {
		return nil, &StructuralMismatchError{Method: method, Expected: want, Got: len(values)}
	}
	return values, nil
}

// Call encodes params and submits a state-changing call.
func (c *Client) Call(ctx context.Context, method string, from common.Address, params []Value) (common.Hash, error) {
	args, err := Encode(params, c.encodeOpts...)
	if err != nil {
		return common.Hash{}, &CallError{Method: method, Stage: StageEncode, Err: err}
	}
	c.logger.Debug("Sending contract call", "method", method, "from", from, "args", len(args))

	hash, err := c.transport.Send(ctx, method, from, args)
	if err != nil {
		c.logger.Warn("Contract call failed", "method", method, "err", err)
		return common.Hash{}, &CallError{Method: method, Stage: StageTransport, Err: err}
	}
	c.logger.Debug("Contract call submitted", "method", method, "tx", hash)
	return hash, nil
}
