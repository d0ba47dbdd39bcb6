// Package apiclient provides a Go client for the DuoPad control API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/duopad/duopad/apitypes"
)

// Client provides a high-level interface to the DuoPad API, handling request
// formatting, response parsing, and error handling.
type Client struct{ transport *Transport }

// New constructs a high-level API client using the internal low-level Transport.
// The addr parameter specifies the TCP address (host:port) of the DuoPad API server.
func New(addr string) *Client { return &Client{transport: NewTransport(addr)} }

// NewWithPassword constructs a client that authenticates with the given password.
func NewWithPassword(addr, password string) *Client {
	return &Client{transport: NewTransportWithPassword(addr, password)}
}

// NewWithConfig constructs a client with custom transport timeouts.
func NewWithConfig(addr string, cfg *Config) *Client {
	return &Client{transport: NewTransportWithConfig(addr, cfg)}
}

// WithTransport constructs a Client using a custom Transport implementation.
// This is primarily useful for testing or when advanced transport configuration is needed.
func WithTransport(t *Transport) *Client { return &Client{transport: t} }

// Ping returns the version and identity of the DuoPad server.
func (c *Client) Ping() (*apitypes.PingResponse, error) {
	return c.PingCtx(context.Background())
}

// PingCtx is the context-aware version of Ping.
func (c *Client) PingCtx(ctx context.Context) (*apitypes.PingResponse, error) {
	const path = "ping"
	raw, err := c.transport.DoCtx(ctx, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.PingResponse](raw)
}

// Status reports the lifecycle state of the merger and which players have
// input feeds attached.
func (c *Client) Status() (*apitypes.StatusResponse, error) {
	return c.StatusCtx(context.Background())
}

func (c *Client) StatusCtx(ctx context.Context) (*apitypes.StatusResponse, error) {
	const path = "status"
	raw, err := c.transport.DoCtx(ctx, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.StatusResponse](raw)
}

// StartOutput starts the merge cycle and registers the virtual pad.
// Starting an already running output succeeds without side effects.
func (c *Client) StartOutput() (*apitypes.OutputResponse, error) {
	return c.StartOutputCtx(context.Background())
}

func (c *Client) StartOutputCtx(ctx context.Context) (*apitypes.OutputResponse, error) {
	const path = "output/start"
	raw, err := c.transport.DoCtx(ctx, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.OutputResponse](raw)
}

// StopOutput stops the merge cycle and releases the virtual pad.
// Stopping an already stopped output succeeds without side effects.
func (c *Client) StopOutput() (*apitypes.OutputResponse, error) {
	return c.StopOutputCtx(context.Background())
}

func (c *Client) StopOutputCtx(ctx context.Context) (*apitypes.OutputResponse, error) {
	const path = "output/stop"
	raw, err := c.transport.DoCtx(ctx, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.OutputResponse](raw)
}

// State retrieves a read-only snapshot view. Valid values for which are
// "player1", "player2" and "merged".
func (c *Client) State(which string) (*apitypes.StateResponse, error) {
	return c.StateCtx(context.Background(), which)
}

func (c *Client) StateCtx(ctx context.Context, which string) (*apitypes.StateResponse, error) {
	pathParams := map[string]string{"which": which}
	const path = "state/{which}"
	raw, err := c.transport.DoCtx(ctx, path, nil, pathParams)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.StateResponse](raw)
}

func parse[T any](data string) (*T, error) {
	if data == "" {
		return nil, errors.New("empty response")
	}
	var problem apitypes.ApiError
	if err := json.Unmarshal([]byte(data), &problem); err == nil && (problem.Status != 0 || problem.Title != "") {
		return nil, &problem
	}
	var out T
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
