package apiclient

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/duopad/duopad/pad"
)

// FeedStream represents a long-lived connection pushing one player's input
// snapshots to the server.
type FeedStream struct {
	conn   net.Conn
	Player int

	mu     sync.Mutex
	closed bool
}

// OpenFeed connects to the feed channel of the given player (1 or 2).
// The connection stays open until Close; each Send replaces the player's
// held snapshot on the server.
func (c *Client) OpenFeed(ctx context.Context, player int) (*FeedStream, error) {
	if c.transport.mock != nil {
		return nil, fmt.Errorf("feed streams not supported with mock transport")
	}

	conn, err := c.transport.dial(ctx)
	if err != nil {
		return nil, err
	}
	// The transport arms a write deadline for one-shot requests; a feed stays
	// open indefinitely.
	_ = conn.SetDeadline(time.Time{})

	streamPath := fmt.Sprintf("feed/%d\x00", player)
	if _, err := conn.Write([]byte(streamPath)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write stream path: %w", err)
	}

	return &FeedStream{conn: conn, Player: player}, nil
}

// Send marshals and pushes one snapshot frame.
func (s *FeedStream) Send(snap pad.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("stream closed")
	}
	data, err := snap.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := s.conn.Write(data); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close terminates the feed. The server unassigns the player's source.
func (s *FeedStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}
