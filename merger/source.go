package merger

import (
	"sync"

	"github.com/duopad/duopad/pad"
)

// Source supplies the most recent input snapshot of one physical controller.
// Poll is called once per merge tick; it must not block. Returning an error
// degrades that player to the neutral snapshot for the tick.
type Source interface {
	Poll() (pad.Snapshot, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() (pad.Snapshot, error)

func (f SourceFunc) Poll() (pad.Snapshot, error) { return f() }

// StreamSource holds the latest snapshot pushed by an external poller, for
// example a feed-stream connection. Poll returns the held snapshot; stale or
// repeated snapshots are fine, the merge cycle tolerates them.
type StreamSource struct {
	mu   sync.Mutex
	snap pad.Snapshot
}

func NewStreamSource() *StreamSource { return &StreamSource{} }

// Update replaces the held snapshot.
func (s *StreamSource) Update(snap pad.Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

func (s *StreamSource) Poll() (pad.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, nil
}
