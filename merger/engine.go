// Package merger runs the merge cycle: it polls the two player sources,
// combines their snapshots into the state of the single logical pad and hands
// the result to the output driver.
package merger

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/duopad/duopad/output"
	"github.com/duopad/duopad/pad"
)

// Players is the fixed number of physical controllers that can feed the
// merged pad.
const Players = 2

// Config represents the merge cycle configuration.
type Config struct {
	Tick        time.Duration `help:"Merge cycle period" default:"10ms" env:"DUOPAD_MERGE_TICK"`
	JoinTimeout time.Duration `help:"How long Stop waits for the merge cycle to exit" default:"1s" env:"DUOPAD_MERGE_JOIN_TIMEOUT"`
}

func (c *Config) applyDefaults() {
	if c.Tick <= 0 {
		c.Tick = 10 * time.Millisecond
	}
	if c.JoinTimeout <= 0 {
		c.JoinTimeout = time.Second
	}
}

// Engine owns the merge cycle and the last observed snapshots. The player
// and merged snapshots are readable at any cadence by observers (control
// API, visualization front ends) while the cycle runs.
type Engine struct {
	driver *output.Driver
	config Config
	logger *slog.Logger

	stateMu sync.RWMutex
	sources [Players]Source
	players [Players]pad.Snapshot
	merged  pad.Snapshot

	mu       sync.Mutex
	running  bool
	stopOnce *sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New creates an Engine driving the given output driver. A nil logger falls
// back to slog.Default.
func New(driver *output.Driver, config Config, logger *slog.Logger) *Engine {
	config.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{driver: driver, config: config, logger: logger}
}

// Driver returns the output driver owned by the engine.
func (e *Engine) Driver() *output.Driver { return e.driver }

// SetSource assigns the input source of the given player (1 or 2). A nil
// source unassigns the player.
func (e *Engine) SetSource(player int, src Source) error {
	if player < 1 || player > Players {
		return fmt.Errorf("invalid player %d", player)
	}
	e.stateMu.Lock()
	e.sources[player-1] = src
	e.stateMu.Unlock()
	if src == nil {
		e.logger.Info("player source unassigned", "player", player)
	} else {
		e.logger.Info("player source assigned", "player", player)
	}
	return nil
}

// SourceAssigned reports whether the given player has a source.
func (e *Engine) SourceAssigned(player int) bool {
	if player < 1 || player > Players {
		return false
	}
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.sources[player-1] != nil
}

// PlayerState returns the last snapshot polled for the given player. Unknown
// players read as neutral.
func (e *Engine) PlayerState(player int) pad.Snapshot {
	if player < 1 || player > Players {
		return pad.Snapshot{}
	}
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.players[player-1]
}

// MergedState returns the last merged snapshot.
func (e *Engine) MergedState() pad.Snapshot {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.merged
}

// Running reports whether the merge cycle is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Start begins the merge cycle and the output driver's send cycle. Idempotent
// while running; fails when the output driver cannot start.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return nil
	}
	if err := e.driver.Start(); err != nil {
		return err
	}

	e.stopCh = make(chan struct{})
	e.doneCh = make(chan struct{})
	e.stopOnce = &sync.Once{}
	e.running = true
	go e.loop(e.stopCh, e.doneCh)

	e.logger.Info("merge cycle started", "tick", e.config.Tick)
	return nil
}

// Stop halts the merge cycle, then the output driver. Idempotent; a no-op
// before the first Start. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.mu.Lock()
	once, stopCh, doneCh := e.stopOnce, e.stopCh, e.doneCh
	e.mu.Unlock()
	if once != nil {
		once.Do(func() { close(stopCh) })
		select {
		case <-doneCh:
		case <-time.After(e.config.JoinTimeout):
			e.logger.Warn("merge cycle did not stop within timeout", "timeout", e.config.JoinTimeout)
		}
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}
	e.driver.Stop()
}

func (e *Engine) loop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(e.config.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

func (e *Engine) tick() {
	e.stateMu.RLock()
	sources := e.sources
	e.stateMu.RUnlock()

	var snaps [Players]pad.Snapshot
	var present [Players]bool
	for i, src := range sources {
		if src == nil {
			continue
		}
		s, err := src.Poll()
		if err != nil {
			// That player degrades to neutral for this tick only.
			e.logger.Warn("could not read player input", "player", i+1, "error", err)
			continue
		}
		snaps[i] = s
		present[i] = true
	}

	var p1, p2 *pad.Snapshot
	if present[0] {
		p1 = &snaps[0]
	}
	if present[1] {
		p2 = &snaps[1]
	}
	merged := pad.Merge(p1, p2)

	e.stateMu.Lock()
	e.players = snaps
	e.merged = merged
	e.stateMu.Unlock()

	e.driver.UpdateState(merged)
}
