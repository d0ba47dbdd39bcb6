// Package output owns the virtual device session and the fixed-rate
// encode-and-send cycle that pushes the merged pad state to the
// virtual-device bridge.
package output

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/duopad/duopad/bridge"
	"github.com/duopad/duopad/hiddesc"
	"github.com/duopad/duopad/pad"
)

// ErrNotInitialized is returned by Start when Initialize has not succeeded.
var ErrNotInitialized = errors.New("output: driver not initialized")

// Driver holds the current merged snapshot and sends it to the bridge on a
// fixed period. The snapshot is replaced via UpdateState concurrently with
// the send cycle; the cycle always reads a complete snapshot, never a torn
// one.
type Driver struct {
	bridge bridge.Bridge
	config Config
	logger *slog.Logger

	stateMu sync.Mutex
	snap    pad.Snapshot

	mu          sync.Mutex
	initialized bool
	running     bool
	stopOnce    *sync.Once
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// New creates a Driver on top of the given bridge. A nil logger falls back
// to slog.Default.
func New(b bridge.Bridge, config Config, logger *slog.Logger) *Driver {
	config.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{bridge: b, config: config, logger: logger}
}

// Initialize attempts to acquire the virtual-device driver. Failure is
// recorded and returned, never fatal; Start refuses until a later Initialize
// succeeds.
func (d *Driver) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.bridge == nil {
		d.initialized = false
		return fmt.Errorf("%w: no bridge configured", ErrNotInitialized)
	}
	if err := d.bridge.Init(); err != nil {
		d.initialized = false
		d.logger.Error("virtual device driver unavailable", "error", err)
		return fmt.Errorf("initialize virtual device driver: %w", err)
	}
	d.initialized = true
	return nil
}

// Initialized reports whether the last Initialize succeeded.
func (d *Driver) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

// Running reports whether the send cycle is active.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Start registers the virtual pad and begins the send cycle. Calling Start
// while already running is a no-op returning nil; a failed registration
// leaves no partial state behind.
func (d *Driver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return ErrNotInitialized
	}
	if d.running {
		return nil
	}

	desc := hiddesc.MustGamepad()
	if err := d.bridge.Create(d.config.DeviceName, d.config.Serial, desc, 1); err != nil {
		return fmt.Errorf("register virtual device: %w", err)
	}

	d.stopCh = make(chan struct{})
	d.doneCh = make(chan struct{})
	d.stopOnce = &sync.Once{}
	d.running = true
	go d.loop(d.stopCh, d.doneCh)

	d.logger.Info("virtual pad output started",
		"device", d.config.DeviceName,
		"tick", d.config.Tick)
	return nil
}

// Stop signals the send cycle, waits for it up to the join timeout and
// returns. Stopping a driver that is not running is a no-op. Safe to call
// from any goroutine, including concurrently with Start.
func (d *Driver) Stop() {
	d.mu.Lock()
	once, stopCh, doneCh := d.stopOnce, d.stopCh, d.doneCh
	d.mu.Unlock()
	if once == nil {
		return
	}

	once.Do(func() { close(stopCh) })
	select {
	case <-doneCh:
	case <-time.After(d.config.JoinTimeout):
		d.logger.Warn("output cycle did not stop within timeout", "timeout", d.config.JoinTimeout)
	}
}

// UpdateState replaces the snapshot used by the next send tick. It never
// blocks on device I/O and is safe to call concurrently with the cycle.
func (d *Driver) UpdateState(s pad.Snapshot) {
	d.stateMu.Lock()
	d.snap = s
	d.stateMu.Unlock()
}

// Snapshot returns the snapshot currently held for output.
func (d *Driver) Snapshot() pad.Snapshot {
	d.stateMu.Lock()
	defer d.stateMu.Unlock()
	return d.snap
}

func (d *Driver) loop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(d.config.Tick)
	defer ticker.Stop()

	failures := 0
	for {
		select {
		case <-stopCh:
			d.release()
			return
		case <-ticker.C:
			d.stateMu.Lock()
			snap := d.snap
			d.stateMu.Unlock()

			err := d.bridge.Send(d.config.DeviceName, pad.EncodeReport(snap))
			if err == nil {
				failures = 0
				continue
			}

			failures++
			d.logger.Warn("send to virtual device failed",
				"device", d.config.DeviceName,
				"consecutiveFailures", failures,
				"error", err)
			if errors.Is(err, bridge.ErrInvalidated) || failures >= d.config.MaxSendFailures {
				d.logger.Error("output cycle terminated", "device", d.config.DeviceName, "error", err)
				d.release()
				return
			}
		}
	}
}

// release destroys the device registration and marks the driver not-running.
// Called exactly once per cycle, from the cycle goroutine.
func (d *Driver) release() {
	if err := d.bridge.Destroy(d.config.DeviceName); err != nil {
		d.logger.Warn("destroy virtual device failed", "device", d.config.DeviceName, "error", err)
	}
	d.mu.Lock()
	d.running = false
	d.mu.Unlock()
	d.logger.Info("virtual pad output stopped", "device", d.config.DeviceName)
}
