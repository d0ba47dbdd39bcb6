package bridge

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/duopad/duopad/internal/log"
	"github.com/duopad/duopad/pad"
)

// LogBridge is a virtual-device backend that only logs what would be sent.
// It is useful on hosts without a virtual HID driver and mirrors the
// behavior of the original stub output backend: neutral reports are
// suppressed, active inputs are decoded back into readable form.
type LogBridge struct {
	logger  *slog.Logger
	raw     log.RawLogger
	created map[string]bool
}

// NewLog creates a LogBridge. A nil logger falls back to slog.Default.
func NewLog(logger *slog.Logger) *LogBridge {
	return NewLogWithRaw(logger, nil)
}

// NewLogWithRaw creates a LogBridge that additionally hex-dumps every
// device-bound report, including suppressed neutral ones.
func NewLogWithRaw(logger *slog.Logger, raw log.RawLogger) *LogBridge {
	if logger == nil {
		logger = slog.Default()
	}
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &LogBridge{logger: logger, raw: raw, created: make(map[string]bool)}
}

func (l *LogBridge) Init() error { return nil }

func (l *LogBridge) Create(name, serial string, descriptor []byte, reportCount int) error {
	if l.created[name] {
		return fmt.Errorf("device %q already created", name)
	}
	l.created[name] = true
	l.logger.Info("virtual device created",
		"name", name,
		"serial", serial,
		"descriptorLen", len(descriptor),
		"reportCount", reportCount)
	return nil
}

func (l *LogBridge) Send(name string, report []byte) error {
	if !l.created[name] {
		return fmt.Errorf("device %q not created", name)
	}
	if len(report) != pad.ReportSize {
		return fmt.Errorf("unexpected report size %d", len(report))
	}
	l.raw.Log(false, report)

	buttons := uint16(report[1]) | uint16(report[2])<<8
	active := buttons != 0
	axes := make(map[string]float64)
	for i, a := range []pad.Axis{pad.AxisLX, pad.AxisLY, pad.AxisRX, pad.AxisRY, pad.AxisL2, pad.AxisR2} {
		v := float64(report[3+i])/127.5 - 1.0
		idle := math.Abs(v) <= pad.Deadzone
		if a == pad.AxisL2 || a == pad.AxisR2 {
			// Released triggers arrive as -1.0 from feeds that follow the
			// controller convention and as 0.0 from the zero snapshot.
			// Either value is neutral.
			idle = idle || math.Abs(v+1.0) <= pad.Deadzone
		}
		if !idle {
			axes[a.String()] = math.Round(v*100) / 100
			active = true
		}
	}

	// Idle state would flood the log at 100 Hz.
	if !active {
		return nil
	}
	l.logger.Info("sending to virtual device",
		"name", name,
		"buttons", fmt.Sprintf("%#04x", buttons),
		"axes", axes)
	return nil
}

func (l *LogBridge) Destroy(name string) error {
	if !l.created[name] {
		return fmt.Errorf("device %q not created", name)
	}
	delete(l.created, name)
	l.logger.Info("virtual device destroyed", "name", name)
	return nil
}
