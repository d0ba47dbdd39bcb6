package pad_test

import (
	"io"
	"testing"

	"github.com/duopad/duopad/pad"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotWireRoundTrip(t *testing.T) {
	var s pad.Snapshot
	s.Buttons[pad.ButtonCross] = true
	s.Buttons[pad.ButtonDpadRight] = true
	s.Axes[pad.AxisLX] = 0.5
	s.Axes[pad.AxisRY] = -1.0
	s.Axes[pad.AxisL2] = 1.0

	data, err := s.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, data, pad.WireSize)

	var got pad.Snapshot
	assert.NoError(t, got.UnmarshalBinary(data))

	assert.Equal(t, s.Buttons, got.Buttons)
	for a := pad.Axis(0); a < pad.AxisCount; a++ {
		assert.InDelta(t, s.Axes[a], got.Axes[a], 1.0/pad.AxisWireScale, "axis %s", a)
	}
}

func TestSnapshotWireClampsOutOfRange(t *testing.T) {
	var s pad.Snapshot
	s.Axes[pad.AxisLX] = 2.0
	s.Axes[pad.AxisLY] = -2.0

	data, err := s.MarshalBinary()
	assert.NoError(t, err)

	var got pad.Snapshot
	assert.NoError(t, got.UnmarshalBinary(data))
	assert.InDelta(t, 1.0, got.Axes[pad.AxisLX], 1.0/pad.AxisWireScale)
	assert.InDelta(t, -1.0, got.Axes[pad.AxisLY], 1.0/pad.AxisWireScale)
}

func TestSnapshotWireShortFrame(t *testing.T) {
	var got pad.Snapshot
	assert.ErrorIs(t, got.UnmarshalBinary(make([]byte, pad.WireSize-1)), io.ErrUnexpectedEOF)
}
