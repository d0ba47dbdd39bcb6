package pad_test

import (
	"encoding/binary"
	"testing"

	"github.com/duopad/duopad/pad"
	"github.com/stretchr/testify/assert"
)

func TestScaleAxisBoundaries(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want uint8
	}{
		{name: "full negative", v: -1.0, want: 0},
		{name: "neutral", v: 0.0, want: 128},
		{name: "full positive", v: 1.0, want: 255},
		{name: "below range clamps", v: -1.5, want: 0},
		{name: "above range clamps", v: 1.5, want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pad.ScaleAxis(tt.v))
		})
	}
}

func TestScaleAxisMonotonic(t *testing.T) {
	prev := pad.ScaleAxis(-1.0)
	for i := 1; i <= 2000; i++ {
		v := -1.0 + float64(i)/1000.0
		cur := pad.ScaleAxis(v)
		assert.GreaterOrEqual(t, cur, prev, "at %v", v)
		prev = cur
	}
}

func TestEncodeReport(t *testing.T) {
	tests := []struct {
		name string
		s    pad.Snapshot
		want []byte
	}{
		{
			name: "neutral defaults",
			want: []byte{0x01, 0x00, 0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80},
		},
		{
			name: "cross and dpad right",
			s: func() pad.Snapshot {
				var s pad.Snapshot
				s.Buttons[pad.ButtonCross] = true
				s.Buttons[pad.ButtonDpadRight] = true
				return s
			}(),
			want: []byte{0x01, 0x01, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80},
		},
		{
			name: "digital triggers are unmapped",
			s: func() pad.Snapshot {
				var s pad.Snapshot
				s.Buttons[pad.ButtonL2] = true
				s.Buttons[pad.ButtonR2] = true
				return s
			}(),
			want: []byte{0x01, 0x00, 0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80},
		},
		{
			name: "stick and trigger axes",
			s: func() pad.Snapshot {
				var s pad.Snapshot
				s.Axes[pad.AxisLX] = -1.0
				s.Axes[pad.AxisLY] = 1.0
				s.Axes[pad.AxisR2] = 1.0
				return s
			}(),
			want: []byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0x80, 0x80, 0x80, 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pad.EncodeReport(tt.s))
		})
	}
}

func TestEncodeReportButtonWord(t *testing.T) {
	bits := []struct {
		button pad.Button
		bit    uint16
	}{
		{pad.ButtonCross, pad.BitCross},
		{pad.ButtonCircle, pad.BitCircle},
		{pad.ButtonSquare, pad.BitSquare},
		{pad.ButtonTriangle, pad.BitTriangle},
		{pad.ButtonL1, pad.BitL1},
		{pad.ButtonR1, pad.BitR1},
		{pad.ButtonShare, pad.BitShare},
		{pad.ButtonOptions, pad.BitOptions},
		{pad.ButtonL3, pad.BitL3},
		{pad.ButtonR3, pad.BitR3},
		{pad.ButtonPS, pad.BitPS},
		{pad.ButtonTouchpad, pad.BitTouchpad},
		{pad.ButtonDpadUp, pad.BitDpadUp},
		{pad.ButtonDpadDown, pad.BitDpadDown},
		{pad.ButtonDpadLeft, pad.BitDpadLeft},
		{pad.ButtonDpadRight, pad.BitDpadRight},
	}

	for _, tt := range bits {
		t.Run(tt.button.String(), func(t *testing.T) {
			var s pad.Snapshot
			s.Buttons[tt.button] = true
			report := pad.EncodeReport(s)
			assert.Equal(t, tt.bit, binary.LittleEndian.Uint16(report[1:3]))
		})
	}
}

func TestMergedNeutralEncodesToRestReport(t *testing.T) {
	m := pad.Merge(nil, nil)
	report := pad.EncodeReport(m)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}, report)
}
