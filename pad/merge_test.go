package pad_test

import (
	"testing"

	"github.com/duopad/duopad/pad"
	"github.com/stretchr/testify/assert"
)

func TestMergeButtons(t *testing.T) {
	tests := []struct {
		name    string
		s1, s2  pad.Snapshot
		pressed []pad.Button
	}{
		{
			name: "player1 only",
			s1: func() pad.Snapshot {
				var s pad.Snapshot
				s.Buttons[pad.ButtonCross] = true
				return s
			}(),
			pressed: []pad.Button{pad.ButtonCross},
		},
		{
			name: "union of both players",
			s1: func() pad.Snapshot {
				var s pad.Snapshot
				s.Buttons[pad.ButtonCross] = true
				return s
			}(),
			s2: func() pad.Snapshot {
				var s pad.Snapshot
				s.Buttons[pad.ButtonCircle] = true
				return s
			}(),
			pressed: []pad.Button{pad.ButtonCross, pad.ButtonCircle},
		},
		{
			name: "overlap is not special",
			s1: func() pad.Snapshot {
				var s pad.Snapshot
				s.Buttons[pad.ButtonTriangle] = true
				return s
			}(),
			s2: func() pad.Snapshot {
				var s pad.Snapshot
				s.Buttons[pad.ButtonTriangle] = true
				s.Buttons[pad.ButtonDpadLeft] = true
				return s
			}(),
			pressed: []pad.Button{pad.ButtonTriangle, pad.ButtonDpadLeft},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pad.Merge(&tt.s1, &tt.s2)

			want := map[pad.Button]bool{}
			for _, b := range tt.pressed {
				want[b] = true
			}
			for b := pad.Button(0); b < pad.ButtonCount; b++ {
				assert.Equal(t, want[b], m.Buttons[b], "button %s", b)
			}
		})
	}
}

func TestMergeAxes(t *testing.T) {
	tests := []struct {
		name   string
		a1, a2 float64
		want   float64
	}{
		{name: "player1 outside deadzone wins outright", a1: 0.5, a2: 0.9, want: 0.5},
		{name: "player1 inside deadzone yields to player2", a1: 0.05, a2: -0.8, want: -0.8},
		{name: "player2 raw value kept below deadzone", a1: 0.0, a2: 0.03, want: 0.03},
		{name: "both neutral", a1: 0.0, a2: 0.0, want: 0.0},
		{name: "negative player1 outside deadzone", a1: -0.2, a2: 1.0, want: -0.2},
		{name: "deadzone boundary is exclusive", a1: 0.1, a2: 0.7, want: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s1, s2 pad.Snapshot
			s1.Axes[pad.AxisLX] = tt.a1
			s2.Axes[pad.AxisLX] = tt.a2
			m := pad.Merge(&s1, &s2)
			assert.Equal(t, tt.want, m.Axes[pad.AxisLX])
		})
	}
}

func TestMergeMissingSnapshots(t *testing.T) {
	var s pad.Snapshot
	s.Buttons[pad.ButtonOptions] = true
	s.Axes[pad.AxisRY] = -0.42

	t.Run("player1 absent passes player2 through", func(t *testing.T) {
		m := pad.Merge(nil, &s)
		assert.Equal(t, s, m)
	})

	t.Run("player2 absent passes player1 through", func(t *testing.T) {
		m := pad.Merge(&s, nil)
		assert.Equal(t, s, m)
	})

	t.Run("both absent yields the neutral state", func(t *testing.T) {
		m := pad.Merge(nil, nil)
		assert.Equal(t, pad.Snapshot{}, m)
	})
}

func TestMergeDeterministic(t *testing.T) {
	var s1, s2 pad.Snapshot
	s1.Buttons[pad.ButtonL1] = true
	s1.Axes[pad.AxisLX] = 0.25
	s2.Buttons[pad.ButtonR1] = true
	s2.Axes[pad.AxisRX] = -0.75

	first := pad.Merge(&s1, &s2)
	second := pad.Merge(&s1, &s2)
	assert.Equal(t, first, second)
}
