package pad

import "math"

// Deadzone is the magnitude below which an axis reading of the first
// controller is treated as neutral when merging.
const Deadzone = 0.1

// Merge combines the snapshots of player 1 and player 2 into the state of the
// single logical pad. A nil snapshot stands for an unassigned player and is
// treated as the neutral state, so merging degenerates to a pass-through of
// the present snapshot.
//
// Buttons are a plain OR of both players.
//
// Axes give player 1 priority: if player 1's value is outside the deadzone it
// wins outright. Otherwise player 2's raw value is used as-is, even when that
// value is itself inside the deadzone. The fallthrough is deliberately
// asymmetric; it is not "pick the larger magnitude".
func Merge(s1, s2 *Snapshot) Snapshot {
	var zero Snapshot
	if s1 == nil {
		s1 = &zero
	}
	if s2 == nil {
		s2 = &zero
	}

	var m Snapshot
	for b := Button(0); b < ButtonCount; b++ {
		m.Buttons[b] = s1.Buttons[b] || s2.Buttons[b]
	}
	for a := Axis(0); a < AxisCount; a++ {
		if math.Abs(s1.Axes[a]) > Deadzone {
			m.Axes[a] = s1.Axes[a]
		} else {
			m.Axes[a] = s2.Axes[a]
		}
	}
	return m
}
