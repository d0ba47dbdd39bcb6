// Package pad models the state of a single gamepad and merges the input of
// two controllers into one combined state.
package pad

// Button identifies one digital input of the logical pad. The order matches
// the button numbering of the physical controllers (cross is button 0), with
// the four d-pad directions synthesized from the hat switch appended at the
// end.
type Button uint8

const (
	ButtonCross Button = iota
	ButtonCircle
	ButtonSquare
	ButtonTriangle
	ButtonL1
	ButtonR1
	ButtonL2
	ButtonR2
	ButtonShare
	ButtonOptions
	ButtonL3
	ButtonR3
	ButtonPS
	ButtonTouchpad
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadLeft
	ButtonDpadRight

	ButtonCount
)

var buttonNames = [ButtonCount]string{
	"cross", "circle", "square", "triangle",
	"l1", "r1", "l2", "r2",
	"share", "options", "l3", "r3",
	"ps", "touchpad",
	"dpadUp", "dpadDown", "dpadLeft", "dpadRight",
}

func (b Button) String() string {
	if b >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// Axis identifies one analog input of the logical pad. Stick axes range over
// [-1, 1]; the triggers use the same range with -1 meaning released.
type Axis uint8

const (
	AxisLX Axis = iota
	AxisLY
	AxisRX
	AxisRY
	AxisL2
	AxisR2

	AxisCount
)

var axisNames = [AxisCount]string{"lx", "ly", "rx", "ry", "l2", "r2"}

func (a Axis) String() string {
	if a >= AxisCount {
		return "unknown"
	}
	return axisNames[a]
}

// Snapshot is the complete input state of one controller at a single point in
// time. The zero value is the neutral state: no button pressed, every axis at
// 0.0. There is no notion of an absent identifier; every button and axis
// always has a value.
type Snapshot struct {
	Buttons [ButtonCount]bool
	Axes    [AxisCount]float64
}

// ActiveButtons returns the names of all pressed buttons, in declaration
// order. Used for log output.
func (s *Snapshot) ActiveButtons() []string {
	var out []string
	for b := Button(0); b < ButtonCount; b++ {
		if s.Buttons[b] {
			out = append(out, b.String())
		}
	}
	return out
}
