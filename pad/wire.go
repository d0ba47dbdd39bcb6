package pad

import (
	"encoding/binary"
	"io"
)

const (
	// WireSize is the fixed size of a snapshot frame on a feed stream:
	// uint32 button mask + 6 x int16 fixed-point axes.
	WireSize = 16

	// AxisWireScale converts a normalized axis value to the int16 wire
	// representation.
	AxisWireScale = 32767
)

// MarshalBinary encodes the snapshot into the fixed little-endian wire frame
// used by feed streams.
func (s *Snapshot) MarshalBinary() ([]byte, error) {
	b := make([]byte, WireSize)

	var mask uint32
	for i := Button(0); i < ButtonCount; i++ {
		if s.Buttons[i] {
			mask |= 1 << uint(i)
		}
	}
	binary.LittleEndian.PutUint32(b[0:4], mask)

	for a := Axis(0); a < AxisCount; a++ {
		v := s.Axes[a]
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		binary.LittleEndian.PutUint16(b[4+2*int(a):], uint16(int16(v*AxisWireScale)))
	}
	return b, nil
}

// UnmarshalBinary decodes a snapshot from a wire frame.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	if len(data) < WireSize {
		return io.ErrUnexpectedEOF
	}

	mask := binary.LittleEndian.Uint32(data[0:4])
	for i := Button(0); i < ButtonCount; i++ {
		s.Buttons[i] = mask&(1<<uint(i)) != 0
	}

	for a := Axis(0); a < AxisCount; a++ {
		raw := int16(binary.LittleEndian.Uint16(data[4+2*int(a):]))
		s.Axes[a] = float64(raw) / AxisWireScale
	}
	return nil
}
