package pad

import (
	"encoding/binary"
	"math"
)

const (
	// ReportID is the report identifier declared in the HID report
	// descriptor. It is the first byte of every input report.
	ReportID = 0x01

	// ReportSize is the fixed size of an encoded input report:
	// report ID, 16-bit button word, 4 stick bytes, 2 trigger bytes.
	ReportSize = 9
)

// Button word flags, packed low-to-high in declaration order. The digital
// L2/R2 identifiers carry no flag: the canonical layout reports the triggers
// as the Rx/Ry axes instead.
const (
	BitCross     uint16 = 0x0001
	BitCircle    uint16 = 0x0002
	BitSquare    uint16 = 0x0004
	BitTriangle  uint16 = 0x0008
	BitL1        uint16 = 0x0010
	BitR1        uint16 = 0x0020
	BitShare     uint16 = 0x0040
	BitOptions   uint16 = 0x0080
	BitL3        uint16 = 0x0100
	BitR3        uint16 = 0x0200
	BitPS        uint16 = 0x0400
	BitTouchpad  uint16 = 0x0800
	BitDpadUp    uint16 = 0x1000
	BitDpadDown  uint16 = 0x2000
	BitDpadLeft  uint16 = 0x4000
	BitDpadRight uint16 = 0x8000
)

// buttonBits maps button identifiers to their report flag. Identifiers absent
// from the table (digital L2/R2) contribute no bit.
var buttonBits = map[Button]uint16{
	ButtonCross:     BitCross,
	ButtonCircle:    BitCircle,
	ButtonSquare:    BitSquare,
	ButtonTriangle:  BitTriangle,
	ButtonL1:        BitL1,
	ButtonR1:        BitR1,
	ButtonShare:     BitShare,
	ButtonOptions:   BitOptions,
	ButtonL3:        BitL3,
	ButtonR3:        BitR3,
	ButtonPS:        BitPS,
	ButtonTouchpad:  BitTouchpad,
	ButtonDpadUp:    BitDpadUp,
	ButtonDpadDown:  BitDpadDown,
	ButtonDpadLeft:  BitDpadLeft,
	ButtonDpadRight: BitDpadRight,
}

// EncodeReport packs a snapshot into the fixed 9-byte input report:
//
//	[0]    report ID (0x01)
//	[1:3]  button word, little endian
//	[3:7]  LX, LY, RX, RY
//	[7:9]  L2, R2
func EncodeReport(s Snapshot) []byte {
	b := make([]byte, ReportSize)
	b[0] = ReportID

	var buttons uint16
	for id, bit := range buttonBits {
		if s.Buttons[id] {
			buttons |= bit
		}
	}
	binary.LittleEndian.PutUint16(b[1:3], buttons)

	b[3] = ScaleAxis(s.Axes[AxisLX])
	b[4] = ScaleAxis(s.Axes[AxisLY])
	b[5] = ScaleAxis(s.Axes[AxisRX])
	b[6] = ScaleAxis(s.Axes[AxisRY])
	b[7] = ScaleAxis(s.Axes[AxisL2])
	b[8] = ScaleAxis(s.Axes[AxisR2])
	return b
}

// ScaleAxis maps a normalized axis value in [-1, 1] to an unsigned report
// byte: round((v+1)*127.5), rounding half away from zero (math.Round), then
// clamped to [0, 255]. The transform is total and monotonic, and exact at the
// boundaries: -1.0 -> 0, 0.0 -> 128, 1.0 -> 255.
func ScaleAxis(v float64) uint8 {
	scaled := math.Round((v + 1.0) * 127.5)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
