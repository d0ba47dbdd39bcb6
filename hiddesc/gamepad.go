package hiddesc

import "github.com/duopad/duopad/pad"

// Gamepad returns the report descriptor of the merged virtual pad:
// Generic Desktop / Game Pad, report ID 1, 16 one-bit buttons, four 8-bit
// stick axes (X, Y, Z, Rz) and two 8-bit trigger axes (Rx, Ry).
//
// The byte stream must match across implementations; downstream consumers
// parse reports according to this exact descriptor.
func Gamepad() ([]byte, error) {
	d := Descriptor{Items: []Item{
		UsagePage{UsagePageGenericDesktop},
		Usage{UsageGamePad},
		Collection{Kind: CollectionApplication, Items: []Item{
			ReportID{pad.ReportID},

			UsagePage{UsagePageButton},
			UsageMinimum{1},
			UsageMaximum{16},
			LogicalMinimum{0},
			LogicalMaximum{1},
			ReportSize{1},
			ReportCount{16},
			Input{MainData | MainVar | MainAbs},

			UsagePage{UsagePageGenericDesktop},
			Usage{UsageX},
			Usage{UsageY},
			Usage{UsageZ},
			Usage{UsageRz},
			LogicalMinimum{0},
			LogicalMaximum{255},
			ReportSize{8},
			ReportCount{4},
			Input{MainData | MainVar | MainAbs},

			Usage{UsageRx},
			Usage{UsageRy},
			ReportCount{2},
			Input{MainData | MainVar | MainAbs},
		}},
	}}
	return d.Bytes()
}

// MustGamepad is Gamepad for static contexts; the descriptor is a fixed
// literal tree, so encoding cannot fail.
func MustGamepad() []byte {
	b, err := Gamepad()
	if err != nil {
		panic(err)
	}
	return b
}
