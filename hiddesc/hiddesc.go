// Package hiddesc builds HID report descriptors.
//
// A report descriptor is a byte-coded grammar declaring a device's controls
// to the host. The package models the short items this project needs as Go
// structs and encodes them to the exact descriptor byte stream; the gamepad
// descriptor built from them is a byte-level contract with the OS driver.
package hiddesc

import "fmt"

// ItemType is the HID short item "type" field (HID 1.11: Main=0, Global=1,
// Local=2).
type ItemType uint8

const (
	ItemTypeMain   ItemType = 0
	ItemTypeGlobal ItemType = 1
	ItemTypeLocal  ItemType = 2
)

// Item is one node of a report descriptor.
type Item interface {
	encode(e *encoder) error
}

// Descriptor is a complete HID report descriptor.
type Descriptor struct {
	Items []Item
}

// Bytes encodes the descriptor to its wire form.
func (d Descriptor) Bytes() ([]byte, error) {
	e := &encoder{}
	for _, it := range d.Items {
		if it == nil {
			return nil, fmt.Errorf("hiddesc: nil item")
		}
		if err := it.encode(e); err != nil {
			return nil, err
		}
	}
	return e.buf, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) short(tag uint8, typ ItemType, data []byte) error {
	var sizeCode uint8
	switch len(data) {
	case 0:
		sizeCode = 0
	case 1:
		sizeCode = 1
	case 2:
		sizeCode = 2
	case 4:
		sizeCode = 3
	default:
		return fmt.Errorf("hiddesc: short item data must be 0/1/2/4 bytes, got %d", len(data))
	}
	e.buf = append(e.buf, (tag<<4)|(uint8(typ)<<2)|sizeCode)
	e.buf = append(e.buf, data...)
	return nil
}

// dataU32 encodes an unsigned value in the fewest allowed bytes.
func dataU32(v uint32) []byte {
	if v <= 0xFF {
		return []byte{uint8(v)}
	}
	if v <= 0xFFFF {
		return []byte{uint8(v), uint8(v >> 8)}
	}
	return []byte{uint8(v), uint8(v >> 8), uint8(v >> 16), uint8(v >> 24)}
}

// dataI32 encodes a signed value in the fewest allowed bytes.
func dataI32(v int32) []byte {
	if v >= -128 && v <= 127 {
		return []byte{uint8(v)}
	}
	if v >= -32768 && v <= 32767 {
		uv := uint16(int16(v))
		return []byte{uint8(uv), uint8(uv >> 8)}
	}
	uv := uint32(v)
	return []byte{uint8(uv), uint8(uv >> 8), uint8(uv >> 16), uint8(uv >> 24)}
}
