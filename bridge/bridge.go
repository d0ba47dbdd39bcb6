// Package bridge defines the boundary to the virtual-device collaborator:
// the OS-specific mechanism that registers a software-backed HID device and
// accepts its input reports. Implementations that talk to a real driver live
// outside this repository; the package ships a logging backend and a
// recording test double.
package bridge

import "errors"

var (
	// ErrUnavailable is returned by Init when the driver backing the
	// bridge cannot be reached or loaded.
	ErrUnavailable = errors.New("bridge: driver unavailable")

	// ErrInvalidated is returned by Send when the device session is gone
	// and cannot be recovered by retrying; the output cycle terminates on
	// it immediately.
	ErrInvalidated = errors.New("bridge: device session invalidated")
)

// Bridge is the narrow interface to the virtual-device driver.
//
// Create registers a device under a unique name with the given report
// descriptor; Send pushes one encoded input report; Destroy releases the
// registration. All calls may block on external I/O.
type Bridge interface {
	Init() error
	Create(name, serial string, descriptor []byte, reportCount int) error
	Send(name string, report []byte) error
	Destroy(name string) error
}
