package bridge

import (
	"fmt"
	"sync"
)

// Recorder is a Bridge that records every call instead of touching hardware.
// Failures can be injected per operation to exercise error paths.
type Recorder struct {
	mu sync.Mutex

	InitErr    error
	CreateErr  error
	DestroyErr error

	// SendErrs is consumed one entry per Send call; a nil entry means the
	// call succeeds. After the slice is exhausted Send succeeds.
	SendErrs []error

	creates  []CreateCall
	sends    [][]byte
	destroys []string
	devices  map[string]bool
}

// CreateCall captures the arguments of one Create invocation.
type CreateCall struct {
	Name        string
	Serial      string
	Descriptor  []byte
	ReportCount int
}

func NewRecorder() *Recorder {
	return &Recorder{devices: make(map[string]bool)}
}

func (r *Recorder) Init() error { return r.InitErr }

func (r *Recorder) Create(name, serial string, descriptor []byte, reportCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	if r.devices[name] {
		return fmt.Errorf("device %q already created", name)
	}
	r.devices[name] = true
	desc := append([]byte(nil), descriptor...)
	r.creates = append(r.creates, CreateCall{Name: name, Serial: serial, Descriptor: desc, ReportCount: reportCount})
	return nil
}

func (r *Recorder) Send(name string, report []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.SendErrs) > 0 {
		err := r.SendErrs[0]
		r.SendErrs = r.SendErrs[1:]
		if err != nil {
			return err
		}
	}
	if !r.devices[name] {
		return fmt.Errorf("device %q not created", name)
	}
	r.sends = append(r.sends, append([]byte(nil), report...))
	return nil
}

func (r *Recorder) Destroy(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.destroys = append(r.destroys, name)
	if r.DestroyErr != nil {
		return r.DestroyErr
	}
	if !r.devices[name] {
		return fmt.Errorf("device %q not created", name)
	}
	delete(r.devices, name)
	return nil
}

// Creates returns a copy of all recorded Create calls.
func (r *Recorder) Creates() []CreateCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]CreateCall(nil), r.creates...)
}

// Sends returns a copy of all recorded reports.
func (r *Recorder) Sends() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]byte, len(r.sends))
	for i, s := range r.sends {
		out[i] = append([]byte(nil), s...)
	}
	return out
}

// LastSend returns the most recently sent report, or nil.
func (r *Recorder) LastSend() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sends) == 0 {
		return nil
	}
	return append([]byte(nil), r.sends[len(r.sends)-1]...)
}

// Destroys returns a copy of all recorded Destroy calls.
func (r *Recorder) Destroys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.destroys...)
}

// Live reports whether a device with the given name currently exists.
func (r *Recorder) Live(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.devices[name]
}
