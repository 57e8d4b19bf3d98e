//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package mocks

import (
	"sync"

	"golang.org/x/sys/unix"
)

// SetAttrsCall records one SetAttrs call on a MockTerminal.
type SetAttrsCall struct {
	Termios unix.Termios
	Flush   bool
}

// MockTerminal is an in-memory terminal device. It stores a single termios
// value, records every write, and can be told to fail reads or writes.
type MockTerminal struct {
	mu      sync.Mutex
	termios unix.Termios
	calls   []SetAttrsCall

	// AttrsErr is returned by Attrs when set.
	AttrsErr error
	// SetAttrsErrs are returned by successive SetAttrs calls; a nil entry or
	// running past the end means success. A failed call leaves the stored
	// termios unchanged.
	SetAttrsErrs []error
}

// NewMockTerminal returns a MockTerminal in a typical cooked mode.
func NewMockTerminal() *MockTerminal {
	return NewMockTerminalWith(CookedTermios())
}

// NewMockTerminalWith returns a MockTerminal holding t.
func NewMockTerminalWith(t unix.Termios) *MockTerminal {
	return &MockTerminal{termios: t}
}

// CookedTermios returns attributes resembling a fresh interactive terminal.
func CookedTermios() unix.Termios {
	var t unix.Termios
	t.Iflag = unix.ICRNL | unix.IXON | unix.BRKINT | unix.IMAXBEL
	t.Oflag = unix.OPOST | unix.ONLCR
	t.Cflag = unix.CS7 | unix.PARENB | unix.CREAD
	t.Lflag = unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN | unix.ECHOE | unix.ECHOK
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

// Attrs implements terminal.Device.
func (m *MockTerminal) Attrs() (*unix.Termios, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.AttrsErr != nil {
		return nil, m.AttrsErr
	}
	t := m.termios
	return &t, nil
}

// SetAttrs implements terminal.Device.
func (m *MockTerminal) SetAttrs(t *unix.Termios, flush bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := len(m.calls)
	m.calls = append(m.calls, SetAttrsCall{Termios: *t, Flush: flush})

	if i < len(m.SetAttrsErrs) && m.SetAttrsErrs[i] != nil {
		return m.SetAttrsErrs[i]
	}
	m.termios = *t
	return nil
}

// Termios returns the currently stored attributes.
func (m *MockTerminal) Termios() unix.Termios {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.termios
}

// Calls returns the SetAttrs calls made so far.
func (m *MockTerminal) Calls() []SetAttrsCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SetAttrsCall(nil), m.calls...)
}
