//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package terminal

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// active holds the devices that currently have an open session.
var (
	activeMu sync.Mutex
	active   = map[Device]struct{}{}
)

// Session is an open raw-mode session on a Device.
type Session struct {
	dev      Device
	original unix.Termios
	mode     Mode

	mu     sync.Mutex
	closed bool
}

// Open captures the attributes of dev and applies mode on top of them.
// Pending input is flushed when the new attributes are applied. If that
// step fails, the captured attributes are written back once before the
// error is returned.
func Open(dev Device, mode Mode) (*Session, error) {
	activeMu.Lock()
	defer activeMu.Unlock()

	if _, ok := active[dev]; ok {
		return nil, &TerminalError{Op: "open", Err: ErrSessionActive}
	}

	original, err := dev.Attrs()
	if err != nil {
		return nil, &TerminalError{Op: "tcgetattr", Err: err}
	}

	raw := *original
	mode.applyTo(&raw)

	if err := dev.SetAttrs(&raw, true); err != nil {
		if restoreErr := dev.SetAttrs(original, false); restoreErr != nil {
			err = errors.Join(err, restoreErr)
		}
		return nil, &TerminalError{Op: "tcsetattr", Err: err}
	}

	active[dev] = struct{}{}

	return &Session{
		dev:      dev,
		original: *original,
		mode:     mode,
	}, nil
}

// Close writes the captured attributes back to the device. Only the first
// call touches the device; later calls and calls on a nil Session return nil.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	activeMu.Lock()
	delete(active, s.dev)
	activeMu.Unlock()

	original := s.original
	if err := s.dev.SetAttrs(&original, true); err != nil {
		return &TerminalError{Op: "tcsetattr", Err: err}
	}
	return nil
}

// Mode returns the mode applied by Open.
func (s *Session) Mode() Mode {
	return s.mode
}

// Original returns the attributes captured by Open.
func (s *Session) Original() Mode {
	return modeOf(&s.original)
}

// Timeout is the wait a read loop should use with this session.
func (s *Session) Timeout() time.Duration {
	return s.mode.ReadTimeout()
}
