package terminal

import (
	"errors"
	"fmt"
)

// ErrSessionActive is returned by Open when the device already has an open session.
var ErrSessionActive = errors.New("raw session already active")

// ErrClosed is returned by ReadByteTimeout after the Input has been closed.
var ErrClosed = errors.New("input closed")

// TerminalError reports a failed attribute get or set on the terminal device.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error {
	return e.Err
}

// IOError reports a read failure other than a timeout or end of input.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
