//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Device is the attribute store of a terminal. Implementations must be
// comparable, since Open tracks active sessions per device.
type Device interface {
	// Attrs returns the current attributes (tcgetattr).
	Attrs() (*unix.Termios, error)
	// SetAttrs applies t (tcsetattr). With flush set, pending unread input
	// is discarded first, as with TCSAFLUSH.
	SetAttrs(t *unix.Termios, flush bool) error
}

// TTY is a Device backed by a terminal file descriptor.
type TTY struct {
	fd int
}

// NewTTY returns the Device for f. The file must stay open while the TTY is in use.
func NewTTY(f *os.File) TTY {
	return TTY{fd: int(f.Fd())}
}

// Stdin returns the Device for standard input.
func Stdin() TTY {
	return TTY{fd: unix.Stdin}
}

// Fd returns the underlying file descriptor.
func (t TTY) Fd() int {
	return t.fd
}

// Attrs implements Device.
func (t TTY) Attrs() (*unix.Termios, error) {
	if !term.IsTerminal(t.fd) {
		return nil, unix.ENOTTY
	}
	return unix.IoctlGetTermios(t.fd, ioctlReadTermios)
}

// SetAttrs implements Device.
func (t TTY) SetAttrs(termios *unix.Termios, flush bool) error {
	req := ioctlWriteTermios
	if flush {
		req = ioctlWriteTermiosFlush
	}
	return unix.IoctlSetTermios(t.fd, req, termios)
}
