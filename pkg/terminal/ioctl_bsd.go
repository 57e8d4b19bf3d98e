//go:build darwin || freebsd || netbsd || openbsd || dragonfly
// +build darwin freebsd netbsd openbsd dragonfly

package terminal

import "golang.org/x/sys/unix"

// Request numbers are uint to match unix.IoctlGetTermios and unix.IoctlSetTermios.
const (
	ioctlReadTermios       uint = unix.TIOCGETA
	ioctlWriteTermios      uint = unix.TIOCSETA
	ioctlWriteTermiosFlush uint = unix.TIOCSETAF
)
