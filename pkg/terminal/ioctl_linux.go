//go:build linux
// +build linux

package terminal

import "golang.org/x/sys/unix"

// Request numbers are uint to match unix.IoctlGetTermios and unix.IoctlSetTermios.
const (
	ioctlReadTermios       uint = unix.TCGETS
	ioctlWriteTermios      uint = unix.TCSETS
	ioctlWriteTermiosFlush uint = unix.TCSETSF
)
