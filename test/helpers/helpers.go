//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

// Package helpers provides common utilities for integration and end-to-end tests.
package helpers

import (
	"dominicbreuker/kiloraw/mocks"
	"dominicbreuker/kiloraw/pkg/config"
	"dominicbreuker/kiloraw/pkg/terminal"
	"io"
	"os"
	"testing"

	"github.com/creack/pty"
)

// SetupMockDependencies creates a complete set of mock dependencies
// for testing with both a mocked terminal device and mocked stdio.
func SetupMockDependencies() (*mocks.MockTerminal, *mocks.MockStdio, *config.Dependencies) {
	mockTerm := mocks.NewMockTerminal()
	mockStdio := mocks.NewMockStdio()

	deps := &config.Dependencies{
		Stdin:    func() io.Reader { return mockStdio.GetStdin() },
		Stdout:   func() io.Writer { return mockStdio.GetStdout() },
		Terminal: func() terminal.Device { return mockTerm },
	}

	return mockTerm, mockStdio, deps
}

// SetupPtyDependencies creates dependencies backed by a real pseudo-terminal:
// the session reads from and configures the pty's terminal side, and the
// test types into the returned controller side. Output goes to out. The test
// is skipped when the platform cannot allocate a pty.
func SetupPtyDependencies(t *testing.T, out io.Writer) (ptm *os.File, tty terminal.TTY, deps *config.Dependencies) {
	t.Helper()

	ptm, pts, err := pty.Open()
	if err != nil {
		t.Skipf("pty.Open() not available: %v", err)
	}
	t.Cleanup(func() {
		pts.Close()
		ptm.Close()
	})

	tty = terminal.NewTTY(pts)
	deps = &config.Dependencies{
		Stdin:    func() io.Reader { return pts },
		Stdout:   func() io.Writer { return out },
		Terminal: func() terminal.Device { return tty },
	}

	return ptm, tty, deps
}
