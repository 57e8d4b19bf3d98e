package config

import (
	"dominicbreuker/kiloraw/pkg/terminal"
	"io"
	"os"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	Stdin    StdinFunc
	Stdout   StdoutFunc
	Terminal TerminalFunc
}

// StdinFunc is a function that returns a reader for stdin.
// It returns an io.Reader to allow for mock implementations.
type StdinFunc func() io.Reader

// StdoutFunc is a function that returns a writer for stdout.
// It returns an io.Writer to allow for mock implementations.
type StdoutFunc func() io.Writer

// TerminalFunc is a function that returns the terminal device to put into raw mode.
type TerminalFunc func() terminal.Device

// GetStdinFunc returns the stdin function from dependencies, or a default implementation.
// If deps is nil or deps.Stdin is nil, returns a function that uses os.Stdin.
func GetStdinFunc(deps *Dependencies) StdinFunc {
	if deps != nil && deps.Stdin != nil {
		return deps.Stdin
	}
	return func() io.Reader {
		return os.Stdin
	}
}

// GetStdoutFunc returns the stdout function from dependencies, or a default implementation.
// If deps is nil or deps.Stdout is nil, returns a function that uses os.Stdout.
func GetStdoutFunc(deps *Dependencies) StdoutFunc {
	if deps != nil && deps.Stdout != nil {
		return deps.Stdout
	}
	return func() io.Writer {
		return os.Stdout
	}
}

// GetTerminalFunc returns the terminal function from dependencies, or a default implementation.
// If deps is nil or deps.Terminal is nil, returns a function that uses the stdin TTY.
func GetTerminalFunc(deps *Dependencies) TerminalFunc {
	if deps != nil && deps.Terminal != nil {
		return deps.Terminal
	}
	return func() terminal.Device {
		return terminal.Stdin()
	}
}
