// Package mocks provides mock implementations for testing.
package mocks

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// MockStdio stands in for a terminal's stdin and stdout. Keystrokes are fed
// through a pipe so reads block like they do on a real terminal; everything
// written to stdout is collected in memory.
type MockStdio struct {
	stdinReader *io.PipeReader
	stdinWriter *io.PipeWriter

	mu      sync.Mutex
	changed *sync.Cond
	output  bytes.Buffer
}

// NewMockStdio creates a new mock stdio with an empty input pipe.
func NewMockStdio() *MockStdio {
	r, w := io.Pipe()
	m := &MockStdio{
		stdinReader: r,
		stdinWriter: w,
	}
	m.changed = sync.NewCond(&m.mu)
	return m
}

// Type feeds keystrokes to stdin. It blocks until the application has read them.
func (m *MockStdio) Type(data []byte) (int, error) {
	return m.stdinWriter.Write(data)
}

// TypeAsync feeds keystrokes to stdin without waiting for them to be read.
func (m *MockStdio) TypeAsync(data []byte) {
	go m.stdinWriter.Write(data)
}

// EndInput makes further stdin reads return io.EOF once pending data is read.
func (m *MockStdio) EndInput() error {
	return m.stdinWriter.Close()
}

// FailInput makes further stdin reads return err.
func (m *MockStdio) FailInput(err error) error {
	return m.stdinWriter.CloseWithError(err)
}

// GetStdin returns a reader for stdin (used by the dependency injection).
func (m *MockStdio) GetStdin() io.Reader {
	return m.stdinReader
}

// GetStdout returns a writer for stdout (used by the dependency injection).
func (m *MockStdio) GetStdout() io.Writer {
	return writerFunc(func(p []byte) (int, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		n, err := m.output.Write(p)
		m.changed.Broadcast()
		return n, err
	})
}

// Output returns everything written to stdout so far.
func (m *MockStdio) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.output.String()
}

// WaitForOutput waits until stdout contains expected or the timeout expires.
func (m *MockStdio) WaitForOutput(expected string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	wake := time.AfterFunc(timeout, func() {
		m.mu.Lock()
		m.changed.Broadcast()
		m.mu.Unlock()
	})
	defer wake.Stop()

	m.mu.Lock()
	defer m.mu.Unlock()

	for !strings.Contains(m.output.String(), expected) {
		if !time.Now().Before(deadline) {
			return fmt.Errorf("timeout waiting for output %q, got: %q", expected, m.output.String())
		}
		m.changed.Wait()
	}
	return nil
}

// Close closes the stdin pipe.
func (m *MockStdio) Close() error {
	m.stdinWriter.Close()
	return m.stdinReader.Close()
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
