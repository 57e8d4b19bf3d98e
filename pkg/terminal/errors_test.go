package terminal

import (
	"errors"
	"io/fs"
	"testing"
)

func TestTerminalError(t *testing.T) {
	t.Parallel()

	err := error(&TerminalError{Op: "tcgetattr", Err: fs.ErrPermission})

	if got, want := err.Error(), "tcgetattr: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false, want true")
	}
}

func TestIOError(t *testing.T) {
	t.Parallel()

	inner := errors.New("device gone")
	err := error(&IOError{Op: "read", Err: inner})

	if got, want := err.Error(), "read: device gone"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is(err, inner) = false, want true")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "read" {
		t.Errorf("errors.As() = %v, want *IOError with Op read", err)
	}
}
