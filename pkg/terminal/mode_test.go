//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package terminal

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func cookedTermios() unix.Termios {
	var t unix.Termios
	t.Iflag = unix.ICRNL | unix.IXON | unix.BRKINT | unix.INPCK | unix.ISTRIP | unix.IMAXBEL
	t.Oflag = unix.OPOST | unix.ONLCR
	t.Cflag = unix.CS7 | unix.PARENB | unix.CREAD
	t.Lflag = unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN | unix.ECHOE
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	return t
}

func TestRawMode(t *testing.T) {
	t.Parallel()

	m := RawMode(0, 1)

	want := Mode{EightBit: true, MinBytes: 0, TimeoutDeciseconds: 1}
	if m != want {
		t.Errorf("RawMode(0, 1) = %+v, want %+v", m, want)
	}
}

func TestModeOf(t *testing.T) {
	t.Parallel()

	termios := cookedTermios()
	m := modeOf(&termios)

	want := Mode{
		Echo:             true,
		Canonical:        true,
		Signals:          true,
		ExtendedInput:    true,
		FlowControl:      true,
		CRToNL:           true,
		BreakInterrupt:   true,
		ParityCheck:      true,
		StripHighBit:     true,
		OutputProcessing: true,
		EightBit:         false,
		Parity:           true,
		MinBytes:         1,
	}
	if m != want {
		t.Errorf("modeOf(cooked) = %+v, want %+v", m, want)
	}
}

func TestApplyTo_Raw(t *testing.T) {
	t.Parallel()

	termios := cookedTermios()
	RawMode(0, 1).applyTo(&termios)

	tests := []struct {
		name string
		word uint64
		bit  uint64
	}{
		{"ECHO", uint64(termios.Lflag), unix.ECHO},
		{"ICANON", uint64(termios.Lflag), unix.ICANON},
		{"ISIG", uint64(termios.Lflag), unix.ISIG},
		{"IEXTEN", uint64(termios.Lflag), unix.IEXTEN},
		{"IXON", uint64(termios.Iflag), unix.IXON},
		{"ICRNL", uint64(termios.Iflag), unix.ICRNL},
		{"BRKINT", uint64(termios.Iflag), unix.BRKINT},
		{"INPCK", uint64(termios.Iflag), unix.INPCK},
		{"ISTRIP", uint64(termios.Iflag), unix.ISTRIP},
		{"OPOST", uint64(termios.Oflag), unix.OPOST},
		{"PARENB", uint64(termios.Cflag), unix.PARENB},
	}
	for _, tt := range tests {
		if tt.word&tt.bit != 0 {
			t.Errorf("%s still set after applying raw mode", tt.name)
		}
	}

	if got := termios.Cflag & unix.CSIZE; got != unix.CS8 {
		t.Errorf("character size = %#x, want CS8 (%#x)", got, unix.CS8)
	}
	if termios.Cc[unix.VMIN] != 0 || termios.Cc[unix.VTIME] != 1 {
		t.Errorf("VMIN/VTIME = %d/%d, want 0/1", termios.Cc[unix.VMIN], termios.Cc[unix.VTIME])
	}
}

func TestApplyTo_KeepsUnnamedBits(t *testing.T) {
	t.Parallel()

	termios := cookedTermios()
	RawMode(0, 1).applyTo(&termios)

	if termios.Lflag&unix.ECHOE == 0 {
		t.Error("ECHOE cleared, want untouched")
	}
	if termios.Iflag&unix.IMAXBEL == 0 {
		t.Error("IMAXBEL cleared, want untouched")
	}
	if termios.Oflag&unix.ONLCR == 0 {
		t.Error("ONLCR cleared, want untouched")
	}
	if termios.Cflag&unix.CREAD == 0 {
		t.Error("CREAD cleared, want untouched")
	}
}

func TestApplyTo_RoundTrip(t *testing.T) {
	t.Parallel()

	original := cookedTermios()
	m := modeOf(&original)

	termios := original
	m.applyTo(&termios)

	if termios != original {
		t.Errorf("applying modeOf(t) changed t: got %+v, want %+v", termios, original)
	}
}

func TestApplyTo_EightBitFalseKeepsSize(t *testing.T) {
	t.Parallel()

	termios := cookedTermios()
	Mode{}.applyTo(&termios)

	if got := termios.Cflag & unix.CSIZE; got != unix.CS7 {
		t.Errorf("character size = %#x, want CS7 (%#x)", got, unix.CS7)
	}
}

func TestMode_ReadTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		deciseconds uint8
		want        time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 100 * time.Millisecond},
		{5, 500 * time.Millisecond},
		{255, 25500 * time.Millisecond},
	}

	for _, tt := range tests {
		m := Mode{TimeoutDeciseconds: tt.deciseconds}
		if got := m.ReadTimeout(); got != tt.want {
			t.Errorf("ReadTimeout() with VTIME=%d = %v, want %v", tt.deciseconds, got, tt.want)
		}
	}
}
