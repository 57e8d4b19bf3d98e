//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly
// +build linux darwin freebsd netbsd openbsd dragonfly

package terminal

import "golang.org/x/sys/unix"

type flagWord interface {
	~uint32 | ~uint64
}

func hasFlag[T flagWord](word, bit T) bool {
	return word&bit == bit
}

func setFlag[T flagWord](word *T, bit T, on bool) {
	if on {
		*word |= bit
	} else {
		*word &^= bit
	}
}

// modeOf reads the named settings out of t.
func modeOf(t *unix.Termios) Mode {
	return Mode{
		Echo:          hasFlag(t.Lflag, unix.ECHO),
		Canonical:     hasFlag(t.Lflag, unix.ICANON),
		Signals:       hasFlag(t.Lflag, unix.ISIG),
		ExtendedInput: hasFlag(t.Lflag, unix.IEXTEN),

		FlowControl:    hasFlag(t.Iflag, unix.IXON),
		CRToNL:         hasFlag(t.Iflag, unix.ICRNL),
		BreakInterrupt: hasFlag(t.Iflag, unix.BRKINT),
		ParityCheck:    hasFlag(t.Iflag, unix.INPCK),
		StripHighBit:   hasFlag(t.Iflag, unix.ISTRIP),

		OutputProcessing: hasFlag(t.Oflag, unix.OPOST),

		EightBit: t.Cflag&unix.CSIZE == unix.CS8,
		Parity:   hasFlag(t.Cflag, unix.PARENB),

		MinBytes:           t.Cc[unix.VMIN],
		TimeoutDeciseconds: t.Cc[unix.VTIME],
	}
}

// applyTo writes m over t. Bits that Mode does not name are left alone.
// EightBit=false keeps whatever character size t already has.
func (m Mode) applyTo(t *unix.Termios) {
	setFlag(&t.Lflag, unix.ECHO, m.Echo)
	setFlag(&t.Lflag, unix.ICANON, m.Canonical)
	setFlag(&t.Lflag, unix.ISIG, m.Signals)
	setFlag(&t.Lflag, unix.IEXTEN, m.ExtendedInput)

	setFlag(&t.Iflag, unix.IXON, m.FlowControl)
	setFlag(&t.Iflag, unix.ICRNL, m.CRToNL)
	setFlag(&t.Iflag, unix.BRKINT, m.BreakInterrupt)
	setFlag(&t.Iflag, unix.INPCK, m.ParityCheck)
	setFlag(&t.Iflag, unix.ISTRIP, m.StripHighBit)

	setFlag(&t.Oflag, unix.OPOST, m.OutputProcessing)

	if m.EightBit {
		t.Cflag &^= unix.CSIZE
		t.Cflag |= unix.CS8
	}
	setFlag(&t.Cflag, unix.PARENB, m.Parity)

	t.Cc[unix.VMIN] = m.MinBytes
	t.Cc[unix.VTIME] = m.TimeoutDeciseconds
}
