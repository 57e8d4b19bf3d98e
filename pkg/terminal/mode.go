package terminal

import "time"

// Mode describes the line-discipline settings a session cares about.
// Fields map one to one onto termios bits; the translation happens in
// modeOf and Mode.applyTo only.
type Mode struct {
	Echo          bool // ECHO
	Canonical     bool // ICANON
	Signals       bool // ISIG
	ExtendedInput bool // IEXTEN

	FlowControl    bool // IXON
	CRToNL         bool // ICRNL
	BreakInterrupt bool // BRKINT
	ParityCheck    bool // INPCK
	StripHighBit   bool // ISTRIP

	OutputProcessing bool // OPOST

	EightBit bool // CSIZE == CS8
	Parity   bool // PARENB

	MinBytes           uint8 // VMIN
	TimeoutDeciseconds uint8 // VTIME
}

// DefaultMinBytes and DefaultTimeoutDeciseconds let a read return after at
// most a tenth of a second with zero or more bytes.
const (
	DefaultMinBytes           = 0
	DefaultTimeoutDeciseconds = 1
)

// minReadTimeout keeps read loops responsive when VTIME is zero.
const minReadTimeout = 100 * time.Millisecond

// RawMode returns the raw configuration: no echo, no line buffering, no
// signal keys, no flow control, no input or output translation, 8-bit
// characters without parity, and the given VMIN/VTIME.
func RawMode(minBytes, timeoutDeciseconds uint8) Mode {
	return Mode{
		EightBit:           true,
		MinBytes:           minBytes,
		TimeoutDeciseconds: timeoutDeciseconds,
	}
}

// ReadTimeout is the wait implied by TimeoutDeciseconds, never below 100ms.
func (m Mode) ReadTimeout() time.Duration {
	d := time.Duration(m.TimeoutDeciseconds) * 100 * time.Millisecond
	if d < minReadTimeout {
		return minReadTimeout
	}
	return d
}
