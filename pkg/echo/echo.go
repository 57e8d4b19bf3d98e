// Package echo prints a diagnostic line for every byte read from a raw terminal.
package echo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// DefaultQuit is the byte that ends the loop unless Options says otherwise.
const DefaultQuit = 'q'

// Reader yields single bytes with a bounded wait. ok=false with a nil error
// means the wait elapsed with no input.
type Reader interface {
	ReadByteTimeout(timeout time.Duration) (b byte, ok bool, err error)
}

// Options configures Run.
type Options struct {
	Quit    byte
	Timeout time.Duration
}

// IsControl reports whether b is an ASCII control character.
func IsControl(b byte) bool {
	return b < 32 || b == 127
}

// Line formats the diagnostic line for b. Lines end in "\r\n" because output
// post-processing is off while the terminal is raw. Printable bytes are
// written back as they are, without any UTF-8 interpretation.
func Line(b byte) string {
	if IsControl(b) {
		return fmt.Sprintf("%d\r\n", b)
	}
	return fmt.Sprintf("%d ('%s')\r\n", b, []byte{b})
}

// Run reads from in and writes one line per byte to out until it has written
// the line for opts.Quit, the input ends, or ctx is done. Those cases return
// nil. Read errors are returned unchanged, write errors wrapped.
func Run(ctx context.Context, in Reader, out io.Writer, opts Options) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		b, ok, err := in.ReadByteTimeout(opts.Timeout)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if _, err := io.WriteString(out, Line(b)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		if b == opts.Quit {
			return nil
		}
	}
}
