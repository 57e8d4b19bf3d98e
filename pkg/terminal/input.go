package terminal

import (
	"errors"
	"io"
	"sync"
	"syscall"
	"time"

	"github.com/muesli/cancelreader"
)

// Input reads single bytes with a bounded wait. A background reader pulls
// one byte at a time from the source and holds it until ReadByteTimeout takes
// it, so at most one byte is read ahead of the caller. Close drops that byte.
type Input struct {
	r           io.Reader
	cancel      func() bool
	closeReader func() error

	bytes chan byte
	done  chan struct{} // closed by Close
	dead  chan struct{} // closed when the reader stops; err is set before
	err   error

	once sync.Once
}

// NewInput starts reading from r. Reads from an *os.File go through a
// cancelreader so Close also interrupts a pending read. Other readers cannot
// be interrupted: their reader goroutine outlives Close until the pending
// Read returns.
func NewInput(r io.Reader) *Input {
	in := &Input{
		r:           r,
		cancel:      func() bool { return false },
		closeReader: func() error { return nil },
		bytes:       make(chan byte),
		done:        make(chan struct{}),
		dead:        make(chan struct{}),
	}

	if cr, err := cancelreader.NewReader(r); err == nil {
		in.r = cr
		in.cancel = cr.Cancel
		in.closeReader = cr.Close
	}

	go in.pump()
	return in
}

func (in *Input) pump() {
	defer close(in.dead)
	defer in.closeReader()

	var buf [1]byte
	for {
		n, err := in.r.Read(buf[:])
		if n > 0 {
			select {
			case in.bytes <- buf[0]:
			case <-in.done:
				in.err = ErrClosed
				return
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, syscall.EAGAIN), errors.Is(err, syscall.EINTR):
			// nothing to read yet
		case errors.Is(err, cancelreader.ErrCanceled):
			in.err = ErrClosed
			return
		case errors.Is(err, io.EOF):
			in.err = io.EOF
			return
		default:
			in.err = &IOError{Op: "read", Err: err}
			return
		}
	}
}

// ReadByteTimeout waits up to timeout for the next byte. It returns ok=false with a
// nil error when nothing arrived in time. A non-positive timeout only takes
// a byte that is already waiting. At end of input the error is io.EOF; other
// read failures are reported as *IOError.
func (in *Input) ReadByteTimeout(timeout time.Duration) (b byte, ok bool, err error) {
	select {
	case <-in.done:
		return 0, false, ErrClosed
	default:
	}

	if timeout <= 0 {
		select {
		case b := <-in.bytes:
			return b, true, nil
		case <-in.dead:
			return 0, false, in.err
		default:
			return 0, false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case b := <-in.bytes:
		return b, true, nil
	case <-in.dead:
		return 0, false, in.err
	case <-in.done:
		return 0, false, ErrClosed
	case <-timer.C:
		return 0, false, nil
	}
}

// Close stops reading. Bytes not yet taken by ReadByteTimeout are dropped.
// When the pending read can be interrupted, Close returns only after the
// reader goroutine has stopped using the source.
func (in *Input) Close() error {
	in.once.Do(func() {
		close(in.done)
		if in.cancel() {
			<-in.dead
		}
	})
	return nil
}
