package entrypoint

import (
	"dominicbreuker/kiloraw/pkg/terminal"
	"time"
)

// sessionInterface is the part of *terminal.Session that run relies on.
type sessionInterface interface {
	Close() error
	Timeout() time.Duration
}

// sessionOpener is a function type for opening raw sessions.
type sessionOpener func(terminal.Device, terminal.Mode) (sessionInterface, error)

// realSessionOpener returns the session opener used in production.
func realSessionOpener() sessionOpener {
	return func(dev terminal.Device, mode terminal.Mode) (sessionInterface, error) {
		s, err := terminal.Open(dev, mode)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
