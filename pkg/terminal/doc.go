// Package terminal manages a raw-mode session on the controlling terminal.
//
// A Session captures the terminal attributes on Open, switches the device to
// the requested Mode and puts the captured attributes back on Close. Close is
// meant to be deferred right after a successful Open so that every exit path,
// including a panic, restores the terminal.
//
// Input reads single bytes with a bounded wait, which lets a caller loop
// around ReadByteTimeout and still observe shutdown requests while no key
// is pressed.
package terminal
