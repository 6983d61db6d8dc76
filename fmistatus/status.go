// Package fmistatus defines the closed set of FMI status codes shared by the
// wire schema, the dispatcher and the two slave implementations. It plays
// the same role here that the teacher's bazilfuse.Errno constants
// (errors.go) play for kernel error numbers: a small, closed vocabulary that
// every layer above the transport converts to and from.
package fmistatus

import "fmt"

// SlaveError wraps a failure in the machinery surrounding a call —
// dispatch, transport, decode — as opposed to an ordinary non-OK Status
// returned by the backend itself. The two are kept distinct the way the
// teacher keeps a bazilfuse.Errno (a legitimate reply) distinct from a Go
// error returned by the connection layer (a plumbing failure): only the
// latter is ever reason to tear the whole slave down.
type SlaveError struct {
	Op  string
	Err error
}

func (e *SlaveError) Error() string {
	return fmt.Sprintf("fmi slave: %s: %v", e.Op, e.Err)
}

func (e *SlaveError) Unwrap() error { return e.Err }

// Status mirrors the FMI2/FMI3 status enum. Pending is only meaningful for
// FMI2; FMI3 slaves never produce it (spec.md §3).
type Status int

const (
	OK Status = iota
	Warning
	Discard
	Error
	Fatal
	Pending
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "Warning"
	case Discard:
		return "Discard"
	case Error:
		return "Error"
	case Fatal:
		return "Fatal"
	case Pending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// Tag is the short uppercase prefix used by the pretty-printer logging
// bridge (spec.md §4.5 step 1): "[OK] [WARN] [ERROR] [FATAL] [PENDING]
// [DISCARD]".
func (s Status) Tag() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARN"
	case Discard:
		return "DISCARD"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	case Pending:
		return "PENDING"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether i is a recognised status integer. Used at the wire
// decode boundary and by the handshake check (spec.md §4.4): an unrecognised
// integer must be treated distinctly from a recognised-but-denying one.
func Valid(i int) bool {
	return i >= int(OK) && i <= int(Pending)
}
