package dispatcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// Dispatcher is the combination of a bound BackendSocket and, for the Local
// variant, the backend subprocess that owns the other end of it. It is the
// Go analogue of mounted_file_system.go's Mount: the thing a slave talks to
// without needing to know whether the backend lives in a child process or
// across a network (spec.md §4.4).
//
// Every blocking operation on a Local dispatcher races the socket op
// against the subprocess's exit, the same pattern connection.go's ReadOp
// uses to race a fuse device read against the kernel unmounting out from
// under it.
type Dispatcher struct {
	sock *BackendSocket
	proc *BackendSubprocess // nil for a Remote dispatcher
}

var (
	// ErrHandshakeDenied is returned when the backend's handshake carries a
	// recognized-but-non-OK status (spec.md §4.4).
	ErrHandshakeDenied = errors.New("dispatcher: handshake denied by backend")

	// ErrHandshakeMalformed is returned when the handshake status is not one
	// of the recognized values.
	ErrHandshakeMalformed = errors.New("dispatcher: malformed handshake reply")
)

// ErrBackendExited wraps the ExitCause observed when a backend subprocess
// terminates while a socket operation was still outstanding against it.
type ErrBackendExited struct {
	Cause ExitCause
}

func (e *ErrBackendExited) Error() string {
	return fmt.Sprintf("dispatcher: backend exited while awaiting a reply: %s", e.Cause)
}

// NewLocal spawns argv as a subprocess in resourcesDir and binds a loopback
// socket for it to connect back to, per spec.md §4.1/§4.4's Local mode.
func NewLocal(resourcesDir string, argv []string) (*Dispatcher, error) {
	sock, err := newBackendSocket("tcp://127.0.0.1:*")
	if err != nil {
		return nil, err
	}

	port, err := endpointPort(sock.Endpoint)
	if err != nil {
		sock.Close()
		return nil, err
	}

	proc, err := Start(argv, resourcesDir, sock.Endpoint, port)
	if err != nil {
		sock.Close()
		return nil, err
	}

	return &Dispatcher{sock: sock, proc: proc}, nil
}

// NewRemote binds a socket for a backend that connects from elsewhere, per
// spec.md §4.4's Remote mode, and returns without waiting; AwaitHandshake
// does the waiting. It does not announce the bound endpoint, which is
// available through Endpoint. There is no subprocess to race socket
// operations against.
func NewRemote(bindAddr string) (*Dispatcher, error) {
	sock, err := newBackendSocket(bindAddr)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{sock: sock}, nil
}

// Endpoint is the address a Remote dispatcher's peer should connect to.
func (d *Dispatcher) Endpoint() string {
	return d.sock.Endpoint
}

func endpointPort(endpoint string) (string, error) {
	i := strings.LastIndex(endpoint, ":")
	if i < 0 || i == len(endpoint)-1 {
		return "", fmt.Errorf("dispatcher: cannot extract port from endpoint %q", endpoint)
	}
	return endpoint[i+1:], nil
}

// AwaitHandshake receives the one unsolicited message a backend sends
// before the host has sent anything (spec.md §4.4, §6), racing it against
// the subprocess's own exit if this is a Local dispatcher.
func (d *Dispatcher) AwaitHandshake() error {
	type result struct {
		reply wire.HandshakeReply
		err   error
	}

	resultCh := make(chan result, 1)
	go func() {
		reply, err := d.sock.RecvHandshake()
		resultCh <- result{reply, err}
	}()

	select {
	case r := <-resultCh:
		if r.err != nil {
			return r.err
		}
		return interpretHandshake(r.reply)
	case <-d.monitorOrNil():
		return &ErrBackendExited{Cause: d.proc.ExitCause()}
	}
}

func interpretHandshake(reply wire.HandshakeReply) error {
	if !fmistatus.Valid(reply.Status) {
		return ErrHandshakeMalformed
	}
	if fmistatus.Status(reply.Status) != fmistatus.OK {
		return ErrHandshakeDenied
	}
	return nil
}

// monitorOrNil returns the subprocess exit-signal channel for a Local
// dispatcher, or a channel that's never ready for a Remote one, so a
// single select statement works for both.
func (d *Dispatcher) monitorOrNil() <-chan struct{} {
	if d.proc == nil {
		return nil
	}
	return d.proc.Monitor()
}

// Send encodes and transmits cmd, racing the send against the backend's
// exit.
func (d *Dispatcher) Send(cmd wire.Command) error {
	errCh := make(chan error, 1)
	go func() { errCh <- d.sock.Send(cmd) }()

	select {
	case err := <-errCh:
		return err
	case <-d.monitorOrNil():
		return &ErrBackendExited{Cause: d.proc.ExitCause()}
	}
}

// Recv receives and decodes one Return, racing the receive against the
// backend's exit.
func (d *Dispatcher) Recv() (wire.Return, error) {
	type result struct {
		ret wire.Return
		err error
	}

	resultCh := make(chan result, 1)
	go func() {
		ret, err := d.sock.Recv()
		resultCh <- result{ret, err}
	}()

	select {
	case r := <-resultCh:
		return r.ret, r.err
	case <-d.monitorOrNil():
		return wire.Return{}, &ErrBackendExited{Cause: d.proc.ExitCause()}
	}
}

// SendAndRecv performs an atomic send-then-receive, racing the whole round
// trip against the backend's exit.
func (d *Dispatcher) SendAndRecv(cmd wire.Command) (wire.Return, error) {
	type result struct {
		ret wire.Return
		err error
	}

	resultCh := make(chan result, 1)
	go func() {
		ret, err := d.sock.SendAndRecv(cmd)
		resultCh <- result{ret, err}
	}()

	select {
	case r := <-resultCh:
		return r.ret, r.err
	case <-d.monitorOrNil():
		return wire.Return{}, &ErrBackendExited{Cause: d.proc.ExitCause()}
	}
}

// Close tears the dispatcher down: the socket always, and for a Local
// dispatcher, the backend subprocess if it's still alive.
func (d *Dispatcher) Close() error {
	if d.proc != nil && d.proc.Alive() {
		_ = d.proc.Kill()
	}
	return d.sock.Close()
}
