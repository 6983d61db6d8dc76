package dispatcher

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pebbe/zmq4"

	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// BackendSocket is the request/reply transport described in spec.md §4.2:
// "Exposes: create(endpoint) -> Socket, send(msg), recv() -> msg,
// send_and_recv(msg) -> msg. The transport is request/reply with built-in
// framing; the socket is bound (listener side) at creation, so the returned
// endpoint string contains the bound port."
//
// Grounded on original_source's backend_socket.rs, which wraps a ZeroMQ
// RepSocket; here wrapped around github.com/pebbe/zmq4's REP socket, the
// idiomatic Go cgo binding for the same ZeroMQ REQ/REP pattern (see
// SPEC_FULL.md's Domain Stack).
type BackendSocket struct {
	// mu enforces spec.md §4.2's ordering invariant: "a send_and_recv is
	// atomic with respect to this socket -- no other send or recv is legal on
	// the same socket during the call."
	mu sync.Mutex

	ctx  *zmq4.Context
	sock *zmq4.Socket

	// Endpoint is the bound endpoint, including the OS-chosen port (spec.md
	// §4.2).
	Endpoint string
}

var (
	ErrBindFailed    = errors.New("dispatcher: socket bind failed")
	ErrReceiveFailed = errors.New("dispatcher: socket receive failed")
)

// ErrSendFailed carries the encoded command's tag for diagnostics, per
// spec.md §4.2: "send failure (with the encoded command tag in the message
// for diagnostics)".
type ErrSendFailed struct {
	Tag wire.CommandTag
	Err error
}

func (e *ErrSendFailed) Error() string {
	return fmt.Sprintf("dispatcher: send failed for command tag %d: %v", e.Tag, e.Err)
}

func (e *ErrSendFailed) Unwrap() error { return e.Err }

// newBackendSocket binds a REP socket at the given address (e.g.
// "tcp://127.0.0.1:*" for an OS-chosen loopback port, or "tcp://*:*" for any
// interface, per spec.md §4.4's local/remote split).
func newBackendSocket(bindAddr string) (*BackendSocket, error) {
	ctx, err := zmq4.NewContext()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBindFailed, err)
	}

	sock, err := ctx.NewSocket(zmq4.REP)
	if err != nil {
		ctx.Term()
		return nil, fmt.Errorf("%w: %v", ErrBindFailed, err)
	}

	if err := sock.Bind(bindAddr); err != nil {
		sock.Close()
		ctx.Term()
		return nil, fmt.Errorf("%w: %v", ErrBindFailed, err)
	}

	endpoint, err := sock.GetLastEndpoint()
	if err != nil {
		sock.Close()
		ctx.Term()
		return nil, fmt.Errorf("%w: %v", ErrBindFailed, err)
	}

	return &BackendSocket{ctx: ctx, sock: sock, Endpoint: endpoint}, nil
}

// Close releases the socket and its context.
func (s *BackendSocket) Close() error {
	err := s.sock.Close()
	s.ctx.Term()
	return err
}

// recvFrame reads one framed message. ZeroMQ provides message framing
// itself; a zero-length frame is reported here as wire.ErrEmptyFrame, and
// decode failures surface one level up, at the Command/Return decode call
// sites.
func (s *BackendSocket) recvFrame() ([]byte, error) {
	b, err := s.sock.RecvBytes(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReceiveFailed, err)
	}
	if len(b) == 0 {
		return nil, wire.ErrEmptyFrame
	}
	return b, nil
}

func (s *BackendSocket) sendFrame(b []byte, tag wire.CommandTag) error {
	if _, err := s.sock.SendBytes(b, 0); err != nil {
		return &ErrSendFailed{Tag: tag, Err: err}
	}
	return nil
}

// RecvHandshake performs the handshake recv: the one message a backend
// sends unsolicited, before the host has sent anything (spec.md §4.4,
// §6). Must be called exactly once, before any Send/Recv/SendAndRecv.
func (s *BackendSocket) RecvHandshake() (wire.HandshakeReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.recvFrame()
	if err != nil {
		return wire.HandshakeReply{}, err
	}
	return wire.DecodeHandshakeReply(b)
}

// Send encodes and sends cmd. Must be paired with a previous Recv, except
// the very first Send of a session, which replies to the handshake.
func (s *BackendSocket) Send(cmd wire.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendLocked(cmd)
}

func (s *BackendSocket) sendLocked(cmd wire.Command) error {
	b, err := wire.EncodeCommand(cmd)
	if err != nil {
		return &ErrSendFailed{Tag: cmd.Tag, Err: err}
	}
	return s.sendFrame(b, cmd.Tag)
}

// Recv receives and decodes one Return. Must be preceded by exactly one
// Send.
func (s *BackendSocket) Recv() (wire.Return, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recvLocked()
}

func (s *BackendSocket) recvLocked() (wire.Return, error) {
	b, err := s.recvFrame()
	if err != nil {
		return wire.Return{}, err
	}
	return wire.DecodeReturn(b)
}

// SendAndRecv is the atomic send-then-receive helper (spec.md §4.2).
func (s *BackendSocket) SendAndRecv(cmd wire.Command) (wire.Return, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sendLocked(cmd); err != nil {
		return wire.Return{}, err
	}
	return s.recvLocked()
}
