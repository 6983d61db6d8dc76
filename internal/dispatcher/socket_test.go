package dispatcher

import (
	"testing"

	"github.com/pebbe/zmq4"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// connectReq dials a bare REQ socket at the REP endpoint a BackendSocket
// bound, standing in for the backend process in these tests.
func connectReq(t *testing.T, endpoint string) *zmq4.Socket {
	t.Helper()

	ctx, err := zmq4.NewContext()
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	t.Cleanup(func() { ctx.Term() })

	sock, err := ctx.NewSocket(zmq4.REQ)
	if err != nil {
		t.Fatalf("NewSocket: %v", err)
	}
	t.Cleanup(func() { sock.Close() })

	if err := sock.Connect(endpoint); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return sock
}

func TestSocketHandshakeThenSendAndRecv(t *testing.T) {
	s, err := newBackendSocket("tcp://127.0.0.1:*")
	if err != nil {
		t.Fatalf("newBackendSocket: %v", err)
	}
	defer s.Close()

	req := connectReq(t, s.Endpoint)

	handshake, err := wire.EncodeHandshakeReply(wire.HandshakeReply{Status: 0})
	if err != nil {
		t.Fatalf("EncodeHandshakeReply: %v", err)
	}
	if _, err := req.SendBytes(handshake, 0); err != nil {
		t.Fatalf("req.SendBytes: %v", err)
	}

	reply, err := s.RecvHandshake()
	if err != nil {
		t.Fatalf("RecvHandshake: %v", err)
	}
	if reply.Status != 0 {
		t.Errorf("Status = %d, want 0", reply.Status)
	}

	// The host's first Send replies to the handshake's implicit request.
	cmd := wire.Command{Tag: wire.TagFmi2Terminate, Fmi2: &wire.FMI2Command{Terminate: &wire.FMI2TerminateCommand{}}}
	if err := s.Send(cmd); err != nil {
		t.Fatalf("Send: %v", err)
	}

	framed, err := req.RecvBytes(0)
	if err != nil {
		t.Fatalf("req.RecvBytes: %v", err)
	}
	got, err := wire.DecodeCommand(framed)
	if err != nil {
		t.Fatalf("DecodeCommand: %v", err)
	}
	if got.Tag != wire.TagFmi2Terminate {
		t.Errorf("Tag = %v, want %v", got.Tag, wire.TagFmi2Terminate)
	}

	ret := wire.Return{Tag: wire.RetStatus, Status: &wire.StatusReturn{Status: fmistatus.OK}}
	encoded, err := wire.EncodeReturn(ret)
	if err != nil {
		t.Fatalf("EncodeReturn: %v", err)
	}
	if _, err := req.SendBytes(encoded, 0); err != nil {
		t.Fatalf("req.SendBytes: %v", err)
	}

	back, err := s.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if back.Status == nil || back.Status.Status != fmistatus.OK {
		t.Errorf("Recv returned %+v, want Status OK", back)
	}
}

func TestSocketRecvEmptyFrameIsError(t *testing.T) {
	s, err := newBackendSocket("tcp://127.0.0.1:*")
	if err != nil {
		t.Fatalf("newBackendSocket: %v", err)
	}
	defer s.Close()

	req := connectReq(t, s.Endpoint)
	if _, err := req.SendBytes([]byte{}, 0); err != nil {
		t.Fatalf("req.SendBytes: %v", err)
	}

	if _, err := s.RecvHandshake(); err != wire.ErrEmptyFrame {
		t.Fatalf("RecvHandshake: want ErrEmptyFrame, got %v", err)
	}
}
