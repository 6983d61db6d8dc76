package fmi3

import (
	"testing"

	"github.com/pebbe/zmq4"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/dispatcher"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/logging"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

type fakeBackend struct {
	sock    *zmq4.Socket
	ctx     *zmq4.Context
	respond func(wire.Command) wire.Return
}

func newFakeBackend(t *testing.T, endpoint string, respond func(wire.Command) wire.Return) *fakeBackend {
	t.Helper()

	ctx, err := zmq4.NewContext()
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	sock, err := ctx.NewSocket(zmq4.REQ)
	if err != nil {
		t.Fatalf("NewSocket: %v", err)
	}
	if err := sock.Connect(endpoint); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	fb := &fakeBackend{sock: sock, ctx: ctx, respond: respond}
	t.Cleanup(func() {
		sock.Close()
		ctx.Term()
	})
	return fb
}

func (fb *fakeBackend) handshake(t *testing.T, status int) {
	t.Helper()
	b, err := wire.EncodeHandshakeReply(wire.HandshakeReply{Status: status})
	if err != nil {
		t.Fatalf("EncodeHandshakeReply: %v", err)
	}
	if _, err := fb.sock.SendBytes(b, 0); err != nil {
		t.Fatalf("handshake SendBytes: %v", err)
	}
}

func (fb *fakeBackend) serveOnce(t *testing.T) {
	t.Helper()
	framed, err := fb.sock.RecvBytes(0)
	if err != nil {
		t.Fatalf("RecvBytes: %v", err)
	}
	cmd, err := wire.DecodeCommand(framed)
	if err != nil {
		t.Fatalf("DecodeCommand: %v", err)
	}
	ret := fb.respond(cmd)
	encoded, err := wire.EncodeReturn(ret)
	if err != nil {
		t.Fatalf("EncodeReturn: %v", err)
	}
	if _, err := fb.sock.SendBytes(encoded, 0); err != nil {
		t.Fatalf("SendBytes: %v", err)
	}
}

func newTestSlave(t *testing.T, respond func(wire.Command) wire.Return) (*Slave, *fakeBackend) {
	t.Helper()

	disp, err := dispatcher.NewRemote("tcp://127.0.0.1:*")
	if err != nil {
		t.Fatalf("NewRemote: %v", err)
	}
	t.Cleanup(func() { disp.Close() })

	fb := newFakeBackend(t, disp.Endpoint(), respond)

	handshakeDone := make(chan error, 1)
	go func() {
		fb.handshake(t, 0)
		handshakeDone <- nil
	}()

	if err := disp.AwaitHandshake(); err != nil {
		t.Fatalf("AwaitHandshake: %v", err)
	}
	<-handshakeDone

	logger, err := logging.NewRegistry().Register("test-instance", logging.NewBlacklist())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	return &Slave{dispatcher: disp, logger: logger}, fb
}

func TestSlaveGetFloat64(t *testing.T) {
	s, fb := newTestSlave(t, func(cmd wire.Command) wire.Return {
		if cmd.Tag != wire.TagFmi3GetFloat64 {
			t.Fatalf("unexpected command tag %v", cmd.Tag)
		}
		return wire.Return{Tag: wire.RetGetFloat64, Fmi3: &wire.FMI3Return{GetFloat64: &wire.FMI3GetFloat64Return{
			Status: fmistatus.OK,
			Values: []float64{3.0},
		}}}
	})

	done := make(chan struct{})
	go func() { fb.serveOnce(t); close(done) }()

	status, values, err := s.GetFloat64([]wire.ValueReference{2})
	<-done

	if err != nil {
		t.Fatalf("GetFloat64: %v", err)
	}
	if status != fmistatus.OK {
		t.Errorf("status = %v, want OK", status)
	}
	if len(values) != 1 || values[0] != 3.0 {
		t.Errorf("values = %v, want [3.0]", values)
	}
}

func TestSlaveGetSetUInt64(t *testing.T) {
	s, fb := newTestSlave(t, func(cmd wire.Command) wire.Return {
		switch cmd.Tag {
		case wire.TagFmi3GetUInt64:
			return wire.Return{Tag: wire.RetGetUInt64, Fmi3: &wire.FMI3Return{GetUInt64: &wire.FMI3GetUInt64Return{
				Status: fmistatus.OK,
				Values: []uint64{42},
			}}}
		case wire.TagFmi3SetUInt64:
			if cmd.Fmi3.SetUInt64.Values[0] != 7 {
				t.Fatalf("SetUInt64 values = %v, want [7]", cmd.Fmi3.SetUInt64.Values)
			}
			return wire.Return{Tag: wire.RetStatus, Status: &wire.StatusReturn{Status: fmistatus.OK}}
		default:
			t.Fatalf("unexpected command tag %v", cmd.Tag)
			return wire.Return{}
		}
	})

	done := make(chan struct{})
	go func() { fb.serveOnce(t); close(done) }()
	status, values, err := s.GetUInt64([]wire.ValueReference{1})
	<-done
	if err != nil {
		t.Fatalf("GetUInt64: %v", err)
	}
	if status != fmistatus.OK || len(values) != 1 || values[0] != 42 {
		t.Errorf("GetUInt64 = %v, %v, want OK, [42]", status, values)
	}

	done = make(chan struct{})
	go func() { fb.serveOnce(t); close(done) }()
	status, err = s.SetUInt64([]wire.ValueReference{1}, []uint64{7})
	<-done
	if err != nil {
		t.Fatalf("SetUInt64: %v", err)
	}
	if status != fmistatus.OK {
		t.Errorf("SetUInt64 status = %v, want OK", status)
	}
}

func TestSlaveDoStepReportsEarlyReturn(t *testing.T) {
	s, fb := newTestSlave(t, func(cmd wire.Command) wire.Return {
		if cmd.Tag != wire.TagFmi3DoStep {
			t.Fatalf("unexpected command tag %v", cmd.Tag)
		}
		return wire.Return{Tag: wire.RetStatus, Fmi3: &wire.FMI3Return{DoStep: &wire.FMI3DoStepReturn{
			Status:             fmistatus.OK,
			EarlyReturn:        true,
			LastSuccessfulTime: 0.005,
		}}}
	})

	done := make(chan struct{})
	go func() { fb.serveOnce(t); close(done) }()

	result, err := s.DoStep(0.0, 0.01, false)
	<-done

	if err != nil {
		t.Fatalf("DoStep: %v", err)
	}
	if !result.EarlyReturn {
		t.Error("expected EarlyReturn to be true")
	}
	if result.LastSuccessfulTime != 0.005 {
		t.Errorf("LastSuccessfulTime = %v, want 0.005", result.LastSuccessfulTime)
	}
}
