package fmi2

import (
	"testing"
	"time"

	"github.com/pebbe/zmq4"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/dispatcher"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/logging"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// fakeBackend drives the REQ side of the protocol from the test, standing
// in for a real subprocess: it sends the unsolicited handshake, then
// answers every Command it receives with whatever respond returns.
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

// serveOnce receives one Command and replies with fb.respond's result.
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

// newTestSlave binds a Remote dispatcher, performs the handshake against a
// fakeBackend, and returns a ready-to-use Slave plus the fakeBackend so the
// test can script further responses.
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

	return &Slave{dispatcher: disp, logger: logger, dostepStatus: fmistatus.OK}, fb
}

func TestSlaveGetReal(t *testing.T) {
	s, fb := newTestSlave(t, func(cmd wire.Command) wire.Return {
		if cmd.Tag != wire.TagFmi2GetReal {
			t.Fatalf("unexpected command tag %v", cmd.Tag)
		}
		return wire.Return{Tag: wire.RetGetReal, Fmi2: &wire.FMI2Return{GetReal: &wire.FMI2GetRealReturn{
			Status: fmistatus.OK,
			Values: []float64{3.0},
		}}}
	})

	done := make(chan struct{})
	go func() { fb.serveOnce(t); close(done) }()

	status, values, err := s.GetReal([]wire.ValueReference{2})
	<-done

	if err != nil {
		t.Fatalf("GetReal: %v", err)
	}
	if status != fmistatus.OK {
		t.Errorf("status = %v, want OK", status)
	}
	if len(values) != 1 || values[0] != 3.0 {
		t.Errorf("values = %v, want [3.0]", values)
	}
}

func TestSlaveDoStepCachesLastSuccessfulTime(t *testing.T) {
	s, fb := newTestSlave(t, func(cmd wire.Command) wire.Return {
		return wire.Return{Tag: wire.RetStatus, Status: &wire.StatusReturn{Status: fmistatus.OK}}
	})

	done := make(chan struct{})
	go func() { fb.serveOnce(t); close(done) }()

	status, err := s.DoStep(0.0, 0.01, false)
	<-done
	if err != nil {
		t.Fatalf("DoStep: %v", err)
	}
	if status != fmistatus.OK {
		t.Fatalf("status = %v, want OK", status)
	}

	if s.lastSuccessfulTime == nil || *s.lastSuccessfulTime != 0.01 {
		t.Errorf("lastSuccessfulTime = %v, want 0.01", s.lastSuccessfulTime)
	}
	if s.dostepStatus != fmistatus.OK {
		t.Errorf("dostepStatus = %v, want OK", s.dostepStatus)
	}
}

func TestSlaveDispatchHandlesReentrantLog(t *testing.T) {
	calls := 0
	s, fb := newTestSlave(t, func(cmd wire.Command) wire.Return {
		calls++
		switch calls {
		case 1:
			if cmd.Tag != wire.TagFmi2Terminate {
				t.Fatalf("unexpected first command tag %v", cmd.Tag)
			}
			return wire.Return{Tag: wire.RetLog, Log: &wire.LogReply{Status: fmistatus.OK, Category: "logEvents", Message: "about to terminate"}}
		case 2:
			if cmd.Tag != wire.TagCallbackContinue {
				t.Fatalf("expected CallbackContinue, got %v", cmd.Tag)
			}
			return wire.Return{Tag: wire.RetStatus, Status: &wire.StatusReturn{Status: fmistatus.OK}}
		default:
			t.Fatalf("unexpected extra call %d", calls)
			return wire.Return{}
		}
	})

	done := make(chan struct{})
	go func() {
		fb.serveOnce(t)
		fb.serveOnce(t)
		close(done)
	}()

	status, err := s.Terminate()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for fake backend")
	}

	if err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	if status != fmistatus.OK {
		t.Errorf("status = %v, want OK", status)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
