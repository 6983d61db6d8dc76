package dispatcher

import (
	"errors"
	"testing"

	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

func TestEndpointPort(t *testing.T) {
	port, err := endpointPort("tcp://127.0.0.1:34567")
	if err != nil {
		t.Fatalf("endpointPort: %v", err)
	}
	if port != "34567" {
		t.Errorf("port = %q, want %q", port, "34567")
	}
}

func TestEndpointPortMalformed(t *testing.T) {
	if _, err := endpointPort("not-an-endpoint"); err == nil {
		t.Fatal("endpointPort: want error for an endpoint with no ':'")
	}
}

func TestInterpretHandshake(t *testing.T) {
	if err := interpretHandshake(wire.HandshakeReply{Status: 0}); err != nil {
		t.Errorf("status 0: want nil, got %v", err)
	}
	if err := interpretHandshake(wire.HandshakeReply{Status: 3}); !errors.Is(err, ErrHandshakeDenied) {
		t.Errorf("status 3: want ErrHandshakeDenied, got %v", err)
	}
	if err := interpretHandshake(wire.HandshakeReply{Status: 99}); !errors.Is(err, ErrHandshakeMalformed) {
		t.Errorf("status 99: want ErrHandshakeMalformed, got %v", err)
	}
}

func TestNewLocalAndAwaitHandshake(t *testing.T) {
	// A one-line Python-free stand-in backend: sh connects nowhere on its
	// own, so instead drive the dispatcher against a script that never
	// sends a handshake and exits immediately, exercising the
	// ErrBackendExited path without depending on any interpreter beyond a
	// POSIX shell.
	d, err := NewLocal(".", []string{"sh", "-c", "exit 0"})
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	defer d.Close()

	err = d.AwaitHandshake()
	if err == nil {
		t.Fatal("AwaitHandshake: want an error, the backend never connects")
	}

	var exited *ErrBackendExited
	if !errors.As(err, &exited) {
		t.Fatalf("AwaitHandshake: want *ErrBackendExited, got %T: %v", err, err)
	}
}
