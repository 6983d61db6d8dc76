package dispatcher

import (
	"testing"
	"time"
)

func TestStartMissingArgvIsError(t *testing.T) {
	if _, err := Start(nil, ".", "tcp://127.0.0.1:5555", "5555"); err == nil {
		t.Fatal("Start with empty argv: want error, got nil")
	}
}

func TestMonitorReportsCleanExit(t *testing.T) {
	bp, err := Start([]string{"true"}, ".", "tcp://127.0.0.1:5555", "5555")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-bp.Monitor():
		cause := bp.ExitCause()
		if cause.kind != exitKindExited || cause.code != 0 {
			t.Errorf("cause = %+v, want exited 0", cause)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for subprocess exit")
	}
}

func TestMonitorReportsNonZeroExit(t *testing.T) {
	bp, err := Start([]string{"false"}, ".", "tcp://127.0.0.1:5555", "5555")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-bp.Monitor():
		cause := bp.ExitCause()
		if cause.kind != exitKindExited || cause.code == 0 {
			t.Errorf("cause = %+v, want a non-zero exit code", cause)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for subprocess exit")
	}
}

// TestMonitorStaysReadyAfterFirstObservation guards against a regression
// where Monitor's channel, once drained by one caller, never became ready
// again for a later caller on the same dead backend.
func TestMonitorStaysReadyAfterFirstObservation(t *testing.T) {
	bp, err := Start([]string{"true"}, ".", "tcp://127.0.0.1:5555", "5555")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-bp.Monitor():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for subprocess exit")
	}

	select {
	case <-bp.Monitor():
		if cause := bp.ExitCause(); cause.kind != exitKindExited || cause.code != 0 {
			t.Errorf("cause = %+v, want exited 0", cause)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Monitor did not stay ready on a second observation")
	}
}

func TestAliveThenDead(t *testing.T) {
	bp, err := Start([]string{"sleep", "5"}, ".", "tcp://127.0.0.1:5555", "5555")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if !bp.Alive() {
		t.Fatal("expected freshly started process to be alive")
	}

	if err := bp.Kill(); err != nil {
		t.Fatalf("Kill: %v", err)
	}

	<-bp.Monitor()
}

func TestExitCauseString(t *testing.T) {
	cases := []struct {
		cause ExitCause
		want  string
	}{
		{Exited(0), "exited with code 0"},
		{Signaled(9), "killed by signal 9"},
	}
	for _, c := range cases {
		if got := c.cause.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
