package dispatcher

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// pollPeriod is a liveness-poll cadence adapted from the teacher's
// fuseops.reportWhenPIDGone (50ms there). Nothing in this package polls
// with it: Monitor's channel is closed by the goroutine waiting on
// cmd.Wait.
const pollPeriod = 100 * time.Millisecond

// ExitCause classifies how a backend subprocess ended, per spec.md §4.3:
// "on exit, the cause is classified: normal exit with code, termination by
// signal, or an undetermined OS-specific status."
type ExitCause struct {
	kind   exitKind
	code   int
	signal int
}

type exitKind int

const (
	exitKindExited exitKind = iota
	exitKindSignaled
	exitKindOther
	exitKindUndetermined
)

func Exited(code int) ExitCause     { return ExitCause{kind: exitKindExited, code: code} }
func Signaled(sig int) ExitCause    { return ExitCause{kind: exitKindSignaled, signal: sig} }
func otherStatus(status int) ExitCause {
	return ExitCause{kind: exitKindOther, code: status}
}
func undetermined() ExitCause { return ExitCause{kind: exitKindUndetermined} }

func (c ExitCause) String() string {
	switch c.kind {
	case exitKindExited:
		return fmt.Sprintf("exited with code %d", c.code)
	case exitKindSignaled:
		return fmt.Sprintf("killed by signal %d", c.signal)
	case exitKindOther:
		return fmt.Sprintf("ended with unrecognized status %d", c.code)
	default:
		return "ended for an undetermined reason"
	}
}

// BackendSubprocess wraps a single spawn of the user-supplied backend
// command, grounded directly on mount_darwin.go's callMount: build an
// *exec.Command with the parent's environment plus extra variables, start
// it, and track completion from a background goroutine rather than
// blocking the caller on cmd.Wait.
type BackendSubprocess struct {
	cmd *exec.Cmd

	done  chan struct{} // closed exactly once, by wait()
	mu    sync.Mutex
	cause ExitCause // GUARDED_BY(mu); valid once done is closed
}

// Start launches argv[0] with argv[1:] as arguments, in dir, with the
// dispatcher endpoint exposed through the two environment variables
// spec.md §4.1 names: UNIFMU_DISPATCHER_ENDPOINT and
// UNIFMU_DISPATCHER_ENDPOINT_PORT.
func Start(argv []string, dir string, endpoint string, port string) (*BackendSubprocess, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("dispatcher: empty argv")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"UNIFMU_DISPATCHER_ENDPOINT="+endpoint,
		"UNIFMU_DISPATCHER_ENDPOINT_PORT="+port,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("dispatcher: starting backend %v: %w", argv, err)
	}

	bp := &BackendSubprocess{cmd: cmd, done: make(chan struct{})}
	go bp.wait()

	return bp, nil
}

func (b *BackendSubprocess) wait() {
	err := b.cmd.Wait()

	b.mu.Lock()
	b.cause = classifyExit(err)
	b.mu.Unlock()

	close(b.done)
}

func classifyExit(err error) ExitCause {
	if err == nil {
		return Exited(0)
	}

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return undetermined()
	}

	status, ok := exitErr.Sys().(unix.WaitStatus)
	if !ok {
		return otherStatus(exitErr.ExitCode())
	}

	switch {
	case status.Exited():
		return Exited(status.ExitStatus())
	case status.Signaled():
		return Signaled(int(status.Signal()))
	default:
		return undetermined()
	}
}

// Monitor returns a channel that is closed once, when the backend process
// exits, whether or not that was expected. Unlike a channel fed by a single
// buffered send, a closed channel stays ready forever: every later call
// against an already-dead backend observes the closure immediately instead
// of blocking on a channel some earlier call already drained. The
// dispatcher races this channel against socket operations (spec.md §5) and
// reads the observed cause via ExitCause once it fires.
func (b *BackendSubprocess) Monitor() <-chan struct{} {
	return b.done
}

// ExitCause reports how the backend exited. Only meaningful once Monitor's
// channel has fired; before that it returns the zero ExitCause.
func (b *BackendSubprocess) ExitCause() ExitCause {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cause
}

// PID reports the backend process's OS PID, mirroring fuseops's use of
// unix.Kill(pid, 0) for liveness probing in tests and diagnostics.
func (b *BackendSubprocess) PID() int {
	return b.cmd.Process.Pid
}

// Alive polls the process's liveness via kill(pid, 0), the same technique
// fuseops/common_op.go's reportWhenPIDGone uses to detect process death
// without relying on a blocking Wait.
func (b *BackendSubprocess) Alive() bool {
	err := unix.Kill(b.PID(), 0)
	return err != unix.ESRCH
}

// Kill terminates the backend process. Used when the dispatcher itself is
// torn down (FreeInstance) while the backend is still running.
func (b *BackendSubprocess) Kill() error {
	if b.cmd.Process == nil {
		return nil
	}
	return b.cmd.Process.Kill()
}
