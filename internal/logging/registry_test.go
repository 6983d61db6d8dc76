package logging_test

import (
	"testing"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/logging"
)

type fakeCallback struct {
	calls []fakeCall
}

type fakeCall struct {
	instanceName, category, message string
	status                          fmistatus.Status
}

func (f *fakeCallback) Invoke(instanceName string, status fmistatus.Status, category, message string) {
	f.calls = append(f.calls, fakeCall{instanceName, category, message, status})
}

func TestRegisterAssignsNonZeroMonotonicUIDs(t *testing.T) {
	r := newTestRegistry(t)

	a, err := r.Register("a", logging.NewBlacklist())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	b, err := r.Register("b", logging.NewBlacklist())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if a.UID() == 0 {
		t.Error("UID 0 is reserved for \"no logger\" and must never be issued")
	}
	if b.UID() <= a.UID() {
		t.Errorf("expected monotonically increasing UIDs, got %d then %d", a.UID(), b.UID())
	}
}

func TestUnregisterRemovesFromLookup(t *testing.T) {
	r := newTestRegistry(t)

	il, err := r.Register("a", logging.NewBlacklist())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, ok := r.Lookup(il.UID()); !ok {
		t.Fatal("expected freshly registered instance to be found")
	}

	r.Unregister(il.UID())

	if _, ok := r.Lookup(il.UID()); ok {
		t.Error("expected instance to be gone after Unregister")
	}
}

func TestLogDeliversToCallbackWhenEnabled(t *testing.T) {
	il, err := logging.Global.Register("arithmetic", logging.NewBlacklist())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defer logging.Global.Unregister(il.UID())

	cb := &fakeCallback{}
	il.SetCallback(cb)

	il.Log(fmistatus.Warning, logging.CategoryLogStatusWarning, "step small")

	if len(cb.calls) != 1 {
		t.Fatalf("expected exactly one callback invocation, got %d", len(cb.calls))
	}
	if cb.calls[0].message != "step small" {
		t.Errorf("message = %q, want %q", cb.calls[0].message, "step small")
	}
}

func TestLogSuppressedWhenFilterRejects(t *testing.T) {
	il, err := logging.Global.Register("quiet", logging.NewWhitelist())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defer logging.Global.Unregister(il.UID())

	cb := &fakeCallback{}
	il.SetCallback(cb)

	il.Log(fmistatus.OK, logging.CategoryLogEvents, "should not be delivered")

	if len(cb.calls) != 0 {
		t.Fatalf("expected no callback invocations, got %d", len(cb.calls))
	}
}

// newTestRegistry gives each test its own Registry so UID sequences don't
// interleave with logging.Global, used by tests that assert on relative UID
// ordering.
func newTestRegistry(t *testing.T) *logging.Registry {
	t.Helper()
	return logging.NewRegistry()
}
