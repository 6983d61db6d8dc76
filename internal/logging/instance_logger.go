package logging

import (
	"context"
	"errors"

	"github.com/jacobsa/reqtrace"
	"github.com/jacobsa/timeutil"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
)

// ErrUIDSpaceExhausted is returned by Registry.Register once the UID
// counter has wrapped (spec.md §8).
var ErrUIDSpaceExhausted = errors.New("logging: instance UID space exhausted")

// Callback is implemented by the C ABI layer, which owns the cgo glue
// needed to invoke the importer's function pointer with locally-owned
// C-string buffers (spec.md §4.5 step 3). Kept as an interface here so this
// package stays free of cgo, the same separation of concerns the teacher
// draws between fuseops (pure Go request/response structs) and the
// bazilfuse-facing conversion code in server.go.
type Callback interface {
	Invoke(instanceName string, status fmistatus.Status, category, message string)
}

// InstanceLogger is the per-instance logging state described in spec.md
// §4.5: "a callback function pointer provided by the importer, an opaque
// environment pointer provided by the importer [folded into Callback], and
// a category filter".
type InstanceLogger struct {
	uid          UID
	instanceName string
	filter       *CategoryFilter
	callback     Callback
	clock        timeutil.Clock

	ctx    context.Context
	report reqtrace.ReportFunc
}

// UID returns the instance's registry key.
func (il *InstanceLogger) UID() UID { return il.uid }

// SetCallback installs the importer's callback, done once at instantiation
// time after the logger is registered (spec.md §4.7: "registers the
// importer callback with the slave's logger").
func (il *InstanceLogger) SetCallback(cb Callback) {
	il.callback = cb
}

// SetInstanceName updates the name used in callback invocations, matching
// the rename capability spec.md §9 calls out for the registry
// ("set_instance_name").
func (il *InstanceLogger) SetInstanceName(name string) {
	il.instanceName = name
}

// Filter exposes the instance's category filter for SetDebugLogging / the
// enable/disable-categories family (spec.md §4.5).
func (il *InstanceLogger) Filter() *CategoryFilter {
	return il.filter
}

// Log performs three steps:
//  1. pretty-print (if the trace gate is on)
//  2. stop if the filter rejects the category
//  3. format into owned buffers and invoke the importer callback
//
// Step 3's buffer ownership is the Callback implementation's
// responsibility (see internal/logging.Callback and the main package's cgo
// adapter); this method only decides whether to call it.
func (il *InstanceLogger) Log(status fmistatus.Status, category Category, message string) {
	_, span := reqtrace.StartSpan(il.ctx, "Log:"+category.String())
	defer span(nil)

	prettyLogger.Printf("[%s] %s %s: %s", il.clock.Now().Format("15:04:05.000000"), status.Tag(), category, message)

	if !il.filter.Enabled(category) {
		return
	}

	if il.callback == nil {
		return
	}

	il.callback.Invoke(il.instanceName, status, category.String(), message)
}
