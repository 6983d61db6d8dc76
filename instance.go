package main

/*
#include <stdlib.h>
#include "fmi2_platform.h"
#include "fmi3_platform.h"

static void invoke_fmi2_logger(fmi2CallbackLogger logger, fmi2ComponentEnvironment env,
                                fmi2String instanceName, fmi2Status status,
                                fmi2String category, fmi2String message) {
    logger(env, instanceName, status, category, "%s", message);
}
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/cstr"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/fmi2"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/fmi3"
)

// fmi2Instance bundles everything an fmi2Component handle points at: the
// slave itself, the owned string buffer its Get*String calls write into,
// and the importer's logging callback. This is the Go-side payload behind
// a runtime/cgo.Handle, the modern replacement for the
// map[uintptr]*T-guarded-by-a-mutex pattern connection.go uses for its
// cancelFuncs table — same role (an opaque, safely-reusable handle keying a
// live Go object), but simpler. Handle.Value and Handle.Delete panic on a
// stale handle, so lookups go through state_handle.go's recovering wrappers.
type fmi2Instance struct {
	slave    *fmi2.Slave
	strings  cstr.Buffer
	callback C.fmi2CallbackLogger
	env      C.fmi2ComponentEnvironment
}

func (h *fmi2Instance) Invoke(instanceName string, status fmistatus.Status, category, message string) {
	if h.callback == nil {
		return
	}

	cName := C.CString(instanceName)
	defer C.free(unsafe.Pointer(cName))
	cCategory := C.CString(category)
	defer C.free(unsafe.Pointer(cCategory))
	cMessage := C.CString(message)
	defer C.free(unsafe.Pointer(cMessage))

	C.invoke_fmi2_logger(h.callback, h.env, cName, fmi2StatusToC(status), cCategory, cMessage)
}

type fmi3Instance struct {
	slave    *fmi3.Slave
	strings  cstr.Buffer
	callback C.fmi3LogMessageCallback
	env      C.fmi3InstanceEnvironment
}

func (h *fmi3Instance) Invoke(instanceName string, status fmistatus.Status, category, message string) {
	if h.callback == nil {
		return
	}

	cCategory := C.CString(category)
	defer C.free(unsafe.Pointer(cCategory))
	cMessage := C.CString(message)
	defer C.free(unsafe.Pointer(cMessage))

	h.callback(h.env, fmi3StatusToC(status), cCategory, cMessage)
}

func fmi2StatusToC(s fmistatus.Status) C.fmi2Status {
	switch s {
	case fmistatus.OK:
		return C.fmi2OK
	case fmistatus.Warning:
		return C.fmi2Warning
	case fmistatus.Discard:
		return C.fmi2Discard
	case fmistatus.Error:
		return C.fmi2Error
	case fmistatus.Fatal:
		return C.fmi2Fatal
	case fmistatus.Pending:
		return C.fmi2Pending
	default:
		return C.fmi2Error
	}
}

func fmi3StatusToC(s fmistatus.Status) C.fmi3Status {
	switch s {
	case fmistatus.OK:
		return C.fmi3OK
	case fmistatus.Warning:
		return C.fmi3Warning
	case fmistatus.Discard:
		return C.fmi3Discard
	case fmistatus.Error:
		return C.fmi3Error
	case fmistatus.Fatal, fmistatus.Pending:
		// FMI3 has no Pending status (spec.md §3); a backend that still
		// sends one is a protocol violation, surfaced as Fatal.
		return C.fmi3Fatal
	default:
		return C.fmi3Error
	}
}

func newHandle2(h *fmi2Instance) C.fmi2Component {
	return C.fmi2Component(unsafe.Pointer(cgo.NewHandle(h)))
}

func lookupHandle2(c C.fmi2Component) (*fmi2Instance, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := safeHandleValue(cgo.Handle(uintptr(unsafe.Pointer(c))))
	if !ok {
		return nil, false
	}
	h, ok := v.(*fmi2Instance)
	return h, ok
}

func deleteHandle2(c C.fmi2Component) {
	if c == nil {
		return
	}
	safeHandleDelete(cgo.Handle(uintptr(unsafe.Pointer(c))))
}

func newHandle3(h *fmi3Instance) C.fmi3Instance {
	return C.fmi3Instance(unsafe.Pointer(cgo.NewHandle(h)))
}

func lookupHandle3(c C.fmi3Instance) (*fmi3Instance, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := safeHandleValue(cgo.Handle(uintptr(unsafe.Pointer(c))))
	if !ok {
		return nil, false
	}
	h, ok := v.(*fmi3Instance)
	return h, ok
}

func deleteHandle3(c C.fmi3Instance) {
	if c == nil {
		return
	}
	safeHandleDelete(cgo.Handle(uintptr(unsafe.Pointer(c))))
}
