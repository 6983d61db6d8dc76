package main

/*
#include <stdlib.h>
#include <string.h>
#include "fmi2_platform.h"
*/
import "C"

import (
	"unsafe"

	"github.com/INTO-CPS-Association/unifmu-sub001/internal/cstr"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/fmi2"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// typesPlatformC and version2C are allocated once and never freed: the FMI2
// spec treats fmi2GetTypesPlatform/fmi2GetVersion as returning FMU-owned
// static strings, not buffers the importer frees, so a fresh C.CString on
// every call would just leak on each re-invocation.
var (
	typesPlatformC = C.CString("default")
	version2C      = C.CString("2.0")
)

//export fmi2GetTypesPlatform
func fmi2GetTypesPlatform() C.fmi2String {
	return typesPlatformC
}

//export fmi2GetVersion
func fmi2GetVersion() C.fmi2String {
	return version2C
}

//export fmi2Instantiate
func fmi2Instantiate(instanceName, fmuType, fmuGUID, fmuResourceLocation C.fmi2String,
	functions *C.fmi2CallbackFunctions, visible, loggingOn C.fmi2Boolean) C.fmi2Component {

	name, err := cstr.RequireNonEmpty(instanceName)
	if err != nil {
		return nil
	}
	guid, err := cstr.GoString(fmuGUID)
	if err != nil {
		return nil
	}
	location, err := cstr.GoString(fmuResourceLocation)
	if err != nil {
		return nil
	}
	isVisible, err := cstr.Bool(visible)
	if err != nil {
		return nil
	}
	logOn, err := cstr.Bool(loggingOn)
	if err != nil {
		return nil
	}

	h := &fmi2Instance{}
	if functions != nil {
		h.callback = functions.logger
		h.env = functions.componentEnvironment
	}

	slave, err := fmi2.Instantiate(name, guid, location, isVisible, logOn, h)
	if err != nil {
		return nil
	}
	h.slave = slave

	return newHandle2(h)
}

//export fmi2FreeInstance
func fmi2FreeInstance(c C.fmi2Component) {
	h, ok := lookupHandle2(c)
	if !ok {
		return
	}
	h.slave.FreeInstance()
	h.strings.Free()
	deleteHandle2(c)
}

//export fmi2SetDebugLogging
func fmi2SetDebugLogging(c C.fmi2Component, loggingOn C.fmi2Boolean, nCategories C.size_t, categories *C.fmi2String) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	on, err := cstr.Bool(loggingOn)
	if err != nil {
		return C.fmi2Error
	}

	cats, err := goStringArray(categories, nCategories)
	if err != nil {
		return C.fmi2Error
	}

	status, err := h.slave.SetDebugLogging(cats, on)
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2SetupExperiment
func fmi2SetupExperiment(c C.fmi2Component, toleranceDefined C.fmi2Boolean, tolerance C.fmi2Real,
	startTime C.fmi2Real, stopTimeDefined C.fmi2Boolean, stopTime C.fmi2Real) C.fmi2Status {

	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}

	var tol, stop *float64
	if hasTolerance, err := cstr.Bool(toleranceDefined); err == nil && hasTolerance {
		v := float64(tolerance)
		tol = &v
	}
	if hasStop, err := cstr.Bool(stopTimeDefined); err == nil && hasStop {
		v := float64(stopTime)
		stop = &v
	}

	status, err := h.slave.SetupExperiment(float64(startTime), stop, tol)
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2EnterInitializationMode
func fmi2EnterInitializationMode(c C.fmi2Component) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, err := h.slave.EnterInitializationMode()
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2ExitInitializationMode
func fmi2ExitInitializationMode(c C.fmi2Component) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, err := h.slave.ExitInitializationMode()
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2Terminate
func fmi2Terminate(c C.fmi2Component) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, err := h.slave.Terminate()
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2Reset
func fmi2Reset(c C.fmi2Component) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, err := h.slave.Reset()
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2GetReal
func fmi2GetReal(c C.fmi2Component, vr *C.fmi2ValueReference, nvr C.size_t, value *C.fmi2Real) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	refs := valueReferences(vr, nvr)
	status, values, err := h.slave.GetReal(refs)
	if err != nil {
		return C.fmi2Error
	}
	copyRealsOut(value, values)
	return fmi2StatusToC(status)
}

//export fmi2GetInteger
func fmi2GetInteger(c C.fmi2Component, vr *C.fmi2ValueReference, nvr C.size_t, value *C.fmi2Integer) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	refs := valueReferences(vr, nvr)
	status, values, err := h.slave.GetInteger(refs)
	if err != nil {
		return C.fmi2Error
	}
	copyIntsOut(value, values)
	return fmi2StatusToC(status)
}

//export fmi2GetBoolean
func fmi2GetBoolean(c C.fmi2Component, vr *C.fmi2ValueReference, nvr C.size_t, value *C.fmi2Boolean) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	refs := valueReferences(vr, nvr)
	status, values, err := h.slave.GetBoolean(refs)
	if err != nil {
		return C.fmi2Error
	}
	copyBoolsOut(value, values)
	return fmi2StatusToC(status)
}

//export fmi2GetString
func fmi2GetString(c C.fmi2Component, vr *C.fmi2ValueReference, nvr C.size_t, value *C.fmi2String) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	refs := valueReferences(vr, nvr)
	status, values, err := h.slave.GetString(refs)
	if err != nil {
		return C.fmi2Error
	}

	owned := h.strings.Set(values)
	dst := unsafe.Slice(value, len(owned))
	for i, p := range owned {
		dst[i] = C.fmi2String(p)
	}
	return fmi2StatusToC(status)
}

//export fmi2SetReal
func fmi2SetReal(c C.fmi2Component, vr *C.fmi2ValueReference, nvr C.size_t, value *C.fmi2Real) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	refs := valueReferences(vr, nvr)
	values := realsIn(value, nvr)
	status, err := h.slave.SetReal(refs, values)
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2SetInteger
func fmi2SetInteger(c C.fmi2Component, vr *C.fmi2ValueReference, nvr C.size_t, value *C.fmi2Integer) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	refs := valueReferences(vr, nvr)
	values := intsIn(value, nvr)
	status, err := h.slave.SetInteger(refs, values)
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2SetBoolean
func fmi2SetBoolean(c C.fmi2Component, vr *C.fmi2ValueReference, nvr C.size_t, value *C.fmi2Boolean) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	refs := valueReferences(vr, nvr)
	values := boolsIn(value, nvr)
	status, err := h.slave.SetBoolean(refs, values)
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2SetString
func fmi2SetString(c C.fmi2Component, vr *C.fmi2ValueReference, nvr C.size_t, value *C.fmi2String) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	refs := valueReferences(vr, nvr)
	values, err := goStringArray(value, nvr)
	if err != nil {
		return C.fmi2Error
	}
	status, err := h.slave.SetString(refs, values)
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2GetFMUstate
func fmi2GetFMUstate(c C.fmi2Component, state *C.fmi2FMUstate) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, st, err := h.slave.GetFMUstate()
	if err != nil {
		return C.fmi2Error
	}
	*state = C.fmi2FMUstate(newHandleState(st))
	return fmi2StatusToC(status)
}

//export fmi2SetFMUstate
func fmi2SetFMUstate(c C.fmi2Component, state C.fmi2FMUstate) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	st, ok := lookupFMI2State(state)
	if !ok {
		return C.fmi2Error
	}
	status, err := h.slave.SetFMUstate(st)
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2FreeFMUstate
func fmi2FreeFMUstate(c C.fmi2Component, state *C.fmi2FMUstate) C.fmi2Status {
	if state == nil || *state == nil {
		return C.fmi2OK
	}
	h, ok := lookupHandle2(c)
	if ok {
		if st, ok := lookupFMI2State(*state); ok {
			_, _ = h.slave.FreeFMUstate(st)
		}
	}
	deleteHandleState(unsafe.Pointer(*state))
	*state = nil
	return C.fmi2OK
}

//export fmi2SerializedFMUstateSize
func fmi2SerializedFMUstateSize(c C.fmi2Component, state C.fmi2FMUstate, size *C.size_t) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	st, ok := lookupFMI2State(state)
	if !ok {
		return C.fmi2Error
	}
	status, bytes, err := h.slave.SerializeFMUstate(st)
	if err != nil {
		return C.fmi2Error
	}
	cachedSerializations.store(unsafe.Pointer(state), bytes)
	*size = C.size_t(len(bytes))
	return fmi2StatusToC(status)
}

//export fmi2SerializeFMUstate
func fmi2SerializeFMUstate(c C.fmi2Component, state C.fmi2FMUstate, data *C.fmi2Byte, size C.size_t) C.fmi2Status {
	bytes, ok := cachedSerializations.load(unsafe.Pointer(state))
	if !ok {
		return C.fmi2Error
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(size))
	copy(dst, bytes)
	return C.fmi2OK
}

//export fmi2DeSerializeFMUstate
func fmi2DeSerializeFMUstate(c C.fmi2Component, data *C.fmi2Byte, size C.size_t, state *C.fmi2FMUstate) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(size))
	buf := make([]byte, len(src))
	copy(buf, src)

	status, st, err := h.slave.DeSerializeFMUstate(buf)
	if err != nil {
		return C.fmi2Error
	}
	*state = C.fmi2FMUstate(newHandleState(st))
	return fmi2StatusToC(status)
}

//export fmi2GetDirectionalDerivative
func fmi2GetDirectionalDerivative(c C.fmi2Component,
	vUnknownRef *C.fmi2ValueReference, nUnknown C.size_t,
	vKnownRef *C.fmi2ValueReference, nKnown C.size_t,
	dvKnown *C.fmi2Real, dvUnknown *C.fmi2Real) C.fmi2Status {

	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	unknowns := valueReferences(vUnknownRef, nUnknown)
	knowns := valueReferences(vKnownRef, nKnown)
	seed := realsIn(dvKnown, nKnown)

	status, derivatives, err := h.slave.GetDirectionalDerivative(unknowns, knowns, seed)
	if err != nil {
		return C.fmi2Error
	}
	copyRealsOut(dvUnknown, derivatives)
	return fmi2StatusToC(status)
}

//export fmi2DoStep
func fmi2DoStep(c C.fmi2Component, currentTime, stepSize C.fmi2Real, noSetFMUStatePriorToCurrentPoint C.fmi2Boolean) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	noRewind, err := cstr.Bool(noSetFMUStatePriorToCurrentPoint)
	if err != nil {
		return C.fmi2Error
	}
	status, err := h.slave.DoStep(float64(currentTime), float64(stepSize), noRewind)
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2CancelStep
func fmi2CancelStep(c C.fmi2Component) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, err := h.slave.CancelStep()
	if err != nil {
		return C.fmi2Error
	}
	return fmi2StatusToC(status)
}

//export fmi2GetStatus
func fmi2GetStatus(c C.fmi2Component, kind C.fmi2StatusKind, value *C.fmi2Status) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, v, err := h.slave.GetStatus(wire.StatusKind(kind))
	if err != nil {
		return C.fmi2Error
	}
	*value = fmi2StatusToC(v)
	return fmi2StatusToC(status)
}

//export fmi2GetRealStatus
func fmi2GetRealStatus(c C.fmi2Component, kind C.fmi2StatusKind, value *C.fmi2Real) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, v, err := h.slave.GetRealStatus(wire.StatusKind(kind))
	if err != nil {
		return C.fmi2Error
	}
	*value = C.fmi2Real(v)
	return fmi2StatusToC(status)
}

//export fmi2GetIntegerStatus
func fmi2GetIntegerStatus(c C.fmi2Component, kind C.fmi2StatusKind, value *C.fmi2Integer) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, v, err := h.slave.GetIntegerStatus(wire.StatusKind(kind))
	if err != nil {
		return C.fmi2Error
	}
	*value = C.fmi2Integer(v)
	return fmi2StatusToC(status)
}

//export fmi2GetBooleanStatus
func fmi2GetBooleanStatus(c C.fmi2Component, kind C.fmi2StatusKind, value *C.fmi2Boolean) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, v, err := h.slave.GetBooleanStatus(wire.StatusKind(kind))
	if err != nil {
		return C.fmi2Error
	}
	if v {
		*value = 1
	} else {
		*value = 0
	}
	return fmi2StatusToC(status)
}

//export fmi2GetStringStatus
func fmi2GetStringStatus(c C.fmi2Component, kind C.fmi2StatusKind, value *C.fmi2String) C.fmi2Status {
	h, ok := lookupHandle2(c)
	if !ok {
		return C.fmi2Error
	}
	status, v, err := h.slave.GetStringStatus(wire.StatusKind(kind))
	if err != nil {
		return C.fmi2Error
	}
	owned := h.strings.Set([]string{v})
	*value = C.fmi2String(owned[0])
	return fmi2StatusToC(status)
}

func lookupFMI2State(c C.fmi2FMUstate) (*fmi2.FMUState, bool) {
	v, ok := lookupHandleState(unsafe.Pointer(c))
	if !ok {
		return nil, false
	}
	st, ok := v.(*fmi2.FMUState)
	return st, ok
}
