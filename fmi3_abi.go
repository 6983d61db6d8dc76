package main

/*
#include <stdlib.h>
#include <string.h>
#include "fmi3_platform.h"
*/
import "C"

import (
	"unsafe"

	"github.com/INTO-CPS-Association/unifmu-sub001/internal/cstr"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/fmi3"
)

// version3C is allocated once; see fmi2_abi.go's typesPlatformC/version2C
// for why fmi3GetVersion doesn't allocate a fresh C string per call.
var version3C = C.CString("3.0")

//export fmi3GetVersion
func fmi3GetVersion() C.fmi3String {
	return version3C
}

//export fmi3InstantiateCoSimulation
func fmi3InstantiateCoSimulation(instanceName, instantiationToken, resourcePath C.fmi3String,
	visible, loggingOn C.fmi3Boolean,
	eventModeUsed C.fmi3Boolean,
	_earlyReturnAllowed C.fmi3Boolean,
	_requiredIntermediateVariables *C.fmi3ValueReference, _nRequiredIntermediateVariables C.size_t,
	instanceEnvironment C.fmi3InstanceEnvironment,
	logMessage C.fmi3LogMessageCallback,
	_intermediateUpdate unsafe.Pointer) C.fmi3Instance {

	name, err := cstr.RequireNonEmpty(instanceName)
	if err != nil {
		return nil
	}
	token, err := cstr.GoString(instantiationToken)
	if err != nil {
		return nil
	}
	path, err := cstr.GoString(resourcePath)
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
	eventMode, err := cstr.Bool(eventModeUsed)
	if err != nil {
		return nil
	}

	h := &fmi3Instance{callback: logMessage, env: instanceEnvironment}

	slave, err := fmi3.Instantiate(name, token, path, isVisible, logOn, eventMode, h)
	if err != nil {
		return nil
	}
	h.slave = slave

	return newHandle3(h)
}

//export fmi3FreeInstance
func fmi3FreeInstance(c C.fmi3Instance) {
	h, ok := lookupHandle3(c)
	if !ok {
		return
	}
	h.slave.FreeInstance()
	h.strings.Free()
	deleteHandle3(c)
}

//export fmi3SetDebugLogging
func fmi3SetDebugLogging(c C.fmi3Instance, loggingOn C.fmi3Boolean, nCategories C.size_t, categories *C.fmi3String) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	on, err := cstr.Bool(loggingOn)
	if err != nil {
		return C.fmi3Error
	}
	cats, err := goStringArray3(categories, nCategories)
	if err != nil {
		return C.fmi3Error
	}
	status, err := h.slave.SetDebugLogging(cats, on)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3EnterInitializationMode
func fmi3EnterInitializationMode(c C.fmi3Instance,
	toleranceDefined C.fmi3Boolean, tolerance C.fmi3Float64,
	startTime C.fmi3Float64, stopTimeDefined C.fmi3Boolean, stopTime C.fmi3Float64) C.fmi3Status {

	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
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

	status, err := h.slave.EnterInitializationMode(floatPtr(float64(startTime)), stop, tol)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3ExitInitializationMode
func fmi3ExitInitializationMode(c C.fmi3Instance) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	status, err := h.slave.ExitInitializationMode()
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3EnterStepMode
func fmi3EnterStepMode(c C.fmi3Instance) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	status, err := h.slave.EnterStepMode()
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3Terminate
func fmi3Terminate(c C.fmi3Instance) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	status, err := h.slave.Terminate()
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3Reset
func fmi3Reset(c C.fmi3Instance) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	status, err := h.slave.Reset()
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3GetFloat32
func fmi3GetFloat32(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Float32, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetFloat32(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyFloat32Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetFloat64
func fmi3GetFloat64(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Float64, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetFloat64(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyFloat64Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetInt32
func fmi3GetInt32(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Int32, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetInt32(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyInt32Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetInt8
func fmi3GetInt8(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Int8, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetInt8(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyInt8Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetUInt8
func fmi3GetUInt8(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3UInt8, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetUInt8(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyUInt8Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetInt16
func fmi3GetInt16(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Int16, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetInt16(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyInt16Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetUInt16
func fmi3GetUInt16(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3UInt16, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetUInt16(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyUInt16Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetUInt32
func fmi3GetUInt32(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3UInt32, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetUInt32(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyUInt32Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetInt64
func fmi3GetInt64(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Int64, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetInt64(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyInt64Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetUInt64
func fmi3GetUInt64(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3UInt64, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetUInt64(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyUInt64Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetBoolean
func fmi3GetBoolean(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Boolean, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetBoolean(refs)
	if err != nil {
		return C.fmi3Error
	}
	copyBool3Out(value, values)
	return fmi3StatusToC(status)
}

//export fmi3GetString
func fmi3GetString(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3String, _nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	status, values, err := h.slave.GetString(refs)
	if err != nil {
		return C.fmi3Error
	}
	owned := h.strings.Set(values)
	dst := unsafe.Slice(value, len(owned))
	for i, p := range owned {
		dst[i] = C.fmi3String(p)
	}
	return fmi3StatusToC(status)
}

//export fmi3SetFloat32
func fmi3SetFloat32(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Float32, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := float32In(value, nValue)
	status, err := h.slave.SetFloat32(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetFloat64
func fmi3SetFloat64(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Float64, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := float64In(value, nValue)
	status, err := h.slave.SetFloat64(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetInt32
func fmi3SetInt32(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Int32, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := int32In(value, nValue)
	status, err := h.slave.SetInt32(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetInt8
func fmi3SetInt8(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Int8, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := int8In(value, nValue)
	status, err := h.slave.SetInt8(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetUInt8
func fmi3SetUInt8(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3UInt8, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := uint8In(value, nValue)
	status, err := h.slave.SetUInt8(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetInt16
func fmi3SetInt16(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Int16, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := int16In(value, nValue)
	status, err := h.slave.SetInt16(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetUInt16
func fmi3SetUInt16(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3UInt16, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := uint16In(value, nValue)
	status, err := h.slave.SetUInt16(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetUInt32
func fmi3SetUInt32(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3UInt32, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := uint32In(value, nValue)
	status, err := h.slave.SetUInt32(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetInt64
func fmi3SetInt64(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Int64, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := int64In(value, nValue)
	status, err := h.slave.SetInt64(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetUInt64
func fmi3SetUInt64(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3UInt64, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := uint64In(value, nValue)
	status, err := h.slave.SetUInt64(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetBoolean
func fmi3SetBoolean(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3Boolean, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values := bool3In(value, nValue)
	status, err := h.slave.SetBoolean(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3SetString
func fmi3SetString(c C.fmi3Instance, vr *C.fmi3ValueReference, nvr C.size_t, value *C.fmi3String, nValue C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	refs := valueReferences3(vr, nvr)
	values, err := goStringArray3(value, nValue)
	if err != nil {
		return C.fmi3Error
	}
	status, err := h.slave.SetString(refs, values)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3GetFMUState
func fmi3GetFMUState(c C.fmi3Instance, state *C.fmi3FMUState) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	status, st, err := h.slave.GetFMUState()
	if err != nil {
		return C.fmi3Error
	}
	*state = C.fmi3FMUState(newHandleState(st))
	return fmi3StatusToC(status)
}

//export fmi3SetFMUState
func fmi3SetFMUState(c C.fmi3Instance, state C.fmi3FMUState) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	st, ok := lookupFMI3State(state)
	if !ok {
		return C.fmi3Error
	}
	status, err := h.slave.SetFMUState(st)
	if err != nil {
		return C.fmi3Error
	}
	return fmi3StatusToC(status)
}

//export fmi3FreeFMUState
func fmi3FreeFMUState(c C.fmi3Instance, state *C.fmi3FMUState) C.fmi3Status {
	if state == nil || *state == nil {
		return C.fmi3OK
	}
	h, ok := lookupHandle3(c)
	if ok {
		if st, ok := lookupFMI3State(*state); ok {
			_, _ = h.slave.FreeFMUState(st)
		}
	}
	deleteHandleState(unsafe.Pointer(*state))
	*state = nil
	return C.fmi3OK
}

//export fmi3SerializedFMUStateSize
func fmi3SerializedFMUStateSize(c C.fmi3Instance, state C.fmi3FMUState, size *C.size_t) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	st, ok := lookupFMI3State(state)
	if !ok {
		return C.fmi3Error
	}
	status, bytes, err := h.slave.SerializeFMUState(st)
	if err != nil {
		return C.fmi3Error
	}
	cachedSerializations.store(unsafe.Pointer(state), bytes)
	*size = C.size_t(len(bytes))
	return fmi3StatusToC(status)
}

//export fmi3SerializeFMUState
func fmi3SerializeFMUState(c C.fmi3Instance, state C.fmi3FMUState, data *C.fmi3Byte, size C.size_t) C.fmi3Status {
	bytes, ok := cachedSerializations.load(unsafe.Pointer(state))
	if !ok {
		return C.fmi3Error
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(size))
	copy(dst, bytes)
	return C.fmi3OK
}

//export fmi3DeserializeFMUState
func fmi3DeserializeFMUState(c C.fmi3Instance, data *C.fmi3Byte, size C.size_t, state *C.fmi3FMUState) C.fmi3Status {
	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(data)), int(size))
	buf := make([]byte, len(src))
	copy(buf, src)

	status, st, err := h.slave.DeserializeFMUState(buf)
	if err != nil {
		return C.fmi3Error
	}
	*state = C.fmi3FMUState(newHandleState(st))
	return fmi3StatusToC(status)
}

//export fmi3DoStep
func fmi3DoStep(c C.fmi3Instance, currentCommunicationPoint, communicationStepSize C.fmi3Float64,
	noSetFMUStatePriorToCurrentPoint C.fmi3Boolean,
	eventHandlingNeeded, terminateSimulation, earlyReturn *C.fmi3Boolean,
	lastSuccessfulTime *C.fmi3Float64) C.fmi3Status {

	h, ok := lookupHandle3(c)
	if !ok {
		return C.fmi3Error
	}
	noRewind, err := cstr.Bool(noSetFMUStatePriorToCurrentPoint)
	if err != nil {
		return C.fmi3Error
	}

	result, err := h.slave.DoStep(float64(currentCommunicationPoint), float64(communicationStepSize), noRewind)
	if err != nil {
		return C.fmi3Error
	}

	*eventHandlingNeeded = goBoolToC3(result.EventHandlingNeeded)
	*terminateSimulation = goBoolToC3(result.TerminateSimulation)
	*earlyReturn = goBoolToC3(result.EarlyReturn)
	*lastSuccessfulTime = C.fmi3Float64(result.LastSuccessfulTime)

	return fmi3StatusToC(result.Status)
}

func goStringArray3(value *C.fmi3String, n C.size_t) ([]string, error) {
	if n == 0 {
		return nil, nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]string, int(n))
	for i, v := range src {
		s, err := cstr.GoString(v)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func goBoolToC3(v bool) C.fmi3Boolean {
	if v {
		return 1
	}
	return 0
}

func floatPtr(v float64) *float64 { return &v }

func lookupFMI3State(c C.fmi3FMUState) (*fmi3.FMUState, bool) {
	v, ok := lookupHandleState(unsafe.Pointer(c))
	if !ok {
		return nil, false
	}
	st, ok := v.(*fmi3.FMUState)
	return st, ok
}
