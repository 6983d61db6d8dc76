package main

/*
#include "fmi2_platform.h"
#include "fmi3_platform.h"
*/
import "C"

import (
	"unsafe"

	"github.com/INTO-CPS-Association/unifmu-sub001/internal/cstr"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// valueReferences copies a C value-reference array into a Go slice. The
// array is owned by the importer for the duration of the call only, so it
// is never retained past the function that reads it (spec.md §4.7).
func valueReferences(vr *C.fmi2ValueReference, n C.size_t) []wire.ValueReference {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(vr, int(n))
	out := make([]wire.ValueReference, int(n))
	for i, v := range src {
		out[i] = wire.ValueReference(v)
	}
	return out
}

func valueReferences3(vr *C.fmi3ValueReference, n C.size_t) []wire.ValueReference {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(vr, int(n))
	out := make([]wire.ValueReference, int(n))
	for i, v := range src {
		out[i] = wire.ValueReference(v)
	}
	return out
}

func realsIn(value *C.fmi2Real, n C.size_t) []float64 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]float64, int(n))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

func intsIn(value *C.fmi2Integer, n C.size_t) []int32 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]int32, int(n))
	for i, v := range src {
		out[i] = int32(v)
	}
	return out
}

func boolsIn(value *C.fmi2Boolean, n C.size_t) []bool {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]bool, int(n))
	for i, v := range src {
		out[i] = v != 0
	}
	return out
}

func float32In(value *C.fmi3Float32, n C.size_t) []float32 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]float32, int(n))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}

func int8In(value *C.fmi3Int8, n C.size_t) []int8 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]int8, int(n))
	for i, v := range src {
		out[i] = int8(v)
	}
	return out
}

func uint8In(value *C.fmi3UInt8, n C.size_t) []uint8 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]uint8, int(n))
	for i, v := range src {
		out[i] = uint8(v)
	}
	return out
}

func int16In(value *C.fmi3Int16, n C.size_t) []int16 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]int16, int(n))
	for i, v := range src {
		out[i] = int16(v)
	}
	return out
}

func uint16In(value *C.fmi3UInt16, n C.size_t) []uint16 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]uint16, int(n))
	for i, v := range src {
		out[i] = uint16(v)
	}
	return out
}

func uint32In(value *C.fmi3UInt32, n C.size_t) []uint32 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]uint32, int(n))
	for i, v := range src {
		out[i] = uint32(v)
	}
	return out
}

func int64In(value *C.fmi3Int64, n C.size_t) []int64 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]int64, int(n))
	for i, v := range src {
		out[i] = int64(v)
	}
	return out
}

func uint64In(value *C.fmi3UInt64, n C.size_t) []uint64 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]uint64, int(n))
	for i, v := range src {
		out[i] = uint64(v)
	}
	return out
}

func float64In(value *C.fmi3Float64, n C.size_t) []float64 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]float64, int(n))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

func int32In(value *C.fmi3Int32, n C.size_t) []int32 {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]int32, int(n))
	for i, v := range src {
		out[i] = int32(v)
	}
	return out
}

func bool3In(value *C.fmi3Boolean, n C.size_t) []bool {
	if n == 0 {
		return nil
	}
	src := unsafe.Slice(value, int(n))
	out := make([]bool, int(n))
	for i, v := range src {
		out[i] = v != 0
	}
	return out
}

func goStringArray(value *C.fmi2String, n C.size_t) ([]string, error) {
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

func copyRealsOut(dst *C.fmi2Real, values []float64) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi2Real(v)
	}
}

func copyIntsOut(dst *C.fmi2Integer, values []int32) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi2Integer(v)
	}
}

func copyBoolsOut(dst *C.fmi2Boolean, values []bool) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		if v {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

func copyFloat32Out(dst *C.fmi3Float32, values []float32) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3Float32(v)
	}
}

func copyInt8Out(dst *C.fmi3Int8, values []int8) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3Int8(v)
	}
}

func copyUInt8Out(dst *C.fmi3UInt8, values []uint8) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3UInt8(v)
	}
}

func copyInt16Out(dst *C.fmi3Int16, values []int16) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3Int16(v)
	}
}

func copyUInt16Out(dst *C.fmi3UInt16, values []uint16) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3UInt16(v)
	}
}

func copyUInt32Out(dst *C.fmi3UInt32, values []uint32) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3UInt32(v)
	}
}

func copyInt64Out(dst *C.fmi3Int64, values []int64) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3Int64(v)
	}
}

func copyUInt64Out(dst *C.fmi3UInt64, values []uint64) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3UInt64(v)
	}
}

func copyFloat64Out(dst *C.fmi3Float64, values []float64) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3Float64(v)
	}
}

func copyInt32Out(dst *C.fmi3Int32, values []int32) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		out[i] = C.fmi3Int32(v)
	}
}

func copyBool3Out(dst *C.fmi3Boolean, values []bool) {
	if len(values) == 0 {
		return
	}
	out := unsafe.Slice(dst, len(values))
	for i, v := range values {
		if v {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}
