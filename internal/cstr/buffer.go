// Package cstr owns the C-allocated string buffers handed back across the
// cgo boundary by the string-returning FMI calls (GetString, the FMI3
// string attribute getters). Grounded on the cgo marshaling idiom in
// other_examples' cads-fmi-demo bridge (internal/fmi: C.CString,
// C.free(unsafe.Pointer(p)), runtime.KeepAlive on the backing slice) — the
// only cgo-facing Go file in the example pack, since the teacher itself
// talks to its kernel driver over a file descriptor rather than a C ABI.
package cstr

/*
#include <stdlib.h>
*/
import "C"
import "unsafe"

// Buffer owns the most recent batch of C strings returned to the importer
// by a Get*String-shaped call, honoring the at-most-one-call validity rule
// (spec.md §3, §4.6): "an ordered sequence of owned C-string buffers
// returned by the last GetString-like call, kept alive until the next such
// call or FreeInstance, whichever comes first."
type Buffer struct {
	ptrs []*C.char
}

// Set replaces the buffer's contents with freshly allocated copies of
// values, freeing whatever the buffer held before, and returns the pointer
// array ready to be handed to the importer as a C.char** payload.
func (b *Buffer) Set(values []string) []*C.char {
	b.free()

	b.ptrs = make([]*C.char, len(values))
	for i, v := range values {
		b.ptrs[i] = C.CString(v)
	}
	return b.ptrs
}

func (b *Buffer) free() {
	for _, p := range b.ptrs {
		C.free(unsafe.Pointer(p))
	}
	b.ptrs = nil
}

// Free releases the buffer's current contents, invalidating any pointers
// the importer was previously handed. Called from FreeInstance and from
// every subsequent Set.
func (b *Buffer) Free() {
	b.free()
}
