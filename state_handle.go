package main

import (
	"runtime/cgo"
	"sync"
	"unsafe"
)

// newHandleState, lookupHandleState and deleteHandleState give fmi2FMUstate
// and fmi3FMUState handles the same cgo.Handle-backed opaque-pointer
// treatment fmi2Component/fmi3Instance get in instance.go, parameterized
// over an any payload since both FMI versions carry their own *FMUState
// type through these handles.
func newHandleState(v any) unsafe.Pointer {
	return unsafe.Pointer(cgo.NewHandle(v))
}

func lookupHandleState(p unsafe.Pointer) (any, bool) {
	if p == nil {
		return nil, false
	}
	return safeHandleValue(cgo.Handle(uintptr(p)))
}

func deleteHandleState(p unsafe.Pointer) {
	if p == nil {
		return
	}
	safeHandleDelete(cgo.Handle(uintptr(p)))
}

// safeHandleValue recovers from the panic runtime/cgo.Handle.Value raises
// against an invalid handle — one already deleted, or a pointer a confused
// importer never actually got from us. Every exported FMI entry point is
// reached with an importer-supplied opaque pointer with no static guarantee
// it still denotes a live instance: spec.md §4.6 explicitly anticipates
// calls against an already-freed slave, and §4.7(c) requires the host to
// answer `fatal` for an unrecognized handle, not bring down the process
// hosting the importer.
func safeHandleValue(h cgo.Handle) (v any, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = nil, false
		}
	}()
	return h.Value(), true
}

// safeHandleDelete recovers from the panic Handle.Delete raises when called
// twice on the same handle, so a double free or free-after-free from the
// importer is a no-op rather than a crash.
func safeHandleDelete(h cgo.Handle) {
	defer func() {
		recover()
	}()
	h.Delete()
}

// serializationCache bridges the two-call fmi2SerializedFMUstateSize /
// fmi2SerializeFMUstate (and the FMI3 equivalent) sequence the C API
// mandates: the first call learns the buffer size, the second fills a
// buffer the importer allocated in between. The slave is only asked to
// serialize once per pair; the size call caches its answer under the state
// handle and the serialize call reads it back. Entries are never removed.
type serializationCache struct {
	mu    sync.Mutex
	bytes map[unsafe.Pointer][]byte
}

func newSerializationCache() *serializationCache {
	return &serializationCache{bytes: make(map[unsafe.Pointer][]byte)}
}

func (c *serializationCache) store(handle unsafe.Pointer, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bytes[handle] = data
}

func (c *serializationCache) load(handle unsafe.Pointer) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.bytes[handle]
	return data, ok
}

var cachedSerializations = newSerializationCache()
