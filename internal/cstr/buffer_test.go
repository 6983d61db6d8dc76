package cstr

/*
#include <stdlib.h>
*/
import "C"
import (
	"testing"
	"unsafe"
)

func TestBufferSetReturnsReadableStrings(t *testing.T) {
	var b Buffer
	ptrs := b.Set([]string{"foo", "bar"})
	defer b.Free()

	if len(ptrs) != 2 {
		t.Fatalf("len(ptrs) = %d, want 2", len(ptrs))
	}
	if got := C.GoString(ptrs[0]); got != "foo" {
		t.Errorf("ptrs[0] = %q, want %q", got, "foo")
	}
	if got := C.GoString(ptrs[1]); got != "bar" {
		t.Errorf("ptrs[1] = %q, want %q", got, "bar")
	}
}

func TestBufferSetInvalidatesPreviousCall(t *testing.T) {
	var b Buffer
	first := b.Set([]string{"foo"})
	_ = first

	// A second Get*String-shaped call replaces the buffer; per spec.md §4's
	// string-buffer-lifetime scenario, the previous pointers are no longer
	// guaranteed valid, but the new ones must read back correctly.
	second := b.Set([]string{"baz"})
	defer b.Free()

	if got := C.GoString(second[0]); got != "baz" {
		t.Errorf("second[0] = %q, want %q", got, "baz")
	}
}

func TestBufferSetEmpty(t *testing.T) {
	var b Buffer
	ptrs := b.Set(nil)
	defer b.Free()
	if len(ptrs) != 0 {
		t.Errorf("len(ptrs) = %d, want 0", len(ptrs))
	}
}

func TestGoStringRejectsNull(t *testing.T) {
	if _, err := GoString(nil); err != ErrNullString {
		t.Errorf("GoString(nil): want ErrNullString, got %v", err)
	}
}

func TestGoStringAccepts(t *testing.T) {
	cs := C.CString("hello")
	defer C.free(unsafe.Pointer(cs))

	got, err := GoString(cs)
	if err != nil {
		t.Fatalf("GoString: %v", err)
	}
	if got != "hello" {
		t.Errorf("GoString = %q, want %q", got, "hello")
	}
}

func TestRequireNonEmptyRejectsEmpty(t *testing.T) {
	cs := C.CString("")
	defer C.free(unsafe.Pointer(cs))

	if _, err := RequireNonEmpty(cs); err != ErrEmptyString {
		t.Errorf("RequireNonEmpty(\"\"): want ErrEmptyString, got %v", err)
	}
}

func TestBoolRejectsInvalidValues(t *testing.T) {
	if _, err := Bool(C.int(2)); err == nil {
		t.Error("Bool(2): want error, got nil")
	}
	if v, err := Bool(C.int(1)); err != nil || !v {
		t.Errorf("Bool(1) = %v, %v; want true, nil", v, err)
	}
	if v, err := Bool(C.int(0)); err != nil || v {
		t.Errorf("Bool(0) = %v, %v; want false, nil", v, err)
	}
}
