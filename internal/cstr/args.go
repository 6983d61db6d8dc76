package cstr

/*
#include <stdlib.h>
*/
import "C"
import (
	"errors"
	"fmt"
)

// ErrNullString is returned by GoString when the importer passed a null
// pointer where a string argument is required (spec.md §4.7 step (b): "convert
// C strings to UTF-8, rejecting null").
var ErrNullString = errors.New("cstr: unexpected null string argument")

// ErrEmptyString is returned by RequireNonEmpty when a string argument is
// present but empty, and the call disallows that (spec.md §4.7 step (b):
// "and, where disallowed, empty").
var ErrEmptyString = errors.New("cstr: unexpected empty string argument")

// GoString converts a required C string argument, rejecting a null
// pointer.
func GoString(s *C.char) (string, error) {
	if s == nil {
		return "", ErrNullString
	}
	return C.GoString(s), nil
}

// RequireNonEmpty converts a required, non-empty C string argument.
func RequireNonEmpty(s *C.char) (string, error) {
	v, err := GoString(s)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", ErrEmptyString
	}
	return v, nil
}

// Bool converts an FMI C boolean ({0,1}) to a native bool, rejecting any
// other value (spec.md §4.7 step (a)).
func Bool(v C.int) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("cstr: invalid C boolean value %d", int(v))
	}
}
