// Command unifmu-sub001 is the universal FMU host: a cgo shared library
// that, once loaded by an FMI 2.0 or FMI 3.0 co-simulation importer,
// forwards every call it receives to a user-supplied backend subprocess
// over a request/reply message socket and relays the backend's replies
// back to the importer (spec.md §1).
//
// Every exported symbol in this package is one entry point from the FMI
// 2.0.x or FMI 3.0 co-simulation C API (spec.md §6); fmi2_abi.go and
// fmi3_abi.go hold the two families. Neither file contains any simulation
// logic of its own — that lives in internal/fmi2 and internal/fmi3. These
// files only perform the marshaling pipeline spec.md §4.7 describes:
// validate pointer/boolean arguments, convert C strings, look up the
// instance, call the slave method, marshal the result back across the cgo
// boundary, and map the internal status to the C status integer.
package main

// main is required by the c-shared build mode but never runs; the only
// entry points into this binary are the exported C functions below.
func main() {}
