package wire

// ValueReference is the FMI value-reference type (spec.md §4.1: "32-bit
// unsigned"). Kept distinct from plain uint32 so every wire struct that
// carries references self-documents.
type ValueReference uint32

// OptFloat64 is an optional double (spec.md §4.1 "Optional scalars...
// present/absent"). A plain *float64 would do, but a named type keeps msgpack
// struct tags self-describing across the many Command/Return variants that
// carry one (StopTime, Tolerance, and their FMI3 equivalents).
type OptFloat64 = *float64

// HandshakeReply is the one unsolicited message a freshly connected backend
// sends (spec.md §4.4, §6 "Handshake is a single unsolicited reply").
type HandshakeReply struct {
	// Status as a raw wire integer rather than fmistatus.Status: an
	// unrecognised integer here is itself meaningful (ErrHandshakeMalformed,
	// see internal/dispatcher), so decoding must not fail or coerce it.
	Status int `msgpack:"status"`
}

// CallbackContinueCommand is the marker sent after a LogReply to resume
// waiting for the real reply (spec.md §4.6 step 2b). It carries no fields;
// its presence as the command's active variant is the entire message.
type CallbackContinueCommand struct{}
