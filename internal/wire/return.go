package wire

import "github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"

// Return is the tagged union sent from backend to host: a Return carries
// either a LogReply, an EmptyReturn, a StatusReturn, or one of the
// operation-specific Fmi2/Fmi3 payloads (spec.md §3, §4.1). Every variant
// other than LogReply and EmptyReturn carries an FMI status; EmptyReturn
// has no fields and is read as OK by the slaves.
type Return struct {
	Tag    ReturnTag        `msgpack:"tag"`
	Log    *LogReply        `msgpack:"log,omitempty"`
	Status *StatusReturn    `msgpack:"status_return,omitempty"`
	Empty  *EmptyReturn     `msgpack:"empty,omitempty"`
	Fmi2   *FMI2Return      `msgpack:"fmi2,omitempty"`
	Fmi3   *FMI3Return      `msgpack:"fmi3,omitempty"`
}

// LogReply is the backend's reentrant-logging record (spec.md §4.6 step 2):
// "Log{status, category, message}". Category is a plain string on the wire;
// internal/logging.Category re-parses it into the closed-plus-user-defined
// enum described in spec.md §3.
type LogReply struct {
	Status   fmistatus.Status `msgpack:"status"`
	Category string           `msgpack:"category"`
	Message  string           `msgpack:"message"`
}

// StatusReturn is the bare-status reply shared by every FMI2/FMI3 operation
// that carries no payload of its own (lifecycle calls, Set*, DoStep's FMI2
// form, CancelStep, FreeInstance, ...).
type StatusReturn struct {
	Status fmistatus.Status `msgpack:"status"`
}

// EmptyReturn answers a Command that expects no reply at all (FreeInstance
// is best-effort per spec.md §4.6 and the host does not require a reply to
// proceed, though backends still send a StatusReturn in practice).
type EmptyReturn struct{}
