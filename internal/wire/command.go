package wire

// Command is the tagged union sent from host to backend: exactly one of
// Fmi2, Fmi3 or CallbackContinue is non-nil, selected by Tag (spec.md §3: "A
// Command is a tagged union containing exactly one of: the 22 FMI2
// operations, the 21 FMI3 operations, or a CallbackContinue marker").
type Command struct {
	Tag              CommandTag                `msgpack:"tag"`
	Fmi2             *FMI2Command              `msgpack:"fmi2,omitempty"`
	Fmi3             *FMI3Command              `msgpack:"fmi3,omitempty"`
	CallbackContinue *CallbackContinueCommand  `msgpack:"callback_continue,omitempty"`
}

// NewCallbackContinue builds the marker command sent to resume a dispatch
// loop after delivering a LogReply (spec.md §4.6 step 2b).
func NewCallbackContinue() Command {
	return Command{Tag: TagCallbackContinue, CallbackContinue: &CallbackContinueCommand{}}
}
