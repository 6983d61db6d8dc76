package wire

import "github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"

// FMI3Return is the oneof of reply payloads particular to FMI3 operations;
// as with FMI2Return, plain-status replies use the shared StatusReturn.
type FMI3Return struct {
	GetFloat32         *FMI3GetFloat32Return         `msgpack:"get_float32,omitempty"`
	GetFloat64         *FMI3GetFloat64Return         `msgpack:"get_float64,omitempty"`
	GetInt8            *FMI3GetInt8Return            `msgpack:"get_int8,omitempty"`
	GetUInt8           *FMI3GetUInt8Return           `msgpack:"get_uint8,omitempty"`
	GetInt16           *FMI3GetInt16Return           `msgpack:"get_int16,omitempty"`
	GetUInt16          *FMI3GetUInt16Return          `msgpack:"get_uint16,omitempty"`
	GetInt32           *FMI3GetInt32Return           `msgpack:"get_int32,omitempty"`
	GetUInt32          *FMI3GetUInt32Return          `msgpack:"get_uint32,omitempty"`
	GetInt64           *FMI3GetInt64Return           `msgpack:"get_int64,omitempty"`
	GetUInt64          *FMI3GetUInt64Return          `msgpack:"get_uint64,omitempty"`
	GetBoolean         *FMI3GetBooleanReturn         `msgpack:"get_boolean,omitempty"`
	GetString          *FMI3GetStringReturn          `msgpack:"get_string,omitempty"`
	GetFMUState        *FMI3GetFMUStateReturn        `msgpack:"get_fmu_state,omitempty"`
	SerializeFMUState  *FMI3SerializeFMUStateReturn  `msgpack:"serialize_fmu_state,omitempty"`
	DoStep             *FMI3DoStepReturn             `msgpack:"do_step,omitempty"`
}

type FMI3GetFloat32Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []float32        `msgpack:"values"`
}
type FMI3GetFloat64Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []float64        `msgpack:"values"`
}
type FMI3GetInt8Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []int8           `msgpack:"values"`
}
type FMI3GetUInt8Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []uint8          `msgpack:"values"`
}
type FMI3GetInt16Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []int16          `msgpack:"values"`
}
type FMI3GetUInt16Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []uint16         `msgpack:"values"`
}
type FMI3GetInt32Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []int32          `msgpack:"values"`
}
type FMI3GetUInt32Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []uint32         `msgpack:"values"`
}
type FMI3GetInt64Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []int64          `msgpack:"values"`
}
type FMI3GetUInt64Return struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []uint64         `msgpack:"values"`
}
type FMI3GetBooleanReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []bool           `msgpack:"values"`
}
type FMI3GetStringReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []string         `msgpack:"values"`
}

type FMI3GetFMUStateReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	State  []byte           `msgpack:"state"`
}
type FMI3SerializeFMUStateReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Bytes  []byte           `msgpack:"bytes"`
}

// DoStep in FMI3 replies with more than a bare status (it may report an
// early return and the point reached), unlike FMI2's DoStep which is a bare
// StatusReturn plus the cached last-successful-time/status queried
// separately via GetStatus.
type FMI3DoStepReturn struct {
	Status                       fmistatus.Status `msgpack:"status"`
	EventHandlingNeeded          bool             `msgpack:"event_handling_needed"`
	TerminateSimulation          bool             `msgpack:"terminate_simulation"`
	EarlyReturn                  bool             `msgpack:"early_return"`
	LastSuccessfulTime           float64          `msgpack:"last_successful_time"`
}
