package wire

import "github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"

// FMI2Return is the oneof of reply payloads for FMI2 operations. Most FMI2
// operations reply with a bare status (handled by the shared StatusReturn in
// return.go); only the operations that carry data of their own get a
// dedicated variant here.
type FMI2Return struct {
	GetReal                  *FMI2GetRealReturn                  `msgpack:"get_real,omitempty"`
	GetInteger               *FMI2GetIntegerReturn               `msgpack:"get_integer,omitempty"`
	GetBoolean               *FMI2GetBooleanReturn               `msgpack:"get_boolean,omitempty"`
	GetString                *FMI2GetStringReturn                `msgpack:"get_string,omitempty"`
	GetFMUstate              *FMI2GetFMUstateReturn              `msgpack:"get_fmu_state,omitempty"`
	SerializeFMUstate        *FMI2SerializeFMUstateReturn        `msgpack:"serialize_fmu_state,omitempty"`
	GetDirectionalDerivative *FMI2GetDirectionalDerivativeReturn `msgpack:"get_directional_derivative,omitempty"`
	GetStatus                *FMI2GetStatusReturn                `msgpack:"get_status,omitempty"`
	GetRealStatus            *FMI2GetRealStatusReturn            `msgpack:"get_real_status,omitempty"`
	GetIntegerStatus         *FMI2GetIntegerStatusReturn         `msgpack:"get_integer_status,omitempty"`
	GetBooleanStatus         *FMI2GetBooleanStatusReturn         `msgpack:"get_boolean_status,omitempty"`
	GetStringStatus          *FMI2GetStringStatusReturn          `msgpack:"get_string_status,omitempty"`
}

type FMI2GetRealReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []float64        `msgpack:"values"`
}
type FMI2GetIntegerReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []int32          `msgpack:"values"`
}
type FMI2GetBooleanReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []bool           `msgpack:"values"`
}
type FMI2GetStringReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Values []string         `msgpack:"values"`
}

type FMI2GetFMUstateReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	State  []byte           `msgpack:"state"`
}
type FMI2SerializeFMUstateReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Bytes  []byte           `msgpack:"bytes"`
}

type FMI2GetDirectionalDerivativeReturn struct {
	Status  fmistatus.Status `msgpack:"status"`
	Values  []float64        `msgpack:"values"`
}

type FMI2GetStatusReturn struct {
	Status       fmistatus.Status `msgpack:"status"`
	ReturnStatus fmistatus.Status `msgpack:"return_status"`
}
type FMI2GetRealStatusReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Value  float64          `msgpack:"value"`
}
type FMI2GetIntegerStatusReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Value  int32            `msgpack:"value"`
}
type FMI2GetBooleanStatusReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Value  bool             `msgpack:"value"`
}
type FMI2GetStringStatusReturn struct {
	Status fmistatus.Status `msgpack:"status"`
	Value  string           `msgpack:"value"`
}
