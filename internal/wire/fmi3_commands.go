package wire

// FMI3Command is the oneof of every FMI3 co-simulation operation this host
// forwards (38 variants). Same shape as FMI2Command; FMI3 drops the
// status-kind family (no Pending status, spec.md §3) and adds
// EnterStepMode.
type FMI3Command struct {
	InstantiateCoSimulation *FMI3InstantiateCoSimulationCommand `msgpack:"instantiate_co_simulation,omitempty"`
	FreeInstance            *FMI3FreeInstanceCommand            `msgpack:"free_instance,omitempty"`
	SetDebugLogging         *FMI3SetDebugLoggingCommand         `msgpack:"set_debug_logging,omitempty"`
	EnterInitializationMode *FMI3EnterInitializationModeCommand `msgpack:"enter_initialization_mode,omitempty"`
	ExitInitializationMode  *FMI3ExitInitializationModeCommand  `msgpack:"exit_initialization_mode,omitempty"`
	EnterStepMode           *FMI3EnterStepModeCommand           `msgpack:"enter_step_mode,omitempty"`
	Terminate               *FMI3TerminateCommand               `msgpack:"terminate,omitempty"`
	Reset                   *FMI3ResetCommand                   `msgpack:"reset,omitempty"`
	GetFloat32              *FMI3GetFloat32Command              `msgpack:"get_float32,omitempty"`
	GetFloat64              *FMI3GetFloat64Command              `msgpack:"get_float64,omitempty"`
	GetInt8                 *FMI3GetInt8Command                 `msgpack:"get_int8,omitempty"`
	GetUInt8                *FMI3GetUInt8Command                `msgpack:"get_uint8,omitempty"`
	GetInt16                *FMI3GetInt16Command                `msgpack:"get_int16,omitempty"`
	GetUInt16                *FMI3GetUInt16Command               `msgpack:"get_uint16,omitempty"`
	GetInt32                *FMI3GetInt32Command                `msgpack:"get_int32,omitempty"`
	GetUInt32                *FMI3GetUInt32Command               `msgpack:"get_uint32,omitempty"`
	GetInt64                *FMI3GetInt64Command                `msgpack:"get_int64,omitempty"`
	GetUInt64                *FMI3GetUInt64Command               `msgpack:"get_uint64,omitempty"`
	GetBoolean               *FMI3GetBooleanCommand              `msgpack:"get_boolean,omitempty"`
	GetString               *FMI3GetStringCommand                `msgpack:"get_string,omitempty"`
	SetFloat32              *FMI3SetFloat32Command              `msgpack:"set_float32,omitempty"`
	SetFloat64              *FMI3SetFloat64Command              `msgpack:"set_float64,omitempty"`
	SetInt8                 *FMI3SetInt8Command                 `msgpack:"set_int8,omitempty"`
	SetUInt8                *FMI3SetUInt8Command                `msgpack:"set_uint8,omitempty"`
	SetInt16                *FMI3SetInt16Command                `msgpack:"set_int16,omitempty"`
	SetUInt16                *FMI3SetUInt16Command               `msgpack:"set_uint16,omitempty"`
	SetInt32                *FMI3SetInt32Command                `msgpack:"set_int32,omitempty"`
	SetUInt32                *FMI3SetUInt32Command               `msgpack:"set_uint32,omitempty"`
	SetInt64                *FMI3SetInt64Command                `msgpack:"set_int64,omitempty"`
	SetUInt64                *FMI3SetUInt64Command               `msgpack:"set_uint64,omitempty"`
	SetBoolean               *FMI3SetBooleanCommand              `msgpack:"set_boolean,omitempty"`
	SetString               *FMI3SetStringCommand                `msgpack:"set_string,omitempty"`
	GetFMUState              *FMI3GetFMUStateCommand             `msgpack:"get_fmu_state,omitempty"`
	SetFMUState              *FMI3SetFMUStateCommand             `msgpack:"set_fmu_state,omitempty"`
	FreeFMUState              *FMI3FreeFMUStateCommand           `msgpack:"free_fmu_state,omitempty"`
	SerializeFMUState        *FMI3SerializeFMUStateCommand       `msgpack:"serialize_fmu_state,omitempty"`
	DeserializeFMUState      *FMI3DeserializeFMUStateCommand     `msgpack:"deserialize_fmu_state,omitempty"`
	DoStep                   *FMI3DoStepCommand                  `msgpack:"do_step,omitempty"`
}

type FMI3InstantiateCoSimulationCommand struct {
	InstanceName        string `msgpack:"instance_name"`
	InstantiationToken   string `msgpack:"instantiation_token"`
	ResourcePath         string `msgpack:"resource_path"`
	Visible              bool   `msgpack:"visible"`
	LoggingOn            bool   `msgpack:"logging_on"`
	EventModeUsed        bool   `msgpack:"event_mode_used"`
}
type FMI3FreeInstanceCommand struct{}
type FMI3SetDebugLoggingCommand struct {
	Categories []string `msgpack:"categories"`
	LoggingOn  bool     `msgpack:"logging_on"`
}
type FMI3EnterInitializationModeCommand struct {
	StartTime OptFloat64 `msgpack:"start_time,omitempty"`
	StopTime  OptFloat64 `msgpack:"stop_time,omitempty"`
	Tolerance OptFloat64 `msgpack:"tolerance,omitempty"`
}
type FMI3ExitInitializationModeCommand struct{}
type FMI3EnterStepModeCommand struct{}
type FMI3TerminateCommand struct{}
type FMI3ResetCommand struct{}

type FMI3GetFloat32Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetFloat64Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetInt8Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetUInt8Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetInt16Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetUInt16Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetInt32Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetUInt32Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetInt64Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetUInt64Command struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetBooleanCommand struct{ References []ValueReference `msgpack:"references"` }
type FMI3GetStringCommand struct{ References []ValueReference `msgpack:"references"` }

type FMI3SetFloat32Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []float32        `msgpack:"values"`
}
type FMI3SetFloat64Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []float64        `msgpack:"values"`
}
type FMI3SetInt8Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []int8           `msgpack:"values"`
}
type FMI3SetUInt8Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []uint8          `msgpack:"values"`
}
type FMI3SetInt16Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []int16          `msgpack:"values"`
}
type FMI3SetUInt16Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []uint16         `msgpack:"values"`
}
type FMI3SetInt32Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []int32          `msgpack:"values"`
}
type FMI3SetUInt32Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []uint32         `msgpack:"values"`
}
type FMI3SetInt64Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []int64          `msgpack:"values"`
}
type FMI3SetUInt64Command struct {
	References []ValueReference `msgpack:"references"`
	Values     []uint64         `msgpack:"values"`
}
type FMI3SetBooleanCommand struct {
	References []ValueReference `msgpack:"references"`
	Values     []bool           `msgpack:"values"`
}
type FMI3SetStringCommand struct {
	References []ValueReference `msgpack:"references"`
	Values     []string         `msgpack:"values"`
}

type FMI3GetFMUStateCommand struct{}
type FMI3SetFMUStateCommand struct{ State []byte `msgpack:"state"` }
type FMI3FreeFMUStateCommand struct{ State []byte `msgpack:"state"` }
type FMI3SerializeFMUStateCommand struct{ State []byte `msgpack:"state"` }
type FMI3DeserializeFMUStateCommand struct{ Bytes []byte `msgpack:"bytes"` }

type FMI3DoStepCommand struct {
	CurrentCommunicationPoint float64 `msgpack:"current_communication_point"`
	CommunicationStepSize     float64 `msgpack:"communication_step_size"`
	NoSetFMUStatePriorToCurrentPoint bool `msgpack:"no_set_fmu_state_prior_to_current_point"`
}
