package wire

// FMI2Command is the oneof of every FMI2 co-simulation operation this host
// forwards (29 variants). Exactly one field is non-nil, selected by the
// enclosing Command's Tag — the same one-struct-per-operation shape as the
// teacher's fuseops.*Op catalog, collapsed under a single oneof wrapper
// because the wire layer (unlike fuseops) must serialize the choice.
type FMI2Command struct {
	Instantiate             *FMI2InstantiateCommand             `msgpack:"instantiate,omitempty"`
	FreeInstance            *FMI2FreeInstanceCommand             `msgpack:"free_instance,omitempty"`
	SetDebugLogging         *FMI2SetDebugLoggingCommand          `msgpack:"set_debug_logging,omitempty"`
	SetupExperiment         *FMI2SetupExperimentCommand          `msgpack:"setup_experiment,omitempty"`
	EnterInitializationMode *FMI2EnterInitializationModeCommand  `msgpack:"enter_initialization_mode,omitempty"`
	ExitInitializationMode  *FMI2ExitInitializationModeCommand   `msgpack:"exit_initialization_mode,omitempty"`
	Terminate               *FMI2TerminateCommand                `msgpack:"terminate,omitempty"`
	Reset                   *FMI2ResetCommand                    `msgpack:"reset,omitempty"`
	GetReal                 *FMI2GetRealCommand                  `msgpack:"get_real,omitempty"`
	GetInteger              *FMI2GetIntegerCommand               `msgpack:"get_integer,omitempty"`
	GetBoolean              *FMI2GetBooleanCommand               `msgpack:"get_boolean,omitempty"`
	GetString               *FMI2GetStringCommand                `msgpack:"get_string,omitempty"`
	SetReal                 *FMI2SetRealCommand                  `msgpack:"set_real,omitempty"`
	SetInteger              *FMI2SetIntegerCommand               `msgpack:"set_integer,omitempty"`
	SetBoolean              *FMI2SetBooleanCommand               `msgpack:"set_boolean,omitempty"`
	SetString               *FMI2SetStringCommand                `msgpack:"set_string,omitempty"`
	GetFMUstate             *FMI2GetFMUstateCommand              `msgpack:"get_fmu_state,omitempty"`
	SetFMUstate             *FMI2SetFMUstateCommand              `msgpack:"set_fmu_state,omitempty"`
	FreeFMUstate            *FMI2FreeFMUstateCommand             `msgpack:"free_fmu_state,omitempty"`
	SerializeFMUstate       *FMI2SerializeFMUstateCommand        `msgpack:"serialize_fmu_state,omitempty"`
	DeSerializeFMUstate     *FMI2DeSerializeFMUstateCommand      `msgpack:"deserialize_fmu_state,omitempty"`
	GetDirectionalDerivative *FMI2GetDirectionalDerivativeCommand `msgpack:"get_directional_derivative,omitempty"`
	DoStep                  *FMI2DoStepCommand                   `msgpack:"do_step,omitempty"`
	CancelStep              *FMI2CancelStepCommand               `msgpack:"cancel_step,omitempty"`
	GetStatus               *FMI2GetStatusCommand                `msgpack:"get_status,omitempty"`
	GetRealStatus           *FMI2GetRealStatusCommand            `msgpack:"get_real_status,omitempty"`
	GetIntegerStatus        *FMI2GetIntegerStatusCommand         `msgpack:"get_integer_status,omitempty"`
	GetBooleanStatus        *FMI2GetBooleanStatusCommand         `msgpack:"get_boolean_status,omitempty"`
	GetStringStatus         *FMI2GetStringStatusCommand          `msgpack:"get_string_status,omitempty"`
}

type FMI2InstantiateCommand struct {
	InstanceName           string `msgpack:"instance_name"`
	FMUGUID                string `msgpack:"fmu_guid"`
	FMUResourceLocation    string `msgpack:"fmu_resource_location"`
	Visible                bool   `msgpack:"visible"`
	LoggingOn              bool   `msgpack:"logging_on"`
}

type FMI2FreeInstanceCommand struct{}

type FMI2SetDebugLoggingCommand struct {
	Categories []string `msgpack:"categories"`
	LoggingOn  bool     `msgpack:"logging_on"`
}

type FMI2SetupExperimentCommand struct {
	StartTime      float64     `msgpack:"start_time"`
	StopTime       OptFloat64  `msgpack:"stop_time,omitempty"`
	Tolerance      OptFloat64  `msgpack:"tolerance,omitempty"`
}

type FMI2EnterInitializationModeCommand struct{}
type FMI2ExitInitializationModeCommand struct{}
type FMI2TerminateCommand struct{}
type FMI2ResetCommand struct{}

type FMI2GetRealCommand struct {
	References []ValueReference `msgpack:"references"`
}
type FMI2GetIntegerCommand struct {
	References []ValueReference `msgpack:"references"`
}
type FMI2GetBooleanCommand struct {
	References []ValueReference `msgpack:"references"`
}
type FMI2GetStringCommand struct {
	References []ValueReference `msgpack:"references"`
}

type FMI2SetRealCommand struct {
	References []ValueReference `msgpack:"references"`
	Values     []float64        `msgpack:"values"`
}
type FMI2SetIntegerCommand struct {
	References []ValueReference `msgpack:"references"`
	Values     []int32          `msgpack:"values"`
}
type FMI2SetBooleanCommand struct {
	References []ValueReference `msgpack:"references"`
	Values     []bool           `msgpack:"values"`
}
type FMI2SetStringCommand struct {
	References []ValueReference `msgpack:"references"`
	Values     []string         `msgpack:"values"`
}

type FMI2GetFMUstateCommand struct{}
type FMI2SetFMUstateCommand struct {
	State []byte `msgpack:"state"`
}
type FMI2FreeFMUstateCommand struct {
	State []byte `msgpack:"state"`
}
type FMI2SerializeFMUstateCommand struct {
	State []byte `msgpack:"state"`
}
type FMI2DeSerializeFMUstateCommand struct {
	Bytes []byte `msgpack:"bytes"`
}

type FMI2GetDirectionalDerivativeCommand struct {
	Unknowns []ValueReference `msgpack:"unknowns"`
	Knowns   []ValueReference `msgpack:"knowns"`
	Seed     []float64        `msgpack:"seed"`
}

type FMI2DoStepCommand struct {
	CurrentTime            float64 `msgpack:"current_time"`
	StepSize               float64 `msgpack:"step_size"`
	NoSetFMUStatePriorToCurrentPoint bool `msgpack:"no_set_fmu_state_prior_to_current_point"`
}

type FMI2CancelStepCommand struct{}

// StatusKind mirrors the FMI2 fmi2StatusKind enum, shared by all five
// GetXXXStatus operations.
type StatusKind int

const (
	StatusKindDoStepStatus StatusKind = iota
	StatusKindPendingStatus
	StatusKindLastSuccessfulTime
	StatusKindTerminated
)

type FMI2GetStatusCommand struct{ Kind StatusKind `msgpack:"kind"` }
type FMI2GetRealStatusCommand struct{ Kind StatusKind `msgpack:"kind"` }
type FMI2GetIntegerStatusCommand struct{ Kind StatusKind `msgpack:"kind"` }
type FMI2GetBooleanStatusCommand struct{ Kind StatusKind `msgpack:"kind"` }
type FMI2GetStringStatusCommand struct{ Kind StatusKind `msgpack:"kind"` }
