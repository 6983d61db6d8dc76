package wire

// CommandTag discriminates the oneof carried by a Command. Playing the same
// role the teacher's fusekernel opcode constants play in connection.go's
// switch over inMsg.Header().Opcode, this is the value Encode/Decode check
// and the backend reads to select the populated field.
type CommandTag uint16

const (
	TagUnknown CommandTag = iota

	// FMI2 (spec.md §2, §6).
	TagFmi2Instantiate
	TagFmi2FreeInstance
	TagFmi2SetDebugLogging
	TagFmi2SetupExperiment
	TagFmi2EnterInitializationMode
	TagFmi2ExitInitializationMode
	TagFmi2Terminate
	TagFmi2Reset
	TagFmi2GetReal
	TagFmi2GetInteger
	TagFmi2GetBoolean
	TagFmi2GetString
	TagFmi2SetReal
	TagFmi2SetInteger
	TagFmi2SetBoolean
	TagFmi2SetString
	TagFmi2GetFMUstate
	TagFmi2SetFMUstate
	TagFmi2FreeFMUstate
	TagFmi2SerializeFMUstate
	TagFmi2DeSerializeFMUstate
	TagFmi2GetDirectionalDerivative
	TagFmi2DoStep
	TagFmi2CancelStep
	TagFmi2GetStatus
	TagFmi2GetRealStatus
	TagFmi2GetIntegerStatus
	TagFmi2GetBooleanStatus
	TagFmi2GetStringStatus

	// FMI3 (spec.md §2, §6). No Pending status, no dostep-status cache.
	TagFmi3InstantiateCoSimulation
	TagFmi3FreeInstance
	TagFmi3SetDebugLogging
	TagFmi3EnterInitializationMode
	TagFmi3ExitInitializationMode
	TagFmi3EnterStepMode
	TagFmi3Terminate
	TagFmi3Reset
	TagFmi3GetFloat32
	TagFmi3GetFloat64
	TagFmi3GetInt8
	TagFmi3GetUInt8
	TagFmi3GetInt16
	TagFmi3GetUInt16
	TagFmi3GetInt32
	TagFmi3GetUInt32
	TagFmi3GetInt64
	TagFmi3GetUInt64
	TagFmi3GetBoolean
	TagFmi3GetString
	TagFmi3SetFloat32
	TagFmi3SetFloat64
	TagFmi3SetInt8
	TagFmi3SetUInt8
	TagFmi3SetInt16
	TagFmi3SetUInt16
	TagFmi3SetInt32
	TagFmi3SetUInt32
	TagFmi3SetInt64
	TagFmi3SetUInt64
	TagFmi3SetBoolean
	TagFmi3SetString
	TagFmi3GetFMUState
	TagFmi3SetFMUState
	TagFmi3FreeFMUState
	TagFmi3SerializeFMUState
	TagFmi3DeserializeFMUState
	TagFmi3DoStep

	// Shared (spec.md §3, §4.6).
	TagCallbackContinue
)

// ReturnTag discriminates the oneof carried by a Return.
type ReturnTag uint16

const (
	RetUnknown ReturnTag = iota
	RetHandshake
	RetStatus
	RetEmpty
	RetGetReal
	RetGetInteger
	RetGetBoolean
	RetGetString
	RetGetFMUstate
	RetSerializeFMUstate
	RetGetDirectionalDerivative
	RetGetStatus
	RetGetRealStatus
	RetGetIntegerStatus
	RetGetBooleanStatus
	RetGetStringStatus
	RetGetFloat32
	RetGetFloat64
	RetGetInt8
	RetGetUInt8
	RetGetInt16
	RetGetUInt16
	RetGetInt32
	RetGetUInt32
	RetGetInt64
	RetGetUInt64
	RetLog
)
