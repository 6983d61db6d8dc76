package fmi3

import (
	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

func (s *Slave) GetFloat32(references []wire.ValueReference) (fmistatus.Status, []float32, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetFloat32, Fmi3: &wire.FMI3Command{GetFloat32: &wire.FMI3GetFloat32Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetFloat32 == nil {
		return 0, nil, unexpectedReturn("GetFloat32", ret)
	}
	return ret.Fmi3.GetFloat32.Status, ret.Fmi3.GetFloat32.Values, nil
}

func (s *Slave) GetFloat64(references []wire.ValueReference) (fmistatus.Status, []float64, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetFloat64, Fmi3: &wire.FMI3Command{GetFloat64: &wire.FMI3GetFloat64Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetFloat64 == nil {
		return 0, nil, unexpectedReturn("GetFloat64", ret)
	}
	return ret.Fmi3.GetFloat64.Status, ret.Fmi3.GetFloat64.Values, nil
}

func (s *Slave) GetInt8(references []wire.ValueReference) (fmistatus.Status, []int8, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetInt8, Fmi3: &wire.FMI3Command{GetInt8: &wire.FMI3GetInt8Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetInt8 == nil {
		return 0, nil, unexpectedReturn("GetInt8", ret)
	}
	return ret.Fmi3.GetInt8.Status, ret.Fmi3.GetInt8.Values, nil
}

func (s *Slave) GetUInt8(references []wire.ValueReference) (fmistatus.Status, []uint8, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetUInt8, Fmi3: &wire.FMI3Command{GetUInt8: &wire.FMI3GetUInt8Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetUInt8 == nil {
		return 0, nil, unexpectedReturn("GetUInt8", ret)
	}
	return ret.Fmi3.GetUInt8.Status, ret.Fmi3.GetUInt8.Values, nil
}

func (s *Slave) GetInt16(references []wire.ValueReference) (fmistatus.Status, []int16, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetInt16, Fmi3: &wire.FMI3Command{GetInt16: &wire.FMI3GetInt16Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetInt16 == nil {
		return 0, nil, unexpectedReturn("GetInt16", ret)
	}
	return ret.Fmi3.GetInt16.Status, ret.Fmi3.GetInt16.Values, nil
}

func (s *Slave) GetUInt16(references []wire.ValueReference) (fmistatus.Status, []uint16, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetUInt16, Fmi3: &wire.FMI3Command{GetUInt16: &wire.FMI3GetUInt16Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetUInt16 == nil {
		return 0, nil, unexpectedReturn("GetUInt16", ret)
	}
	return ret.Fmi3.GetUInt16.Status, ret.Fmi3.GetUInt16.Values, nil
}

func (s *Slave) GetInt32(references []wire.ValueReference) (fmistatus.Status, []int32, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetInt32, Fmi3: &wire.FMI3Command{GetInt32: &wire.FMI3GetInt32Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetInt32 == nil {
		return 0, nil, unexpectedReturn("GetInt32", ret)
	}
	return ret.Fmi3.GetInt32.Status, ret.Fmi3.GetInt32.Values, nil
}

func (s *Slave) GetUInt32(references []wire.ValueReference) (fmistatus.Status, []uint32, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetUInt32, Fmi3: &wire.FMI3Command{GetUInt32: &wire.FMI3GetUInt32Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetUInt32 == nil {
		return 0, nil, unexpectedReturn("GetUInt32", ret)
	}
	return ret.Fmi3.GetUInt32.Status, ret.Fmi3.GetUInt32.Values, nil
}

func (s *Slave) GetInt64(references []wire.ValueReference) (fmistatus.Status, []int64, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetInt64, Fmi3: &wire.FMI3Command{GetInt64: &wire.FMI3GetInt64Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetInt64 == nil {
		return 0, nil, unexpectedReturn("GetInt64", ret)
	}
	return ret.Fmi3.GetInt64.Status, ret.Fmi3.GetInt64.Values, nil
}

func (s *Slave) GetUInt64(references []wire.ValueReference) (fmistatus.Status, []uint64, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetUInt64, Fmi3: &wire.FMI3Command{GetUInt64: &wire.FMI3GetUInt64Command{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetUInt64 == nil {
		return 0, nil, unexpectedReturn("GetUInt64", ret)
	}
	return ret.Fmi3.GetUInt64.Status, ret.Fmi3.GetUInt64.Values, nil
}

func (s *Slave) GetBoolean(references []wire.ValueReference) (fmistatus.Status, []bool, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetBoolean, Fmi3: &wire.FMI3Command{GetBoolean: &wire.FMI3GetBooleanCommand{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetBoolean == nil {
		return 0, nil, unexpectedReturn("GetBoolean", ret)
	}
	return ret.Fmi3.GetBoolean.Status, ret.Fmi3.GetBoolean.Values, nil
}

// GetString returns decoded strings; the cgo ABI layer owns copying them
// into the instance's C-string buffer (see internal/fmi2.GetString's
// doc comment for the shared rationale).
func (s *Slave) GetString(references []wire.ValueReference) (fmistatus.Status, []string, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetString, Fmi3: &wire.FMI3Command{GetString: &wire.FMI3GetStringCommand{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetString == nil {
		return 0, nil, unexpectedReturn("GetString", ret)
	}
	return ret.Fmi3.GetString.Status, ret.Fmi3.GetString.Values, nil
}

func (s *Slave) SetFloat32(references []wire.ValueReference, values []float32) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetFloat32, Fmi3: &wire.FMI3Command{SetFloat32: &wire.FMI3SetFloat32Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetFloat64(references []wire.ValueReference, values []float64) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetFloat64, Fmi3: &wire.FMI3Command{SetFloat64: &wire.FMI3SetFloat64Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetInt8(references []wire.ValueReference, values []int8) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetInt8, Fmi3: &wire.FMI3Command{SetInt8: &wire.FMI3SetInt8Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetUInt8(references []wire.ValueReference, values []uint8) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetUInt8, Fmi3: &wire.FMI3Command{SetUInt8: &wire.FMI3SetUInt8Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetInt16(references []wire.ValueReference, values []int16) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetInt16, Fmi3: &wire.FMI3Command{SetInt16: &wire.FMI3SetInt16Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetUInt16(references []wire.ValueReference, values []uint16) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetUInt16, Fmi3: &wire.FMI3Command{SetUInt16: &wire.FMI3SetUInt16Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetInt32(references []wire.ValueReference, values []int32) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetInt32, Fmi3: &wire.FMI3Command{SetInt32: &wire.FMI3SetInt32Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetUInt32(references []wire.ValueReference, values []uint32) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetUInt32, Fmi3: &wire.FMI3Command{SetUInt32: &wire.FMI3SetUInt32Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetInt64(references []wire.ValueReference, values []int64) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetInt64, Fmi3: &wire.FMI3Command{SetInt64: &wire.FMI3SetInt64Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetUInt64(references []wire.ValueReference, values []uint64) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetUInt64, Fmi3: &wire.FMI3Command{SetUInt64: &wire.FMI3SetUInt64Command{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetBoolean(references []wire.ValueReference, values []bool) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetBoolean, Fmi3: &wire.FMI3Command{SetBoolean: &wire.FMI3SetBooleanCommand{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetString(references []wire.ValueReference, values []string) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetString, Fmi3: &wire.FMI3Command{SetString: &wire.FMI3SetStringCommand{References: references, Values: values}}}
	return s.statusCall(cmd)
}
