package fmi2

import (
	"fmt"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

func (s *Slave) GetReal(references []wire.ValueReference) (fmistatus.Status, []float64, error) {
	cmd := wire.Command{Tag: wire.TagFmi2GetReal, Fmi2: &wire.FMI2Command{GetReal: &wire.FMI2GetRealCommand{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetReal == nil {
		return 0, nil, unexpectedReturn("GetReal", ret)
	}
	return ret.Fmi2.GetReal.Status, ret.Fmi2.GetReal.Values, nil
}

func (s *Slave) GetInteger(references []wire.ValueReference) (fmistatus.Status, []int32, error) {
	cmd := wire.Command{Tag: wire.TagFmi2GetInteger, Fmi2: &wire.FMI2Command{GetInteger: &wire.FMI2GetIntegerCommand{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetInteger == nil {
		return 0, nil, unexpectedReturn("GetInteger", ret)
	}
	return ret.Fmi2.GetInteger.Status, ret.Fmi2.GetInteger.Values, nil
}

func (s *Slave) GetBoolean(references []wire.ValueReference) (fmistatus.Status, []bool, error) {
	cmd := wire.Command{Tag: wire.TagFmi2GetBoolean, Fmi2: &wire.FMI2Command{GetBoolean: &wire.FMI2GetBooleanCommand{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetBoolean == nil {
		return 0, nil, unexpectedReturn("GetBoolean", ret)
	}
	return ret.Fmi2.GetBoolean.Status, ret.Fmi2.GetBoolean.Values, nil
}

// GetString returns the raw decoded strings; the cgo ABI layer is
// responsible for copying them into the instance's owned C-string buffer
// (internal/cstr.Buffer) before handing pointers to the importer, the same
// separation internal/logging draws between Slave/InstanceLogger (cgo-free)
// and the Callback implementation that actually crosses the cgo boundary.
func (s *Slave) GetString(references []wire.ValueReference) (fmistatus.Status, []string, error) {
	cmd := wire.Command{Tag: wire.TagFmi2GetString, Fmi2: &wire.FMI2Command{GetString: &wire.FMI2GetStringCommand{References: references}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetString == nil {
		return 0, nil, unexpectedReturn("GetString", ret)
	}
	return ret.Fmi2.GetString.Status, ret.Fmi2.GetString.Values, nil
}

func (s *Slave) SetReal(references []wire.ValueReference, values []float64) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2SetReal, Fmi2: &wire.FMI2Command{SetReal: &wire.FMI2SetRealCommand{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetInteger(references []wire.ValueReference, values []int32) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2SetInteger, Fmi2: &wire.FMI2Command{SetInteger: &wire.FMI2SetIntegerCommand{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetBoolean(references []wire.ValueReference, values []bool) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2SetBoolean, Fmi2: &wire.FMI2Command{SetBoolean: &wire.FMI2SetBooleanCommand{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func (s *Slave) SetString(references []wire.ValueReference, values []string) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2SetString, Fmi2: &wire.FMI2Command{SetString: &wire.FMI2SetStringCommand{References: references, Values: values}}}
	return s.statusCall(cmd)
}

func unexpectedReturn(op string, ret wire.Return) error {
	return &fmistatus.SlaveError{Op: op, Err: fmt.Errorf("unexpected return tag %d", ret.Tag)}
}
