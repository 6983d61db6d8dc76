package fmi3

import (
	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// FMUState mirrors fmi2.FMUState: an opaque handle wrapping already
// serialized bytes (SPEC_FULL.md §13's unification, applied identically
// to both FMI versions).
type FMUState struct {
	bytes []byte
}

func (s *Slave) GetFMUState() (fmistatus.Status, *FMUState, error) {
	cmd := wire.Command{Tag: wire.TagFmi3GetFMUState, Fmi3: &wire.FMI3Command{GetFMUState: &wire.FMI3GetFMUStateCommand{}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.GetFMUState == nil {
		return 0, nil, unexpectedReturn("GetFMUState", ret)
	}
	r := ret.Fmi3.GetFMUState
	return r.Status, &FMUState{bytes: r.State}, nil
}

func (s *Slave) SetFMUState(state *FMUState) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SetFMUState, Fmi3: &wire.FMI3Command{SetFMUState: &wire.FMI3SetFMUStateCommand{State: state.bytes}}}
	return s.statusCall(cmd)
}

func (s *Slave) FreeFMUState(state *FMUState) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3FreeFMUState, Fmi3: &wire.FMI3Command{FreeFMUState: &wire.FMI3FreeFMUStateCommand{State: state.bytes}}}
	return s.statusCall(cmd)
}

func (s *Slave) SerializeFMUState(state *FMUState) (fmistatus.Status, []byte, error) {
	cmd := wire.Command{Tag: wire.TagFmi3SerializeFMUState, Fmi3: &wire.FMI3Command{SerializeFMUState: &wire.FMI3SerializeFMUStateCommand{State: state.bytes}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.SerializeFMUState == nil {
		return 0, nil, unexpectedReturn("SerializeFMUState", ret)
	}
	r := ret.Fmi3.SerializeFMUState
	return r.Status, r.Bytes, nil
}

func (s *Slave) DeserializeFMUState(data []byte) (fmistatus.Status, *FMUState, error) {
	cmd := wire.Command{Tag: wire.TagFmi3DeserializeFMUState, Fmi3: &wire.FMI3Command{DeserializeFMUState: &wire.FMI3DeserializeFMUStateCommand{Bytes: data}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	status, err := statusFromReturn(ret)
	if err != nil {
		return 0, nil, err
	}
	return status, &FMUState{bytes: data}, nil
}
