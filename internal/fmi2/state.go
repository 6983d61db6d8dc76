package fmi2

import (
	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// FMUState is the opaque serialized-state handle (SPEC_FULL.md's resolution
// of the GetFMUstate/serialize open question): rather than distinguishing a
// live backend-side state object from its serialized bytes, the slave
// treats GetFMUstate's reply as already-serialized, matching the message
// naming original_source uses for both calls.
type FMUState struct {
	bytes []byte
}

func (s *Slave) GetFMUstate() (fmistatus.Status, *FMUState, error) {
	cmd := wire.Command{Tag: wire.TagFmi2GetFMUstate, Fmi2: &wire.FMI2Command{GetFMUstate: &wire.FMI2GetFMUstateCommand{}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetFMUstate == nil {
		return 0, nil, unexpectedReturn("GetFMUstate", ret)
	}
	r := ret.Fmi2.GetFMUstate
	return r.Status, &FMUState{bytes: r.State}, nil
}

func (s *Slave) SetFMUstate(state *FMUState) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2SetFMUstate, Fmi2: &wire.FMI2Command{SetFMUstate: &wire.FMI2SetFMUstateCommand{State: state.bytes}}}
	return s.statusCall(cmd)
}

func (s *Slave) FreeFMUstate(state *FMUState) (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2FreeFMUstate, Fmi2: &wire.FMI2Command{FreeFMUstate: &wire.FMI2FreeFMUstateCommand{State: state.bytes}}}
	return s.statusCall(cmd)
}

// SerializeFMUstate returns the already-serialized bytes an FMUState
// carries; kept as a call to the backend (rather than a local copy) so a
// backend that regenerates the serialized form on each request stays
// authoritative.
func (s *Slave) SerializeFMUstate(state *FMUState) (fmistatus.Status, []byte, error) {
	cmd := wire.Command{Tag: wire.TagFmi2SerializeFMUstate, Fmi2: &wire.FMI2Command{SerializeFMUstate: &wire.FMI2SerializeFMUstateCommand{State: state.bytes}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.SerializeFMUstate == nil {
		return 0, nil, unexpectedReturn("SerializeFMUstate", ret)
	}
	r := ret.Fmi2.SerializeFMUstate
	return r.Status, r.Bytes, nil
}

func (s *Slave) DeSerializeFMUstate(data []byte) (fmistatus.Status, *FMUState, error) {
	cmd := wire.Command{Tag: wire.TagFmi2DeSerializeFMUstate, Fmi2: &wire.FMI2Command{DeSerializeFMUstate: &wire.FMI2DeSerializeFMUstateCommand{Bytes: data}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	status, err := statusFromReturn(ret)
	if err != nil {
		return 0, nil, err
	}
	// The backend's deserialize reply confirms the state is valid; the
	// handle we hand back simply carries forward the bytes the importer
	// already gave us (spec.md §9's FMUState unification).
	return status, &FMUState{bytes: data}, nil
}

func (s *Slave) GetDirectionalDerivative(unknowns, knowns []wire.ValueReference, seed []float64) (fmistatus.Status, []float64, error) {
	cmd := wire.Command{
		Tag: wire.TagFmi2GetDirectionalDerivative,
		Fmi2: &wire.FMI2Command{GetDirectionalDerivative: &wire.FMI2GetDirectionalDerivativeCommand{
			Unknowns: unknowns,
			Knowns:   knowns,
			Seed:     seed,
		}},
	}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, nil, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetDirectionalDerivative == nil {
		return 0, nil, unexpectedReturn("GetDirectionalDerivative", ret)
	}
	r := ret.Fmi2.GetDirectionalDerivative
	return r.Status, r.Values, nil
}
