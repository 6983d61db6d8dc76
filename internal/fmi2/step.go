package fmi2

import (
	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// DoStep advances the backend and caches the resulting status, the value
// GetStatus(DoStepStatus) reports on a subsequent call without a fresh
// round trip (spec.md §4's status-kind family).
func (s *Slave) DoStep(currentTime, stepSize float64, noSetFMUStatePriorToCurrentPoint bool) (fmistatus.Status, error) {
	cmd := wire.Command{
		Tag: wire.TagFmi2DoStep,
		Fmi2: &wire.FMI2Command{DoStep: &wire.FMI2DoStepCommand{
			CurrentTime:                      currentTime,
			StepSize:                         stepSize,
			NoSetFMUStatePriorToCurrentPoint: noSetFMUStatePriorToCurrentPoint,
		}},
	}

	status, err := s.statusCall(cmd)
	if err != nil {
		return 0, err
	}

	s.dostepStatus = status
	if status == fmistatus.OK || status == fmistatus.Warning {
		t := currentTime + stepSize
		s.lastSuccessfulTime = &t
	}

	return status, nil
}

// CancelStep is dispatched synchronously on the ordinary socket (SPEC_FULL's
// resolution of the CancelStep open question: original_source has no
// working implementation to decide it either way, and nothing in spec.md
// §5 calls for an explicit timeout or an out-of-band channel).
func (s *Slave) CancelStep() (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2CancelStep, Fmi2: &wire.FMI2Command{CancelStep: &wire.FMI2CancelStepCommand{}}}
	return s.statusCall(cmd)
}

func (s *Slave) GetStatus(kind wire.StatusKind) (fmistatus.Status, fmistatus.Status, error) {
	if kind == wire.StatusKindDoStepStatus {
		return fmistatus.OK, s.dostepStatus, nil
	}

	cmd := wire.Command{Tag: wire.TagFmi2GetStatus, Fmi2: &wire.FMI2Command{GetStatus: &wire.FMI2GetStatusCommand{Kind: kind}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, 0, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetStatus == nil {
		return 0, 0, unexpectedReturn("GetStatus", ret)
	}
	r := ret.Fmi2.GetStatus
	return r.Status, r.ReturnStatus, nil
}

func (s *Slave) GetRealStatus(kind wire.StatusKind) (fmistatus.Status, float64, error) {
	if kind == wire.StatusKindLastSuccessfulTime && s.lastSuccessfulTime != nil {
		return fmistatus.OK, *s.lastSuccessfulTime, nil
	}

	cmd := wire.Command{Tag: wire.TagFmi2GetRealStatus, Fmi2: &wire.FMI2Command{GetRealStatus: &wire.FMI2GetRealStatusCommand{Kind: kind}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, 0, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetRealStatus == nil {
		return 0, 0, unexpectedReturn("GetRealStatus", ret)
	}
	r := ret.Fmi2.GetRealStatus
	return r.Status, r.Value, nil
}

func (s *Slave) GetIntegerStatus(kind wire.StatusKind) (fmistatus.Status, int32, error) {
	cmd := wire.Command{Tag: wire.TagFmi2GetIntegerStatus, Fmi2: &wire.FMI2Command{GetIntegerStatus: &wire.FMI2GetIntegerStatusCommand{Kind: kind}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, 0, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetIntegerStatus == nil {
		return 0, 0, unexpectedReturn("GetIntegerStatus", ret)
	}
	r := ret.Fmi2.GetIntegerStatus
	return r.Status, r.Value, nil
}

func (s *Slave) GetBooleanStatus(kind wire.StatusKind) (fmistatus.Status, bool, error) {
	cmd := wire.Command{Tag: wire.TagFmi2GetBooleanStatus, Fmi2: &wire.FMI2Command{GetBooleanStatus: &wire.FMI2GetBooleanStatusCommand{Kind: kind}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, false, err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetBooleanStatus == nil {
		return 0, false, unexpectedReturn("GetBooleanStatus", ret)
	}
	r := ret.Fmi2.GetBooleanStatus
	return r.Status, r.Value, nil
}

func (s *Slave) GetStringStatus(kind wire.StatusKind) (fmistatus.Status, string, error) {
	if kind == wire.StatusKindPendingStatus && s.pendingMessage != nil {
		return fmistatus.Pending, *s.pendingMessage, nil
	}

	cmd := wire.Command{Tag: wire.TagFmi2GetStringStatus, Fmi2: &wire.FMI2Command{GetStringStatus: &wire.FMI2GetStringStatusCommand{Kind: kind}}}
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, "", err
	}
	if ret.Fmi2 == nil || ret.Fmi2.GetStringStatus == nil {
		return 0, "", unexpectedReturn("GetStringStatus", ret)
	}
	r := ret.Fmi2.GetStringStatus
	if r.Status == fmistatus.Pending {
		s.pendingMessage = &r.Value
	}
	return r.Status, r.Value, nil
}
