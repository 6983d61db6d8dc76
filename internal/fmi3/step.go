package fmi3

import (
	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// DoStepResult carries FMI3's richer DoStep reply (spec.md §3, §11): unlike
// FMI2, the step's terminal state and the last successfully reached point
// come back in the same reply rather than via a separate GetStatus round
// trip.
type DoStepResult struct {
	Status              fmistatus.Status
	EventHandlingNeeded bool
	TerminateSimulation bool
	EarlyReturn         bool
	LastSuccessfulTime  float64
}

func (s *Slave) DoStep(currentCommunicationPoint, communicationStepSize float64, noSetFMUStatePriorToCurrentPoint bool) (DoStepResult, error) {
	cmd := wire.Command{
		Tag: wire.TagFmi3DoStep,
		Fmi3: &wire.FMI3Command{DoStep: &wire.FMI3DoStepCommand{
			CurrentCommunicationPoint:        currentCommunicationPoint,
			CommunicationStepSize:            communicationStepSize,
			NoSetFMUStatePriorToCurrentPoint: noSetFMUStatePriorToCurrentPoint,
		}},
	}

	ret, err := s.dispatch(cmd)
	if err != nil {
		return DoStepResult{}, err
	}
	if ret.Fmi3 == nil || ret.Fmi3.DoStep == nil {
		return DoStepResult{}, unexpectedReturn("DoStep", ret)
	}

	r := ret.Fmi3.DoStep
	return DoStepResult{
		Status:              r.Status,
		EventHandlingNeeded: r.EventHandlingNeeded,
		TerminateSimulation: r.TerminateSimulation,
		EarlyReturn:         r.EarlyReturn,
		LastSuccessfulTime:  r.LastSuccessfulTime,
	}, nil
}
