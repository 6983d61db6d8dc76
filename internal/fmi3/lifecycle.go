package fmi3

import (
	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/logging"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

func (s *Slave) SetDebugLogging(categories []string, loggingOn bool) (fmistatus.Status, error) {
	cats := make([]logging.Category, len(categories))
	for i, c := range categories {
		cats[i] = logging.NewCategory(c)
	}
	s.logger.Filter().SetDebugLogging(cats, loggingOn)

	cmd := wire.Command{
		Tag: wire.TagFmi3SetDebugLogging,
		Fmi3: &wire.FMI3Command{SetDebugLogging: &wire.FMI3SetDebugLoggingCommand{
			Categories: categories,
			LoggingOn:  loggingOn,
		}},
	}
	return s.statusCall(cmd)
}

func (s *Slave) EnterInitializationMode(startTime, stopTime, tolerance *float64) (fmistatus.Status, error) {
	cmd := wire.Command{
		Tag: wire.TagFmi3EnterInitializationMode,
		Fmi3: &wire.FMI3Command{EnterInitializationMode: &wire.FMI3EnterInitializationModeCommand{
			StartTime: startTime,
			StopTime:  stopTime,
			Tolerance: tolerance,
		}},
	}
	return s.statusCall(cmd)
}

func (s *Slave) ExitInitializationMode() (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3ExitInitializationMode, Fmi3: &wire.FMI3Command{ExitInitializationMode: &wire.FMI3ExitInitializationModeCommand{}}}
	return s.statusCall(cmd)
}

func (s *Slave) EnterStepMode() (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3EnterStepMode, Fmi3: &wire.FMI3Command{EnterStepMode: &wire.FMI3EnterStepModeCommand{}}}
	return s.statusCall(cmd)
}

func (s *Slave) Terminate() (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3Terminate, Fmi3: &wire.FMI3Command{Terminate: &wire.FMI3TerminateCommand{}}}
	return s.statusCall(cmd)
}

func (s *Slave) Reset() (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi3Reset, Fmi3: &wire.FMI3Command{Reset: &wire.FMI3ResetCommand{}}}
	return s.statusCall(cmd)
}
