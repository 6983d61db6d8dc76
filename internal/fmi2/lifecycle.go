package fmi2

import (
	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/logging"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// SetDebugLogging implements spec.md §4.5's translation rule locally (on
// the slave's own InstanceLogger) and forwards the same call to the
// backend, which may keep its own notion of which categories to emit.
func (s *Slave) SetDebugLogging(categories []string, loggingOn bool) (fmistatus.Status, error) {
	cats := make([]logging.Category, len(categories))
	for i, c := range categories {
		cats[i] = logging.NewCategory(c)
	}
	s.logger.Filter().SetDebugLogging(cats, loggingOn)

	cmd := wire.Command{
		Tag: wire.TagFmi2SetDebugLogging,
		Fmi2: &wire.FMI2Command{SetDebugLogging: &wire.FMI2SetDebugLoggingCommand{
			Categories: categories,
			LoggingOn:  loggingOn,
		}},
	}
	return s.statusCall(cmd)
}

func (s *Slave) SetupExperiment(startTime float64, stopTime, tolerance *float64) (fmistatus.Status, error) {
	cmd := wire.Command{
		Tag: wire.TagFmi2SetupExperiment,
		Fmi2: &wire.FMI2Command{SetupExperiment: &wire.FMI2SetupExperimentCommand{
			StartTime: startTime,
			StopTime:  stopTime,
			Tolerance: tolerance,
		}},
	}
	return s.statusCall(cmd)
}

func (s *Slave) EnterInitializationMode() (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2EnterInitializationMode, Fmi2: &wire.FMI2Command{EnterInitializationMode: &wire.FMI2EnterInitializationModeCommand{}}}
	return s.statusCall(cmd)
}

func (s *Slave) ExitInitializationMode() (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2ExitInitializationMode, Fmi2: &wire.FMI2Command{ExitInitializationMode: &wire.FMI2ExitInitializationModeCommand{}}}
	return s.statusCall(cmd)
}

func (s *Slave) Terminate() (fmistatus.Status, error) {
	cmd := wire.Command{Tag: wire.TagFmi2Terminate, Fmi2: &wire.FMI2Command{Terminate: &wire.FMI2TerminateCommand{}}}
	return s.statusCall(cmd)
}

func (s *Slave) Reset() (fmistatus.Status, error) {
	s.lastSuccessfulTime = nil
	s.dostepStatus = fmistatus.OK
	s.pendingMessage = nil

	cmd := wire.Command{Tag: wire.TagFmi2Reset, Fmi2: &wire.FMI2Command{Reset: &wire.FMI2ResetCommand{}}}
	return s.statusCall(cmd)
}
