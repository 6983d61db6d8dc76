// Package fmi3 implements the FMI 3.0 co-simulation slave, mirroring
// internal/fmi2's shape against the FMI3 message set: no Pending status, no
// dostep-status cache, and EnterStepMode in place of FMI2's implicit
// transition (spec.md §3).
package fmi3

import (
	"fmt"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/dispatcher"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/launch"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/logging"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// Slave is the FMI3 analogue of fmi2.Slave. It carries no
// lastSuccessfulTime/dostepStatus/pendingMessage cache: FMI3's DoStep reply
// already carries LastSuccessfulTime and there is no Pending status to
// remember (spec.md §3, §11).
type Slave struct {
	dispatcher *dispatcher.Dispatcher
	logger     *logging.InstanceLogger
}

// Instantiate mirrors fmi2.Instantiate against
// fmi3InstantiateCoSimulation's argument set (spec.md §6).
func Instantiate(
	instanceName, instantiationToken, resourcePath string,
	visible, loggingOn, eventModeUsed bool,
	callback logging.Callback,
) (_ *Slave, err error) {
	defer func() {
		if err != nil && callback != nil {
			callback.Invoke(instanceName, fmistatus.Fatal, logging.CategoryLogStatusFatal.String(), err.Error())
		}
	}()

	resourcesDir, err := launch.ResourceDir(resourcePath)
	if err != nil {
		return nil, &fmistatus.SlaveError{Op: "resolve resource location", Err: err}
	}

	cfg, err := launch.Load(resourcesDir)
	if err != nil {
		return nil, &fmistatus.SlaveError{Op: "load launch.toml", Err: err}
	}

	disp, err := spawnDispatcher(cfg, resourcesDir)
	if err != nil {
		return nil, &fmistatus.SlaveError{Op: "spawn dispatcher", Err: err}
	}

	if err := disp.AwaitHandshake(); err != nil {
		disp.Close()
		return nil, &fmistatus.SlaveError{Op: "handshake", Err: err}
	}

	filter := logging.NewWhitelist()
	if loggingOn {
		filter = logging.NewBlacklist()
	}

	logger, err := logging.Global.Register(instanceName, filter)
	if err != nil {
		disp.Close()
		return nil, &fmistatus.SlaveError{Op: "register logger", Err: err}
	}
	logger.SetCallback(callback)

	s := &Slave{dispatcher: disp, logger: logger}

	cmd := wire.Command{
		Tag: wire.TagFmi3InstantiateCoSimulation,
		Fmi3: &wire.FMI3Command{InstantiateCoSimulation: &wire.FMI3InstantiateCoSimulationCommand{
			InstanceName:       instanceName,
			InstantiationToken: instantiationToken,
			ResourcePath:       resourcePath,
			Visible:            visible,
			LoggingOn:          loggingOn,
			EventModeUsed:      eventModeUsed,
		}},
	}
	status, err := s.statusCall(cmd)
	if err != nil {
		s.teardown()
		return nil, err
	}
	if status != fmistatus.OK {
		s.teardown()
		return nil, &fmistatus.SlaveError{Op: "instantiate", Err: fmt.Errorf("backend returned status %s", status)}
	}

	return s, nil
}

func spawnDispatcher(cfg *launch.Config, resourcesDir string) (*dispatcher.Dispatcher, error) {
	if cfg.Location == launch.LocationRemote {
		return dispatcher.NewRemote("tcp://*:*")
	}
	argv, err := cfg.Argv()
	if err != nil {
		return nil, err
	}
	return dispatcher.NewLocal(resourcesDir, argv)
}

func (s *Slave) teardown() {
	logging.Global.Unregister(s.logger.UID())
	s.dispatcher.Close()
}

// UID identifies the slave's logger record.
func (s *Slave) UID() logging.UID { return s.logger.UID() }

// FreeInstance tears the slave down, best-effort (spec.md §4.6).
func (s *Slave) FreeInstance() {
	cmd := wire.Command{Tag: wire.TagFmi3FreeInstance, Fmi3: &wire.FMI3Command{FreeInstance: &wire.FMI3FreeInstanceCommand{}}}
	_, _ = s.dispatch(cmd)
	s.teardown()
}

func (s *Slave) dispatch(cmd wire.Command) (wire.Return, error) {
	ret, err := s.dispatcher.SendAndRecv(cmd)
	if err != nil {
		return wire.Return{}, &fmistatus.SlaveError{Op: "dispatch", Err: err}
	}

	for ret.Tag == wire.RetLog {
		s.logger.Log(ret.Log.Status, logging.NewCategory(ret.Log.Category), ret.Log.Message)

		ret, err = s.dispatcher.SendAndRecv(wire.NewCallbackContinue())
		if err != nil {
			return wire.Return{}, &fmistatus.SlaveError{Op: "dispatch (post-log continue)", Err: err}
		}
	}

	return ret, nil
}

func (s *Slave) statusCall(cmd wire.Command) (fmistatus.Status, error) {
	ret, err := s.dispatch(cmd)
	if err != nil {
		return 0, err
	}
	return statusFromReturn(ret)
}

func statusFromReturn(ret wire.Return) (fmistatus.Status, error) {
	switch {
	case ret.Status != nil:
		return ret.Status.Status, nil
	case ret.Empty != nil:
		return fmistatus.OK, nil
	default:
		return 0, &fmistatus.SlaveError{Op: "decode", Err: fmt.Errorf("unexpected return tag %d for a status-only call", ret.Tag)}
	}
}

func unexpectedReturn(op string, ret wire.Return) error {
	return &fmistatus.SlaveError{Op: op, Err: fmt.Errorf("unexpected return tag %d", ret.Tag)}
}
