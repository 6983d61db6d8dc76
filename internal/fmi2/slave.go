// Package fmi2 implements the FMI 2.0 co-simulation slave, the local
// stand-in that every FMI2 C entry point talks to. One Slave is created per
// fmi2Instantiate and destroyed by fmi2FreeInstance (spec.md §5's slave
// lifecycle), owning exactly one dispatcher and one logger, with no
// sharing between instances — the same one-object-per-op-but-shared-state
// shape the teacher draws between fuseops.Op values and the single
// server.server they're dispatched against, inverted here because there is
// one Slave per *instance* rather than one per call.
package fmi2

import (
	"fmt"

	"github.com/INTO-CPS-Association/unifmu-sub001/fmistatus"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/dispatcher"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/launch"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/logging"
	"github.com/INTO-CPS-Association/unifmu-sub001/internal/wire"
)

// Slave is the per-instance state described in spec.md §3: a dispatcher, a
// logger, and the three pieces of FMI2-only cached state (last successful
// time, last dostep status, pending message). The owned string buffer lives
// on the cgo ABI's fmi2Instance, not here.
type Slave struct {
	dispatcher *dispatcher.Dispatcher
	logger     *logging.InstanceLogger

	lastSuccessfulTime *float64
	dostepStatus       fmistatus.Status
	pendingMessage     *string
}

// Instantiate implements the lifecycle spec.md §6 describes: "Instantiation
// allocates a slave, spawns its dispatcher, performs the handshake, and
// registers the importer callback with the slave's logger. Any failure in
// these steps logs a fatal diagnostic and returns a null handle."
func Instantiate(
	instanceName, fmuGUID, fmuResourceLocation string,
	visible, loggingOn bool,
	callback logging.Callback,
) (_ *Slave, err error) {
	defer func() {
		if err != nil && callback != nil {
			callback.Invoke(instanceName, fmistatus.Fatal, logging.CategoryLogStatusFatal.String(), err.Error())
		}
	}()

	resourcesDir, err := launch.ResourceDir(fmuResourceLocation)
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

	s := &Slave{dispatcher: disp, logger: logger, dostepStatus: fmistatus.OK}

	cmd := wire.Command{
		Tag: wire.TagFmi2Instantiate,
		Fmi2: &wire.FMI2Command{Instantiate: &wire.FMI2InstantiateCommand{
			InstanceName:        instanceName,
			FMUGUID:             fmuGUID,
			FMUResourceLocation: fmuResourceLocation,
			Visible:             visible,
			LoggingOn:           loggingOn,
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

// FreeInstance tears the slave down, best-effort per spec.md §4.6: the host
// does not require a reply to proceed.
func (s *Slave) FreeInstance() {
	cmd := wire.Command{Tag: wire.TagFmi2FreeInstance, Fmi2: &wire.FMI2Command{FreeInstance: &wire.FMI2FreeInstanceCommand{}}}
	_, _ = s.dispatch(cmd)
	s.teardown()
}

// dispatch sends cmd and drives the reentrant-log loop described in spec.md
// §4.6: every LogReply the backend sends before its real answer is
// delivered to the logger and acknowledged with a CallbackContinue before
// waiting again.
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
