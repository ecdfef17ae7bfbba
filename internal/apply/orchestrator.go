package apply

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"

	"hpg/internal/fileutil"
	"hpg/internal/hyprpaper"
	"hpg/internal/wallpaper"
)

// ProcessController manages the daemon process lifecycle.
type ProcessController interface {
	IsRunning() (bool, error)
	Start() error
	Restart() error
}

// ControlClient drives a running daemon over its control socket.
type ControlClient interface {
	ListLoaded() (map[string]struct{}, error)
	Preload(path string) error
	SetWallpaper(output, fragment string) error
	UnloadAll() error
}

// ConfigProbe reads the live-control flag from the daemon config on disk.
type ConfigProbe interface {
	IPCEnabled() (bool, error)
}

// ErrApplyInProgress indicates another hpg apply holds the state lock.
var ErrApplyInProgress = errors.New("another hpg apply is in progress")

// Mode names the path an apply took.
type Mode string

const (
	// ModeDisk means the config was written and the daemon restarted.
	ModeDisk Mode = "disk"
	// ModeLive means the running daemon was updated over the control socket.
	ModeLive Mode = "live"
)

// Result summarizes one completed apply.
type Result struct {
	Mode          Mode
	ConfPath      string
	Monitors      int
	Preloads      int
	LivePreloads  int
	DaemonStarted bool
	Duration      time.Duration
}

// Orchestrator coordinates rendering, disk writes, process control, and live
// updates for a single apply. It is not safe for concurrent use; the
// optional file lock serializes applies across processes instead.
type Orchestrator struct {
	confPath string
	probe    ConfigProbe
	proc     ProcessController
	client   ControlClient
	lockPath string
	logger   *slog.Logger
}

// New constructs an orchestrator targeting the daemon config at confPath.
func New(confPath string, probe ConfigProbe, proc ProcessController, client ControlClient, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		confPath: confPath,
		probe:    probe,
		proc:     proc,
		client:   client,
		logger:   logger,
	}
}

// WithLock makes Apply hold the file lock at lockPath for its duration.
func (o *Orchestrator) WithLock(lockPath string) *Orchestrator {
	o.lockPath = lockPath
	return o
}

// Apply pushes the profile to the daemon, on disk or live. The decision is
// computed once per apply and not persisted.
func (o *Orchestrator) Apply(profile wallpaper.Profile) (*Result, error) {
	if o.lockPath != "" {
		if err := fileutil.EnsureParentDir(o.lockPath); err != nil {
			return nil, err
		}
		lock := flock.New(o.lockPath)
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire apply lock %q: %w", o.lockPath, err)
		}
		if !ok {
			return nil, ErrApplyInProgress
		}
		defer func() { _ = lock.Unlock() }()
	}

	started := time.Now()

	plan, err := wallpaper.Compile(profile, o.logger)
	if err != nil {
		return nil, err
	}
	text := plan.Text(profile.IPC, profile.Splash)

	// A conf that does not exist yet cannot have live control enabled; the
	// probe itself treats an unreadable conf as fatal.
	diskIPC := false
	if fileutil.FileExists(o.confPath) {
		diskIPC, err = o.probe.IPCEnabled()
		if err != nil {
			return nil, err
		}
	}

	result := &Result{
		ConfPath: o.confPath,
		Monitors: len(plan.Assignments),
		Preloads: len(plan.Preloads),
	}

	// Disk state is updated on both paths so a later restart reproduces the
	// live state.
	if err := hyprpaper.WriteConf(o.confPath, text); err != nil {
		return nil, err
	}
	o.logger.Debug("daemon config written", "path", o.confPath, "monitors", result.Monitors, "preloads", result.Preloads)

	if !diskIPC || !profile.IPC {
		if err := o.proc.Restart(); err != nil {
			return nil, err
		}
		o.logger.Info("config applied with daemon restart", "path", o.confPath)
		result.Mode = ModeDisk
		result.Duration = time.Since(started)
		return result, nil
	}

	running, err := o.proc.IsRunning()
	if err != nil {
		return nil, err
	}
	if !running {
		if err := o.proc.Start(); err != nil {
			return nil, err
		}
		result.DaemonStarted = true
		o.logger.Info("daemon was not running, started it")
	}

	if err := o.pushLive(plan, result); err != nil {
		return nil, err
	}
	o.logger.Info("config applied live", "monitors", result.Monitors, "preloads_sent", result.LivePreloads)
	result.Mode = ModeLive
	result.Duration = time.Since(started)
	return result, nil
}

// pushLive replays the plan against the running daemon: preload before set
// per monitor in declaration order, then one unload-all so anything not
// re-set in this pass is dropped.
func (o *Orchestrator) pushLive(plan *wallpaper.Plan, result *Result) error {
	loaded, err := o.client.ListLoaded()
	if err != nil {
		return err
	}

	for _, a := range plan.Assignments {
		if _, ok := loaded[a.Path]; !ok {
			if err := o.client.Preload(a.Path); err != nil {
				return err
			}
			loaded[a.Path] = struct{}{}
			result.LivePreloads++
		}
		if err := o.client.SetWallpaper(a.Output, a.Fragment); err != nil {
			return err
		}
	}

	return o.client.UnloadAll()
}
