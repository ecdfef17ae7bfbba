package proc

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrCommandFailed indicates a daemon process operation did not complete.
var ErrCommandFailed = errors.New("daemon process control failed")

const (
	defaultBinary = "hyprpaper"
	stopGrace     = 3 * time.Second
	stopPoll      = 100 * time.Millisecond
)

// Controller starts, stops, and inspects the daemon process. Enumeration
// matches on the exact executable name and skips our own pid, so substring
// collisions with unrelated processes cannot produce false positives.
type Controller struct {
	binary string
	logger *slog.Logger
}

// NewController builds a controller for the standard daemon binary.
func NewController(logger *slog.Logger) *Controller {
	return &Controller{binary: defaultBinary, logger: logger}
}

func (c *Controller) matching() ([]*process.Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("%w: enumerate processes: %v", ErrCommandFailed, err)
	}
	self := int32(os.Getpid())
	matches := make([]*process.Process, 0, 1)
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		name, nameErr := p.Name()
		if nameErr != nil {
			// Processes can exit mid-enumeration.
			continue
		}
		if name == c.binary {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// IsRunning reports whether at least one daemon instance is alive.
func (c *Controller) IsRunning() (bool, error) {
	matches, err := c.matching()
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

// Start launches a detached daemon process and does not wait for it.
func (c *Controller) Start() error {
	path, err := exec.LookPath(c.binary)
	if err != nil {
		return fmt.Errorf("%w: locate %s: %v", ErrCommandFailed, c.binary, err)
	}
	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: launch %s: %v", ErrCommandFailed, c.binary, err)
	}
	c.logger.Debug("daemon launched", "binary", c.binary, "pid", cmd.Process.Pid)
	return cmd.Process.Release()
}

// Stop terminates every running daemon instance, escalating to SIGKILL for
// processes that outlive the grace period.
func (c *Controller) Stop() error {
	matches, err := c.matching()
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return nil
	}

	for _, p := range matches {
		if termErr := p.Terminate(); termErr != nil {
			return fmt.Errorf("%w: terminate pid %d: %v", ErrCommandFailed, p.Pid, termErr)
		}
		c.logger.Debug("daemon terminate requested", "pid", p.Pid)
	}

	deadline := time.Now().Add(stopGrace)
	for time.Now().Before(deadline) {
		running, runErr := c.IsRunning()
		if runErr != nil {
			return runErr
		}
		if !running {
			return nil
		}
		time.Sleep(stopPoll)
	}

	for _, p := range matches {
		if killErr := p.Kill(); killErr != nil && !errors.Is(killErr, os.ErrProcessDone) {
			return fmt.Errorf("%w: kill pid %d: %v", ErrCommandFailed, p.Pid, killErr)
		}
		c.logger.Warn("daemon killed after grace period", "pid", p.Pid)
	}
	return nil
}

// Restart stops any running daemon and starts a fresh instance.
func (c *Controller) Restart() error {
	if err := c.Stop(); err != nil {
		return err
	}
	return c.Start()
}
