package hyprpaper

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// ErrProbeUnreadable indicates the daemon config exists but could not be read.
var ErrProbeUnreadable = errors.New("daemon config unreadable")

// Probe reads the persisted live-control flag from the daemon config on disk.
type Probe struct {
	confPath string
}

// NewProbe builds a probe for the given daemon config path.
func NewProbe(confPath string) *Probe {
	return &Probe{confPath: confPath}
}

// IPCEnabled reports whether the persisted daemon config enables live
// control. The flag is set iff a line exactly equal to "ipc = true" is
// present. A config that cannot be opened is fatal; callers decide how to
// treat an absent config before probing.
func (p *Probe) IPCEnabled() (bool, error) {
	file, err := os.Open(p.confPath)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrProbeUnreadable, p.confPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if scanner.Text() == "ipc = true" {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrProbeUnreadable, p.confPath, err)
	}
	return false, nil
}
