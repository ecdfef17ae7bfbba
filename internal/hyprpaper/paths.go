package hyprpaper

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoConfigDir indicates neither XDG_CONFIG_HOME nor HOME is set, so the
// daemon config location cannot be determined.
var ErrNoConfigDir = errors.New("cannot resolve config directory: neither XDG_CONFIG_HOME nor HOME is set")

// ConfPath returns the daemon's standard config file location,
// ${XDG_CONFIG_HOME:-$HOME/.config}/hypr/hyprpaper.conf.
func ConfPath() (string, error) {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, "hypr", "hyprpaper.conf"), nil
	}
	if home := strings.TrimSpace(os.Getenv("HOME")); home != "" {
		return filepath.Join(home, ".config", "hypr", "hyprpaper.conf"), nil
	}
	return "", ErrNoConfigDir
}

// SocketPath returns the daemon's control socket,
// ${XDG_RUNTIME_DIR}/hypr/${HYPRLAND_INSTANCE_SIGNATURE}/.hyprpaper.sock.
func SocketPath() (string, error) {
	runtime := strings.TrimSpace(os.Getenv("XDG_RUNTIME_DIR"))
	signature := strings.TrimSpace(os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"))
	if runtime == "" || signature == "" {
		return "", errors.New("cannot resolve control socket: XDG_RUNTIME_DIR and HYPRLAND_INSTANCE_SIGNATURE must be set")
	}
	return filepath.Join(runtime, "hypr", signature, ".hyprpaper.sock"), nil
}

// StateDir returns hpg's own state directory,
// ${XDG_STATE_HOME:-$HOME/.local/state}/hpg.
func StateDir() (string, error) {
	if base := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); base != "" {
		return filepath.Join(base, "hpg"), nil
	}
	if home := strings.TrimSpace(os.Getenv("HOME")); home != "" {
		return filepath.Join(home, ".local", "state", "hpg"), nil
	}
	return "", ErrNoConfigDir
}
