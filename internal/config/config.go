package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"hpg/internal/wallpaper"
)

//go:embed sample_config.toml
var sampleConfig string

// MonitorDecl declares the wallpaper for one output in the profile file.
type MonitorDecl struct {
	Output    string `toml:"output"`
	Wallpaper string `toml:"wallpaper"`
	Contain   bool   `toml:"contain"`
	Tile      bool   `toml:"tile"`
	UsePrefix *bool  `toml:"use_prefix"`
}

// Logging contains configuration for diagnostic output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for hpg.
//
// Monitors render in declaration order; their order in the file is
// significant. Prefix is prepended to relative wallpaper paths for entries
// that keep use_prefix enabled. IPC requests live updates against a running
// daemon; Splash toggles the daemon splash text.
type Config struct {
	Prefix   string        `toml:"prefix"`
	IPC      *bool         `toml:"ipc"`
	Splash   bool          `toml:"splash"`
	Monitors []MonitorDecl `toml:"monitor"`
	Logging  Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default profile
// location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/hpg/hpg.toml")
}

// Load locates, parses, and validates a profile. The returned config has all
// defaults filled and the prefix expanded.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open profile: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse profile: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Inspect loads a profile for display. Unlike Load it does not require the
// default profile to exist or declare monitors, so `config show` can print
// the effective defaults before a profile has been created. An explicit path
// still has to exist.
func Inspect(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open profile: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse profile: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			// An explicitly requested profile must exist; silently falling
			// back to defaults would mask a typo.
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("profile not found at %s", expanded)
			}
			return "", false, fmt.Errorf("stat profile: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("hpg.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Profile converts the loaded config into the renderer's input form.
func (c *Config) Profile() wallpaper.Profile {
	monitors := make([]wallpaper.Monitor, 0, len(c.Monitors))
	for _, m := range c.Monitors {
		monitors = append(monitors, wallpaper.Monitor{
			Output:    m.Output,
			Wallpaper: m.Wallpaper,
			Contain:   m.Contain,
			Tile:      m.Tile,
			UsePrefix: m.UsePrefix == nil || *m.UsePrefix,
		})
	}
	return wallpaper.Profile{
		Monitors: monitors,
		Prefix:   c.Prefix,
		IPC:      c.IPCRequested(),
		Splash:   c.Splash,
	}
}

// IPCRequested reports whether the profile asks for live updates. Unset
// defaults to true; an explicit false is honored.
func (c *Config) IPCRequested() bool {
	return c.IPC == nil || *c.IPC
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && pathValue[1] == '/' {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample profile to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create profile directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample profile: %w", err)
	}
	return nil
}
