package config

import (
	"errors"
	"fmt"
)

// Validate ensures the profile is usable.
func (c *Config) Validate() error {
	if len(c.Monitors) == 0 {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/hpg/hpg.toml"
		}
		return fmt.Errorf("profile declares no monitors. Edit %s (create with 'hpg config init')", defaultPath)
	}

	seen := make(map[string]struct{}, len(c.Monitors))
	for i, m := range c.Monitors {
		if m.Output == "" {
			return fmt.Errorf("monitor %d: output must be set", i+1)
		}
		if m.Wallpaper == "" {
			return fmt.Errorf("monitor %q: wallpaper must be set", m.Output)
		}
		if _, dup := seen[m.Output]; dup {
			return fmt.Errorf("monitor %q: output declared more than once", m.Output)
		}
		seen[m.Output] = struct{}{}
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
