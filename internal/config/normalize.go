package config

import "strings"

// normalize fills defaults and expands paths after decoding.
func (c *Config) normalize() error {
	c.Prefix = strings.TrimSpace(c.Prefix)
	if c.Prefix != "" {
		expanded, err := expandPath(c.Prefix)
		if err != nil {
			return err
		}
		c.Prefix = expanded
	}

	for i := range c.Monitors {
		c.Monitors[i].Output = strings.TrimSpace(c.Monitors[i].Output)
		c.Monitors[i].Wallpaper = strings.TrimSpace(c.Monitors[i].Wallpaper)
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	return nil
}
