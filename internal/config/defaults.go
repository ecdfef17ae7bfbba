package config

// Default returns the repository defaults applied before a profile is read.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}
