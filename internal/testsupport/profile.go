package testsupport

import (
	"fmt"
	"testing"

	"hpg/internal/wallpaper"
)

// ProfileOption customizes a generated test profile.
type ProfileOption func(*wallpaper.Profile)

// NewProfile builds a profile whose wallpapers all exist under a per-test
// temp prefix. Monitor names are DP-1, DP-2, ... in declaration order.
func NewProfile(t testing.TB, wallpapers []string, opts ...ProfileOption) wallpaper.Profile {
	t.Helper()

	prefix := t.TempDir()
	monitors := make([]wallpaper.Monitor, 0, len(wallpapers))
	for i, name := range wallpapers {
		WriteWallpaper(t, prefix, name)
		monitors = append(monitors, wallpaper.Monitor{
			Output:    outputName(i),
			Wallpaper: name,
			UsePrefix: true,
		})
	}

	profile := wallpaper.Profile{
		Monitors: monitors,
		Prefix:   prefix,
		IPC:      true,
	}
	for _, opt := range opts {
		opt(&profile)
	}
	return profile
}

// WithIPC overrides the profile's live-control request flag.
func WithIPC(enabled bool) ProfileOption {
	return func(p *wallpaper.Profile) {
		p.IPC = enabled
	}
}

// WithSplash enables the daemon splash on the generated profile.
func WithSplash() ProfileOption {
	return func(p *wallpaper.Profile) {
		p.Splash = true
	}
}

func outputName(i int) string {
	return fmt.Sprintf("DP-%d", i+1)
}
