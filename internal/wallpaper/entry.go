package wallpaper

// FitMode describes how an image is scaled onto an output.
type FitMode int

const (
	FitCover FitMode = iota
	FitContain
	FitTile
)

// Token returns the fragment prefix hyprpaper expects for the mode.
// Cover is the daemon default and carries no token.
func (m FitMode) Token() string {
	switch m {
	case FitContain:
		return "contain:"
	case FitTile:
		return "tile:"
	default:
		return ""
	}
}

// String returns the mode name used in logs and status output.
func (m FitMode) String() string {
	switch m {
	case FitContain:
		return "contain"
	case FitTile:
		return "tile"
	default:
		return "cover"
	}
}

// Monitor declares the wallpaper for a single output. Contain and tile are
// mutually exclusive; requesting both falls back to cover.
type Monitor struct {
	Output    string
	Wallpaper string
	Contain   bool
	Tile      bool
	UsePrefix bool
}

// Fit resolves the declared flags into a single fit mode.
func (m Monitor) Fit() FitMode {
	switch {
	case m.Contain && m.Tile:
		return FitCover
	case m.Contain:
		return FitContain
	case m.Tile:
		return FitTile
	default:
		return FitCover
	}
}

// FitConflict reports whether the entry requested contain and tile at once.
func (m Monitor) FitConflict() bool {
	return m.Contain && m.Tile
}

// Profile is the validated caller input for one apply: monitor declarations
// in render order plus the global daemon flags. It is immutable once built.
type Profile struct {
	Monitors []Monitor
	Prefix   string
	IPC      bool
	Splash   bool
}
