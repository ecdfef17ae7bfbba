package wallpaper_test

import (
	"testing"

	"hpg/internal/wallpaper"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		monitor wallpaper.Monitor
		prefix  string
		want    string
	}{
		{
			name:    "prefix applied",
			monitor: wallpaper.Monitor{Output: "X", Wallpaper: "w.png", UsePrefix: true},
			prefix:  "/a/b",
			want:    "/a/b/w.png",
		},
		{
			name:    "prefix opted out",
			monitor: wallpaper.Monitor{Output: "X", Wallpaper: "w.png", UsePrefix: false},
			prefix:  "/a/b",
			want:    "w.png",
		},
		{
			name:    "no prefix configured",
			monitor: wallpaper.Monitor{Output: "X", Wallpaper: "/abs/w.png", UsePrefix: true},
			prefix:  "",
			want:    "/abs/w.png",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := wallpaper.Resolve(tc.monitor, tc.prefix); got != tc.want {
				t.Fatalf("Resolve: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestFitResolution(t *testing.T) {
	if got := (wallpaper.Monitor{}).Fit(); got != wallpaper.FitCover {
		t.Fatalf("default fit: got %v want cover", got)
	}
	if got := (wallpaper.Monitor{Contain: true}).Fit(); got != wallpaper.FitContain {
		t.Fatalf("contain fit: got %v", got)
	}
	if got := (wallpaper.Monitor{Tile: true}).Fit(); got != wallpaper.FitTile {
		t.Fatalf("tile fit: got %v", got)
	}
	if got := (wallpaper.Monitor{Contain: true, Tile: true}).Fit(); got != wallpaper.FitCover {
		t.Fatalf("conflicting fit should fall back to cover, got %v", got)
	}
}
