package wallpaper_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"hpg/internal/testsupport"
	"hpg/internal/wallpaper"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRenderDedupsPreloadsAndKeepsMonitorOrder(t *testing.T) {
	profile := testsupport.NewProfile(t, []string{"forest.png", "ocean.png"})
	// Third monitor reuses the first wallpaper.
	profile.Monitors = append(profile.Monitors, wallpaper.Monitor{
		Output:    "HDMI-A-1",
		Wallpaper: "forest.png",
		UsePrefix: true,
	})

	text, err := wallpaper.Render(profile, discardLogger())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if got := strings.Count(text, "preload = "); got != 2 {
		t.Fatalf("expected 2 preload lines for 2 distinct paths, got %d:\n%s", got, text)
	}
	if got := strings.Count(text, "wallpaper = "); got != 3 {
		t.Fatalf("expected 3 wallpaper lines, got %d:\n%s", got, text)
	}

	forest := profile.Prefix + "/forest.png"
	ocean := profile.Prefix + "/ocean.png"
	wantOrder := []string{
		"preload = " + forest,
		"preload = " + ocean,
		"wallpaper = DP-1," + forest,
		"wallpaper = DP-2," + ocean,
		"wallpaper = HDMI-A-1," + forest,
	}
	pos := 0
	for _, want := range wantOrder {
		idx := strings.Index(text[pos:], want)
		if idx < 0 {
			t.Fatalf("expected line %q after offset %d in:\n%s", want, pos, text)
		}
		pos += idx + len(want)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	profile := testsupport.NewProfile(t, []string{"a.png", "b.png"}, testsupport.WithSplash())

	first, err := wallpaper.Render(profile, discardLogger())
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := wallpaper.Render(profile, discardLogger())
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Fatalf("renders differ:\n%s\n---\n%s", first, second)
	}
}

func TestRenderEmitsHeaderAndFlags(t *testing.T) {
	profile := testsupport.NewProfile(t, []string{"a.png"}, testsupport.WithIPC(false), testsupport.WithSplash())

	text, err := wallpaper.Render(profile, discardLogger())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.HasPrefix(text, "# ===== GENERATED BY HPG =====\n") {
		t.Fatalf("missing provenance header:\n%s", text)
	}
	if !strings.Contains(text, "\nipc = false\n") {
		t.Fatalf("expected ipc = false line:\n%s", text)
	}
	if !strings.Contains(text, "\nsplash = true\n") {
		t.Fatalf("expected splash = true line:\n%s", text)
	}
}

func TestRenderFailsOnMissingWallpaper(t *testing.T) {
	profile := testsupport.NewProfile(t, []string{"a.png"})
	profile.Monitors = append(profile.Monitors, wallpaper.Monitor{
		Output:    "DP-9",
		Wallpaper: "missing.png",
		UsePrefix: true,
	})

	text, err := wallpaper.Render(profile, discardLogger())
	if !errors.Is(err, wallpaper.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), profile.Prefix+"/missing.png") {
		t.Fatalf("error should name the offending path: %v", err)
	}
	if text != "" {
		t.Fatalf("expected no text on validation failure, got %q", text)
	}
}

func TestFitConflictFallsBackToCoverWithWarning(t *testing.T) {
	profile := testsupport.NewProfile(t, []string{"a.png"})
	profile.Monitors[0].Contain = true
	profile.Monitors[0].Tile = true

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	text, err := wallpaper.Render(profile, logger)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if strings.Contains(text, "contain:") || strings.Contains(text, "tile:") {
		t.Fatalf("conflicting fit modes must render as cover (no token):\n%s", text)
	}
	if !strings.Contains(buf.String(), "mutually exclusive") {
		t.Fatalf("expected fit-mode conflict warning, got log output %q", buf.String())
	}
}

func TestFitModeTokens(t *testing.T) {
	profile := testsupport.NewProfile(t, []string{"a.png", "b.png", "c.png"})
	profile.Monitors[1].Contain = true
	profile.Monitors[2].Tile = true

	text, err := wallpaper.Render(profile, discardLogger())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(text, "wallpaper = DP-1,"+profile.Prefix+"/a.png\n") {
		t.Fatalf("cover entry should have no token:\n%s", text)
	}
	if !strings.Contains(text, "wallpaper = DP-2,contain:"+profile.Prefix+"/b.png\n") {
		t.Fatalf("expected contain token:\n%s", text)
	}
	if !strings.Contains(text, "wallpaper = DP-3,tile:"+profile.Prefix+"/c.png\n") {
		t.Fatalf("expected tile token:\n%s", text)
	}
}

func TestCompilePreloadsFirstSeenOrder(t *testing.T) {
	profile := testsupport.NewProfile(t, []string{"z.png", "a.png"})
	profile.Monitors = append(profile.Monitors, wallpaper.Monitor{
		Output:    "DP-3",
		Wallpaper: "z.png",
		UsePrefix: true,
	})

	plan, err := wallpaper.Compile(profile, discardLogger())
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	want := []string{profile.Prefix + "/z.png", profile.Prefix + "/a.png"}
	if len(plan.Preloads) != len(want) {
		t.Fatalf("preloads: got %v want %v", plan.Preloads, want)
	}
	for i := range want {
		if plan.Preloads[i] != want[i] {
			t.Fatalf("preload order: got %v want %v", plan.Preloads, want)
		}
	}
}
