package main

import (
	"strings"
	"testing"
)

func TestRenderCommandPrintsCanonicalConfig(t *testing.T) {
	profilePath, prefix := writeTestProfile(t, "forest.png", "ocean.png")

	out, err := runCommand(t, "render", "--config", profilePath)
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	if !strings.HasPrefix(out, "# ===== GENERATED BY HPG =====\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	for _, want := range []string{
		"ipc = true\n",
		"splash = false\n",
		"preload = " + prefix + "/forest.png\n",
		"preload = " + prefix + "/ocean.png\n",
		"wallpaper = DP-1," + prefix + "/forest.png\n",
		"wallpaper = DP-2," + prefix + "/ocean.png\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderCommandFailsOnMissingWallpaper(t *testing.T) {
	profilePath, prefix := writeTestProfile(t, "forest.png")

	extra := "\n[[monitor]]\noutput = \"DP-9\"\nwallpaper = \"gone.png\"\n"
	appendToFile(t, profilePath, extra)

	_, err := runCommand(t, "render", "--config", profilePath)
	if err == nil {
		t.Fatal("expected error for missing wallpaper")
	}
	if !strings.Contains(err.Error(), prefix+"/gone.png") {
		t.Fatalf("error should name the offending path: %v", err)
	}
}

func TestApplyDryRunMatchesRender(t *testing.T) {
	profilePath, _ := writeTestProfile(t, "forest.png")

	rendered, err := runCommand(t, "render", "--config", profilePath)
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	dryRun, err := runCommand(t, "apply", "--dry-run", "--config", profilePath)
	if err != nil {
		t.Fatalf("apply --dry-run returned error: %v", err)
	}
	if rendered != dryRun {
		t.Fatalf("dry-run output differs from render:\n%s\n---\n%s", rendered, dryRun)
	}
}
