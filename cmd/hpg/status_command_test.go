package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatusCommandReportsConfAndMonitors(t *testing.T) {
	profilePath, prefix := writeTestProfile(t, "forest.png")

	confHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confHome)
	confPath := filepath.Join(confHome, "hypr", "hyprpaper.conf")
	if err := os.MkdirAll(filepath.Dir(confPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(confPath, []byte("ipc = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "status", "--config", profilePath)
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}

	if !strings.Contains(out, confPath) {
		t.Fatalf("expected conf path in output:\n%s", out)
	}
	if !strings.Contains(out, "Enabled on disk") {
		t.Fatalf("expected live control status:\n%s", out)
	}
	if !strings.Contains(out, "DP-1") || !strings.Contains(out, prefix+"/forest.png") {
		t.Fatalf("expected monitor row:\n%s", out)
	}
	if !strings.Contains(out, "cover") {
		t.Fatalf("expected fit mode in monitor table:\n%s", out)
	}
}

func TestStatusCommandAbsentConf(t *testing.T) {
	profilePath, _ := writeTestProfile(t, "forest.png")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := runCommand(t, "status", "--config", profilePath)
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if !strings.Contains(out, "(absent)") {
		t.Fatalf("expected absent conf marker:\n%s", out)
	}
	if !strings.Contains(out, "Unknown until first apply") {
		t.Fatalf("expected unknown live control status:\n%s", out)
	}
}
