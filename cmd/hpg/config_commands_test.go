package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "profiles", "hpg.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected target path in output: %s", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("expected sample written: %v", err)
	}
	if !strings.Contains(string(data), "[[monitor]]") {
		t.Fatalf("sample missing monitor section:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "hpg.toml")
	if err := os.WriteFile(target, []byte("# mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error without --overwrite")
	}

	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite returned error: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "# mine\n" {
		t.Fatal("expected sample to replace existing file")
	}
}

func TestConfigShowWithoutProfilePrintsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)

	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if !strings.Contains(out, "# (file does not exist; showing defaults)") {
		t.Fatalf("expected defaults marker:\n%s", out)
	}
}

func TestConfigShowPrintsEffectiveProfile(t *testing.T) {
	profilePath, prefix := writeTestProfile(t, "forest.png")

	out, err := runCommand(t, "config", "show", "--config", profilePath)
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	if !strings.Contains(out, "# profile: "+profilePath) {
		t.Fatalf("expected profile path header:\n%s", out)
	}
	if !strings.Contains(out, prefix) {
		t.Fatalf("expected expanded prefix in output:\n%s", out)
	}
	if !strings.Contains(out, "output = 'DP-1'") && !strings.Contains(out, `output = "DP-1"`) {
		t.Fatalf("expected monitor declaration in output:\n%s", out)
	}
}
