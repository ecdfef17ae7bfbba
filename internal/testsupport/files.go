package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteWallpaper creates a small image stand-in under dir and returns its
// path. Validation only checks existence, so the content is arbitrary.
func WriteWallpaper(t testing.TB, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
