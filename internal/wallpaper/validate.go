package wallpaper

import (
	"fmt"

	"hpg/internal/fileutil"
)

// Validate ensures every monitor's resolved wallpaper exists on disk.
// It fails fast on the first missing file with the offending path.
func Validate(p Profile) error {
	for _, m := range p.Monitors {
		resolved := Resolve(m, p.Prefix)
		if !fileutil.FileExists(resolved) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, resolved)
		}
	}
	return nil
}
