package hyprpaper

import (
	"errors"
	"fmt"

	"hpg/internal/fileutil"
)

// ErrWriteFailed indicates the rendered config could not be persisted.
var ErrWriteFailed = errors.New("write daemon config failed")

// WriteConf persists rendered config text at confPath, creating parent
// directories as needed.
func WriteConf(confPath, text string) error {
	if err := fileutil.WriteFileAtomic(confPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, confPath, err)
	}
	return nil
}
