package wallpaper

import "errors"

// ErrFileNotFound indicates a declared wallpaper does not exist on disk.
// It aborts the whole apply; there is no partial application.
var ErrFileNotFound = errors.New("wallpaper file not found")
