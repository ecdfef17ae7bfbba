// Package hyprpaper knows where the daemon keeps its on-disk state and how
// to read and replace it: config path resolution from XDG conventions, the
// probe for the persisted live-control flag, and atomic config writes.
package hyprpaper
