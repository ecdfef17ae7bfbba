// Package wallpaper holds the core decision engine that turns per-monitor
// wallpaper declarations into canonical hyprpaper configuration text.
//
// It resolves relative paths against an optional prefix, validates that every
// referenced image exists, deduplicates preload requests across monitors that
// share a wallpaper, and renders deterministic config output. A compiled Plan
// exposes the per-monitor assignments and the distinct preload set so the
// apply orchestrator can drive the daemon live without re-deriving them.
//
// Everything here is pure except for the existence checks during validation;
// process control and daemon IPC live in their own packages.
package wallpaper
