// Package config loads, normalizes, and validates the hpg profile.
//
// The profile is a TOML file declaring per-monitor wallpapers, an optional
// filesystem prefix for relative paths, the daemon flags (ipc, splash), and
// logging preferences. Loading expands tilde paths, fills defaults for unset
// optional flags, and rejects profiles that could never apply cleanly
// (no monitors, duplicate outputs, blank paths).
//
// Unset booleans default to their documented values, but an explicit `false`
// always wins: `ipc = false` and `use_prefix = false` are meaningful
// overrides, which is why the optional flags are pointers in the TOML schema.
package config
