// Package apply decides how a compiled wallpaper profile reaches the daemon.
//
// One apply is a small state machine: when live control is disabled on disk
// or not requested by the caller, the rendered config is written and the
// daemon restarted; when both sides agree on live control, the config is
// written for future restarts and the running daemon is driven over its
// control socket, diffing against what it already has loaded to skip
// redundant preloads. Every external failure aborts the apply immediately;
// there is no retry and no rollback of commands already issued.
package apply
