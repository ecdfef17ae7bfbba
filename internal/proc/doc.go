// Package proc controls the hyprpaper daemon process: precise enumeration of
// running instances via the system process table, detached launches, and
// terminate-then-start restarts.
package proc
