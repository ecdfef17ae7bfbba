// Package main hosts the hpg CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into profile
// loads, config rendering, applies against the hyprpaper daemon, and history
// queries. It centralizes profile resolution and logger construction so
// subcommands can focus on user experience instead of wiring.
package main
