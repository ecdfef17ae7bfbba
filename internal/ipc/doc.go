// Package ipc implements the client side of hyprpaper's control socket.
//
// The daemon speaks a line-oriented text protocol over a Unix socket: one
// request per connection, one reply per request. Commands that mutate state
// answer "ok" on success and an error string otherwise; listloaded answers
// the loaded wallpaper paths separated by newlines.
//
// The client owns per-request timeouts and the mapping from raw replies to
// Go errors so callers only deal in paths and outputs. Socket discovery
// lives with the rest of the daemon path logic in package hyprpaper.
package ipc
