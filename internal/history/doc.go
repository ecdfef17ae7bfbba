// Package history persists a log of completed applies in a small SQLite
// database under hpg's state directory, for `hpg history` and debugging
// "when did my wallpaper last change" questions.
package history
