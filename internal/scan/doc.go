// Package scan lists the candidate game entries in a directory and guesses a
// title for each one. Support binaries and resource directories are filtered
// out before guessing.
//
// Dir takes a one-off snapshot. Watcher follows a directory with fsnotify and
// reports entries as they are created or moved in, using the same filters.
package scan
