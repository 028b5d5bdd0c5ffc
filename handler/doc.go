// Package handler writes formatted debug text to the log file.
//
// FileHandler owns one log file for its lifetime. It never keeps the file
// open between calls: every Append opens the file in append mode, writes
// the text followed by a newline, and closes it again on every exit path.
// A `tail -f` follower therefore sees each entry as soon as the call
// returns, and a failed write never leaks a descriptor.
//
// Reset truncates the file and Pad writes blank lines so that a follower
// sees what looks like a cleared screen. Writes are synchronous and are
// not retried; errors carry the file path and are returned to the caller.
//
// Concurrent writers to the same path are not coordinated and may
// interleave.
package handler
