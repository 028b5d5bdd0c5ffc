// Package logger is the public API of manuscrit, a debug logger that
// writes human-formatted text to one file meant to be followed with
// `tail -f`.
//
// A Logger owns its file for its lifetime. Construction resolves the
// path, creates parent directories, truncates the file, pads it with
// blank lines so that a follower sees a clean screen, and writes a
// banner naming the file:
//
//	log, err := logger.New("/tmp/debug.log")
//
// The path may also come from a Config, usually built from the
// MANUSCRIT_DEFAULT_FILE environment variable:
//
//	log, err := logger.NewBuilder().
//	    WithConfig(logger.ConfigFromEnv()).
//	    Build()
//
// If neither is set, Build returns ErrNoLogFile before touching the disk.
//
// Log is the base primitive: the value is auto-formatted (maps and
// slices pretty-printed), optionally titled, indented by the current
// indent level, and appended. JSON, YAML, HTTP, Object, Dump and Function
// format their input first and then go through Log:
//
//	func transfer(from, to string, amount int) {
//	    log.Function(logger.Arg("from", from), logger.Arg("amount", amount))
//	    log.RaiseIndent()
//	    defer log.LowerIndent()
//	    ...
//	}
//
// Every call opens, writes and closes the file, so output is visible to
// a follower immediately. Write failures are returned, never retried.
// Input that cannot be formatted is replaced with a placeholder instead.
//
// A Logger is meant for one goroutine; its indent level is not guarded.
package logger
