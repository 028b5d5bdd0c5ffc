// Package formatter turns values into the human-readable text written to
// a debug log file.
//
// Autoformat is the entry point used for every logged value. Strings pass
// through untouched, maps and sequences are pretty-printed with sorted
// keys and nested indentation, and everything else falls back to its
// default string form. Autoformat never fails: if producing the text
// panics, the fixed FormatErrorText is returned instead.
//
// The remaining helpers decorate already formatted text: AddIndent
// shifts every line right, AddTitle and MakeTitle build "----title----"
// headers, WrapInLines frames a block between two bars, and Separator and
// Section produce the wide markers used to split a log into phases.
//
// Builders come from a sync.Pool of bytes.Buffer. Buffers larger than
// 64 KiB are not returned to the pool so that one very large dump does
// not keep its memory alive.
package formatter
