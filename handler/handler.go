package handler

// Writer defines the interface for log sinks
type Writer interface {
	// Append writes text followed by a single newline. Empty text is a no-op.
	Append(text string) error

	// Path returns the absolute path of the target file
	Path() string
}
