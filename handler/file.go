package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPadding is the number of blank lines written at construction
const DefaultPadding = 100

// FileHandler appends text to a single file
type FileHandler struct {
	filename string
}

// NewFileHandler resolves path to an absolute path and creates its
// parent directories. The file itself is not touched.
func NewFileHandler(path string) (*FileHandler, error) {
	if path == "" {
		return nil, fmt.Errorf("filename is required")
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", dir, err)
	}

	return &FileHandler{filename: resolved}, nil
}

// resolvePath expands a leading "~" and makes the path absolute
func resolvePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return abs, nil
}

// Path returns the absolute path of the log file
func (h *FileHandler) Path() string {
	return h.filename
}

// Reset truncates the log file, creating it if absent
func (h *FileHandler) Reset() error {
	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("reset %s: %w", h.filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("reset %s: %w", h.filename, err)
	}
	return nil
}

// Pad appends n newlines to simulate a screen clear for a tail follower
func (h *FileHandler) Pad(n int) error {
	if n <= 0 {
		return nil
	}
	return h.write(strings.Repeat("\n", n))
}

// Append writes text and a trailing newline
func (h *FileHandler) Append(text string) error {
	if text == "" {
		return nil
	}
	return h.write(text + "\n")
}

// write opens the file in append mode, writes data and closes it
func (h *FileHandler) write(data string) (err error) {
	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", h.filename, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", h.filename, closeErr)
		}
	}()

	if _, err := file.WriteString(data); err != nil {
		return fmt.Errorf("write %s: %w", h.filename, err)
	}
	return nil
}
