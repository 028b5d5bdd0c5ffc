package core

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// CallSite contains information about one frame of the call stack
type CallSite struct {
	Function  string
	File      string
	ShortFile string
	Line      int
	Locals    []Field
}

// ShortFunction returns the function name without its package path,
// e.g. "pkg.(*T).Method" becomes "(*T).Method".
func (c CallSite) ShortFunction() string {
	name := c.Function
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// StackDepthError is returned when a requested frame lies beyond the
// bottom of the current call stack. Requested is the skip the caller
// passed and Available the number of frames from that caller down, both
// counted from the same origin.
type StackDepthError struct {
	Requested int
	Available int
}

// Rebase moves the origin of e up by frames levels, for wrappers that
// add their own frames before resolving the stack on behalf of a caller.
func (e *StackDepthError) Rebase(frames int) *StackDepthError {
	available := e.Available - frames
	if available < 0 {
		available = 0
	}
	return &StackDepthError{Requested: e.Requested - frames, Available: available}
}

func (e *StackDepthError) Error() string {
	return fmt.Sprintf("stack depth %d requested, only %d frames available", e.Requested, e.Available)
}

// Caller resolves the frame skip levels above the function calling
// Caller (skip 0 is that function itself).
func Caller(skip int) (CallSite, error) {
	sites, err := Callers(skip+1, 1)
	var depthErr *StackDepthError
	if errors.As(err, &depthErr) {
		return CallSite{}, depthErr.Rebase(1)
	}
	if err != nil {
		return CallSite{}, err
	}
	return sites[0], nil
}

// Callers resolves n consecutive frames starting skip levels above the
// function calling Callers. It never substitutes a shallower frame: if
// the stack ends early a *StackDepthError is returned.
func Callers(skip, n int) ([]CallSite, error) {
	if skip < 0 || n <= 0 {
		return nil, &StackDepthError{Requested: skip, Available: 0}
	}

	// +2 skips runtime.Callers and Callers itself
	pcs := make([]uintptr, n+8)
	count := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:count])

	sites := make([]CallSite, 0, n)
	for len(sites) < n {
		frame, more := frames.Next()
		if frame.PC == 0 {
			break
		}
		sites = append(sites, CallSite{
			Function:  frame.Function,
			File:      frame.File,
			ShortFile: filepath.Base(frame.File),
			Line:      frame.Line,
		})
		if !more {
			break
		}
	}

	if len(sites) < n {
		return nil, &StackDepthError{Requested: skip, Available: stackDepth()}
	}
	return sites, nil
}

// stackDepth counts the frames from the function that called Callers
// down to the bottom of the stack.
func stackDepth() int {
	pcs := make([]uintptr, 256)
	// skips runtime.Callers, stackDepth and Callers
	count := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:count])
	depth := 0
	for {
		frame, more := frames.Next()
		if frame.PC == 0 {
			break
		}
		depth++
		if !more {
			break
		}
	}
	return depth
}
