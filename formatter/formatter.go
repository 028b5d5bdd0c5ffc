package formatter

import (
	"bytes"
	"sync"
)

const (
	// FormatErrorText replaces a value whose conversion to text failed
	FormatErrorText = "!! value could not be formatted !!"

	// TitleWidth is the number of border characters on each side of a title
	TitleWidth = 4
	// SeparatorWidth is the number of '=' on each side of a separator
	SeparatorWidth = 20
	// BarWidth is the length of the horizontal bar used by WrapInLines
	BarWidth = 50

	// lineWidth is the column limit under which containers stay on one line
	lineWidth = 80
	// indentStep is the nesting indent of expanded containers
	indentStep = 4
	// maxDepth bounds recursion into self-referencing values
	maxDepth = 32
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
