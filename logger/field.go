package logger

import (
	"github.com/Philipp01105/manuscrit/core"
)

// Field helper functions for Function arguments

// Arg creates a named argument binding
func Arg(key string, val interface{}) core.Field {
	return core.Field{Key: key, Value: val}
}

// Args creates bindings from alternating keys and values
func Args(keysAndValues ...interface{}) []core.Field {
	return core.Fields(keysAndValues...)
}

// Err creates an "error" binding
func Err(err error) core.Field {
	return core.Field{Key: "error", Value: err}
}
