package core

// Field is a named value shown in the arguments block of a call-state
// report. Fields keep the order in which they were passed.
type Field struct {
	Key   string
	Value interface{}
}

// Fields builds a slice of Field from alternating keys and values.
// A key that is not a string is rendered with %v semantics by the
// formatter; a trailing key without a value is paired with nil.
func Fields(keysAndValues ...interface{}) []Field {
	fields := make([]Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		var val interface{}
		if i+1 < len(keysAndValues) {
			val = keysAndValues[i+1]
		}
		fields = append(fields, Field{Key: key, Value: val})
	}
	return fields
}
