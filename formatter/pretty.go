package formatter

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Autoformat converts any value to printable text.
//
// Strings and byte slices are returned as text, errors and fmt.Stringer
// values use their own methods, maps, slices and arrays are
// pretty-printed, and every other value uses fmt.Sprint. A panic raised
// while formatting yields FormatErrorText.
func Autoformat(v interface{}) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = FormatErrorText
		}
	}()

	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case []byte:
		return string(x)
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}

	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return render(rv, 0, 0, 0)
	}
	return fmt.Sprint(v)
}

// Pretty pretty-prints v as a nested structure regardless of its kind.
func Pretty(v interface{}) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = FormatErrorText
		}
	}()
	return render(reflect.ValueOf(v), 0, 0, 0)
}

// Inline renders a reflected value on a single line. Unlike Autoformat
// it accepts values read from unexported struct fields.
func Inline(v reflect.Value) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = FormatErrorText
		}
	}()
	if v.IsValid() && v.Kind() == reflect.String {
		return v.String()
	}
	return compact(v, 0)
}

// indirect follows pointers and interfaces until a non-nil concrete value
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

func isContainer(v reflect.Value) bool {
	switch indirect(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}
	return false
}

// render returns the one-line form of v when it fits after column col,
// otherwise the expanded form with children indented from indent.
func render(v reflect.Value, indent, col, depth int) string {
	line := compact(v, depth)
	if col+runewidth.StringWidth(line) <= lineWidth || !isContainer(v) || depth >= maxDepth {
		return line
	}
	return expanded(v, indent, depth)
}

func compact(v reflect.Value, depth int) string {
	if depth > maxDepth {
		return "..."
	}
	if !v.IsValid() {
		return "<nil>"
	}
	if s, ok := stringer(v); ok {
		return s
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return "<nil>"
		}
		return compact(v.Elem(), depth+1)
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	case reflect.Map:
		buf := getBuffer()
		defer putBuffer(buf)
		buf.WriteByte('{')
		for i, key := range sortedKeys(v) {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(compact(key, depth+1))
			buf.WriteString(": ")
			buf.WriteString(compact(v.MapIndex(key), depth+1))
		}
		buf.WriteByte('}')
		return buf.String()
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return strconv.Quote(string(v.Bytes()))
		}
		buf := getBuffer()
		defer putBuffer(buf)
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(compact(v.Index(i), depth+1))
		}
		buf.WriteByte(']')
		return buf.String()
	case reflect.Struct:
		buf := getBuffer()
		defer putBuffer(buf)
		buf.WriteString(v.Type().String())
		buf.WriteByte('{')
		for i := 0; i < v.NumField(); i++ {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(v.Type().Field(i).Name)
			buf.WriteString(": ")
			buf.WriteString(compact(v.Field(i), depth+1))
		}
		buf.WriteByte('}')
		return buf.String()
	}

	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return "<" + v.Type().String() + ">"
}

func expanded(v reflect.Value, indent, depth int) string {
	v = indirect(v)
	inner := indent + indentStep
	pad := strings.Repeat(" ", inner)

	buf := getBuffer()
	defer putBuffer(buf)

	switch v.Kind() {
	case reflect.Map:
		buf.WriteString("{\n")
		for _, key := range sortedKeys(v) {
			k := compact(key, depth+1)
			buf.WriteString(pad)
			buf.WriteString(k)
			buf.WriteString(": ")
			buf.WriteString(render(v.MapIndex(key), inner, inner+runewidth.StringWidth(k)+2, depth+1))
			buf.WriteString(",\n")
		}
		buf.WriteString(strings.Repeat(" ", indent))
		buf.WriteByte('}')
	case reflect.Slice, reflect.Array:
		buf.WriteString("[\n")
		for i := 0; i < v.Len(); i++ {
			buf.WriteString(pad)
			buf.WriteString(render(v.Index(i), inner, inner, depth+1))
			buf.WriteString(",\n")
		}
		buf.WriteString(strings.Repeat(" ", indent))
		buf.WriteByte(']')
	case reflect.Struct:
		buf.WriteString(v.Type().String())
		buf.WriteString("{\n")
		for i := 0; i < v.NumField(); i++ {
			name := v.Type().Field(i).Name
			buf.WriteString(pad)
			buf.WriteString(name)
			buf.WriteString(": ")
			buf.WriteString(render(v.Field(i), inner, inner+runewidth.StringWidth(name)+2, depth+1))
			buf.WriteString(",\n")
		}
		buf.WriteString(strings.Repeat(" ", indent))
		buf.WriteByte('}')
	default:
		return compact(v, depth)
	}
	return buf.String()
}

// stringer uses the Error or String method of v when v exposes one.
// Nil pointers are left to compact so that a nil receiver never runs.
func stringer(v reflect.Value) (string, bool) {
	if !v.CanInterface() {
		return "", false
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "", false
	}
	switch x := v.Interface().(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

// sortedKeys returns the keys of a map in a stable order: numerically
// for numbers, lexically for strings, and by their text for the rest.
func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Kind() == b.Kind() {
			switch a.Kind() {
			case reflect.String:
				return a.String() < b.String()
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return a.Int() < b.Int()
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
				return a.Uint() < b.Uint()
			case reflect.Float32, reflect.Float64:
				return a.Float() < b.Float()
			}
		}
		return compact(a, maxDepth) < compact(b, maxDepth)
	})
	return keys
}
