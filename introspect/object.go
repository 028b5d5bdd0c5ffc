package introspect

import (
	"fmt"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Philipp01105/manuscrit/core"
	"github.com/Philipp01105/manuscrit/formatter"
)

const (
	// nameColumn is the display width of the member name column
	nameColumn = 20
	// borderWidth is the width of the report's top and bottom border
	borderWidth = 30
)

// ObjectOptions controls what FormatObject shows
type ObjectOptions struct {
	// ShowAll also lists unexported fields
	ShowAll bool
	// ShowValues shows attribute values instead of their types
	ShowValues bool
}

// member is one entry of the reflection walk
type member struct {
	name     string
	kind     core.MemberKind
	exported bool
	value    reflect.Value
}

// Describe classifies every member of v: exported methods and
// function-typed fields are callable, readable fields are data, and
// fields behind a nil embedded pointer are inaccessible.
func Describe(v interface{}) map[string]core.MemberKind {
	members := walk(reflect.ValueOf(v))
	kinds := make(map[string]core.MemberKind, len(members))
	for _, m := range members {
		kinds[m.name] = m.kind
	}
	return kinds
}

// BuildReport walks v and returns the structured report that
// FormatObject renders.
func BuildReport(v interface{}, opts ObjectOptions) core.Report {
	rv := reflect.ValueOf(v)
	report := core.Report{
		Name: nameOf(rv),
		Type: typeOf(rv),
	}

	for _, m := range walk(rv) {
		if !m.exported && !opts.ShowAll {
			continue
		}
		switch m.kind {
		case core.Inaccessible:
			report.Errors = append(report.Errors, m.name)
		case core.Callable:
			report.Functions = append(report.Functions, m.name)
		default:
			report.Attributes = append(report.Attributes, core.Member{
				Name:   m.name,
				Detail: detail(m.value, opts.ShowValues),
			})
		}
	}
	return report
}

// FormatObject renders a bordered report of v's type, attributes,
// functions and inaccessible members. Empty sections are omitted.
func FormatObject(v interface{}, opts ObjectOptions) string {
	return RenderReport(BuildReport(v, opts))
}

// RenderReport flattens a report to text
func RenderReport(r core.Report) string {
	border := strings.Repeat("-", borderWidth)
	lines := []string{border}
	if r.Name != "" {
		lines = append(lines, "name : "+r.Name)
	}
	lines = append(lines, "type : "+r.Type)

	if len(r.Attributes) > 0 {
		lines = append(lines, formatter.MakeTitle("attributes", 10, "-"))
		for _, a := range r.Attributes {
			lines = append(lines, column(a.Name)+a.Detail)
		}
	}

	if len(r.Functions) > 0 {
		lines = append(lines, strings.Repeat("-", 10)+"functions"+strings.Repeat("-", 11))
		for _, f := range r.Functions {
			lines = append(lines, f+"()")
		}
	}

	if len(r.Errors) > 0 {
		lines = append(lines, formatter.MakeTitle("errors", 12, "-"))
		lines = append(lines, r.Errors...)
	}

	if !r.Empty() {
		lines = append(lines, border)
	}
	return strings.Join(lines, "\n")
}

// column pads name to the name column, keeping one space after names
// that fill it
func column(name string) string {
	if runewidth.StringWidth(name) >= nameColumn {
		return name + " "
	}
	return runewidth.FillRight(name, nameColumn)
}

func nameOf(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if t, ok := v.Interface().(reflect.Type); ok && t != nil {
		return t.String()
	}
	if v.Kind() == reflect.Func && !v.IsNil() {
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			return fn.Name()
		}
	}
	return ""
}

func typeOf(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	return v.Type().String()
}

// detail returns the value or the runtime type of a member
func detail(v reflect.Value, showValue bool) string {
	if showValue {
		if v.CanInterface() {
			return oneLine(formatter.Autoformat(v.Interface()))
		}
		return formatter.Inline(v)
	}
	if v.Kind() == reflect.Interface && !v.IsNil() {
		return v.Elem().Type().String()
	}
	return v.Type().String()
}

// oneLine keeps multi-line values from breaking the column layout
func oneLine(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// walk lists the members of v sorted by name. Methods come from the
// value's type and, for addressable receivers, its pointer type.
func walk(v reflect.Value) []member {
	if !v.IsValid() {
		return nil
	}

	var members []member
	seen := make(map[string]bool)
	add := func(m member) {
		if seen[m.name] {
			return
		}
		seen[m.name] = true
		members = append(members, m)
	}

	methodSet := v.Type()
	if methodSet.Kind() != reflect.Ptr && methodSet.Kind() != reflect.Interface {
		methodSet = reflect.PointerTo(methodSet)
	}
	for i := 0; i < methodSet.NumMethod(); i++ {
		add(member{name: methodSet.Method(i).Name, kind: core.Callable, exported: true})
	}

	for _, m := range fields(v) {
		add(m)
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].name < members[j].name
	})
	return members
}

// fields lists the visible struct fields of v, following pointers.
// A nil pointer yields every field of the pointed-to struct as
// inaccessible.
func fields(v reflect.Value) []member {
	t := v.Type()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	target := v
	for target.Kind() == reflect.Ptr || target.Kind() == reflect.Interface {
		if target.IsNil() {
			target = reflect.Value{}
			break
		}
		target = target.Elem()
	}

	var out []member
	for _, sf := range reflect.VisibleFields(t) {
		m := member{name: sf.Name, exported: sf.IsExported()}
		if !target.IsValid() {
			m.kind = core.Inaccessible
			out = append(out, m)
			continue
		}

		fv, err := fieldByIndex(target, sf.Index)
		switch {
		case err != nil:
			m.kind = core.Inaccessible
		case fv.Kind() == reflect.Func:
			m.kind = core.Callable
			m.value = fv
		default:
			m.kind = core.Data
			m.value = fv
		}
		out = append(out, m)
	}
	return out
}

// fieldByIndex reads a possibly promoted field, turning a nil embedded
// pointer or a reflection panic into an error
func fieldByIndex(v reflect.Value, index []int) (fv reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read field %v: %v", index, r)
		}
	}()
	return v.FieldByIndexErr(index)
}
