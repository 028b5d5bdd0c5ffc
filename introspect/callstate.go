package introspect

import (
	"bytes"
	"errors"
	"text/template"

	"github.com/Philipp01105/manuscrit/core"
	"github.com/Philipp01105/manuscrit/formatter"
)

var callStateTemplate = template.Must(template.New("callstate").
	Funcs(template.FuncMap{"format": formatter.Autoformat}).
	Parse(`function : {{.Caller.ShortFunction}}()
file : {{.Caller.ShortFile}}
location : {{.Caller.File}}:{{.Caller.Line}}

----| arguments
{{range .Caller.Locals}}
{{.Key}} : {{format .Value}}
{{- else}}
(none)
{{- end}}

-----calling function
{{.Parent.ShortFunction}}() in {{.Parent.ShortFile}}
({{.Parent.File}}:{{.Parent.Line}})`))

// CallState resolves the frame skip levels above the function calling
// CallState (skip 0 is that function) and the frame that called it.
// The locals are attached to the first frame.
func CallState(skip int, locals ...core.Field) (caller, parent core.CallSite, err error) {
	sites, err := core.Callers(skip+1, 2)
	var depthErr *core.StackDepthError
	if errors.As(err, &depthErr) {
		return core.CallSite{}, core.CallSite{}, depthErr.Rebase(1)
	}
	if err != nil {
		return core.CallSite{}, core.CallSite{}, err
	}
	sites[0].Locals = locals
	return sites[0], sites[1], nil
}

// CaptureCallState renders the function skip levels above the function
// calling CaptureCallState (skip 0 is that function), its location and
// bindings, and the function that called it. A missing frame yields a
// *core.StackDepthError counted from the CaptureCallState caller.
func CaptureCallState(skip int, locals ...core.Field) (string, error) {
	caller, parent, err := CallState(skip+1, locals...)
	var depthErr *core.StackDepthError
	if errors.As(err, &depthErr) {
		return "", depthErr.Rebase(1)
	}
	if err != nil {
		return "", err
	}
	return FormatCallSites(caller, parent), nil
}

// FormatCallSites renders a caller and its parent with the fixed
// call-state template
func FormatCallSites(caller, parent core.CallSite) string {
	var buf bytes.Buffer
	err := callStateTemplate.Execute(&buf, struct {
		Caller core.CallSite
		Parent core.CallSite
	}{caller, parent})
	if err != nil {
		return formatter.FormatErrorText
	}
	return buf.String()
}
