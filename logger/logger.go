package logger

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Philipp01105/manuscrit/core"
	"github.com/Philipp01105/manuscrit/formatter"
	"github.com/Philipp01105/manuscrit/handler"
	"github.com/Philipp01105/manuscrit/introspect"
)

const (
	// IndentStep is the number of spaces added by RaiseIndent
	IndentStep = 8

	// InvalidJSONText is logged in place of input that is not JSON
	InvalidJSONText = introspect.InvalidJSONText
	// InvalidYAMLText is logged in place of input that is not YAML
	InvalidYAMLText = "!! input is not a valid yaml string !!"

	// functionSkip selects the caller of Function
	functionSkip = 1
)

// ErrNoLogFile is returned when neither an explicit path nor
// Config.DefaultPath is set
var ErrNoLogFile = errors.New("log file is not specified: pass a path or set " + EnvDefaultFile)

// Logger writes formatted debug text to a single file
type Logger struct {
	writer handler.Writer
	indent int
	diag   *zap.Logger
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	path    string
	config  Config
	diag    *zap.Logger
	padding int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		diag:    zap.NewNop(),
		padding: handler.DefaultPadding,
	}
}

// WithPath sets the log file path, overriding Config.DefaultPath
func (b *Builder) WithPath(path string) *Builder {
	b.path = path
	return b
}

// WithConfig sets the configuration consulted when no path is given
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithDiagnostics sets the zap logger receiving the Logger's own events
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	if l == nil {
		l = zap.NewNop()
	}
	b.diag = l
	return b
}

// WithPadding sets the number of blank lines written after the reset
func (b *Builder) WithPadding(n int) *Builder {
	b.padding = n
	return b
}

// Build resolves the target file, resets and pads it, and writes the
// banner line. It returns ErrNoLogFile before touching the disk if no
// path is available.
func (b *Builder) Build() (*Logger, error) {
	path := b.path
	if path == "" {
		path = b.config.DefaultPath
	}
	if path == "" {
		return nil, ErrNoLogFile
	}

	h, err := handler.NewFileHandler(path)
	if err != nil {
		return nil, err
	}
	if err := h.Reset(); err != nil {
		return nil, err
	}
	if err := h.Pad(b.padding); err != nil {
		return nil, err
	}

	l := &Logger{
		writer: h,
		diag:   b.diag.With(zap.String("path", h.Path())),
	}
	if err := l.Log(nil, "[ "+h.Path()+" ]"); err != nil {
		return nil, err
	}

	l.diag.Debug("debug log ready")
	return l, nil
}

// New creates a Logger writing to path
func New(path string) (*Logger, error) {
	return NewBuilder().WithPath(path).Build()
}

// Path returns the absolute path of the log file
func (l *Logger) Path() string {
	return l.writer.Path()
}

// Indent returns the current indent level in spaces
func (l *Logger) Indent() int {
	return l.indent
}

// RaiseIndent indents all following entries by one more step
func (l *Logger) RaiseIndent() {
	l.indent += IndentStep
}

// LowerIndent removes one indent step, never going below zero
func (l *Logger) LowerIndent() {
	l.indent = max(0, l.indent-IndentStep)
}

// Log writes v under an optional title at the current indent level.
// Strings are written as-is, maps and slices are pretty-printed and
// other values use their default string form. A nil, zero or empty v
// writes only the title, or a blank line when there is none.
func (l *Logger) Log(v interface{}, title string) error {
	var text string
	if truthy(v) {
		text = formatter.Autoformat(v)
	}
	if title != "" {
		text = formatter.AddTitle(text, title)
	}
	text = formatter.AddIndent(text, l.indent)
	return l.append(text + "\n")
}

// JSON parses text and logs the resulting structure. Input that does
// not parse is logged as InvalidJSONText.
func (l *Logger) JSON(text string, title string) error {
	v, err := formatter.DecodeJSON([]byte(text))
	if err != nil {
		l.diag.Warn("invalid json input", zap.Error(err))
		return l.Log(InvalidJSONText, title)
	}
	return l.Log(v, title)
}

// YAML parses text and logs the resulting structure. Input that does
// not parse is logged as InvalidYAMLText.
func (l *Logger) YAML(text string, title string) error {
	var v interface{}
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		l.diag.Warn("invalid yaml input", zap.Error(err))
		return l.Log(InvalidYAMLText, title)
	}
	return l.Log(v, title)
}

// HTTP logs a request and, unless opts.Query is set, its response
func (l *Logger) HTTP(x introspect.Exchange, opts introspect.HTTPOptions) error {
	return l.Log(introspect.FormatHTTP(x, opts), "")
}

// Response logs a completed net/http response. The response body stays
// readable for the caller.
func (l *Logger) Response(resp *http.Response, opts introspect.HTTPOptions) error {
	x, err := introspect.FromResponse(resp)
	if err != nil {
		return fmt.Errorf("log response: %w", err)
	}
	return l.HTTP(x, opts)
}

// Object logs the type, attributes, methods and unreadable members of v
func (l *Logger) Object(v interface{}, opts introspect.ObjectOptions, title string) error {
	report := introspect.BuildReport(v, opts)
	if len(report.Errors) > 0 {
		l.diag.Debug("inaccessible members", zap.String("type", report.Type), zap.Strings("members", report.Errors))
	}
	return l.Log(introspect.RenderReport(report), title)
}

// Dump logs a deep, type-annotated rendering of v
func (l *Logger) Dump(v interface{}, title string) error {
	return l.Log(formatter.Dump(v), title)
}

// Function logs the calling function, its location, the given argument
// bindings and the function that called it, framed by bars. Place it at
// the top of the function under investigation.
func (l *Logger) Function(locals ...core.Field) error {
	state, err := introspect.CaptureCallState(functionSkip, locals...)
	if err != nil {
		l.diag.Error("capture call state", zap.Error(err))
		return err
	}
	return l.Log(formatter.WrapInLines(state), "")
}

// Separator logs a wide "=====TITLE=====" marker
func (l *Logger) Separator(title string) error {
	return l.Log(formatter.Separator(title), "")
}

// Section logs line uppercased between blank lines
func (l *Logger) Section(line string) error {
	return l.Log(formatter.Section(line), "")
}

func (l *Logger) append(text string) error {
	if err := l.writer.Append(text); err != nil {
		l.diag.Error("write debug log", zap.Error(err))
		return err
	}
	return nil
}

// truthy reports whether v has content worth formatting: nil, false,
// zero numbers and empty strings or containers do not.
func truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err != nil || f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !rv.IsZero()
	default:
		return true
	}
}
