// Package introspect builds textual reports about runtime values, the
// current call stack, and HTTP exchanges.
//
// FormatObject is a readable dir(): it lists a value's fields with their
// types or values, its methods, and the members that could not be read.
// Describe exposes the same walk as a map from member name to
// core.MemberKind for callers that want the classification alone.
//
// CaptureCallState resolves the function that asked for the report and
// its caller, and renders both together with the argument bindings the
// caller passed in. Go does not expose another frame's local variables,
// so bindings are supplied explicitly as core.Field values. A depth past
// the bottom of the stack is a *core.StackDepthError; no shallower frame
// is substituted.
//
// FormatHTTP renders a request/response pair through the Exchange
// interface. FromResponse and FromRequest adapt the net/http types.
//
// None of these functions fail on odd input. Unreadable members are
// listed under "errors" and bodies that are not JSON are replaced with
// InvalidJSONText.
package introspect
