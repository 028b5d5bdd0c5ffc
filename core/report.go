package core

// MemberKind classifies a member found while introspecting a value
type MemberKind uint8

const (
	// Data is a readable, non-invocable member
	Data MemberKind = iota
	// Callable is a method or a function-typed member
	Callable
	// Inaccessible is a member whose read failed
	Inaccessible
)

// String returns the string representation of the kind
func (k MemberKind) String() string {
	switch k {
	case Data:
		return "data"
	case Callable:
		return "callable"
	case Inaccessible:
		return "inaccessible"
	default:
		return "unknown"
	}
}

// Member is one attribute line of a Report. Detail holds either the
// member's type or its value, depending on how the report was built.
type Member struct {
	Name   string
	Detail string
}

// Report is the structured result of introspecting a value, built
// before it is flattened to text.
type Report struct {
	Name       string
	Type       string
	Attributes []Member
	Functions  []string
	Errors     []string
}

// Empty reports whether no member section has content
func (r *Report) Empty() bool {
	return len(r.Attributes) == 0 && len(r.Functions) == 0 && len(r.Errors) == 0
}
