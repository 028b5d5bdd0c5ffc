// Package core defines the value types shared by the manuscrit packages.
//
// CallSite describes one resolved stack frame together with the local
// bindings the caller chose to show. Field is an ordered key/value pair
// used for those bindings. Report is the intermediate form of an object
// introspection before it is flattened to text, and MemberKind tags each
// member of that report as callable, data, or inaccessible.
//
// Nothing in core touches the file system; the types are built fresh for
// every logging call and dropped once the text has been written.
package core
