// Package fragments provides the low-level, allocation-free primitives
// that the validation core builds on: byte order handling, a
// bounds-checked byte-string container, and a types-only signature
// reader.
//
// None of the types here understand DBus message semantics above the
// wire-format level. They exist so that body.go's validator can be
// expressed as simple recursive descent over a
// cursor, instead of raw slice arithmetic repeated at every call
// site: body.go's string, object-path, signature, and variant
// payload checks all go through fragments.String rather than slicing
// the body directly.
package fragments
