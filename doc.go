// Package dbus implements the validation core of a DBus wire-format
// implementation: the routines that decide whether a byte sequence
// received from an untrusted peer conforms to the DBus marshaling
// rules, and whether textual identifiers (object paths, interface,
// member, error, and bus names, and type signatures) are well-formed.
//
// The package is purely functional over borrowed input: validators
// allocate nothing, mutate nothing, and keep no state across calls.
// They are safe to call concurrently on distinct buffers, and safe to
// call concurrently on the same buffer provided nothing else is
// writing to it.
//
// Three families of entry point are exported:
//
//   - Identifier validators (ValidatePath, ValidateInterface,
//     ValidateMember, ValidateErrorName, ValidateBusName) report a
//     simple pass/fail boolean, since callers only ever need a
//     yes/no decision for these.
//   - ValidateSignatureWithReason checks a type signature against the
//     grammar in this package's signature.go, returning the first
//     Validity code that explains a rejection.
//   - ValidateBodyWithReason walks a byte range against an
//     already-validated signature, using the fragments subpackage's
//     TypeReader to keep the schema cursor in lockstep with the body
//     cursor.
//
// This package does not decode values into host-language data, does
// not produce human-readable error messages, and does not touch
// message assembly, transport, authentication, or object dispatch --
// those all live above this layer.
package dbus
