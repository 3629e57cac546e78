package fragments

import "unicode/utf8"

// String is a bounds-checked view into a slice of an immutable byte
// buffer. It never copies or mutates the backing bytes; it only
// narrows the window other code is allowed to look through.
type String struct {
	data  []byte
	start int
	len   int
}

// NewString returns a String viewing data[start:start+length].
//
// NewString panics if the requested range does not fit inside data;
// this is a programmer-contract violation (see spec §7), not a
// runtime condition callers are expected to recover from.
func NewString(data []byte, start, length int) String {
	if start < 0 || length < 0 || start+length > len(data) {
		panic("fragments.NewString: range out of bounds")
	}
	return String{data: data, start: start, len: length}
}

// Len returns the number of bytes in the view.
func (s String) Len() int {
	return s.len
}

// Byte returns the i'th byte of the view.
func (s String) Byte(i int) byte {
	if i < 0 || i >= s.len {
		panic("fragments.String.Byte: index out of bounds")
	}
	return s.data[s.start+i]
}

// Bytes returns the view's bytes. The returned slice aliases the
// original backing array and must not be mutated.
func (s String) Bytes() []byte {
	return s.data[s.start : s.start+s.len]
}

// Slice returns the sub-view [from, from+length) of s.
func (s String) Slice(from, length int) String {
	if from < 0 || length < 0 || from+length > s.len {
		panic("fragments.String.Slice: range out of bounds")
	}
	return String{data: s.data, start: s.start + from, len: length}
}

// ValidateUTF8 reports whether the view's bytes are entirely
// well-formed UTF-8. An empty view is valid.
func (s String) ValidateUTF8() bool {
	return utf8.Valid(s.Bytes())
}
