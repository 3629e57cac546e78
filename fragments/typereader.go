package fragments

// TypeReader is a stateless-over-the-input cursor into a type
// signature. It never looks at a message body; it only walks the
// schema, one complete type at a time.
//
// TypeReader assumes the signature it was built from has already
// passed signature validation (balanced containers, array markers
// followed by an element type). Calling Recurse or ElementType on a
// reader whose Current type isn't the corresponding container is a
// programmer-contract violation.
type TypeReader struct {
	// sig holds exactly the not-yet-consumed typecodes this reader is
	// responsible for. Advance pops one complete type off the front.
	sig []byte
}

// NewTypesOnlyReader returns a TypeReader walking sig from the
// beginning. sig must already be a validated signature (see
// ValidateSignatureWithReason).
func NewTypesOnlyReader(sig []byte) *TypeReader {
	return &TypeReader{sig: sig}
}

// Current returns the typecode the reader is positioned at. ok is
// false if there are no more types to read (the "no more types"
// sentinel from spec §3).
func (r *TypeReader) Current() (typ byte, ok bool) {
	if len(r.sig) == 0 {
		return 0, false
	}
	return r.sig[0], true
}

// Advance moves the reader past the complete current type (including
// all of its nested contents, if any), so that Current returns the
// next top-level type in the reader's window.
//
// Advance is a no-op if there is no current type.
func (r *TypeReader) Advance() {
	if len(r.sig) == 0 {
		return
	}
	n := typeLen(r.sig, 0)
	r.sig = r.sig[n:]
}

// ElementType returns the element typecode of the current array type.
// Current must be 'a'.
func (r *TypeReader) ElementType() byte {
	typ, ok := r.Current()
	if !ok || typ != 'a' {
		panic("fragments.TypeReader.ElementType: current type is not an array")
	}
	return r.sig[1]
}

// Recurse returns a new TypeReader over the contents of the current
// container type: the single element type of an array, or the field
// types of a struct. Current must be 'a' or '('.
func (r *TypeReader) Recurse() *TypeReader {
	typ, ok := r.Current()
	if !ok {
		panic("fragments.TypeReader.Recurse: no current type")
	}
	switch typ {
	case 'a':
		elemLen := typeLen(r.sig, 1)
		return &TypeReader{sig: r.sig[1 : 1+elemLen]}
	case '(':
		close := matchingStructEnd(r.sig, 0)
		return &TypeReader{sig: r.sig[1:close]}
	default:
		panic("fragments.TypeReader.Recurse: current type is not a container")
	}
}

// typeLen returns the number of bytes occupied by the one complete
// type starting at sig[pos], assuming sig is a validated signature.
func typeLen(sig []byte, pos int) int {
	switch sig[pos] {
	case 'a':
		return 1 + typeLen(sig, pos+1)
	case '(':
		return matchingStructEnd(sig, pos) - pos + 1
	default:
		return 1
	}
}

// matchingStructEnd returns the index of the ')' matching the '('
// found at sig[pos].
func matchingStructEnd(sig []byte, pos int) int {
	depth := 0
	for i := pos; i < len(sig); i++ {
		switch sig[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	panic("fragments: unbalanced struct in signature passed to TypeReader")
}
