package dbus

import "testing"

func TestValidatePath(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"/", true},
		{"/a/b/c", true},
		{"//", false},
		{"/a//b", false},
		{"/a/", false},
		{"", false},
		{"a/b", false},
		{"/a_B9/c_D", true},
		{"/a b", false},
	}
	for _, tc := range tests {
		if got := ValidatePath([]byte(tc.in)); got != tc.want {
			t.Errorf("ValidatePath(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateInterface(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a.b", true},
		{"a", false},
		{"a..b", false},
		{".a.b", false},
		{"a.b.", false},
		{"1a.b", false},
		{"a.1b", false},
		{"com.example.Foo", true},
		{"", false},
	}
	for _, tc := range tests {
		if got := ValidateInterface([]byte(tc.in)); got != tc.want {
			t.Errorf("ValidateInterface(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if ValidateInterface(make([]byte, MaxNameLength+1)) {
		t.Error("ValidateInterface accepted a name longer than MaxNameLength")
	}
}

func TestValidateMember(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Foo", true},
		{"foo_Bar9", true},
		{"", false},
		{"1Foo", false},
		{"Foo.Bar", false},
	}
	for _, tc := range tests {
		if got := ValidateMember([]byte(tc.in)); got != tc.want {
			t.Errorf("ValidateMember(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateErrorName(t *testing.T) {
	// Same rules as interface names.
	if !ValidateErrorName([]byte("org.freedesktop.DBus.Error.Failed")) {
		t.Error("expected valid error name to validate")
	}
	if ValidateErrorName([]byte("NoDot")) {
		t.Error("expected dot-less error name to be rejected")
	}
}

func TestValidateBusName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{":1.0", true},
		{":", false},
		{":.", false},
		{":1.", false},
		{"a.b", true},
		{"a", false},
		{":1.2.3", true},
	}
	for _, tc := range tests {
		if got := ValidateBusName([]byte(tc.in)); got != tc.want {
			t.Errorf("ValidateBusName(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMustValidateVariantsPanicOnInvalid(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"path", func() { MustValidatePath([]byte("not-a-path")) }},
		{"interface", func() { MustValidateInterface([]byte("nodot")) }},
		{"member", func() { MustValidateMember([]byte("has.dot")) }},
		{"error", func() { MustValidateErrorName([]byte("nodot")) }},
		{"bus", func() { MustValidateBusName([]byte(":")) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Must%s did not panic on invalid input", tc.name)
				}
			}()
			tc.fn()
		})
	}
}

func TestMustValidateAcceptsValid(t *testing.T) {
	MustValidatePath([]byte("/a/b"))
	MustValidateInterface([]byte("a.b"))
	MustValidateMember([]byte("Foo"))
	MustValidateErrorName([]byte("a.b"))
	MustValidateBusName([]byte(":1.0"))
}
