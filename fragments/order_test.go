package fragments_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TeamBitBean/dbus/fragments"
)

// orderResult is what OrderForFlag resolves a flag byte to, projected
// down to comparable fields: fragments.ByteOrder itself wraps an
// unexported interface, so tests compare this instead of the
// ByteOrder value directly.
type orderResult struct {
	Flag byte
	OK   bool
}

func TestOrderForFlag(t *testing.T) {
	tests := []struct {
		flag byte
		want orderResult
	}{
		{'l', orderResult{'l', true}},
		{'B', orderResult{'B', true}},
		{'x', orderResult{0, false}},
	}
	for _, tc := range tests {
		order, ok := fragments.OrderForFlag(tc.flag)
		got := orderResult{OK: ok}
		if ok {
			got.Flag = fragments.Flag(order)
		}
		if diff := cmp.Diff(got, tc.want); diff != "" {
			t.Errorf("OrderForFlag(%q) mismatch (-got+want):\n%s", tc.flag, diff)
		}
	}
}

func TestFlagRoundTrip(t *testing.T) {
	if got := fragments.Flag(fragments.LittleEndian); got != 'l' {
		t.Errorf("Flag(LittleEndian) = %q, want 'l'", got)
	}
	if got := fragments.Flag(fragments.BigEndian); got != 'B' {
		t.Errorf("Flag(BigEndian) = %q, want 'B'", got)
	}
}
