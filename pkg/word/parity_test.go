package word

import (
	"errors"
	"math/bits"
	"testing"
)

func TestCheckParity(t *testing.T) {
	tests := []struct {
		name         string
		in           uint32
		wantErr      bool
		wantExpected uint8
		wantActual   uint8
	}{
		{"zero word has even parity", 0x0, true, 1, 0},
		{"even count with parity bit set", 0xf03ccccc, true, 0, 1},
		{"single bit is odd", 0x1, false, 0, 0},
		{"odd count with parity bit set", 0xf13ccccc, false, 0, 0},
		{"all ones is even", 0xffffffff, true, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MessageFromBits(tt.in).CheckParity()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("CheckParity(%#x) = %v, want nil", tt.in, err)
				}
				return
			}

			var parityErr *ParityError
			if !errors.As(err, &parityErr) {
				t.Fatalf("CheckParity(%#x) = %v, want *ParityError", tt.in, err)
			}
			if parityErr.Expected != tt.wantExpected {
				t.Errorf("Expected = %d, want %d", parityErr.Expected, tt.wantExpected)
			}
			if parityErr.Actual != tt.wantActual {
				t.Errorf("Actual = %d, want %d", parityErr.Actual, tt.wantActual)
			}
		})
	}
}

func TestCheckParityMatchesPopCount(t *testing.T) {
	for _, v := range sampleBits() {
		err := MessageFromBits(v).CheckParity()
		odd := bits.OnesCount32(v)%2 == 1

		if odd && err != nil {
			t.Errorf("CheckParity(%#x) = %v, want nil for odd count", v, err)
		}
		if !odd {
			var parityErr *ParityError
			if !errors.As(err, &parityErr) {
				t.Fatalf("CheckParity(%#x) = %v, want *ParityError for even count", v, err)
			}
			if want := uint8(v >> 31); parityErr.Actual != want {
				t.Errorf("Actual = %d, want bit 31 of %#x (%d)", parityErr.Actual, v, want)
			}
			if want := uint8(v>>31) ^ 1; parityErr.Expected != want {
				t.Errorf("Expected = %d, want complement of bit 31 of %#x (%d)", parityErr.Expected, v, want)
			}
		}
	}
}

func TestParityErrorMessage(t *testing.T) {
	err := MessageFromBits(0x0).CheckParity()
	if err == nil {
		t.Fatal("expected parity error for zero word")
	}
	if got, want := err.Error(), "incorrect parity: expected 1, actual 0"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUpdateParity(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want uint32
	}{
		{"even parity flips bit 31", 0x22443300, 0xa2443300},
		{"odd parity unchanged", 0x22443301, 0x22443301},
		{"zero word gains parity bit", 0x0, 0x80000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MessageFromBits(tt.in).UpdateParity().Bits(); got != tt.want {
				t.Errorf("UpdateParity(%#x) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestUpdateParityAlwaysValid(t *testing.T) {
	for _, v := range sampleBits() {
		m := MessageFromBits(v)
		fixed := m.UpdateParity()

		if err := fixed.CheckParity(); err != nil {
			t.Errorf("UpdateParity(%#x) = %#x still fails parity: %v", v, fixed.Bits(), err)
		}
		if m.CheckParity() == nil && fixed != m {
			t.Errorf("UpdateParity(%#x) modified an already-valid word to %#x", v, fixed.Bits())
		}
		if m.CheckParity() != nil && fixed.Bits() != v^(uint32(1)<<31) {
			t.Errorf("UpdateParity(%#x) = %#x, want only bit 31 flipped", v, fixed.Bits())
		}
		if again := fixed.UpdateParity(); again != fixed {
			t.Errorf("UpdateParity is not idempotent for %#x: %#x != %#x", v, again.Bits(), fixed.Bits())
		}
	}
}
