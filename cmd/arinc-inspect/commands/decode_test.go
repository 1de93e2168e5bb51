package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"0x10000056", 0x10000056, false},
		{"10000056", 0x10000056, false},
		{"0XFFFFFFFF", 0xffffffff, false},
		{"0", 0, false},
		{"0x123456789", 0, true}, // more than 32 bits
		{"xyz", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseWord(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWord(%q) expected error, got %#x", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWord(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWord(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestDecodeWords(t *testing.T) {
	var buf bytes.Buffer
	err := DecodeWords(&buf, []string{"0x84000109"}, DecodeOptions{})
	if err != nil {
		t.Fatalf("DecodeWords failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "Message(0x84000109)") {
		t.Errorf("expected fixed-width word form, got: %s", output)
	}
	if !strings.Contains(output, "label 0o220") {
		t.Errorf("expected octal label, got: %s", output)
	}
	if !strings.Contains(output, "parity OK") {
		t.Errorf("expected parity verdict, got: %s", output)
	}
}

func TestDecodeWordsSwapped(t *testing.T) {
	var buf bytes.Buffer
	err := DecodeWords(&buf, []string{"0x10000056"}, DecodeOptions{Swapped: true})
	if err != nil {
		t.Fatalf("DecodeWords failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Message(0x1000006a)") {
		t.Errorf("expected label-swapped decode, got: %s", buf.String())
	}
}

func TestDecodeWordsRepair(t *testing.T) {
	var buf bytes.Buffer
	err := DecodeWords(&buf, []string{"0x22443300"}, DecodeOptions{Repair: true})
	if err != nil {
		t.Fatalf("DecodeWords failed: %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "parity BAD") {
		t.Errorf("expected failing parity verdict, got: %s", output)
	}
	if !strings.Contains(output, "incorrect parity: expected 1, actual 0") {
		t.Errorf("expected parity error details, got: %s", output)
	}
	if !strings.Contains(output, "repaired Message(0xa2443300)") {
		t.Errorf("expected repaired word, got: %s", output)
	}
}

func TestDecodeWordsBadInput(t *testing.T) {
	var buf bytes.Buffer
	if err := DecodeWords(&buf, []string{"bogus"}, DecodeOptions{}); err == nil {
		t.Error("expected error for invalid hex input")
	}
}
