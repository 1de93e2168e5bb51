// Package commands implements the arinc-inspect CLI commands.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arinc-protocol/arinc429-go/pkg/word"
)

// DecodeOptions controls how raw words are interpreted and reported.
type DecodeOptions struct {
	// Swapped treats input words as label-swapped adapter representation.
	Swapped bool

	// Repair prints the parity-corrected word alongside failing ones.
	Repair bool
}

// ParseWord parses a 32-bit word given as hex, with or without 0x prefix.
func ParseWord(s string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid word %q: expected up to 8 hex digits", s)
	}
	return uint32(v), nil
}

// DecodeWords decodes each argument and writes one line per word to w.
func DecodeWords(w io.Writer, args []string, opts DecodeOptions) error {
	for _, arg := range args {
		raw, err := ParseWord(arg)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, FormatWord(decodeRaw(raw, opts.Swapped), opts.Repair))
	}
	return nil
}

// decodeRaw builds a message from a raw word, honoring the input bit order.
func decodeRaw(raw uint32, swapped bool) word.Message {
	if swapped {
		return word.MessageFromBitsLabelSwapped(raw)
	}
	return word.MessageFromBits(raw)
}

// FormatWord renders one word as a single report line.
func FormatWord(m word.Message, repair bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  label %s", m, m.Label())

	if err := m.CheckParity(); err != nil {
		fmt.Fprintf(&b, "  parity BAD (%v)", err)
		if repair {
			fmt.Fprintf(&b, "  repaired %s", m.UpdateParity())
		}
	} else {
		b.WriteString("  parity OK")
	}
	return b.String()
}
