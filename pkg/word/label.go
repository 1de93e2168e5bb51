package word

import "fmt"

// Label is the 8-bit label field of a message in normal bit order, suitable
// for display as an octal number. It is a snapshot: it keeps no connection
// to the message it was extracted from.
type Label uint8

// String renders the label as zero-padded 3-digit octal with a "0o" prefix,
// matching conventional ARINC 429 label notation, e.g. "0o220".
func (l Label) String() string {
	return fmt.Sprintf("0o%03o", uint8(l))
}

// Octal returns the zero-padded 3-digit octal form without a prefix,
// e.g. "220". Useful for tabular output.
func (l Label) Octal() string {
	return fmt.Sprintf("%03o", uint8(l))
}
