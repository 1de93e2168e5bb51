package word

import (
	"fmt"
	"math/bits"
)

// Message is one ARINC 429 word, stored exactly as transmitted on the wires
// with the least significant bit transmitted first.
//
// Bit layout (0-indexed from the LSB):
//   - bits 0-7: label, most significant label digit first (reversed order)
//   - bits 8-30: SDI, data and SSM, opaque to this package
//   - bit 31: odd-parity bit
//
// The zero value is the all-zero word. Message holds no constraint: the
// parity may be wrong and the label may be any of the 256 values. Checks
// happen on demand via CheckParity, never at construction.
//
// Two messages compare equal with == exactly when their raw bits are equal,
// and Message is usable as a map key on the same terms.
type Message struct {
	bits uint32
}

// MessageFromBits creates a message from bits as transmitted, with no
// modifications.
func MessageFromBits(bits uint32) Message {
	return Message{bits: bits}
}

// Bits returns the bits that represent this message, with no modifications.
func (m Message) Bits() uint32 {
	return m.bits
}

// MessageFromBitsLabelSwapped creates a message from the adapter
// representation that stores the 8 label bits in reverse order. The returned
// message is in on-wire order.
func MessageFromBitsLabelSwapped(bits uint32) Message {
	return Message{bits: swapLabelBits(bits)}
}

// BitsLabelSwapped returns the bits of this message with the order of the
// 8 label bits reversed, for adapters that use that representation.
func (m Message) BitsLabelSwapped() uint32 {
	return swapLabelBits(m.bits)
}

// Label returns the label field in normal bit order, as printed in ARINC 429
// documentation. Bits 8-31 do not contribute.
func (m Message) Label() Label {
	return Label(bits.Reverse8(uint8(m.bits)))
}

// Compare orders messages by their raw unsigned 32-bit value.
// It returns -1 if m sorts before other, 0 if equal, and 1 otherwise.
func (m Message) Compare(other Message) int {
	switch {
	case m.bits < other.bits:
		return -1
	case m.bits > other.bits:
		return 1
	default:
		return 0
	}
}

// String returns a fixed-width debug form, e.g. "Message(0x10000056)".
// The hex value is always zero-padded to 8 digits.
func (m Message) String() string {
	return fmt.Sprintf("Message(0x%08x)", m.bits)
}

// swapLabelBits reverses the order of the 8 least significant bits and
// returns bits 8-31 unmodified. Applying it twice is the identity.
func swapLabelBits(v uint32) uint32 {
	return (v &^ 0xff) | uint32(bits.Reverse8(uint8(v)))
}
