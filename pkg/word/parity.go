package word

import (
	"fmt"
	"math/bits"
)

// parityBit is the mask for bit 31, the odd-parity bit.
const parityBit = uint32(1) << 31

// ParityError reports that a message does not have correct odd parity.
// It records only the two parity-bit values; the caller already holds the
// offending message.
type ParityError struct {
	// Expected is the parity bit that would make the word valid, 0 or 1.
	Expected uint8

	// Actual is the parity bit found in the message, 0 or 1.
	Actual uint8
}

// Error implements the error interface.
func (e *ParityError) Error() string {
	return fmt.Sprintf("incorrect parity: expected %d, actual %d", e.Expected, e.Actual)
}

// CheckParity verifies the odd parity of the whole word, parity bit
// included. It returns nil when the number of 1-bits is odd, and a
// *ParityError carrying the actual and expected parity-bit values when it
// is even. The message is never modified.
func (m Message) CheckParity() error {
	if bits.OnesCount32(m.bits)%2 == 1 {
		return nil
	}
	actual := uint8(m.bits >> 31)
	return &ParityError{Expected: actual ^ 1, Actual: actual}
}

// UpdateParity returns a message with correct odd parity. If the parity is
// already correct the message is returned unchanged; otherwise the returned
// message differs from m in bit 31 only. UpdateParity is idempotent.
func (m Message) UpdateParity() Message {
	if m.CheckParity() == nil {
		return m
	}
	return Message{bits: m.bits ^ parityBit}
}
