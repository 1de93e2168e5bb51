// Package word implements the ARINC 429 32-bit word format.
//
// An ARINC 429 word carries its bits exactly as transmitted on the bus,
// least significant bit first. The label occupies the 8 least significant
// bits; because the most significant label digit is transmitted first, the
// label field sits in the reverse of the usual bit order. The most
// significant bit is the odd-parity bit, transmitted last.
//
// # Conversions
//
// MessageFromBits and Message.Bits copy bits with no changes. Some ARINC 429
// adapters use a different representation where the bits of the label field
// are reversed from their on-wire order; MessageFromBitsLabelSwapped and
// Message.BitsLabelSwapped convert to and from it. Conversions never fail.
//
// # Parity
//
// ARINC 429 requires odd parity over the whole word. Message.CheckParity
// reports a *ParityError when the 1-bit count is even; Message.UpdateParity
// returns a copy with the parity bit corrected. Bad parity is expected
// data-plane input, not a programming error, so it is returned, never
// panicked.
//
// # Serialization
//
// Message encodes as its bare unsigned 32-bit value in both CBOR and JSON,
// with no label swap and no parity transform applied. Speed encodes as the
// lowercase string tags "high" and "low".
package word
