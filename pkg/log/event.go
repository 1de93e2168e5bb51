package log

import (
	"time"
)

// Event records one ARINC 429 word as captured.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the word was captured (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the capture session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Channel is the name of the channel the word was seen on.
	Channel string `cbor:"3,keyasint,omitempty"`

	// Direction indicates whether the word was received or transmitted.
	Direction Direction `cbor:"4,keyasint"`

	// Bits is the raw 32-bit word in on-wire order, exactly as captured.
	Bits uint32 `cbor:"5,keyasint"`

	// ParityOK records the parity verdict at capture time.
	ParityOK bool `cbor:"6,keyasint"`
}

// Direction indicates which way a word crossed the bus.
type Direction uint8

const (
	// DirectionRx indicates a received word.
	DirectionRx Direction = 0
	// DirectionTx indicates a transmitted word.
	DirectionTx Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionRx:
		return "RX"
	case DirectionTx:
		return "TX"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection parses "rx" or "tx" (case-sensitive, lowercase).
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "rx":
		return DirectionRx, true
	case "tx":
		return DirectionTx, true
	default:
		return 0, false
	}
}
