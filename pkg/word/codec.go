package word

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for ARINC 429 values.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for ARINC 429 values.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// MarshalCBOR encodes the message as its bare unsigned 32-bit value.
// The raw bits pass through untouched: no label swap, no parity transform.
func (m Message) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(m.bits)
}

// UnmarshalCBOR decodes a bare unsigned 32-bit value into the message.
func (m *Message) UnmarshalCBOR(data []byte) error {
	var raw uint64
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}
	if raw > math.MaxUint32 {
		return fmt.Errorf("message value %#x exceeds 32 bits", raw)
	}
	m.bits = uint32(raw)
	return nil
}

// MarshalJSON encodes the message as a JSON number holding the raw bits.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.bits)
}

// UnmarshalJSON decodes a JSON number into the message.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}
	if raw > math.MaxUint32 {
		return fmt.Errorf("message value %#x exceeds 32 bits", raw)
	}
	m.bits = uint32(raw)
	return nil
}

// MarshalCBOR encodes the speed as its lowercase string tag.
func (s Speed) MarshalCBOR() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid speed: %d", uint8(s))
	}
	return encMode.Marshal(s.String())
}

// UnmarshalCBOR decodes a lowercase speed tag.
func (s *Speed) UnmarshalCBOR(data []byte) error {
	var tag string
	if err := decMode.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("failed to decode speed: %w", err)
	}
	parsed, err := ParseSpeed(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
