package word

import "fmt"

// Speed is an ARINC 429 communication speed.
type Speed uint8

const (
	// SpeedHigh is high speed, 100 kbit/s.
	SpeedHigh Speed = 1

	// SpeedLow is low speed, 12.5 kbit/s.
	SpeedLow Speed = 2
)

// String returns the speed tag, "high" or "low".
func (s Speed) String() string {
	switch s {
	case SpeedHigh:
		return "high"
	case SpeedLow:
		return "low"
	default:
		return "unknown"
	}
}

// IsValid returns true if s is one of the defined speeds.
func (s Speed) IsValid() bool {
	return s == SpeedHigh || s == SpeedLow
}

// BitRate returns the nominal bus rate in bit/s.
func (s Speed) BitRate() int {
	switch s {
	case SpeedHigh:
		return 100_000
	case SpeedLow:
		return 12_500
	default:
		return 0
	}
}

// MarshalText encodes the speed as its lowercase tag.
// It satisfies encoding.TextMarshaler, so JSON and YAML both see the tag.
func (s Speed) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid speed: %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a lowercase speed tag.
func (s *Speed) UnmarshalText(text []byte) error {
	parsed, err := ParseSpeed(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSpeed parses a speed tag as produced by String.
func ParseSpeed(tag string) (Speed, error) {
	switch tag {
	case "high":
		return SpeedHigh, nil
	case "low":
		return SpeedLow, nil
	default:
		return 0, fmt.Errorf("unknown speed %q: expected \"high\" or \"low\"", tag)
	}
}
