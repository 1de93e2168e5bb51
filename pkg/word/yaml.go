package word

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the speed as its lowercase tag.
func (s Speed) MarshalYAML() (any, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid speed: %d", uint8(s))
	}
	return s.String(), nil
}

// UnmarshalYAML decodes a lowercase speed tag.
func (s *Speed) UnmarshalYAML(value *yaml.Node) error {
	var tag string
	if err := value.Decode(&tag); err != nil {
		return fmt.Errorf("failed to decode speed: %w", err)
	}
	parsed, err := ParseSpeed(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
