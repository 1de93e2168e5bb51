// Package channel describes ARINC 429 receive and transmit channels.
//
// The on-wire word format is fixed, but adapters differ in two ways the
// codec cannot detect from the bits alone: the bus speed and whether the
// adapter delivers words with the label bits reversed. A Config records
// both per channel, so the rest of an application can decode raw words
// without knowing which adapter produced them. Channel sets are loaded
// from YAML; there is no bus I/O here.
package channel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arinc-protocol/arinc429-go/pkg/word"
)

// Config describes a single ARINC 429 channel.
type Config struct {
	// Name identifies the channel, e.g. "rx1". Must be unique within a file.
	Name string `yaml:"name" json:"name"`

	// Speed is the bus speed of the channel.
	Speed word.Speed `yaml:"speed" json:"speed"`

	// LabelSwapped is true for adapters that deliver and accept words with
	// the 8 label bits reversed from their on-wire order.
	LabelSwapped bool `yaml:"labelSwapped,omitempty" json:"labelSwapped,omitempty"`
}

// Validate checks that the config names a channel and a known speed.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("channel has no name")
	}
	if !c.Speed.IsValid() {
		return fmt.Errorf("channel %q: invalid speed", c.Name)
	}
	return nil
}

// Decode converts a raw word as delivered by this channel's adapter into
// a message in on-wire order, applying the label swap if the channel is
// configured for it.
func (c *Config) Decode(raw uint32) word.Message {
	if c.LabelSwapped {
		return word.MessageFromBitsLabelSwapped(raw)
	}
	return word.MessageFromBits(raw)
}

// Encode converts a message into the raw word this channel's adapter
// expects. It is the inverse of Decode.
func (c *Config) Encode(m word.Message) uint32 {
	if c.LabelSwapped {
		return m.BitsLabelSwapped()
	}
	return m.Bits()
}

// ConfigFile is a named set of channel configs as loaded from YAML.
type ConfigFile struct {
	Channels []Config `yaml:"channels"`
}

// Validate checks every channel and rejects duplicate names.
func (f *ConfigFile) Validate() error {
	seen := make(map[string]struct{}, len(f.Channels))
	for i := range f.Channels {
		c := &f.Channels[i]
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("duplicate channel name %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// Channel returns the config with the given name, or nil if absent.
func (f *ConfigFile) Channel(name string) *Config {
	for i := range f.Channels {
		if f.Channels[i].Name == name {
			return &f.Channels[i]
		}
	}
	return nil
}

// ParseConfigFile parses and validates channel configs from YAML bytes.
func ParseConfigFile(data []byte) (*ConfigFile, error) {
	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing channel config: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid channel config: %w", err)
	}
	return &file, nil
}

// LoadConfigFile loads and parses channel configs from a file.
func LoadConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseConfigFile(data)
}
