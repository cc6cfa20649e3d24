package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vipcxj/divedns/internal/bounds"
)

// Config is the serialized form of a Validator. Absent keys leave the
// matching constraint unset.
//
// Ranges may be written structurally or in notation:
//
//	expect_root: dive
//	expect_levels: "[2..4]"
//	expect_length:
//	  start: {Include: 1}
//	  end: {Exclude: 64}
type Config struct {
	ExpectRoot   *string             `json:"expect_root,omitempty" yaml:"expect_root,omitempty"`
	ExpectLevels *bounds.Range[uint] `json:"expect_levels,omitempty" yaml:"expect_levels,omitempty"`
	ExpectLength *bounds.Range[uint] `json:"expect_length,omitempty" yaml:"expect_length,omitempty"`
}

// Validator builds a Validator from c. Later edits to c do not affect it.
func (c Config) Validator() Validator {
	var opts []Option
	if c.ExpectRoot != nil {
		opts = append(opts, WithRoot(*c.ExpectRoot))
	}
	if c.ExpectLevels != nil {
		opts = append(opts, WithLevels(*c.ExpectLevels))
	}
	if c.ExpectLength != nil {
		opts = append(opts, WithLength(*c.ExpectLength))
	}
	return NewValidator(opts...)
}

// Config returns a copy of v's constraints.
func (v Validator) Config() Config {
	var c Config
	if root, ok := v.Root(); ok {
		c.ExpectRoot = &root
	}
	if levels, ok := v.Levels(); ok {
		c.ExpectLevels = &levels
	}
	if length, ok := v.Length(); ok {
		c.ExpectLength = &length
	}
	return c
}

func (v Validator) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Config())
}

func (v *Validator) UnmarshalJSON(data []byte) error {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*v = c.Validator()
	return nil
}

func (v Validator) MarshalYAML() (any, error) {
	return v.Config(), nil
}

func (v *Validator) UnmarshalYAML(node *yaml.Node) error {
	var c Config
	if err := node.Decode(&c); err != nil {
		return err
	}
	*v = c.Validator()
	return nil
}

// DecodeConfig reads a YAML or JSON validator configuration.
// Unknown keys are rejected and an empty document yields an empty Config.
func DecodeConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads a validator configuration file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	c, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}
