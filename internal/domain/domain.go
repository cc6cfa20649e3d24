// Package domain validates and normalizes domain names against structural
// constraints: required root label, number of levels and total length.
package domain

import (
	"strings"

	"github.com/vipcxj/divedns/internal/uts46"
)

// Domain is a UTS-46 normalized domain name in Unicode form.
//
// Values are only produced by a Validator, so a Domain always satisfied the
// constraints of the validator that built it. It does not remember which one.
type Domain struct {
	name string
}

// New validates domain with no constraints besides normalization.
func New(domain string) (Domain, error) {
	return DefaultValidator().Validate(domain)
}

// String returns the Unicode form.
func (d Domain) String() string {
	return d.name
}

// ToPunycode returns the ASCII form.
func (d Domain) ToPunycode() (string, error) {
	ascii, err := uts46.ToASCII(d.name)
	if err != nil {
		return "", &NormalizationError{Input: d.name, Err: err}
	}
	return ascii, nil
}

// Root returns the last label. ok is false only for the zero Domain.
func (d Domain) Root() (root string, ok bool) {
	if d.name == "" {
		return "", false
	}
	return d.name[strings.LastIndexByte(d.name, '.')+1:], true
}

// Levels counts the '.' characters, so "hello.dive" has 1 level.
// This is LabelCount() - 1, not the number Validator checks against.
func (d Domain) Levels() int {
	return strings.Count(d.name, ".")
}

// Labels splits the name on '.'.
func (d Domain) Labels() []string {
	return strings.Split(d.name, ".")
}

// LabelCount is the number of labels, the quantity bounded by WithLevels.
func (d Domain) LabelCount() uint {
	return uint(strings.Count(d.name, ".") + 1)
}

func (d Domain) MarshalText() ([]byte, error) {
	return []byte(d.name), nil
}

// UnmarshalText runs the default validator, so decoded values are normalized.
func (d *Domain) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
