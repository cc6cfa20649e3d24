package domain

import (
	"github.com/vipcxj/divedns/internal/bounds"
	"github.com/vipcxj/divedns/internal/uts46"
)

// Validator holds optional, independent constraints on a domain name.
// The zero value only normalizes.
type Validator struct {
	root   *string
	levels *bounds.Range[uint]
	length *bounds.Range[uint]
}

type Option func(*Validator)

// WithRoot requires the last label to equal root exactly.
// root is compared against the Unicode form and is not normalized itself.
func WithRoot(root string) Option {
	return func(v *Validator) {
		v.root = &root
	}
}

// WithLevels bounds the number of labels, root included.
func WithLevels(levels bounds.Range[uint]) Option {
	return func(v *Validator) {
		v.levels = &levels
	}
}

// WithLength bounds the byte length of the normalized name.
func WithLength(length bounds.Range[uint]) Option {
	return func(v *Validator) {
		v.length = &length
	}
}

func NewValidator(opts ...Option) Validator {
	var v Validator
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// DefaultValidator accepts any name that normalizes.
func DefaultValidator() Validator {
	return Validator{}
}

func (v Validator) Root() (string, bool) {
	if v.root == nil {
		return "", false
	}
	return *v.root, true
}

func (v Validator) Levels() (bounds.Range[uint], bool) {
	if v.levels == nil {
		return bounds.Range[uint]{}, false
	}
	return *v.levels, true
}

func (v Validator) Length() (bounds.Range[uint], bool) {
	if v.length == nil {
		return bounds.Range[uint]{}, false
	}
	return *v.length, true
}

// candidate is a normalized name under validation.
type candidate struct {
	name   string
	labels []string
}

type check func(c candidate) error

// checks lists the configured constraints in evaluation order. The order
// decides which error is reported when several constraints fail.
func (v Validator) checks() []check {
	var cs []check
	if v.root != nil {
		cs = append(cs, v.checkRoot)
	}
	if v.levels != nil {
		cs = append(cs, v.checkLevels)
	}
	if v.length != nil {
		cs = append(cs, v.checkLength)
	}
	return cs
}

func (v Validator) checkRoot(c candidate) error {
	actual := c.labels[len(c.labels)-1]
	if actual != *v.root {
		return &RootMismatchError{Expected: *v.root, Actual: actual}
	}
	return nil
}

func (v Validator) checkLevels(c candidate) error {
	actual := uint(len(c.labels))
	if !v.levels.Includes(actual) {
		return &LevelsOutOfRangeError{Expected: *v.levels, Actual: actual}
	}
	return nil
}

func (v Validator) checkLength(c candidate) error {
	actual := uint(len(c.name))
	if !v.length.Includes(actual) {
		return &LengthOutOfRangeError{Expected: *v.length, Actual: actual}
	}
	return nil
}

// Validate normalizes raw to Unicode and checks it against the configured
// constraints in the order root, levels, length. It returns the first failure.
func (v Validator) Validate(raw string) (Domain, error) {
	normalized, err := uts46.ToUnicode(raw)
	if err != nil {
		return Domain{}, &NormalizationError{Input: raw, Err: err}
	}

	d := Domain{name: normalized}
	c := candidate{name: normalized, labels: d.Labels()}
	if len(c.labels) == 0 {
		return Domain{}, &SegmentsError{}
	}

	for _, chk := range v.checks() {
		if err := chk(c); err != nil {
			return Domain{}, err
		}
	}
	return d, nil
}
