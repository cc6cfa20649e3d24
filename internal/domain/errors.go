//go:generate go run github.com/dmarkham/enumer -type=ErrorKind -trimprefix=ErrorKind -transform=kebab
package domain

import (
	"errors"
	"fmt"

	"github.com/vipcxj/divedns/internal/bounds"
)

// ErrNotValid matches every error produced while validating a domain name.
var ErrNotValid = errors.New("domain name is not valid")

// ErrorKind identifies which validation step rejected a domain.
type ErrorKind int

const (
	ErrorKindNormalizationFailed ErrorKind = iota
	ErrorKindSegmentsNotValid
	ErrorKindRootMismatch
	ErrorKindLevelsOutOfRange
	ErrorKindLengthOutOfRange
)

// ValidationError is implemented by all errors returned from Validate.
type ValidationError interface {
	error
	Kind() ErrorKind
}

// KindOf returns the kind of the first ValidationError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr.Kind(), true
	}
	return 0, false
}

// HelpOf returns the hint attached to err, if any.
func HelpOf(err error) string {
	var h interface{ Help() string }
	if errors.As(err, &h) {
		return h.Help()
	}
	return ""
}

// NormalizationError means the input is not a well-formed UTS-46 domain.
type NormalizationError struct {
	Input string
	Err   error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("IDNA domain name parsing failed for %q: %v", e.Input, e.Err)
}

func (e *NormalizationError) Unwrap() error { return e.Err }

func (e *NormalizationError) Is(target error) bool { return target == ErrNotValid }

func (e *NormalizationError) Kind() ErrorKind { return ErrorKindNormalizationFailed }

func (e *NormalizationError) Help() string {
	return "domain names must comply with UTS-46, see https://url.spec.whatwg.org/#concept-domain-to-ascii"
}

// SegmentsError means the normalized name could not be split into labels.
type SegmentsError struct{}

func (e *SegmentsError) Error() string { return "unable to parse domain segments" }

func (e *SegmentsError) Is(target error) bool { return target == ErrNotValid }

func (e *SegmentsError) Kind() ErrorKind { return ErrorKindSegmentsNotValid }

type RootMismatchError struct {
	Expected string
	Actual   string
}

func (e *RootMismatchError) Error() string {
	return fmt.Sprintf("root mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *RootMismatchError) Is(target error) bool { return target == ErrNotValid }

func (e *RootMismatchError) Kind() ErrorKind { return ErrorKindRootMismatch }

// LevelsOutOfRangeError carries the label count that fell outside Expected.
type LevelsOutOfRangeError struct {
	Expected bounds.Range[uint]
	Actual   uint
}

func (e *LevelsOutOfRangeError) Error() string {
	return fmt.Sprintf("domain levels out of range: %d is not in %s", e.Actual, e.Expected)
}

func (e *LevelsOutOfRangeError) Is(target error) bool { return target == ErrNotValid }

func (e *LevelsOutOfRangeError) Kind() ErrorKind { return ErrorKindLevelsOutOfRange }

func (e *LevelsOutOfRangeError) Help() string {
	return "levels are the number of '.'-separated labels, root included (\"hello.dive\" has 2)"
}

// LengthOutOfRangeError carries the byte length that fell outside Expected.
type LengthOutOfRangeError struct {
	Expected bounds.Range[uint]
	Actual   uint
}

func (e *LengthOutOfRangeError) Error() string {
	return fmt.Sprintf("domain length out of expected range: %d is not in %s", e.Actual, e.Expected)
}

func (e *LengthOutOfRangeError) Is(target error) bool { return target == ErrNotValid }

func (e *LengthOutOfRangeError) Kind() ErrorKind { return ErrorKindLengthOutOfRange }
