package bounds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separator splits the two endpoints in range notation.
const Separator = ".."

// ErrInvalidRange is wrapped by every error returned from ParseRange.
var ErrInvalidRange = errors.New("invalid range")

// ParseRange parses range notation into an unsigned range.
//
// Supported formats:
//   - [a..b], [a..b), (a..b], (a..b)
//   - a..b, [a..b, a..b) etc.
//
// A missing opening bracket means an inclusive start and a missing closing
// bracket means an inclusive end. Only '(' and ')' select exclusive bounds.
// Spaces are not ignored.
//
// Examples:
//
//	ParseRange("(1..3]") -> (1..3]
//	ParseRange("1..3")   -> [1..3]
func ParseRange(value string) (Range[uint], error) {
	body := value
	startKind := BoundKindInclusive
	endKind := BoundKindInclusive

	if strings.HasPrefix(body, "(") {
		startKind = BoundKindExclusive
		body = body[1:]
	} else if strings.HasPrefix(body, "[") {
		body = body[1:]
	}
	if strings.HasSuffix(body, ")") {
		endKind = BoundKindExclusive
		body = body[:len(body)-1]
	} else if strings.HasSuffix(body, "]") {
		body = body[:len(body)-1]
	}

	parts := strings.Split(body, Separator)
	if len(parts) != 2 {
		return Range[uint]{}, fmt.Errorf("%w %q: expected exactly one %q", ErrInvalidRange, value, Separator)
	}

	start, err := parseUint(parts[0])
	if err != nil {
		return Range[uint]{}, fmt.Errorf("%w %q: start: %w", ErrInvalidRange, value, err)
	}
	end, err := parseUint(parts[1])
	if err != nil {
		return Range[uint]{}, fmt.Errorf("%w %q: end: %w", ErrInvalidRange, value, err)
	}

	return NewRange(
		Bound[uint]{Kind: startKind, Value: start},
		Bound[uint]{Kind: endKind, Value: end},
	), nil
}

// MustParseRange is like ParseRange but panics on malformed input.
// Use it for package-level literals only.
func MustParseRange(value string) Range[uint] {
	r, err := ParseRange(value)
	if err != nil {
		panic(err)
	}
	return r
}

func parseUint(tok string) (uint, error) {
	n, err := strconv.ParseUint(tok, 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}
