package bounds

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Serialized bounds are externally tagged: {"Include": 1} or {"Exclude": 3}.
const (
	tagInclude = "Include"
	tagExclude = "Exclude"
)

// rangeRecord has the same shape as Range without its custom decoders.
type rangeRecord[T Ordered] struct {
	Start Bound[T] `json:"start" yaml:"start"`
	End   Bound[T] `json:"end" yaml:"end"`
}

func (b Bound[T]) tagged() map[string]T {
	if b.IsInclusive() {
		return map[string]T{tagInclude: b.Value}
	}
	return map[string]T{tagExclude: b.Value}
}

func (b *Bound[T]) fromTagged(m map[string]T) error {
	if len(m) != 1 {
		return fmt.Errorf("%w: bound needs exactly one of %q or %q, got %d keys", ErrInvalidRange, tagInclude, tagExclude, len(m))
	}
	for k, v := range m {
		switch k {
		case tagInclude:
			*b = Include(v)
		case tagExclude:
			*b = Exclude(v)
		default:
			return fmt.Errorf("%w: unknown bound kind %q", ErrInvalidRange, k)
		}
	}
	return nil
}

func (b Bound[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.tagged())
}

func (b *Bound[T]) UnmarshalJSON(data []byte) error {
	var m map[string]T
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	return b.fromTagged(m)
}

func (b Bound[T]) MarshalYAML() (any, error) {
	return b.tagged(), nil
}

func (b *Bound[T]) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]T
	if err := node.Decode(&m); err != nil {
		return err
	}
	return b.fromTagged(m)
}

// UnmarshalJSON accepts the structural form {"start": ..., "end": ...} and,
// for unsigned ranges, the textual notation "[1..3)".
func (r *Range[T]) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		parsed, err := parseAs[T](s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}
	var rec rangeRecord[T]
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	*r = Range[T](rec)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON: a scalar is read as range notation.
func (r *Range[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := parseAs[T](node.Value)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}
	var rec rangeRecord[T]
	if err := node.Decode(&rec); err != nil {
		return err
	}
	*r = Range[T](rec)
	return nil
}

// parseAs parses notation for the one element type ParseRange supports.
func parseAs[T Ordered](s string) (Range[T], error) {
	parsed, err := ParseRange(s)
	if err != nil {
		return Range[T]{}, err
	}
	r, ok := any(parsed).(Range[T])
	if !ok {
		return Range[T]{}, fmt.Errorf("%w: notation %q is only supported for unsigned ranges", ErrInvalidRange, s)
	}
	return r, nil
}
