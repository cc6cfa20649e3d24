//go:generate go run github.com/dmarkham/enumer -type=BoundKind -trimprefix=BoundKind -transform=kebab
package bounds

import "fmt"

// Ordered restricts range values to types with a total order under < and <=.
// The ~ prefix lets named types built on these underlying types qualify too.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// BoundKind tells whether an endpoint value belongs to the range.
type BoundKind int

const (
	BoundKindInclusive BoundKind = iota
	BoundKindExclusive
)

// Bound is one endpoint of a Range.
type Bound[T Ordered] struct {
	Kind  BoundKind
	Value T
}

// Include returns an inclusive bound at v.
func Include[T Ordered](v T) Bound[T] {
	return Bound[T]{Kind: BoundKindInclusive, Value: v}
}

// Exclude returns an exclusive bound at v.
func Exclude[T Ordered](v T) Bound[T] {
	return Bound[T]{Kind: BoundKindExclusive, Value: v}
}

func (b Bound[T]) IsInclusive() bool {
	return b.Kind == BoundKindInclusive
}

// String prints the bare value; brackets belong to the enclosing Range.
func (b Bound[T]) String() string {
	return fmt.Sprint(b.Value)
}

// Range is an interval between two bounds.
//
// Start <= End is not enforced. A range whose start lies above its end is
// representable and simply includes nothing.
type Range[T Ordered] struct {
	Start Bound[T] `json:"start" yaml:"start"`
	End   Bound[T] `json:"end" yaml:"end"`
}

// NewRange builds a range from two bounds without any validation.
func NewRange[T Ordered](start, end Bound[T]) Range[T] {
	return Range[T]{Start: start, End: end}
}

// NewInclusiveRange returns [min..max].
func NewInclusiveRange[T Ordered](min, max T) Range[T] {
	return NewRange(Include(min), Include(max))
}

// NewExclusiveRange returns (min..max).
func NewExclusiveRange[T Ordered](min, max T) Range[T] {
	return NewRange(Exclude(min), Exclude(max))
}

// NewHalfOpenRange returns [min..max).
func NewHalfOpenRange[T Ordered](min, max T) Range[T] {
	return NewRange(Include(min), Exclude(max))
}

// Includes reports whether v satisfies both endpoints.
func (r Range[T]) Includes(v T) bool {
	if r.Start.IsInclusive() {
		if v < r.Start.Value {
			return false
		}
	} else if v <= r.Start.Value {
		return false
	}

	if r.End.IsInclusive() {
		if v > r.End.Value {
			return false
		}
	} else if v >= r.End.Value {
		return false
	}

	return true
}

// IsEmpty reports whether no value of T can satisfy the range.
//
// It only looks at the endpoints, so for discrete types (N..N+1) is not
// reported as empty even though no integer lies inside it.
func (r Range[T]) IsEmpty() bool {
	if r.Start.Value > r.End.Value {
		return true
	}
	if r.Start.Value == r.End.Value {
		return !(r.Start.IsInclusive() && r.End.IsInclusive())
	}
	return false
}

// String renders the range as "[a..b]", "[a..b)", "(a..b]" or "(a..b)".
// The output is accepted by ParseRange for unsigned ranges.
func (r Range[T]) String() string {
	left := "("
	if r.Start.IsInclusive() {
		left = "["
	}
	right := ")"
	if r.End.IsInclusive() {
		right = "]"
	}
	return fmt.Sprintf("%s%v%s%v%s", left, r.Start.Value, Separator, r.End.Value, right)
}
