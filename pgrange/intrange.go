package pgrange

import (
	"github.com/iotaledger/pgrange/constraints"
)

// IntRange is a Range over 64-bit signed integers whose bounds are coerced with IntBound.
type IntRange = Range[int64]

// NewIntRange creates an IntRange, see New.
func NewIntRange(lower, upper any, opts ...Option[int64]) (*IntRange, error) {
	return New[int64](IntBound, lower, upper, opts...)
}

// ParseIntRange parses range text into an IntRange. Empty range text yields an unbounded IntRange.
func ParseIntRange(text string) (*IntRange, error) {
	return FromString[int64](IntBound, &text, false)
}

// NullableIntRange parses range text into an IntRange. A nil or empty range text yields nil.
func NullableIntRange(text *string) (*IntRange, error) {
	return FromString[int64](IntBound, text, true)
}

// IntRangeFromArray creates an IntRange from its tuple representation, see FromArray.
func IntRangeFromArray(tuple []any) (*IntRange, error) {
	return FromArray[int64](IntBound, tuple)
}

// IntRangeFromBytes unmarshals an IntRange from a sequence of bytes.
func IntRangeFromBytes(rangeBytes []byte) (*IntRange, int, error) {
	return RangeFromBytes[int64](IntBound, rangeBytes)
}

var (
	_ constraints.Equalable[*IntRange] = (*IntRange)(nil)
	_ constraints.Cloneable[*IntRange] = (*IntRange)(nil)
)
