package pgrange

import (
	"github.com/iotaledger/pgrange/constraints"
)

// NumRange is a Range over double precision floats whose bounds are coerced with NumBound.
type NumRange = Range[float64]

// NewNumRange creates a NumRange, see New.
func NewNumRange(lower, upper any, opts ...Option[float64]) (*NumRange, error) {
	return New[float64](NumBound, lower, upper, opts...)
}

// ParseNumRange parses range text into a NumRange. Empty range text yields an unbounded NumRange.
func ParseNumRange(text string) (*NumRange, error) {
	return FromString[float64](NumBound, &text, false)
}

// NullableNumRange parses range text into a NumRange. A nil or empty range text yields nil.
func NullableNumRange(text *string) (*NumRange, error) {
	return FromString[float64](NumBound, text, true)
}

// NumRangeFromArray creates a NumRange from its tuple representation, see FromArray.
func NumRangeFromArray(tuple []any) (*NumRange, error) {
	return FromArray[float64](NumBound, tuple)
}

// NumRangeFromBytes unmarshals a NumRange from a sequence of bytes.
func NumRangeFromBytes(rangeBytes []byte) (*NumRange, int, error) {
	return RangeFromBytes[float64](NumBound, rangeBytes)
}

var (
	_ constraints.Equalable[*NumRange] = (*NumRange)(nil)
	_ constraints.Cloneable[*NumRange] = (*NumRange)(nil)
)
