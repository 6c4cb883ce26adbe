package pgrange

import (
	"github.com/spf13/cast"

	"github.com/iotaledger/pgrange/constraints"
	"github.com/iotaledger/pgrange/ierrors"
)

// ArrayLength is the number of elements of the tuple representation of a Range.
const ArrayLength = 4

// FromArray creates a Range from its tuple representation [lower, upper, lowerInclusive, upperInclusive], as used by
// storage layers that hand out range values as composite values. The bounds are raw values that go through convert;
// the inclusivity elements are coerced with cast.ToBool.
//
// A nil tuple yields an unbounded Range. It returns ErrMalformedRangeArray if the tuple does not have exactly four
// elements and ErrInvalidRange if the lower bound is greater than the upper bound.
func FromArray[T constraints.Numeric](convert BoundConverter[T], tuple []any) (*Range[T], error) {
	if tuple == nil {
		return Unbounded(convert), nil
	}

	if len(tuple) != ArrayLength {
		return nil, ierrors.Wrapf(ErrMalformedRangeArray, "expected %d elements, got %d", ArrayLength, len(tuple))
	}

	return New(convert, tuple[0], tuple[1], WithInclusivity[T](cast.ToBool(tuple[2]), cast.ToBool(tuple[3])))
}

// Array returns the tuple representation [lower, upper, lowerInclusive, upperInclusive] of the Range. Absent bounds
// are nil, present ones are values of type T.
//
// It returns nil if the Range has neither a lower nor an upper bound.
func (r *Range[T]) Array() []any {
	if r.lowerBound == nil && r.upperBound == nil {
		return nil
	}

	tuple := make([]any, ArrayLength)
	if r.lowerBound != nil {
		tuple[0] = *r.lowerBound
	}
	if r.upperBound != nil {
		tuple[1] = *r.upperBound
	}
	tuple[2] = r.lowerInclusive
	tuple[3] = r.upperInclusive

	return tuple
}
