package pgrange

import (
	"github.com/iotaledger/pgrange/constraints"
	"github.com/iotaledger/pgrange/ierrors"
)

// Range is an interval over the scalar domain T. Each side is either bounded by a value or unbounded, and a bound is
// either inclusive ("closed", the value belongs to the range) or exclusive ("open").
//
// If both bounds exist, the lower bound may not be greater than the upper bound. Equal bounds are accepted whatever
// their inclusivity, so (5,5) is a valid (if empty) Range.
//
// A Range is a plain value owned by its creator. It is not safe for concurrent mutation.
type Range[T constraints.Numeric] struct {
	lowerBound     *T
	upperBound     *T
	lowerInclusive bool
	upperInclusive bool
	convertBound   BoundConverter[T]
}

// Option configures a Range while it is being constructed.
type Option[T constraints.Numeric] func(*Range[T])

// WithLowerInclusive sets whether the lower bound is part of the Range.
func WithLowerInclusive[T constraints.Numeric](inclusive bool) Option[T] {
	return func(r *Range[T]) {
		r.lowerInclusive = inclusive
	}
}

// WithUpperInclusive sets whether the upper bound is part of the Range.
func WithUpperInclusive[T constraints.Numeric](inclusive bool) Option[T] {
	return func(r *Range[T]) {
		r.upperInclusive = inclusive
	}
}

// WithInclusivity sets the inclusivity of both bounds.
func WithInclusivity[T constraints.Numeric](lowerInclusive, upperInclusive bool) Option[T] {
	return func(r *Range[T]) {
		r.lowerInclusive = lowerInclusive
		r.upperInclusive = upperInclusive
	}
}

// New creates a Range from two raw bounds. Both bounds are passed through convert (nil and "" mean unbounded) and
// both are inclusive unless an Option says otherwise. If convert is nil, DefaultBound is used.
//
// It returns ErrInvalidRange if the lower bound is greater than the upper bound.
func New[T constraints.Numeric](convert BoundConverter[T], lower, upper any, opts ...Option[T]) (*Range[T], error) {
	if convert == nil {
		convert = DefaultBound[T]()
	}

	r := &Range[T]{convertBound: convert}
	r.lowerBound = r.convert(lower)
	r.upperBound = r.convert(upper)

	if err := r.CheckBounds(); err != nil {
		return nil, err
	}

	r.lowerInclusive = true
	r.upperInclusive = true
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Unbounded returns a Range without bounds whose (unused) inclusivity flags are both set.
func Unbounded[T constraints.Numeric](convert BoundConverter[T]) *Range[T] {
	if convert == nil {
		convert = DefaultBound[T]()
	}

	return &Range[T]{
		lowerInclusive: true,
		upperInclusive: true,
		convertBound:   convert,
	}
}

// LowerBound returns the lower bound and whether it exists.
func (r *Range[T]) LowerBound() (bound T, exists bool) {
	if r.lowerBound == nil {
		return bound, false
	}

	return *r.lowerBound, true
}

// UpperBound returns the upper bound and whether it exists.
func (r *Range[T]) UpperBound() (bound T, exists bool) {
	if r.upperBound == nil {
		return bound, false
	}

	return *r.upperBound, true
}

// HasLowerBound returns true if the Range is bounded below.
func (r *Range[T]) HasLowerBound() bool {
	return r.lowerBound != nil
}

// HasUpperBound returns true if the Range is bounded above.
func (r *Range[T]) HasUpperBound() bool {
	return r.upperBound != nil
}

// IsLowerInclusive returns true if the lower bound is part of the Range.
func (r *Range[T]) IsLowerInclusive() bool {
	return r.lowerInclusive
}

// IsUpperInclusive returns true if the upper bound is part of the Range.
func (r *Range[T]) IsUpperInclusive() bool {
	return r.upperInclusive
}

// SetLowerBound replaces the lower bound with the converted raw value and, if given, its inclusivity.
//
// The ordering of the bounds is checked again afterwards. If the new bound is greater than the upper bound, the Range
// is left unchanged and ErrInvalidRange is returned.
func (r *Range[T]) SetLowerBound(raw any, inclusive ...bool) error {
	previousBound, previousInclusive := r.lowerBound, r.lowerInclusive

	r.lowerBound = r.convert(raw)
	if len(inclusive) > 0 {
		r.lowerInclusive = inclusive[0]
	}

	if err := r.CheckBounds(); err != nil {
		r.lowerBound, r.lowerInclusive = previousBound, previousInclusive

		return err
	}

	return nil
}

// SetUpperBound replaces the upper bound with the converted raw value and, if given, its inclusivity.
//
// The ordering of the bounds is checked again afterwards. If the new bound is less than the lower bound, the Range is
// left unchanged and ErrInvalidRange is returned.
func (r *Range[T]) SetUpperBound(raw any, inclusive ...bool) error {
	previousBound, previousInclusive := r.upperBound, r.upperInclusive

	r.upperBound = r.convert(raw)
	if len(inclusive) > 0 {
		r.upperInclusive = inclusive[0]
	}

	if err := r.CheckBounds(); err != nil {
		r.upperBound, r.upperInclusive = previousBound, previousInclusive

		return err
	}

	return nil
}

// CheckBounds returns ErrInvalidRange if both bounds exist and the lower one is greater than the upper one.
// NaN is greater than every other value.
func (r *Range[T]) CheckBounds() error {
	if r.lowerBound != nil && r.upperBound != nil && compareBounds(*r.lowerBound, *r.upperBound) > 0 {
		return ierrors.Wrapf(ErrInvalidRange, "lower bound (%s) is greater than upper bound (%s)", FormatBound(*r.lowerBound), FormatBound(*r.upperBound))
	}

	return nil
}

// Compare returns 0 if the Range contains the given value, -1 if its contained values are smaller and 1 if they are
// bigger. NaN sorts above every other value and equals itself, so only ranges that are unbounded above or end with an
// inclusive NaN contain it.
func (r *Range[T]) Compare(value T) int {
	if r.lowerBound != nil {
		if result := compareBounds(*r.lowerBound, value); result > 0 || (result == 0 && !r.lowerInclusive) {
			return 1
		}
	}

	if r.upperBound != nil {
		if result := compareBounds(*r.upperBound, value); result < 0 || (result == 0 && !r.upperInclusive) {
			return -1
		}
	}

	return 0
}

// Contains returns true if value lies within the Range.
func (r *Range[T]) Contains(value T) bool {
	return r.Compare(value) == 0
}

// Equal returns true if both Ranges have the same bounds and the same inclusivity.
func (r *Range[T]) Equal(other *Range[T]) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equalBound(r.lowerBound, other.lowerBound) &&
		equalBound(r.upperBound, other.upperBound) &&
		r.lowerInclusive == other.lowerInclusive &&
		r.upperInclusive == other.upperInclusive
}

// Clone returns an independent copy of the Range.
func (r *Range[T]) Clone() *Range[T] {
	return &Range[T]{
		lowerBound:     cloneBound(r.lowerBound),
		upperBound:     cloneBound(r.upperBound),
		lowerInclusive: r.lowerInclusive,
		upperInclusive: r.upperInclusive,
		convertBound:   r.convertBound,
	}
}

func (r *Range[T]) convert(raw any) *T {
	if r.convertBound == nil {
		r.convertBound = DefaultBound[T]()
	}

	bound, exists := r.convertBound(raw)
	if !exists {
		return nil
	}

	return &bound
}

func equalBound[T constraints.Numeric](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return compareBounds(*a, *b) == 0
}

// compareBounds orders two values like the database does: NaN equals NaN and is greater than any other value.
func compareBounds[T constraints.Numeric](a, b T) int {
	//nolint:gocritic // x != x is the NaN test
	aIsNaN, bIsNaN := a != a, b != b

	switch {
	case aIsNaN && bIsNaN:
		return 0
	case aIsNaN:
		return 1
	case bIsNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cloneBound[T constraints.Numeric](bound *T) *T {
	if bound == nil {
		return nil
	}

	cloned := *bound

	return &cloned
}
