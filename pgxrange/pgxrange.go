// Package pgxrange converts between pgrange values and the range values of the pgx driver (pgtype.Range), so that a
// data access layer built on pgx can hand its native range values to pgrange and back.
package pgxrange

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iotaledger/pgrange/constraints"
	"github.com/iotaledger/pgrange/ierrors"
	"github.com/iotaledger/pgrange/pgrange"
)

var (
	// ErrEmptyRange is returned for pgtype ranges that were marked as empty; pgrange has no notion of empty ranges.
	ErrEmptyRange = ierrors.New("empty ranges are not supported")
	// ErrUnknownBoundType is returned for bound types outside of the ones defined by pgtype.
	ErrUnknownBoundType = ierrors.New("unknown bound type")
)

// FromInt8Range converts an int8range value. An invalid (NULL) value yields nil.
func FromInt8Range(src pgtype.Range[pgtype.Int8]) (*pgrange.IntRange, error) {
	return fromPgtype[int64, pgtype.Int8](src, pgrange.IntBound, func(bound pgtype.Int8) (int64, bool) {
		return bound.Int64, bound.Valid
	})
}

// ToInt8Range converts an IntRange into an int8range value. A nil IntRange yields an invalid (NULL) value.
func ToInt8Range(r *pgrange.IntRange) pgtype.Range[pgtype.Int8] {
	return toPgtype(r, func(bound int64) pgtype.Int8 {
		return pgtype.Int8{Int64: bound, Valid: true}
	})
}

// FromFloat8Range converts a range of float8 values. An invalid (NULL) value yields nil.
func FromFloat8Range(src pgtype.Range[pgtype.Float8]) (*pgrange.NumRange, error) {
	return fromPgtype[float64, pgtype.Float8](src, pgrange.NumBound, func(bound pgtype.Float8) (float64, bool) {
		return bound.Float64, bound.Valid
	})
}

// ToFloat8Range converts a NumRange into a range of float8 values. A nil NumRange yields an invalid (NULL) value.
func ToFloat8Range(r *pgrange.NumRange) pgtype.Range[pgtype.Float8] {
	return toPgtype(r, func(bound float64) pgtype.Float8 {
		return pgtype.Float8{Float64: bound, Valid: true}
	})
}

func fromPgtype[T constraints.Numeric, B any](src pgtype.Range[B], convert pgrange.BoundConverter[T], value func(B) (T, bool)) (*pgrange.Range[T], error) {
	if !src.Valid {
		return nil, nil //nolint:nilnil // NULL maps to no range
	}

	lower, lowerInclusive, err := boundFromPgtype(src.Lower, src.LowerType, value)
	if err != nil {
		return nil, ierrors.Wrap(err, "lower bound")
	}

	upper, upperInclusive, err := boundFromPgtype(src.Upper, src.UpperType, value)
	if err != nil {
		return nil, ierrors.Wrap(err, "upper bound")
	}

	return pgrange.New(convert, lower, upper, pgrange.WithInclusivity[T](lowerInclusive, upperInclusive))
}

// boundFromPgtype returns the raw bound (nil if unbounded) and its inclusivity.
func boundFromPgtype[T constraints.Numeric, B any](bound B, boundType pgtype.BoundType, value func(B) (T, bool)) (raw any, inclusive bool, err error) {
	switch boundType {
	case pgtype.Unbounded:
		return nil, false, nil
	case pgtype.Empty:
		return nil, false, ErrEmptyRange
	case pgtype.Inclusive, pgtype.Exclusive:
		scalar, valid := value(bound)
		if !valid {
			// a NULL bound value is treated like a missing bound
			return nil, false, nil
		}

		return scalar, boundType == pgtype.Inclusive, nil
	default:
		return nil, false, ierrors.Wrapf(ErrUnknownBoundType, "%q", rune(boundType))
	}
}

func toPgtype[T constraints.Numeric, B any](r *pgrange.Range[T], value func(T) B) pgtype.Range[B] {
	if r == nil {
		return pgtype.Range[B]{}
	}

	dst := pgtype.Range[B]{
		LowerType: pgtype.Unbounded,
		UpperType: pgtype.Unbounded,
		Valid:     true,
	}

	if lower, exists := r.LowerBound(); exists {
		dst.Lower = value(lower)
		dst.LowerType = boundType(r.IsLowerInclusive())
	}

	if upper, exists := r.UpperBound(); exists {
		dst.Upper = value(upper)
		dst.UpperType = boundType(r.IsUpperInclusive())
	}

	return dst
}

func boundType(inclusive bool) pgtype.BoundType {
	if inclusive {
		return pgtype.Inclusive
	}

	return pgtype.Exclusive
}
