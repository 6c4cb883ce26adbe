package pgrange

import (
	"reflect"

	"github.com/iotaledger/pgrange/bitmask"
	"github.com/iotaledger/pgrange/constraints"
	"github.com/iotaledger/pgrange/ierrors"
	"github.com/iotaledger/pgrange/marshalutil"
)

// flag positions of the leading byte of the binary representation.
const (
	flagLowerBound uint = iota
	flagUpperBound
	flagLowerInclusive
	flagUpperInclusive
	flagCount
)

// RangeFromBytes unmarshals a Range from a sequence of bytes.
func RangeFromBytes[T constraints.Numeric](convert BoundConverter[T], rangeBytes []byte) (r *Range[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(rangeBytes)
	if r, err = RangeFromMarshalUtil(convert, marshalUtil); err != nil {
		err = ierrors.Wrap(err, "failed to parse Range from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// RangeFromMarshalUtil unmarshals a Range using a MarshalUtil (for easier unmarshalling).
//
// The decoded bounds are checked like those of any other Range, so corrupted input that would break the ordering
// yields ErrInvalidRange.
func RangeFromMarshalUtil[T constraints.Numeric](convert BoundConverter[T], marshalUtil *marshalutil.MarshalUtil) (*Range[T], error) {
	flagsByte, err := marshalUtil.ReadByte()
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to read flags: %s", err)
	}

	flags := bitmask.BitMask(flagsByte)
	if flags.HasUnknownBits(flagCount) {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "unsupported flags (%08b)", flagsByte)
	}

	r := Unbounded(convert)
	if flags.HasBit(flagLowerBound) {
		if r.lowerBound, err = readBound[T](marshalUtil); err != nil {
			return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to read lower bound: %s", err)
		}
	}
	if flags.HasBit(flagUpperBound) {
		if r.upperBound, err = readBound[T](marshalUtil); err != nil {
			return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to read upper bound: %s", err)
		}
	}
	r.lowerInclusive = flags.HasBit(flagLowerInclusive)
	r.upperInclusive = flags.HasBit(flagUpperInclusive)

	if err = r.CheckBounds(); err != nil {
		return nil, err
	}

	return r, nil
}

// Bytes returns a marshaled version of the Range: a flags byte followed by the existing bounds.
func (r *Range[T]) Bytes() []byte {
	var flags bitmask.BitMask
	flags = flags.ModifyBit(flagLowerBound, r.lowerBound != nil)
	flags = flags.ModifyBit(flagUpperBound, r.upperBound != nil)
	flags = flags.ModifyBit(flagLowerInclusive, r.lowerInclusive)
	flags = flags.ModifyBit(flagUpperInclusive, r.upperInclusive)

	marshalUtil := marshalutil.New(1 + 2*marshalutil.Int64Size)
	marshalUtil.WriteByte(byte(flags))
	if r.lowerBound != nil {
		writeBound(marshalUtil, *r.lowerBound)
	}
	if r.upperBound != nil {
		writeBound(marshalUtil, *r.upperBound)
	}

	return marshalUtil.Bytes()
}

// writeBound writes floats as IEEE 754 bits, signed integers as int64 and unsigned integers as uint64.
func writeBound[T constraints.Numeric](marshalUtil *marshalutil.MarshalUtil, bound T) {
	value := reflect.ValueOf(bound)

	switch value.Kind() { //nolint:exhaustive // only numeric kinds can occur
	case reflect.Float32, reflect.Float64:
		marshalUtil.WriteFloat64(value.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		marshalUtil.WriteInt64(value.Int())
	default:
		marshalUtil.WriteUint64(value.Uint())
	}
}

func readBound[T constraints.Numeric](marshalUtil *marshalutil.MarshalUtil) (*T, error) {
	var bound T

	switch reflect.ValueOf(bound).Kind() { //nolint:exhaustive // only numeric kinds can occur
	case reflect.Float32, reflect.Float64:
		value, err := marshalUtil.ReadFloat64()
		if err != nil {
			return nil, err
		}
		bound = T(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err := marshalUtil.ReadInt64()
		if err != nil {
			return nil, err
		}
		bound = T(value)
	default:
		value, err := marshalUtil.ReadUint64()
		if err != nil {
			return nil, err
		}
		bound = T(value)
	}

	return &bound, nil
}
