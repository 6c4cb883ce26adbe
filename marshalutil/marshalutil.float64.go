package marshalutil

import (
	"math"
)

// Float64Size contains the amount of bytes of a marshaled float64 value.
const Float64Size = Uint64Size

// WriteFloat64 writes the IEEE 754 representation of a float64 value to the internal buffer.
func (util *MarshalUtil) WriteFloat64(value float64) *MarshalUtil {
	return util.WriteUint64(math.Float64bits(value))
}

// ReadFloat64 reads a float64 value from the internal buffer.
func (util *MarshalUtil) ReadFloat64() (float64, error) {
	bits, err := util.ReadUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}
