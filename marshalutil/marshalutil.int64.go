package marshalutil

import (
	"encoding/binary"
)

// Int64Size contains the amount of bytes of a marshaled int64 value.
const Int64Size = 8

// WriteInt64 writes a marshaled int64 value to the internal buffer.
func (util *MarshalUtil) WriteInt64(value int64) *MarshalUtil {
	binary.LittleEndian.PutUint64(util.grow(Int64Size), uint64(value))

	return util
}

// ReadInt64 reads an int64 value from the internal buffer.
func (util *MarshalUtil) ReadInt64() (int64, error) {
	data, err := util.next(Int64Size)
	if err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint64(data)), nil
}
