package marshalutil

// ByteSize contains the amount of bytes of a marshaled byte value.
const ByteSize = 1

// WriteByte writes a single byte to the internal buffer.
//
//nolint:stdmethods
func (util *MarshalUtil) WriteByte(value byte) *MarshalUtil {
	util.grow(ByteSize)[0] = value

	return util
}

// ReadByte reads a single byte from the internal buffer.
func (util *MarshalUtil) ReadByte() (byte, error) {
	data, err := util.next(ByteSize)
	if err != nil {
		return 0, err
	}

	return data[0], nil
}
