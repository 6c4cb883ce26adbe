// Package marshalutil implements a cursor based byte buffer that is used to build and consume the binary
// representation of range values.
package marshalutil

import (
	"fmt"

	"github.com/iotaledger/pgrange/ierrors"
)

// ErrInsufficientData is returned when a read exceeds the remaining input.
var ErrInsufficientData = ierrors.New("insufficient data")

// MarshalUtil keeps separate read and write offsets over a growing byte slice.
type MarshalUtil struct {
	bytes       []byte
	readOffset  int
	writeOffset int
}

// New creates a MarshalUtil. Called without arguments it returns an empty buffer for writing, an int argument
// preallocates that much capacity, and a []byte argument wraps existing data for reading.
func New(args ...any) *MarshalUtil {
	switch argsCount := len(args); argsCount {
	case 0:
		return &MarshalUtil{bytes: make([]byte, 0, 32)}
	case 1:
		switch param := args[0].(type) {
		case int:
			return &MarshalUtil{bytes: make([]byte, 0, param)}
		case []byte:
			return &MarshalUtil{bytes: param, writeOffset: len(param)}
		default:
			panic(fmt.Sprintf("illegal argument type %T in marshalutil.New(...)", param))
		}
	default:
		panic(fmt.Sprintf("illegal argument count %d in marshalutil.New(...)", argsCount))
	}
}

// ReadOffset returns the number of bytes consumed so far.
func (util *MarshalUtil) ReadOffset() int {
	return util.readOffset
}

// WriteOffset returns the number of bytes written so far.
func (util *MarshalUtil) WriteOffset() int {
	return util.writeOffset
}

// ReadSeek moves the read cursor. Negative offsets are relative to the current position.
func (util *MarshalUtil) ReadSeek(offset int) {
	if offset < 0 {
		util.readOffset += offset
	} else {
		util.readOffset = offset
	}
}

// Bytes returns the written bytes. Passing true returns a copy that does not share memory with the buffer.
func (util *MarshalUtil) Bytes(clone ...bool) []byte {
	if len(clone) >= 1 && clone[0] {
		cloned := make([]byte, util.writeOffset)
		copy(cloned, util.bytes)

		return cloned
	}

	return util.bytes[:util.writeOffset]
}

// Write marshals the given object by writing its Bytes into the underlying buffer.
func (util *MarshalUtil) Write(object SimpleBinaryMarshaler) *MarshalUtil {
	return util.WriteBytes(object.Bytes())
}

// WriteBytes appends raw bytes to the buffer.
func (util *MarshalUtil) WriteBytes(bytes []byte) *MarshalUtil {
	copy(util.grow(len(bytes)), bytes)

	return util
}

// ReadBytes reads the given amount of raw bytes.
func (util *MarshalUtil) ReadBytes(length int) ([]byte, error) {
	data, err := util.next(length)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// DoneReading reports whether all written bytes have been consumed.
func (util *MarshalUtil) DoneReading() bool {
	return util.readOffset == util.writeOffset
}

// next returns the following length bytes and advances the read cursor.
func (util *MarshalUtil) next(length int) ([]byte, error) {
	readEndOffset := util.readOffset + length
	if readEndOffset > util.writeOffset {
		return nil, ierrors.Wrapf(ErrInsufficientData, "tried to read %d bytes from %d bytes input", readEndOffset, util.writeOffset)
	}

	data := util.bytes[util.readOffset:readEndOffset]
	util.readOffset = readEndOffset

	return data, nil
}

// grow extends the buffer by length bytes and returns the newly available window.
func (util *MarshalUtil) grow(length int) []byte {
	writeEndOffset := util.writeOffset + length
	if writeEndOffset > len(util.bytes) {
		util.bytes = append(util.bytes[:util.writeOffset], make([]byte, length)...)
	}

	window := util.bytes[util.writeOffset:writeEndOffset]
	util.writeOffset = writeEndOffset

	return window
}

// SimpleBinaryMarshaler represents objects that have a Bytes method for marshaling. In contrast to go's built marshaler
// interface (encoding.BinaryMarshaler) this interface expect no errors to be returned.
type SimpleBinaryMarshaler interface {
	// Bytes returns a marshaled version of the object.
	Bytes() []byte
}
