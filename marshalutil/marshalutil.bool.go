package marshalutil

import (
	"github.com/iotaledger/pgrange/ierrors"
)

// BoolSize contains the amount of bytes of a marshaled bool value.
const BoolSize = 1

// ErrInvalidBool is returned when a bool byte is neither 0 nor 1.
var ErrInvalidBool = ierrors.New("invalid bool value")

// WriteBool writes a marshaled bool value to the internal buffer.
func (util *MarshalUtil) WriteBool(value bool) *MarshalUtil {
	if value {
		return util.WriteByte(1)
	}

	return util.WriteByte(0)
}

// ReadBool reads a bool value from the internal buffer.
func (util *MarshalUtil) ReadBool() (bool, error) {
	value, err := util.ReadByte()
	if err != nil {
		return false, err
	}

	switch value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ierrors.Wrapf(ErrInvalidBool, "got %X", value)
	}
}
