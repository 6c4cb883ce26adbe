package marshalutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/pgrange/ierrors"
)

func TestMarshalUtil_RoundTrip(t *testing.T) {
	util := New(1)
	util.WriteByte(0x0f).
		WriteBool(true).
		WriteInt64(-12).
		WriteUint64(38).
		WriteFloat64(-2.5).
		WriteBytes([]byte{1, 2, 3})

	reader := New(util.Bytes(true))

	b, err := reader.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x0f), b)

	flag, err := reader.ReadBool()
	require.NoError(t, err)
	require.True(t, flag)

	i, err := reader.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-12), i)

	u, err := reader.ReadUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(38), u)

	f, err := reader.ReadFloat64()
	require.NoError(t, err)
	require.Equal(t, -2.5, f)

	raw, err := reader.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, raw)

	require.True(t, reader.DoneReading())
	require.Equal(t, util.WriteOffset(), reader.ReadOffset())
}

func TestMarshalUtil_InsufficientData(t *testing.T) {
	reader := New([]byte{1, 2, 3})

	_, err := reader.ReadInt64()
	require.True(t, ierrors.Is(err, ErrInsufficientData))
	require.Equal(t, 0, reader.ReadOffset())
}

func TestMarshalUtil_InvalidBool(t *testing.T) {
	_, err := New([]byte{2}).ReadBool()
	require.True(t, ierrors.Is(err, ErrInvalidBool))
}

func TestMarshalUtil_Float64Specials(t *testing.T) {
	util := New()
	util.WriteFloat64(math.Inf(-1)).WriteFloat64(math.NaN())

	reader := New(util.Bytes())
	f, err := reader.ReadFloat64()
	require.NoError(t, err)
	require.True(t, math.IsInf(f, -1))

	f, err = reader.ReadFloat64()
	require.NoError(t, err)
	require.True(t, math.IsNaN(f))
}

func TestMarshalUtil_ReadSeek(t *testing.T) {
	reader := New([]byte{7, 8})

	_, err := reader.ReadByte()
	require.NoError(t, err)
	reader.ReadSeek(-1)

	b, err := reader.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(7), b)
}
