package stringify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStruct(t *testing.T) {
	require.Equal(t, "Range {\n    Lower: 1\n    Text: \"[1,2)\"\n    Bounds: [1, nil, true]\n}", Struct("Range",
		NewStructField("Lower", int64(1)),
		NewStructField("Text", "[1,2)"),
		NewStructField("Bounds", []any{1, nil, true}),
	))
}

func TestInterface(t *testing.T) {
	require.Equal(t, "nil", Interface(nil))
	require.Equal(t, "2.5", Interface(2.5))
	require.Equal(t, "0.5", Interface(float32(0.5)))
	require.Equal(t, "18446744073709551615", Interface(uint64(18446744073709551615)))
	require.Equal(t, "[]", Slice([]any{}))
}

type block string

func (b block) String() string { return string(b) }

func TestSlice_MultiLine(t *testing.T) {
	nested := block(Struct("Inner", NewStructField("A", 1)))
	require.Equal(t, "[\n    Inner {\n        A: 1\n    },\n]", Slice([]any{nested}))
}
