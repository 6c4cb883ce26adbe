package pgrange

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseIntRange tests the parsing of an integer range with a closed lower and an open upper bound.
func TestParseIntRange(t *testing.T) {
	r, err := ParseIntRange("[1,10)")
	require.NoError(t, err)

	lower, exists := r.LowerBound()
	require.True(t, exists)
	require.Equal(t, int64(1), lower)
	require.True(t, r.IsLowerInclusive())

	upper, exists := r.UpperBound()
	require.True(t, exists)
	require.Equal(t, int64(10), upper)
	require.False(t, r.IsUpperInclusive())

	text, ok := r.Text()
	require.True(t, ok)
	require.Equal(t, "[1,10)", text)
}

// TestParseNumRange tests the parsing of a floating point range that is unbounded below.
func TestParseNumRange(t *testing.T) {
	r, err := ParseNumRange("(,1.0]")
	require.NoError(t, err)

	require.False(t, r.HasLowerBound())
	require.False(t, r.IsLowerInclusive())

	upper, exists := r.UpperBound()
	require.True(t, exists)
	require.Equal(t, 1.0, upper)
	require.True(t, r.IsUpperInclusive())

	require.Equal(t, "(,1.0]", r.String())
}

// TestFromString_EmptyText tests that the spellings of a range without bound text short-circuit.
func TestFromString_EmptyText(t *testing.T) {
	for _, text := range []string{"(,)", "[,)", "(,]", "[,]", ""} {
		text := text
		t.Run(text, func(t *testing.T) {
			r, err := ParseIntRange(text)
			require.NoError(t, err)
			require.False(t, r.HasLowerBound())
			require.False(t, r.HasUpperBound())
			require.True(t, r.IsLowerInclusive())
			require.True(t, r.IsUpperInclusive())

			_, ok := r.Text()
			require.False(t, ok)
			require.Nil(t, r.Array())

			nullable, err := NullableIntRange(&text)
			require.NoError(t, err)
			require.Nil(t, nullable)
		})
	}
}

// TestFromString_NilText tests that an absent text honours returnNilOnEmpty.
func TestFromString_NilText(t *testing.T) {
	r, err := FromString[int64](IntBound, nil, true)
	require.NoError(t, err)
	require.Nil(t, r)

	r, err = FromString[int64](IntBound, nil, false)
	require.NoError(t, err)
	require.NotNil(t, r)
	require.False(t, r.HasLowerBound())
	require.False(t, r.HasUpperBound())

	numRange, err := NullableNumRange(nil)
	require.NoError(t, err)
	require.Nil(t, numRange)
}

// TestFromString_Malformed tests that text without both delimiters is rejected.
func TestFromString_Malformed(t *testing.T) {
	for _, text := range []string{"1,10", "[1,10", "1,10)", "[1;10]", "(1)", "{1,2}"} {
		_, err := ParseIntRange(text)
		require.ErrorIs(t, err, ErrMalformedRangeText, "text %q", text)
		require.Contains(t, err.Error(), text)
	}
}

// TestFromString_InvalidOrder tests that the ordering of the parsed bounds is validated.
func TestFromString_InvalidOrder(t *testing.T) {
	_, err := ParseIntRange("[10,1]")
	require.ErrorIs(t, err, ErrInvalidRange)
	require.Equal(t, "invalid range: lower bound (10) is greater than upper bound (1)", fmt.Sprintf("%v", err))

	_, err = ParseNumRange("(5.5,1.0)")
	require.ErrorIs(t, err, ErrInvalidRange)
}

// TestFromString_EqualBounds tests that equal bounds are accepted whatever their inclusivity.
func TestFromString_EqualBounds(t *testing.T) {
	for _, text := range []string{"[5,5]", "[5,5)", "(5,5]", "(5,5)"} {
		r, err := ParseIntRange(text)
		require.NoError(t, err)
		require.Equal(t, text, r.String())
	}
}

// TestFromString_Scanner tests the less obvious paths of the scanner.
func TestFromString_Scanner(t *testing.T) {
	// characters after the closing delimiter are ignored
	r, err := ParseIntRange("[1,2]garbage")
	require.NoError(t, err)
	require.Equal(t, "[1,2]", r.String())

	// characters before the opening delimiter are skipped
	r, err = ParseIntRange(" [1,2)")
	require.NoError(t, err)
	require.Equal(t, "[1,2)", r.String())

	// a second comma belongs to the upper bound text
	numRange, err := ParseNumRange("[1,5,10]")
	require.NoError(t, err)
	require.Equal(t, "[1.0,5.0]", numRange.String())

	// non-numeric bound text coerces to zero
	r, err = ParseIntRange("[abc,10)")
	require.NoError(t, err)
	require.Equal(t, "[0,10)", r.String())

	// padded and quoted bounds as emitted by some drivers
	r, err = ParseIntRange(`[ "3" , 4 ]`)
	require.NoError(t, err)
	require.Equal(t, "[3,4]", r.String())

	// the upper bound may be missing on its own
	r, err = ParseIntRange("(7,]")
	require.NoError(t, err)
	require.Equal(t, "(7,]", r.String())
	require.False(t, r.HasUpperBound())
}

// TestText_Floats tests the rendering of floating point bounds.
func TestText_Floats(t *testing.T) {
	r, err := NewNumRange(1, 2.5)
	require.NoError(t, err)
	require.Equal(t, "[1.0,2.5]", r.String())

	r, err = NewNumRange(math.Inf(-1), 1e21, WithUpperInclusive[float64](false))
	require.NoError(t, err)
	require.Equal(t, "[-Infinity,1e+21)", r.String())

	r, err = NewNumRange(-0.125, nil)
	require.NoError(t, err)
	require.Equal(t, "[-0.125,]", r.String())
}

// TestText_RoundTrip tests that parsing the text of a Range yields an equal Range.
func TestText_RoundTrip(t *testing.T) {
	for _, text := range []string{"[1,10)", "(,5]", "[-3,)", "(-9223372036854775808,9223372036854775807]", "(0,0)"} {
		r, err := ParseIntRange(text)
		require.NoError(t, err)

		rendered, ok := r.Text()
		require.True(t, ok)
		require.Equal(t, text, rendered)

		reparsed, err := ParseIntRange(rendered)
		require.NoError(t, err)
		require.True(t, r.Equal(reparsed))
	}

	for _, bounds := range [][2]any{{0.1, 0.2}, {nil, 1e-300}, {-1.5, nil}, {math.Inf(-1), math.Inf(1)}, {1.0, math.NaN()}, {math.NaN(), math.NaN()}} {
		r, err := NewNumRange(bounds[0], bounds[1], WithInclusivity[float64](false, true))
		require.NoError(t, err)

		reparsed, err := ParseNumRange(r.String())
		require.NoError(t, err)
		require.True(t, r.Equal(reparsed), "round trip of %s", r)
	}
}
