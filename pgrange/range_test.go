package pgrange

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/pgrange/constraints"
)

// TestNew tests the construction of Ranges and the ordering invariant.
func TestNew(t *testing.T) {
	_, err := NewIntRange(10, 1)
	require.ErrorIs(t, err, ErrInvalidRange)

	r, err := NewIntRange(5, 5)
	require.NoError(t, err)
	require.Equal(t, "[5,5]", r.String())

	_, err = NewNumRange(5.5, 1.0)
	require.ErrorIs(t, err, ErrInvalidRange)

	r, err = NewIntRange(nil, "12")
	require.NoError(t, err)
	require.False(t, r.HasLowerBound())
	require.True(t, r.HasUpperBound())
	require.True(t, r.IsLowerInclusive())
	require.True(t, r.IsUpperInclusive())

	// missing bounds never violate the ordering
	r, err = NewIntRange("", nil)
	require.NoError(t, err)
	require.NoError(t, r.CheckBounds())
}

// TestNew_Options tests that the inclusivity options are applied.
func TestNew_Options(t *testing.T) {
	r, err := NewIntRange(1, 10, WithUpperInclusive[int64](false))
	require.NoError(t, err)
	require.Equal(t, "[1,10)", r.String())

	r, err = NewIntRange(1, 10, WithLowerInclusive[int64](false))
	require.NoError(t, err)
	require.Equal(t, "(1,10]", r.String())

	r, err = NewIntRange(1, 10, WithInclusivity[int64](false, false))
	require.NoError(t, err)
	require.Equal(t, "(1,10)", r.String())
}

// TestNew_CustomConverter tests that any BoundConverter can drive the core.
func TestNew_CustomConverter(t *testing.T) {
	doubling := func(raw any) (int64, bool) {
		bound, exists := IntBound(raw)

		return 2 * bound, exists
	}

	r, err := New[int64](doubling, "2", "3")
	require.NoError(t, err)
	require.Equal(t, "[4,6]", r.String())

	require.NoError(t, r.SetUpperBound("5"))
	require.Equal(t, "[4,10]", r.String())

	// a nil converter falls back to the default one of the domain
	r, err = New[int64](nil, "1.5", 2)
	require.NoError(t, err)
	require.Equal(t, "[1,2]", r.String())
}

// TestRange_SetBounds tests the mutators and that they keep the ordering invariant.
func TestRange_SetBounds(t *testing.T) {
	r, err := ParseIntRange("[1,10)")
	require.NoError(t, err)

	require.ErrorIs(t, r.SetUpperBound(0, true), ErrInvalidRange)
	require.Equal(t, "[1,10)", r.String())

	require.ErrorIs(t, r.SetLowerBound(11, false), ErrInvalidRange)
	require.Equal(t, "[1,10)", r.String())

	require.NoError(t, r.SetUpperBound(20, true))
	require.Equal(t, "[1,20]", r.String())

	require.NoError(t, r.SetLowerBound("", false))
	require.Equal(t, "(,20]", r.String())

	// without an inclusivity argument the flag is kept
	require.NoError(t, r.SetLowerBound(20))
	require.Equal(t, "(20,20]", r.String())

	require.NoError(t, r.SetUpperBound(nil))
	require.Equal(t, "(20,]", r.String())
}

// TestRange_ZeroValue tests that the zero value of a Range is usable.
func TestRange_ZeroValue(t *testing.T) {
	var r NumRange
	_, ok := r.Text()
	require.False(t, ok)

	require.NoError(t, r.SetLowerBound("0.5"))
	require.Equal(t, "(0.5,)", r.String())
}

// TestRange_Contains tests the containment checks for all kinds of bounds.
func TestRange_Contains(t *testing.T) {
	closedOpen, err := ParseIntRange("[1,10)")
	require.NoError(t, err)
	require.Equal(t, 1, closedOpen.Compare(0))
	require.Equal(t, 0, closedOpen.Compare(1))
	require.Equal(t, 0, closedOpen.Compare(9))
	require.Equal(t, -1, closedOpen.Compare(10))

	openClosed, err := ParseNumRange("(1.5,2.5]")
	require.NoError(t, err)
	require.False(t, openClosed.Contains(1.5))
	require.True(t, openClosed.Contains(1.5000001))
	require.True(t, openClosed.Contains(2.5))
	require.False(t, openClosed.Contains(2.6))

	atMost, err := ParseIntRange("(,5]")
	require.NoError(t, err)
	require.True(t, atMost.Contains(-1000))
	require.True(t, atMost.Contains(5))
	require.Equal(t, -1, atMost.Compare(6))

	greaterThan, err := ParseIntRange("(5,)")
	require.NoError(t, err)
	require.Equal(t, 1, greaterThan.Compare(5))
	require.True(t, greaterThan.Contains(6))

	all, err := ParseIntRange("(,)")
	require.NoError(t, err)
	require.True(t, all.Contains(0))

	empty, err := ParseIntRange("(5,5)")
	require.NoError(t, err)
	require.False(t, empty.Contains(5))
}

// TestRange_NaN tests that NaN is ordered above every other value.
func TestRange_NaN(t *testing.T) {
	_, err := NewNumRange(math.NaN(), 1.0)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = ParseNumRange("[NaN,1]")
	require.ErrorIs(t, err, ErrInvalidRange)

	closedOpen, err := ParseNumRange("[1,10)")
	require.NoError(t, err)
	require.False(t, closedOpen.Contains(math.NaN()))
	require.Equal(t, -1, closedOpen.Compare(math.NaN()))

	upToNaN, err := ParseNumRange("[1,NaN]")
	require.NoError(t, err)
	require.True(t, upToNaN.Contains(math.NaN()))
	require.True(t, upToNaN.Contains(math.Inf(1)))

	belowNaN, err := ParseNumRange("[1,NaN)")
	require.NoError(t, err)
	require.False(t, belowNaN.Contains(math.NaN()))

	atLeast, err := ParseNumRange("[1,)")
	require.NoError(t, err)
	require.True(t, atLeast.Contains(math.NaN()))

	onlyNaN, err := ParseNumRange("[NaN,NaN]")
	require.NoError(t, err)
	require.True(t, onlyNaN.Contains(math.NaN()))
	require.Equal(t, 1, onlyNaN.Compare(math.Inf(1)))

	r, err := ParseNumRange("[1,2]")
	require.NoError(t, err)
	require.ErrorIs(t, r.SetLowerBound("NaN"), ErrInvalidRange)
	require.Equal(t, "[1.0,2.0]", r.String())
}

// TestRange_EqualClone tests equality and cloning.
func TestRange_EqualClone(t *testing.T) {
	r, err := ParseIntRange("[1,10)")
	require.NoError(t, err)

	cloned := r.Clone()
	require.True(t, r.Equal(cloned))

	require.NoError(t, cloned.SetUpperBound(11))
	require.False(t, r.Equal(cloned))
	require.Equal(t, "[1,10)", r.String())

	other, err := ParseIntRange("(1,10)")
	require.NoError(t, err)
	require.False(t, r.Equal(other))

	var nilRange *IntRange
	require.True(t, nilRange.Equal(nil))
	require.False(t, r.Equal(nil))

	numRange, err := ParseNumRange("(,NaN]")
	require.NoError(t, err)

	requireCloneEqual(t, r)
	requireCloneEqual(t, numRange)
}

func requireCloneEqual[R interface {
	constraints.Cloneable[R]
	constraints.Equalable[R]
}](t *testing.T, value R) {
	t.Helper()

	require.True(t, value.Equal(value.Clone()))
}
