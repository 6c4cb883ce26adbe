package ierrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errSentinel = New("sentinel")

func TestWrap(t *testing.T) {
	err := Wrap(errSentinel, "while parsing")
	require.True(t, Is(err, errSentinel))
	require.Equal(t, "sentinel: while parsing", err.Error())

	err = Wrapf(errSentinel, "value %d", 7)
	require.True(t, Is(err, errSentinel))
	require.Equal(t, "sentinel: value 7", err.Error())
}

func TestWrap_Formatting(t *testing.T) {
	inner := Wrapf(errSentinel, "lower bound (%d)", 10)
	outer := Wrap(inner, "failed to parse")

	require.Equal(t, "sentinel: lower bound (10): failed to parse", outer.Error())
	require.Equal(t, outer.Error(), fmt.Sprintf("%v", outer))
	require.Equal(t, outer.Error(), fmt.Sprintf("%s", outer))
	require.True(t, Is(outer, errSentinel))
	require.Equal(t, inner, Unwrap(Unwrap(outer)))
}

func TestErrorf(t *testing.T) {
	err := Errorf("outer: %w", errSentinel)
	require.True(t, Is(err, errSentinel))
	require.Equal(t, "outer: sentinel", err.Error())
	require.Equal(t, "outer: sentinel", fmt.Sprintf("%v", err))
}

func TestJoin(t *testing.T) {
	require.NoError(t, Join(nil, nil))

	other := New("other")
	err := Join(errSentinel, nil, other)
	require.True(t, Is(err, errSentinel))
	require.True(t, Is(err, other))
}

func TestStackTrace(t *testing.T) {
	require.Empty(t, StackTrace(nil))
	require.Contains(t, StackTrace(Wrap(errSentinel, "ctx")), "TestStackTrace")
}

type customError struct{ code int }

func (c *customError) Error() string { return "custom" }

func TestAs(t *testing.T) {
	err := Wrap(&customError{code: 3}, "wrapped")

	var target *customError
	require.True(t, As(err, &target))
	require.Equal(t, 3, target.code)
	require.NotNil(t, Unwrap(Unwrap(err)))
}
