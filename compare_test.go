package monads

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.True(t, Equal(None[int](), None[int]()))
	require.True(t, Equal(Some(5), Some(5)))
	require.False(t, Equal(Some(5), Some(6)))
	require.False(t, Equal(Some(5), None[int]()))
	require.False(t, Equal(None[int](), Some(5)))
}

func TestEqual_AfterReset(t *testing.T) {
	// an emptied Maybe compares equal to a fresh empty one
	m := Some(5)
	m.Reset()
	require.True(t, Equal(m, None[int]()))

	m = Some(5)
	m.Take()
	require.True(t, Equal(m, None[int]()))
}

func TestEqualValue(t *testing.T) {
	require.True(t, EqualValue(Some(5), 5))
	require.False(t, EqualValue(Some(5), 6))
	require.False(t, EqualValue(None[int](), 0))
}

func TestCompare(t *testing.T) {
	require.Zero(t, Compare(None[int](), None[int]()))
	require.Zero(t, Compare(Some(5), Some(5)))

	require.Negative(t, Compare(Some(1), Some(2)))
	require.Positive(t, Compare(Some(2), Some(1)))

	// empty orders before engaged
	require.Negative(t, Compare(None[int](), Some(-100)))
	require.Positive(t, Compare(Some(-100), None[int]()))
}

func TestCompareValue(t *testing.T) {
	require.Negative(t, CompareValue(None[int](), -100))
	require.Negative(t, CompareValue(Some(1), 2))
	require.Zero(t, CompareValue(Some(2), 2))
	require.Positive(t, CompareValue(Some(3), 2))
}

func TestEqualEither(t *testing.T) {
	require.True(t, EqualEither(Left[int, string](5), Left[int, string](5)))
	require.True(t, EqualEither(Right[int]("a"), Right[int]("a")))
	require.False(t, EqualEither(Left[int, string](5), Left[int, string](6)))
	require.False(t, EqualEither(Right[int]("a"), Right[int]("b")))

	// same zero value on different sides is still unequal
	require.False(t, EqualEither(Left[int, string](0), Right[int]("")))
}
