package monads

import "cmp"

// Equal reports whether two Maybe values are equal. Two empty Maybe
// values are equal; an empty and an engaged one are not; two engaged
// ones compare their held values.
func Equal[T comparable](a, b Maybe[T]) bool {
	return a == b
}

// EqualValue reports whether the Maybe holds exactly the given value.
// An empty Maybe is never equal to a bare value.
func EqualValue[T comparable](m Maybe[T], value T) bool {
	return m.engaged && m.value == value
}

// Compare orders two Maybe values. An empty Maybe orders before any
// engaged one; two engaged ones compare their held values. The result
// follows the cmp.Compare convention.
func Compare[T cmp.Ordered](a, b Maybe[T]) int {
	if a.engaged && b.engaged {
		return cmp.Compare(a.value, b.value)
	}

	return boolCompare(a.engaged, b.engaged)
}

// CompareValue orders a Maybe against a bare value. An empty Maybe
// orders before any value.
func CompareValue[T cmp.Ordered](m Maybe[T], value T) int {
	if !m.engaged {
		return -1
	}

	return cmp.Compare(m.value, value)
}

// EqualEither reports whether two Either values have the same active
// side and equal values on that side.
func EqualEither[L, R comparable](a, b Either[L, R]) bool {
	return a == b
}

func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}
