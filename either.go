package monads

import (
	"github.com/oliverbestmann/monads/internal/assert"
)

// Either holds exactly one of two values, tagged by which side is
// active. By convention the left side carries the "primary" or success
// value and the right side the alternative, but the type itself does
// not care.
//
// The inactive slot always holds its zero value, mirroring Maybe. The
// zero value of Either is a left holding the zero value of L.
type Either[L, R any] struct {
	left  L
	right R

	// isRight instead of isLeft so that the zero value is a left.
	isRight bool
}

// Left returns an Either with the left side active.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right returns an Either with the right side active.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft reports whether the left side is active.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the right side is active.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value. It panics if the right side is active.
func (e Either[L, R]) LeftValue() L {
	assert.That(!e.isRight, "LeftValue called on a right Either")
	return e.left
}

// RightValue returns the right value. It panics if the left side is active.
func (e Either[L, R]) RightValue() R {
	assert.That(e.isRight, "RightValue called on a left Either")
	return e.right
}

// GetLeft returns the left value and whether the left side is active.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// GetRight returns the right value and whether the right side is active.
func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

// LeftOr returns the left value if the left side is active, the fallback
// otherwise.
func (e Either[L, R]) LeftOr(fallback L) L {
	if e.isRight {
		return fallback
	}

	return e.left
}

// RightOr returns the right value if the right side is active, the
// fallback otherwise.
func (e Either[L, R]) RightOr(fallback R) R {
	if !e.isRight {
		return fallback
	}

	return e.right
}

// TakeLeft returns the left value and leaves the slot holding the zero
// value of L. It panics if the right side is active.
func (e *Either[L, R]) TakeLeft() L {
	assert.That(!e.isRight, "TakeLeft called on a right Either")

	var zero L
	value := e.left
	e.left = zero
	return value
}

// TakeRight returns the right value and leaves the slot holding the zero
// value of R. It panics if the left side is active.
func (e *Either[L, R]) TakeRight() R {
	assert.That(e.isRight, "TakeRight called on a left Either")

	var zero R
	value := e.right
	e.right = zero
	return value
}

// MaybeLeft converts the Either into a Maybe of its left side. The
// result is empty if the right side is active.
func MaybeLeft[L, R any](e Either[L, R]) Maybe[L] {
	if e.isRight {
		return Maybe[L]{}
	}

	return Some(e.left)
}

// MaybeRight converts the Either into a Maybe of its right side. The
// result is empty if the left side is active.
func MaybeRight[L, R any](e Either[L, R]) Maybe[R] {
	if !e.isRight {
		return Maybe[R]{}
	}

	return Some(e.right)
}

// TransformLeft applies fn to the left value if the left side is active.
// A right Either is carried through unchanged and fn is not called.
func TransformLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if e.isRight {
		return Right[U](e.right)
	}

	return Left[U, R](fn(e.left))
}

// TransformRight applies fn to the right value if the right side is
// active. A left Either is carried through unchanged and fn is not called.
func TransformRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}

	return Right[L](fn(e.right))
}

// FlatTransformLeft chains an Either producing operation onto the left
// value. A right Either is carried through unchanged and fn is not called.
func FlatTransformLeft[L, R, U any](e Either[L, R], fn func(L) Either[U, R]) Either[U, R] {
	if e.isRight {
		return Right[U](e.right)
	}

	return fn(e.left)
}

// FlatTransformRight chains an Either producing operation onto the right
// value. A left Either is carried through unchanged and fn is not called.
func FlatTransformRight[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}

	return fn(e.right)
}
