package monads

import (
	"github.com/oliverbestmann/monads/internal/assert"
)

// Maybe holds zero or one value of type T.
//
// The zero value of Maybe is empty. An empty Maybe always keeps the zero
// value of T in its slot, so a Maybe of a comparable element type can be
// compared with == and an emptied Maybe never pins a previously held
// value for the garbage collector.
type Maybe[T any] struct {
	value   T
	engaged bool
}

// Some returns a Maybe holding the given value.
func Some[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, engaged: true}
}

// None returns an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPointer returns an empty Maybe if ptr is nil, otherwise a Maybe
// holding a copy of the pointed-to value.
func FromPointer[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Maybe[T]{}
	}

	return Some(*ptr)
}

// HasValue reports whether the Maybe holds a value.
func (m Maybe[T]) HasValue() bool {
	return m.engaged
}

// Value returns the held value. It panics if the Maybe is empty.
// Use Get when the caller can not guarantee engagement.
func (m Maybe[T]) Value() T {
	assert.That(m.engaged, "Value called on an empty Maybe")
	return m.value
}

// Get returns the held value and whether one was present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.engaged
}

// OrValue returns the held value if present, the fallback otherwise.
func (m Maybe[T]) OrValue(fallback T) T {
	if m.engaged {
		return m.value
	}

	return fallback
}

// OrDefault returns the held value if present, the zero value of T otherwise.
func (m Maybe[T]) OrDefault() T {
	var zero T
	return m.OrValue(zero)
}

// OrElse returns the Maybe itself if it holds a value, otherwise the
// result of fn. fn is not called when a value is present.
func (m Maybe[T]) OrElse(fn func() Maybe[T]) Maybe[T] {
	if m.engaged {
		return m
	}

	return fn()
}

// Pointer returns nil if the Maybe is empty, otherwise a pointer to a
// copy of the held value. Mutating the pointee does not affect the Maybe.
func (m Maybe[T]) Pointer() *T {
	if !m.engaged {
		return nil
	}

	value := m.value
	return &value
}

// Reset empties the Maybe, dropping a held value if there is one.
// Resetting an empty Maybe is a no-op.
func (m *Maybe[T]) Reset() {
	var zero T
	m.value = zero
	m.engaged = false
}

// Take returns the held value and empties the Maybe. The second return
// value reports whether a value was present.
func (m *Maybe[T]) Take() (T, bool) {
	value, ok := m.value, m.engaged
	m.Reset()
	return value, ok
}

// Swap exchanges the contents of the two containers. All four
// combinations of engagement are handled; a slot that becomes empty is
// reset to the zero value.
func (m *Maybe[T]) Swap(other *Maybe[T]) {
	switch {
	case m.engaged && other.engaged:
		m.value, other.value = other.value, m.value

	case m.engaged:
		*other = *m
		m.Reset()

	case other.engaged:
		*m = *other
		other.Reset()

	default:
		// both empty, nothing to exchange
	}
}

// Map returns a Maybe holding fn applied to the held value, or an empty
// Maybe if m is empty. fn is called at most once and never when m is empty.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.engaged {
		return Maybe[U]{}
	}

	return Some(fn(m.value))
}

// AndThen chains a Maybe producing operation onto the held value. If m
// is empty, fn is not called and the result is empty. The result is the
// direct result of fn, never a nested Maybe.
func AndThen[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.engaged {
		return Maybe[U]{}
	}

	return fn(m.value)
}

// MapOr returns fn applied to the held value, or the fallback if m is empty.
func MapOr[T, U any](m Maybe[T], fn func(T) U, fallback U) U {
	if !m.engaged {
		return fallback
	}

	return fn(m.value)
}

// MapOrElse returns fn applied to the held value, or the result of
// fallback if m is empty. Exactly one of the two functions is called.
func MapOrElse[T, U any](m Maybe[T], fn func(T) U, fallback func() U) U {
	if !m.engaged {
		return fallback()
	}

	return fn(m.value)
}

// Flatten collapses a Maybe of a Maybe into a single level.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	return m.OrDefault()
}
