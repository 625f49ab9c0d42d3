// Package monads provides two small generic container types.
//
// Maybe holds zero or one value of some element type T. It replaces the
// usual pointer-or-nil and value-plus-ok conventions with a single type
// that carries its own engaged flag and a set of combinators (Map,
// AndThen, OrElse, ...) that only run when a value is present.
//
// Either holds exactly one of two values, tagged by which side is
// active. It is Maybe's two-sided sibling with Transform and
// FlatTransform combinators per side.
//
// Both types are plain values with value semantics: copying a Maybe or
// Either copies the held value, and the zero value of Maybe is empty.
// Neither type does any locking; sharing an instance between goroutines
// needs external synchronization.
package monads
