package assert

import "fmt"

// That panics with the formatted message if the condition does not hold.
// The library uses it to surface contract violations, e.g. reading the
// value of an empty Maybe.
func That(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
