// Package util provides common utility functions.
package util

// Must2 returns v or panics with e.
// It is meant for package level initialization of values known to be valid.
func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}
