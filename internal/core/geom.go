// Package core provides terminal-agnostic drawing primitives for the life
// simulator. It has no external dependencies (especially no Bubble Tea) so
// that everything built on it stays pure and testable.
package core

// Wrap maps v onto [0, n) with toroidal semantics, so -1 becomes n-1 and n
// becomes 0. A non-positive n yields 0 instead of a modulo-by-zero panic.
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
