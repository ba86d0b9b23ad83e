package chessmg

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of x or y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Distance is the king-step (Chebyshev) distance between two squares.
func Distance(a, b Square) int {
	return Max(Abs(a.X-b.X), Abs(a.Y-b.Y))
}
