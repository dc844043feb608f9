package common

import "golang.org/x/exp/constraints"

// Number covers every numeric type the helpers accept
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of a number
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two numbers
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two numbers
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp bounds x to the closed interval [lo, hi]
func Clamp[T Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
