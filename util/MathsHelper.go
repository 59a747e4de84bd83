package util

import (
	"cmp"
)

func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

// Clamp limits v to [lo, hi]. NaN is passed through untouched.
func Clamp[T cmp.Ordered](v T, lo T, hi T) T {
	if isNan(v) {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs for any signed float type.
func Abs[T ~float32 | ~float64](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
