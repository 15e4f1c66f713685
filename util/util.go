package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// FloorMod is the mathematical modulo: the result always has the sign of m.
func FloorMod[A constraints.Integer](n A, m A) A {
	return ((n % m) + m) % m
}

func Abs[A constraints.Signed](n A) A {
	if n < 0 {
		return -n
	}
	return n
}

// GetKeys returns the keys of m in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Clone[A any](s []A) []A {
	res := make([]A, len(s))
	copy(res, s)
	return res
}
