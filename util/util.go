package util

import (
	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Mod is a modulo that never goes negative, so Mod(-1, 12) == 11.
func Mod[A constraints.Integer](num A, m A) A {
	res := num % m
	if res < 0 {
		res += m
	}
	return res
}

func Clamp[A constraints.Integer](num A, lo A, hi A) A {
	if num < lo {
		return lo
	}
	if num > hi {
		return hi
	}
	return num
}
