package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Mod returns x modulo m in the range [0, m), unlike % which keeps the sign
// of x. m must be positive.
func Mod[T constraints.Integer](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
