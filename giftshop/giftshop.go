// Package giftshop finds invalid product IDs: IDs whose decimal digits are
// some block of digits repeated.
package giftshop

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive range of product IDs.
type Range struct {
	Lo, Hi int64
}

// ParseRanges parses a comma-separated list of ranges like "11-22,95-115".
// Surrounding whitespace and empty entries are ignored.
func ParseRanges(s string) ([]Range, error) {
	var out []Range
	for _, f := range strings.Split(strings.TrimSpace(s), ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		lo, hi, ok := strings.Cut(f, "-")
		if !ok {
			return nil, fmt.Errorf("bad range %q: missing -", f)
		}
		var r Range
		var err error
		if r.Lo, err = strconv.ParseInt(lo, 10, 64); err != nil {
			return nil, fmt.Errorf("bad range %q: %w", f, err)
		}
		if r.Hi, err = strconv.ParseInt(hi, 10, 64); err != nil {
			return nil, fmt.Errorf("bad range %q: %w", f, err)
		}
		if r.Lo > r.Hi {
			return nil, fmt.Errorf("bad range %q: start after end", f)
		}
		out = append(out, r)
	}
	return out, nil
}

// RepeatedTwice reports whether id is some digits repeated exactly twice,
// like 6464 or 123123.
func RepeatedTwice(id int64) bool {
	var buf [20]byte
	b := strconv.AppendInt(buf[:0], id, 10)
	if len(b)%2 != 0 {
		return false
	}
	return bytes.Equal(b[:len(b)/2], b[len(b)/2:])
}

// RepeatedAtLeastTwice reports whether id is some digits repeated two or
// more times, like 1111111 or 121212.
func RepeatedAtLeastTwice(id int64) bool {
	var buf [20]byte
	b := strconv.AppendInt(buf[:0], id, 10)
	for n := 1; n <= len(b)/2; n++ {
		if len(b)%n != 0 {
			continue
		}
		if bytes.Equal(b[n:], b[:len(b)-n]) {
			return true
		}
	}
	return false
}

// SumInvalid returns the sum of the IDs in rs for which invalid is true.
func SumInvalid(rs []Range, invalid func(int64) bool) int64 {
	var sum int64
	for _, r := range rs {
		for id := r.Lo; id <= r.Hi; id++ {
			if invalid(id) {
				sum += id
			}
		}
	}
	return sum
}
