package trebuchet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		m    Matcher
		want Token
		ok   bool
	}{
		{"7abc", Words, Token{7, 1}, true},
		{"0", Words, Token{0, 1}, true},
		{"one", Words, Token{1, 3}, true},
		{"threeve", Words, Token{3, 5}, true},
		{"seventeen", Words, Token{7, 5}, true},
		{"sixty", Words, Token{6, 3}, true},
		{"nine\n", Words, Token{9, 4}, true},
		{"zero", Words, Token{}, false},
		{"One", Words, Token{}, false},
		{"on\ne", Words, Token{}, false},
		{"one", Digits, Token{}, false},
		{"5", Digits, Token{5, 1}, true},
		{"", Words, Token{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.m.Match([]byte(tt.in))
		assert.Equal(t, tt.ok, ok, "Match(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Match(%q)", tt.in)
	}
}

func TestMatchTruncated(t *testing.T) {
	lenient := Words.Lenient()

	_, ok := Words.Match([]byte("tw"))
	assert.False(t, ok)

	got, ok := lenient.Match([]byte("tw"))
	require.True(t, ok)
	assert.Equal(t, Token{2, 2}, got)

	// "th" is not a prefix of "two" but is of "three".
	got, ok = lenient.Match([]byte("th"))
	require.True(t, ok)
	assert.Equal(t, Token{3, 2}, got)

	_, ok = lenient.Match([]byte("tx"))
	assert.False(t, ok)

	// A full window is never affected.
	_, ok = lenient.Match([]byte("twx"))
	assert.False(t, ok)

	// Lenient copies; the package matchers stay strict.
	_, ok = Words.Match([]byte("tw"))
	assert.False(t, ok)
	_, ok = Digits.Lenient().Match([]byte("tw"))
	assert.False(t, ok)
}

func TestFindPair(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want Pair
		ok   bool
	}{
		{"two1nine", 8, Pair{2, 9}, true},
		{"abcone2threexyz", 15, Pair{1, 3}, true},
		{"1abc2", 5, Pair{1, 2}, true},
		{"eightwo", 7, Pair{8, 2}, true},
		{"treb7uchet", 10, Pair{7, 7}, true},
		{"abcdef", 6, Pair{}, false},
		{"ab\n12", 3, Pair{}, false},
		{"4x\n5", 3, Pair{4, 4}, true},
		{"\n", 1, Pair{}, false},
		{"", 0, Pair{}, false},
	}
	for _, tt := range tests {
		n, p, ok := Words.FindPair([]byte(tt.in))
		assert.Equal(t, tt.n, n, "consumed for %q", tt.in)
		assert.Equal(t, tt.ok, ok, "ok for %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, p, "pair for %q", tt.in)
		}
	}
}

func TestFindPairIdempotent(t *testing.T) {
	type result struct {
		N  int
		P  Pair
		OK bool
	}
	line := []byte("zoneight234\nxyz")
	run := func() deephash.Sum {
		var r result
		r.N, r.P, r.OK = Words.FindPair(line)
		return deephash.Hash(&r)
	}
	want := run()
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, run())
	}
	assert.Equal(t, "zoneight234\nxyz", string(line))
}

func TestCalibrate(t *testing.T) {
	part1 := strings.Join([]string{
		"1abc2",
		"pqr3stu8vwx",
		"a1b2c3d4e5f",
		"treb7uchet",
	}, "\n")
	part2 := strings.Join([]string{
		"two1nine",
		"eightwothree",
		"abcone2threexyz",
		"xtwone3four",
		"4nineeightseven2",
		"zoneight234",
		"7pqrstsixteen",
	}, "\n") + "\n"

	assert.EqualValues(t, 142, Digits.Calibrate([]byte(part1), nil))
	assert.EqualValues(t, 142, Words.Calibrate([]byte(part1), nil))
	assert.EqualValues(t, 281, Words.Calibrate([]byte(part2), nil))

	var got []int
	Words.Calibrate([]byte(part2), func(v int) { got = append(got, v) })
	assert.Equal(t, []int{29, 83, 13, 24, 42, 14, 76}, got)
}

func TestCalibrateSkipsEmptyLines(t *testing.T) {
	in := []byte("abc\n\n1x\nxyz\nsix")
	var got []int
	sum := Words.Calibrate(in, func(v int) { got = append(got, v) })
	assert.EqualValues(t, 11+66, sum)
	assert.Equal(t, []int{11, 66}, got)
	assert.Zero(t, Words.Calibrate(nil, nil))
	assert.Zero(t, Words.Calibrate([]byte("no digits here\n"), nil))
}

func TestCalibrateTruncatedTail(t *testing.T) {
	lenient := Words.Lenient()

	in := []byte("5\n1tw")
	assert.EqualValues(t, 55+11, Words.Calibrate(in, nil))
	assert.EqualValues(t, 55+12, lenient.Calibrate(in, nil))

	// The window spans the rest of the input, so only the final line can
	// be truncated.
	in = []byte("1tw\n5")
	assert.EqualValues(t, 11+55, lenient.Calibrate(in, nil))
}
