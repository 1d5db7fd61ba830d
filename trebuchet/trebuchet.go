// Package trebuchet recovers calibration values from lines of text. A
// calibration value is the two-digit number formed by the first and last
// digit on a line, where a digit is either an ASCII digit or, depending on
// the Matcher, a spelled-out word "one" through "nine".
package trebuchet

type word struct {
	s string
	v int
}

// spelled is checked in order; the first match wins.
var spelled = []word{
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
}

// Matcher recognizes digit-like tokens.
type Matcher struct {
	words     []word
	truncated bool
}

var (
	// Digits matches ASCII digits only.
	Digits = Matcher{}

	// Words matches ASCII digits and the words "one" through "nine".
	Words = Matcher{words: spelled}
)

// Lenient returns a copy of m that also matches a word cut off by the end of
// the input, as long as what remains is a prefix of the word. "1tw" at the
// end of a document reads as 1 and 2.
func (m Matcher) Lenient() Matcher {
	m.truncated = true
	return m
}

// Token is a digit-like token found at the start of a window.
type Token struct {
	Value int // 0-9
	Len   int // bytes the token spans
}

// Match reports whether a digit-like token starts at b[0].
func (m Matcher) Match(b []byte) (Token, bool) {
	if len(b) == 0 {
		return Token{}, false
	}
	if c := b[0]; c >= '0' && c <= '9' {
		return Token{Value: int(c - '0'), Len: 1}, true
	}
	for _, w := range m.words {
		if w.s[0] != b[0] {
			continue
		}
		n := len(w.s)
		if len(b) < n {
			if !m.truncated {
				continue
			}
			n = len(b)
		}
		if string(b[:n]) == w.s[:n] {
			return Token{Value: w.v, Len: n}, true
		}
	}
	return Token{}, false
}

// Pair is the first and last digit found on a line.
type Pair struct {
	First, Last int
}

// Value returns the two-digit number the pair forms.
func (p Pair) Value() int {
	return p.First*10 + p.Last
}

// FindPair scans the line at the start of b one byte at a time, so
// overlapping tokens like "eightwo" yield both 8 and 2. It stops after the
// first newline or at the end of b and returns the number of bytes consumed,
// including the newline. ok is false if the line held no token.
func (m Matcher) FindPair(b []byte) (n int, p Pair, ok bool) {
	for n < len(b) {
		if b[n] == '\n' {
			n++
			break
		}
		if t, found := m.Match(b[n:]); found {
			if !ok {
				p.First = t.Value
				ok = true
			}
			p.Last = t.Value
		}
		n++
	}
	return n, p, ok
}

// Calibrate sums the calibration values of every line in buf. Lines without
// a token contribute nothing. If fn is non-nil it is called with each
// line's value.
func (m Matcher) Calibrate(buf []byte, fn func(int)) uint64 {
	var sum uint64
	for off := 0; off < len(buf); {
		n, p, ok := m.FindPair(buf[off:])
		if n == 0 {
			break
		}
		off += n
		if !ok {
			continue
		}
		if fn != nil {
			fn(p.Value())
		}
		sum += uint64(p.Value())
	}
	return sum
}
