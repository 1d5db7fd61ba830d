// Command 2023 runs solutions to Advent of Code 2023.
package main

import (
	_ "embed"

	"github.com/aocgo/aoc"
	"github.com/aocgo/aoc/trebuchet"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) calibrate(m trebuchet.Matcher) uint64 {
	return m.Calibrate(s.Input(), func(v int) {
		s.Debugf("number %d", v)
	})
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return s.calibrate(trebuchet.Digits)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return s.calibrate(trebuchet.Words)
}
