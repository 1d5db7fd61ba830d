// Command 2025 runs solutions to Advent of Code 2025.
package main

import (
	_ "embed"

	"github.com/aocgo/aoc"
	"github.com/aocgo/aoc/dial"
	"github.com/aocgo/aoc/giftshop"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) rotations() []dial.Rotation {
	var rs []dial.Rotation
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		rs = append(rs, aoc.MustGet(dial.ParseRotation(line)))
	})
	return rs
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	return dial.Password(s.rotations())
}

// want=6
func (s solver) D1p2() any {
	return dial.ClickPassword(s.rotations())
}

func (s solver) ranges() []giftshop.Range {
	return aoc.MustGet(giftshop.ParseRanges(string(s.Input())))
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return giftshop.SumInvalid(s.ranges(), giftshop.RepeatedTwice)
}

// want=4174379265
func (s solver) D2p2() any {
	return giftshop.SumInvalid(s.ranges(), giftshop.RepeatedAtLeastTwice)
}
