// Package dial simulates a safe's combination dial: 100 positions in a
// circle, numbered 0 to 99, turned left or right a number of clicks.
package dial

import (
	"fmt"
	"strconv"

	"github.com/aocgo/aoc"
)

const (
	// Size is the number of positions on the dial.
	Size = 100

	// Start is where the dial points before the first rotation.
	Start = 50
)

// Rotation is one turn of the dial. Left turns toward lower numbers.
type Rotation struct {
	Left   bool
	Clicks int
}

func (r Rotation) String() string {
	if r.Left {
		return fmt.Sprintf("L%d", r.Clicks)
	}
	return fmt.Sprintf("R%d", r.Clicks)
}

// ParseRotation parses a rotation like "L68" or "R48".
func ParseRotation(s string) (Rotation, error) {
	if len(s) < 2 {
		return Rotation{}, fmt.Errorf("bad rotation %q", s)
	}
	var r Rotation
	switch s[0] {
	case 'L':
		r.Left = true
	case 'R':
	default:
		return Rotation{}, fmt.Errorf("bad rotation %q: direction must be L or R", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return Rotation{}, fmt.Errorf("bad rotation %q: %w", s, err)
	}
	if n < 0 {
		return Rotation{}, fmt.Errorf("bad rotation %q: negative clicks", s)
	}
	r.Clicks = n
	return r, nil
}

// Dial is the current position of the dial. The zero value points at 0;
// use New for a dial at Start.
type Dial struct {
	Pos int
}

// New returns a dial pointing at Start.
func New() *Dial {
	return &Dial{Pos: Start}
}

// Turn applies r and returns how many clicks left the dial pointing at 0,
// including the final one.
func (d *Dial) Turn(r Rotation) (zeros int) {
	if r.Left {
		switch {
		case d.Pos == 0:
			zeros = r.Clicks / Size
		case r.Clicks >= d.Pos:
			zeros = (r.Clicks-d.Pos)/Size + 1
		}
		d.Pos = aoc.Mod(d.Pos-r.Clicks, Size)
	} else {
		zeros = (d.Pos + r.Clicks) / Size
		d.Pos = aoc.Mod(d.Pos+r.Clicks, Size)
	}
	return zeros
}

// Password returns the number of rotations that leave the dial at 0.
func Password(rs []Rotation) int {
	d := New()
	n := 0
	for _, r := range rs {
		d.Turn(r)
		if d.Pos == 0 {
			n++
		}
	}
	return n
}

// ClickPassword returns the number of clicks, over all rotations, that leave
// the dial at 0.
func ClickPassword(rs []Rotation) int {
	d := New()
	n := 0
	for _, r := range rs {
		n += d.Turn(r)
	}
	return n
}
