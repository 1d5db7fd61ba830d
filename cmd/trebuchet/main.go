// The trebuchet command reads a calibration document on standard input and
// prints the sum of its calibration values, counting spelled-out digits.
//
// A number word cut off by the end of the input still counts, so a document
// ending in "1tw" contributes 12.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aocgo/aoc/trebuchet"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(r io.Reader, w io.Writer) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading standard input: %w", err)
	}
	_, err = fmt.Fprintf(w, "Sum is %d\n", trebuchet.Words.Lenient().Calibrate(buf, nil))
	return err
}
